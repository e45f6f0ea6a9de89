package controller

import (
	"context"
	"fmt"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/conflict"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/controller/handlers"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

type BotController struct {
	bot         *bot.Bot
	handlers    *handlers.Handlers
	adminChatID int64
	logger      *zap.Logger
}

func NewBotController(
	botInstance *bot.Bot,
	plannerService *service.PlannerService,
	adminChatID int64,
	logger *zap.Logger,
) *BotController {
	return &BotController{
		bot:         botInstance,
		handlers:    handlers.NewHandlers(plannerService, adminChatID, logger),
		adminChatID: adminChatID,
		logger:      logger,
	}
}

// RegisterHandlers регистрирует все обработчики команд
func (c *BotController) RegisterHandlers(ctx context.Context) error {
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, c.handlers.HandleStart)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/help", bot.MatchTypeExact, c.handlers.HandleHelp)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/conflicts", bot.MatchTypeExact, c.handlers.HandleConflicts)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/seating", bot.MatchTypeExact, c.handlers.HandleSeating)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/unassigned", bot.MatchTypeExact, c.handlers.HandleUnassigned)
	c.bot.RegisterHandler(bot.HandlerTypeMessageText, "/program", bot.MatchTypePrefix, c.handlers.HandleProgram)

	// Устанавливаем меню команд
	return c.setCommands(ctx)
}

// setCommands устанавливает список команд в меню бота
func (c *BotController) setCommands(ctx context.Context) error {
	commands := []models.BotCommand{
		{Command: "conflicts", Description: "⚠️ Пересечения в программе"},
		{Command: "seating", Description: "🪑 Рассадка по столам"},
		{Command: "unassigned", Description: "❔ Гости без места"},
		{Command: "program", Description: "📅 Программа дня (ГГГГ-ММ-ДД)"},
		{Command: "help", Description: "❓ Справка по командам"},
	}

	_, err := c.bot.SetMyCommands(ctx, &bot.SetMyCommandsParams{
		Commands: commands,
	})

	if err != nil {
		c.logger.Error("Failed to set bot commands", zap.Error(err))
		return err
	}

	c.logger.Info("✅ Bot commands menu set")
	return nil
}

// NotifyConflicts отправляет организаторам новые пересечения в программе
func (c *BotController) NotifyConflicts(ctx context.Context, pairs []conflict.Pair) error {
	if c.adminChatID == 0 {
		c.logger.Warn("ADMIN_CHAT_ID is not set, conflict alert skipped", zap.Int("pairs", len(pairs)))
		return nil
	}

	_, err := c.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: c.adminChatID,
		Text:   "🔔 Новые пересечения!\n\n" + handlers.FormatConflicts(pairs),
	})
	if err != nil {
		return fmt.Errorf("send conflict alert: %w", err)
	}

	return nil
}

// Start запускает бота, блокируется до отмены ctx
func (c *BotController) Start(ctx context.Context) {
	c.logger.Info("Starting bot...")
	c.bot.Start(ctx)
}
