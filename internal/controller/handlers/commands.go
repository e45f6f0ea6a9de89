package handlers

import (
	"bytes"
	"context"
	"errors"
	"strings"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/conflict"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/controller/render"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

const helpText = "📚 Справка по командам:\n\n" +
	"/conflicts - Пересечения событий с учётом трансфера\n" +
	"/seating - Рассадка по столам\n" +
	"/unassigned - Гости без места\n" +
	"/program ГГГГ-ММ-ДД - Программа дня картинкой\n" +
	"/help - Показать эту справку"

// HandleStart обрабатывает команду /start
func (h *Handlers) HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, ok := h.requireChat(ctx, b, update)
	if !ok {
		return
	}

	h.send(ctx, b, chatID, "👋 Привет!\n\nЯ слежу за программой свадебного дня и рассадкой гостей.\n\n"+helpText)
}

// HandleHelp обрабатывает команду /help
func (h *Handlers) HandleHelp(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, ok := h.requireChat(ctx, b, update)
	if !ok {
		return
	}

	h.send(ctx, b, chatID, helpText)
}

// HandleConflicts обрабатывает команду /conflicts
func (h *Handlers) HandleConflicts(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, ok := h.requireChat(ctx, b, update)
	if !ok {
		return
	}

	all, err := h.plannerService.Conflicts(ctx)
	if err != nil {
		h.logger.Error("Failed to compute conflicts", zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось проверить программу. Попробуйте позже.")
		return
	}

	h.send(ctx, b, chatID, FormatConflicts(conflict.Pairs(all)))
}

// HandleSeating обрабатывает команду /seating
func (h *Handlers) HandleSeating(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, ok := h.requireChat(ctx, b, update)
	if !ok {
		return
	}

	plan, err := h.plannerService.Seating(ctx, "")
	if err != nil {
		h.logger.Error("Failed to resolve seating", zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось получить рассадку. Попробуйте позже.")
		return
	}

	h.send(ctx, b, chatID, FormatSeating(plan))
}

// HandleUnassigned обрабатывает команду /unassigned
func (h *Handlers) HandleUnassigned(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, ok := h.requireChat(ctx, b, update)
	if !ok {
		return
	}

	guests, err := h.plannerService.Unassigned(ctx)
	if err != nil {
		h.logger.Error("Failed to compute unassigned guests", zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось получить список гостей. Попробуйте позже.")
		return
	}

	h.send(ctx, b, chatID, FormatUnassigned(guests))
}

// HandleProgram обрабатывает команду /program ГГГГ-ММ-ДД
func (h *Handlers) HandleProgram(ctx context.Context, b *bot.Bot, update *models.Update) {
	chatID, ok := h.requireChat(ctx, b, update)
	if !ok {
		return
	}

	date, ok := parseProgramArgs(update.Message.Text)
	if !ok {
		h.sendError(ctx, b, chatID, "❌ Укажите дату: /program 2025-06-01")
		return
	}

	program, err := h.plannerService.DayProgram(ctx, date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			h.sendError(ctx, b, chatID, "❌ Неверный формат даты. Пример: /program 2025-06-01")
			return
		}
		h.logger.Error("Failed to build day program", zap.String("date", date), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось получить программу. Попробуйте позже.")
		return
	}

	image, err := render.ProgramImage(program)
	if err != nil {
		h.logger.Error("Failed to render day program", zap.String("date", date), zap.Error(err))
		h.sendError(ctx, b, chatID, "❌ Не удалось нарисовать программу.")
		return
	}

	_, err = b.SendPhoto(ctx, &bot.SendPhotoParams{
		ChatID: chatID,
		Photo: &models.InputFileUpload{
			Filename: "program-" + date + ".png",
			Data:     bytes.NewReader(image),
		},
		Caption: FormatProgramCaption(program),
	})
	if err != nil {
		h.logger.Error("Failed to send day program", zap.Int64("chat_id", chatID), zap.Error(err))
	}
}

// parseProgramArgs достаёт дату из "/program 2025-06-01"
func parseProgramArgs(text string) (string, bool) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return "", false
	}
	return fields[1], true
}
