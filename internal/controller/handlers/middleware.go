package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"go.uber.org/zap"
)

// requireChat проверяет что команда пришла из разрешённого чата
// Возвращает chatID и true если OK
func (h *Handlers) requireChat(ctx context.Context, b *bot.Bot, update *models.Update) (int64, bool) {
	if update.Message == nil {
		return 0, false
	}

	chatID := update.Message.Chat.ID
	if h.adminChatID != 0 && chatID != h.adminChatID {
		h.logger.Warn("Command from foreign chat ignored", zap.Int64("chat_id", chatID))
		h.sendError(ctx, b, chatID, "❌ Этот бот работает только в чате организаторов.")
		return 0, false
	}

	return chatID, true
}

// sendError отправляет сообщение об ошибке и логирует если не удалось
func (h *Handlers) sendError(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	h.send(ctx, b, chatID, text)
}

// send отправляет текст и логирует если не удалось
func (h *Handlers) send(ctx context.Context, b *bot.Bot, chatID int64, text string) {
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		h.logger.Error("Failed to send message",
			zap.Int64("chat_id", chatID),
			zap.Error(err),
		)
	}
}
