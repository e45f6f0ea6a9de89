package handlers

import (
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
	"go.uber.org/zap"
)

// Handlers содержит все зависимости для обработки команд
type Handlers struct {
	plannerService *service.PlannerService
	adminChatID    int64 // 0 - бот отвечает в любом чате
	logger         *zap.Logger
}

// NewHandlers создаёт новый обработчик команд
func NewHandlers(plannerService *service.PlannerService, adminChatID int64, logger *zap.Logger) *Handlers {
	return &Handlers{
		plannerService: plannerService,
		adminChatID:    adminChatID,
		logger:         logger,
	}
}
