package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/app"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/config"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/controller"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/handler"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/repository"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/router"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/service"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/migrations"
	"github.com/go-telegram/bot"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting wedding planner",
		zap.String("http_addr", cfg.HTTPAddr),
		zap.String("timezone", cfg.Timezone),
		zap.Bool("bot_enabled", cfg.BotEnabled()),
	)

	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		logger.Fatal("Failed to create connection pool", zap.Error(err))
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	migrator, err := app.NewMigrator(pool, migrations.FS, logger)
	if err != nil {
		logger.Fatal("Failed to create migrator", zap.Error(err))
	}
	if err := migrator.Run(ctx); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
	if err := migrator.Close(); err != nil {
		logger.Warn("Failed to close migrator", zap.Error(err))
	}

	// Репозитории и сервис
	snapshots := repository.NewSnapshotRepository(pool)
	assignments := repository.NewSeatingRepository(pool)
	plannerService := service.NewPlannerService(snapshots, assignments, cfg.Location(), logger)

	// HTTP API для UI
	e := echo.New()
	e.HideBanner = true
	router.RegisterRoutes(e)
	router.RegisterPlanner(e, handler.NewPlannerHandler(plannerService, logger))

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server stopped", zap.Error(err))
			stop()
		}
	}()

	// Бот и уведомления о конфликтах
	if cfg.BotEnabled() {
		b, err := bot.New(cfg.TelegramToken)
		if err != nil {
			logger.Fatal("Failed to create bot", zap.Error(err))
		}

		botController := controller.NewBotController(b, plannerService, cfg.AdminChatID, logger)
		if err := botController.RegisterHandlers(ctx); err != nil {
			logger.Warn("Failed to register bot commands menu", zap.Error(err))
		}

		watcher := app.NewConflictWatcher(plannerService, botController, cfg.ConflictCheckInterval, logger)
		watcher.Start(ctx)
		defer watcher.Stop()

		go botController.Start(ctx)
	}

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shutdown HTTP server", zap.Error(err))
	}
}
