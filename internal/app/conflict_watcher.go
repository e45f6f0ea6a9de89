package app

import (
	"context"
	"time"

	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/conflict"
	"github.com/danielasommerhochzeitsplanung-droid/Hochzeitsmagie-sub001/internal/model"
	"go.uber.org/zap"
)

// ConflictSource источник актуальной карты конфликтов
type ConflictSource interface {
	Conflicts(ctx context.Context) (map[string][]model.Event, error)
}

// ConflictNotifier получает только новые пары конфликтов
type ConflictNotifier interface {
	NotifyConflicts(ctx context.Context, pairs []conflict.Pair) error
}

// ConflictWatcher периодически пересчитывает конфликты и сообщает о новых
type ConflictWatcher struct {
	source   ConflictSource
	notifier ConflictNotifier
	interval time.Duration
	logger   *zap.Logger
	known    map[string]bool
	stopChan chan struct{}
}

// NewConflictWatcher создаёт наблюдатель конфликтов
func NewConflictWatcher(source ConflictSource, notifier ConflictNotifier, interval time.Duration, logger *zap.Logger) *ConflictWatcher {
	return &ConflictWatcher{
		source:   source,
		notifier: notifier,
		interval: interval,
		logger:   logger,
		known:    make(map[string]bool),
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновую проверку
func (w *ConflictWatcher) Start(ctx context.Context) {
	w.logger.Info("Starting conflict watcher", zap.Duration("interval", w.interval))
	go w.run(ctx)
}

// Stop останавливает фоновую проверку
func (w *ConflictWatcher) Stop() {
	w.logger.Info("Stopping conflict watcher")
	close(w.stopChan)
}

func (w *ConflictWatcher) run(ctx context.Context) {
	// Первый запуск сразу при старте
	w.check(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.check(ctx)
		case <-w.stopChan:
			w.logger.Info("Conflict watcher stopped")
			return
		case <-ctx.Done():
			w.logger.Info("Conflict watcher cancelled")
			return
		}
	}
}

// check пересчитывает конфликты и отправляет только появившиеся с прошлого раза
// Исчезнувшие пары забываются, чтобы при повторном появлении снова прийти уведомлением
func (w *ConflictWatcher) check(ctx context.Context) {
	all, err := w.source.Conflicts(ctx)
	if err != nil {
		w.logger.Error("Failed to compute conflicts", zap.Error(err))
		return
	}

	pairs := conflict.Pairs(all)
	current := make(map[string]bool, len(pairs))
	var fresh []conflict.Pair
	for _, p := range pairs {
		current[p.Key()] = true
		if !w.known[p.Key()] {
			fresh = append(fresh, p)
		}
	}

	if len(fresh) > 0 {
		if err := w.notifier.NotifyConflicts(ctx, fresh); err != nil {
			// Не запоминаем пары, чтобы попробовать ещё раз на следующем тике
			w.logger.Error("Failed to notify about conflicts", zap.Error(err))
			return
		}
		w.logger.Info("New event conflicts reported", zap.Int("pairs", len(fresh)))
	}

	w.known = current
}
