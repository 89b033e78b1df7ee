package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/sla-dashboard/internal/service"
)

// Sweeper runs one reminder pass.
type Sweeper interface {
	Sweep(ctx context.Context) (service.SweepResult, error)
}

// HandlerRegistrar subscribes event handlers on the dispatcher.
type HandlerRegistrar interface {
	RegisterHandlers()
}

// ReminderWorker periodically sweeps for reminder candidates.
type ReminderWorker struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *zap.Logger
}

// NewReminderWorker constructs a worker. A non-positive interval disables
// the loop; Run then returns immediately.
func NewReminderWorker(sweeper Sweeper, interval time.Duration, logger *zap.Logger) *ReminderWorker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReminderWorker{sweeper: sweeper, interval: interval, logger: logger}
}

// StartNotificationWorker registers notification handlers.
func StartNotificationWorker(notifier HandlerRegistrar) {
	if notifier == nil {
		return
	}
	notifier.RegisterHandlers()
}

// Run sweeps once immediately and then on every tick until ctx is done.
func (w *ReminderWorker) Run(ctx context.Context) {
	if w.sweeper == nil || w.interval <= 0 {
		w.logger.Info("reminder worker disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.logger.Info("reminder worker started", zap.Duration("interval", w.interval))
	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("reminder worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *ReminderWorker) sweep(ctx context.Context) {
	result, err := w.sweeper.Sweep(ctx)
	if err != nil {
		w.logger.Error("reminder sweep failed", zap.Error(err))
		return
	}
	w.logger.Debug("reminder sweep finished",
		zap.Int("selected", result.Selected),
		zap.Int("published", result.Published),
		zap.Int("duplicates", result.Duplicates),
		zap.Int("failed", result.Failed))
}
