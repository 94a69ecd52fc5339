package realtime

import (
	"context"
	"log/slog"
	"time"

	"github.com/aaravmahajanofficial/retail-inventory-admin/internal/api/middleware"
)

// Task is one refresh the poller runs on every tick.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Poller re-runs the same refreshes the realtime events trigger, for when
// events are missed. Failures wait for the next tick.
type Poller struct {
	interval time.Duration
	tasks    []Task
}

func NewPoller(interval time.Duration, tasks ...Task) *Poller {
	return &Poller{interval: interval, tasks: tasks}
}

func (p *Poller) Run(ctx context.Context) error {

	logger := middleware.LoggerFromContext(ctx).With(slog.String("component", "poller"))

	if p.interval <= 0 {
		logger.Info("Polling disabled")
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.tick(ctx, logger)
		}
	}
}

func (p *Poller) tick(ctx context.Context, logger *slog.Logger) {
	for _, task := range p.tasks {
		if ctx.Err() != nil {
			return
		}

		if err := task.Run(ctx); err != nil {
			logger.Warn("Poll refresh failed", slog.String("task", task.Name), slog.String("error", err.Error()))
		}
	}
}
