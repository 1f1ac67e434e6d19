package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

// Trigger wakes the retrier ahead of its next tick. Fires coalesce while a run is
// pending.
type Trigger struct {
	ch chan struct{}
}

func NewTrigger() *Trigger {
	return &Trigger{ch: make(chan struct{}, 1)}
}

func (t *Trigger) Fire() {
	select {
	case t.ch <- struct{}{}:
	default:
	}
}

type AssignmentRetrier interface {
	RetryAssignments(ctx context.Context, limit int) (storage.RetryStats, error)
}

// Retrier reassigns deferred requests every interval and whenever volunteer capacity
// is freed.
type Retrier struct {
	storage   AssignmentRetrier
	trigger   *Trigger
	interval  time.Duration
	batchSize int
	logger    *zap.Logger
}

func NewRetrier(st AssignmentRetrier, trigger *Trigger, interval time.Duration, batchSize int, logger *zap.Logger) *Retrier {
	if trigger == nil {
		trigger = NewTrigger()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Retrier{
		storage:   st,
		trigger:   trigger,
		interval:  interval,
		batchSize: batchSize,
		logger:    logger.Named("retrier"),
	}
}

// Run blocks until ctx is cancelled.
func (r *Retrier) Run(ctx context.Context) error {
	r.logger.Info("starting assignment retrier", zap.Duration("interval", r.interval))
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("assignment retrier stopped")
			return nil
		case <-ticker.C:
			r.runOnce(ctx, "tick")
		case <-r.trigger.ch:
			r.runOnce(ctx, "capacity_freed")
		}
	}
}

func (r *Retrier) runOnce(ctx context.Context, reason string) {
	stats, err := r.storage.RetryAssignments(ctx, r.batchSize)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Error("assignment retry failed", zap.String("reason", reason), zap.Error(err))
		}
		return
	}
	if stats.Assigned+stats.CoAssigned+stats.Failed > 0 {
		r.logger.Info("assignment retry finished",
			zap.String("reason", reason),
			zap.Int("assigned", stats.Assigned),
			zap.Int("co_assigned", stats.CoAssigned),
			zap.Int("deferred", stats.Deferred),
			zap.Int("failed", stats.Failed))
	}
}
