package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

var timeNow = time.Now

var errShutdown = errors.New("publisher shutdown during batch processing")

type PublisherConfig struct {
	PollInterval time.Duration
	BatchSize    int
	MaxAttempts  int
}

// Publisher drains the outbox into the producer. Tasks are claimed as PROCESSING in one
// transaction and sent afterwards, so a crash between the two leaves them for the next
// poll once their lease runs out.
type Publisher struct {
	db             db.DB
	repo           storage.OutboxTaskRepository
	producer       Producer
	config         PublisherConfig
	logger         *zap.Logger
	wg             sync.WaitGroup
	shutdownSignal chan struct{}
	stopOnce       sync.Once
}

func NewPublisher(db db.DB, repo storage.OutboxTaskRepository, producer Producer, config PublisherConfig, logger *zap.Logger) *Publisher {
	if config.BatchSize <= 0 {
		config.BatchSize = 10
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Publisher{
		db:             db,
		repo:           repo,
		producer:       producer,
		config:         config,
		logger:         logger.Named("outbox"),
		shutdownSignal: make(chan struct{}),
	}
}

func (p *Publisher) Run(ctx context.Context) {
	p.logger.Info("starting outbox publisher", zap.Duration("poll_interval", p.config.PollInterval))
	p.wg.Add(1)
	defer p.wg.Done()

	ticker := time.NewTicker(p.config.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := p.ProcessBatch(ctx); err != nil && !errors.Is(err, errShutdown) {
				p.logger.Error("failed to process outbox batch", zap.Error(err))
			}
		case <-p.shutdownSignal:
			p.logger.Info("outbox publisher received shutdown signal, stopping")
			return
		case <-ctx.Done():
			p.logger.Info("outbox publisher context cancelled, stopping")
			return
		}
	}
}

// Shutdown stops Run, waits for the batch in flight and closes the producer.
func (p *Publisher) Shutdown() {
	p.stopOnce.Do(func() {
		p.logger.Info("initiating outbox publisher shutdown")
		close(p.shutdownSignal)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()
		select {
		case <-done:
			p.logger.Info("outbox publisher shutdown complete")
		case <-shutdownCtx.Done():
			p.logger.Warn("outbox publisher shutdown timed out")
		}

		if err := p.producer.Close(); err != nil {
			p.logger.Error("failed to close producer", zap.Error(err))
		}
	})
}

// ProcessBatch claims and sends one batch. It returns how many tasks were claimed.
func (p *Publisher) ProcessBatch(ctx context.Context) (int, error) {
	var tasks []*repository.OutboxTask
	err := db.WithTx(ctx, p.db, func(tx db.Tx) error {
		var err error
		tasks, err = p.repo.GetProcessableTasksTx(ctx, tx, p.config.BatchSize, p.config.MaxAttempts)
		if err != nil {
			return fmt.Errorf("failed to get processable tasks: %w", err)
		}
		for _, task := range tasks {
			err := p.repo.UpdateTaskStatusTx(ctx, tx, task.ID, repository.TaskStatusProcessing, task.Attempts, nil, nil)
			if err != nil {
				return fmt.Errorf("failed to mark task %s as PROCESSING: %w", task.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if len(tasks) == 0 {
		return 0, nil
	}

	p.logger.Debug("fetched outbox tasks", zap.Int("count", len(tasks)))

	for _, task := range tasks {
		select {
		case <-p.shutdownSignal:
			p.logger.Info("shutdown during batch, leaving task for the next publisher", zap.Stringer("task_id", task.ID))
			return len(tasks), errShutdown
		case <-ctx.Done():
			return len(tasks), ctx.Err()
		default:
		}

		if err := p.processSingleTask(ctx, task); err != nil {
			p.logger.Error("failed to process outbox task", zap.Stringer("task_id", task.ID), zap.Error(err))
		}
	}
	return len(tasks), nil
}

func (p *Publisher) processSingleTask(ctx context.Context, task *repository.OutboxTask) error {
	logger := p.logger.With(zap.Stringer("task_id", task.ID), zap.Int("attempt", task.Attempts+1))

	key := []byte(task.Key)
	if len(key) == 0 {
		key = []byte(task.ID.String())
	}

	err := p.producer.SendMessage(ctx, task.Topic, key, task.Payload)
	if err != nil {
		newAttempts := task.Attempts + 1
		errMsg := err.Error()
		if newAttempts >= p.config.MaxAttempts {
			logger.Error("outbox task reached max attempts, marking as FAILED permanently",
				zap.Int("max_attempts", p.config.MaxAttempts), zap.Error(err))
			metrics.OutboxPublishedTotal.WithLabelValues("dead").Inc()
		} else {
			logger.Warn("failed to send outbox task", zap.Error(err))
			metrics.OutboxPublishedTotal.WithLabelValues("failed").Inc()
		}

		updateErr := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusFailed, newAttempts, &errMsg, nil)
		if updateErr != nil {
			return fmt.Errorf("failed to update task status after send failure: %w (send error: %v)", updateErr, err)
		}
		return err
	}

	now := timeNow().UTC()
	if err := p.repo.UpdateTaskStatus(ctx, p.db, task.ID, repository.TaskStatusDone, task.Attempts, nil, &now); err != nil {
		return fmt.Errorf("failed to update task status after successful send: %w", err)
	}
	metrics.OutboxPublishedTotal.WithLabelValues("done").Inc()
	logger.Debug("outbox task published", zap.String("topic", task.Topic))
	return nil
}
