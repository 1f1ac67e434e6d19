package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

// processingLease is how long a PROCESSING task may stay claimed before another
// publisher picks it up again.
const processingLease = time.Minute

var timeNow = time.Now

type OutboxTaskRepo struct {
}

func NewOutboxTaskRepo() storage.OutboxTaskRepository {
	return &OutboxTaskRepo{}
}

func (r *OutboxTaskRepo) CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error {
	query := `
        INSERT INTO outbox_tasks (id, status, payload, topic, key, created_at, updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	now := timeNow().UTC()
	_, err := tx.Exec(ctx, query,
		task.ID,
		repository.TaskStatusCreated,
		task.Payload,
		task.Topic,
		task.Key,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to insert outbox task: %w", err)
	}
	return nil
}

// GetProcessableTasksTx locks up to limit tasks that are new, failed with attempts left,
// or stuck in PROCESSING past the lease.
func (r *OutboxTaskRepo) GetProcessableTasksTx(ctx context.Context, tx db.Tx, limit, maxAttempts int) ([]*repository.OutboxTask, error) {
	query := `
        SELECT id, status, payload, topic, key, attempts, last_error, created_at, updated_at, completed_at
        FROM outbox_tasks
        WHERE status = $1
           OR (status = $2 AND attempts < $3)
           OR (status = $4 AND updated_at < $5)
        ORDER BY created_at ASC
        LIMIT $6
        FOR UPDATE SKIP LOCKED
    `
	staleBefore := timeNow().UTC().Add(-processingLease)

	var tasks []*repository.OutboxTask
	err := tx.Select(ctx, &tasks, query,
		repository.TaskStatusCreated,
		repository.TaskStatusFailed, maxAttempts,
		repository.TaskStatusProcessing, staleBefore,
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get processable outbox tasks: %w", err)
	}
	return tasks, nil
}

type execer interface {
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
}

func (r *OutboxTaskRepo) updateTaskStatus(ctx context.Context, exec execer, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	query := `
        UPDATE outbox_tasks
        SET
            status = $2,
            attempts = $3,
            last_error = $4,
            completed_at = $5,
            updated_at = $6
        WHERE id = $1
    `
	cmdTag, err := exec.Exec(ctx, query, id, status, attempts, lastError, completedAt, timeNow().UTC())
	if err != nil {
		return fmt.Errorf("failed to update outbox task status for id %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *OutboxTaskRepo) UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	return r.updateTaskStatus(ctx, tx, id, status, attempts, lastError, completedAt)
}

func (r *OutboxTaskRepo) UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error {
	return r.updateTaskStatus(ctx, db, id, status, attempts, lastError, completedAt)
}
