package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

const defaultAuditLimit = 100

type AuditRepo struct {
	db db.DB
}

func NewAuditRepo(db db.DB) storage.AuditRepository {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) CreateTx(ctx context.Context, tx db.Tx, entry *repository.AuditLogEntry) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	details := entry.Details
	if len(details) == 0 {
		details = []byte("{}")
	}
	_, err := tx.Exec(ctx, `
        INSERT INTO audit_logs (log_id, action, user_id, request_id, details, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
    `, entry.ID, entry.Action, entry.UserID, entry.RequestID, details, entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert audit log: %w", err)
	}
	return nil
}

// List returns the newest entries first. A non-positive limit means 100.
func (r *AuditRepo) List(ctx context.Context, limit int) ([]*repository.AuditLogEntry, error) {
	if limit <= 0 {
		limit = defaultAuditLimit
	}
	var entries []*repository.AuditLogEntry
	err := r.db.Select(ctx, &entries, `
        SELECT log_id, action, user_id, request_id, details, created_at
        FROM audit_logs
        ORDER BY created_at DESC
        LIMIT $1
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	return entries, nil
}
