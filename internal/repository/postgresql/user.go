package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
	"github.com/Devadharshani13/SmartPlate/internal/storage"
)

const userColumns = `
    user_id, role, name, email, phone, location, latitude, longitude, organization,
    donor_type, transport_mode, verification_status, verification_notes, verified_by,
    verified_at, available, task_capacity, active_tasks, total_requests, completed_requests,
    total_donations, completed_tasks, created_at`

type UserRepo struct {
	db db.DB
}

func NewUserRepo(db db.DB) storage.UserRepository {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *repository.User) error {
	tag, err := r.db.Exec(ctx, `
        INSERT INTO users (
            user_id, role, name, email, phone, location, latitude, longitude, organization,
            donor_type, transport_mode, verification_status, available, task_capacity, created_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
        ON CONFLICT (user_id) DO NOTHING
    `, u.ID, u.Role, u.Name, u.Email, u.Phone, u.Location, u.Latitude, u.Longitude, u.Organization,
		u.DonorType, u.TransportMode, u.VerificationStatus, u.Available, u.TaskCapacity, u.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert user %s: %w", u.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrAlreadyExists
	}
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*repository.User, error) {
	var u repository.User
	err := r.db.Get(ctx, &u, "SELECT"+userColumns+" FROM users WHERE user_id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.User, error) {
	var u repository.User
	err := tx.Get(ctx, &u, "SELECT"+userColumns+" FROM users WHERE user_id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) UpdateVerificationTx(ctx context.Context, tx db.Tx, u *repository.User, expectedStatus string) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE users
        SET verification_status = $1, verification_notes = $2, verified_by = $3, verified_at = $4
        WHERE user_id = $5 AND verification_status = $6
    `, u.VerificationStatus, u.VerificationNotes, u.VerifiedBy, u.VerifiedAt, u.ID, expectedStatus)
	if err != nil {
		return false, fmt.Errorf("failed to update verification of %s: %w", u.ID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *UserRepo) ReserveTaskSlotTx(ctx context.Context, tx db.Tx, volunteerID string) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE users
        SET active_tasks = active_tasks + 1
        WHERE user_id = $1
          AND role = $2
          AND verification_status = $3
          AND available
          AND active_tasks < GREATEST(task_capacity, 1)
    `, volunteerID, lifecycle.RoleVolunteer.String(), string(lifecycle.VerificationVerified))
	if err != nil {
		return false, fmt.Errorf("failed to reserve a task slot for %s: %w", volunteerID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *UserRepo) ReleaseTaskSlotTx(ctx context.Context, tx db.Tx, volunteerID string) error {
	_, err := tx.Exec(ctx, `
        UPDATE users SET active_tasks = GREATEST(active_tasks - 1, 0) WHERE user_id = $1
    `, volunteerID)
	if err != nil {
		return fmt.Errorf("failed to release a task slot for %s: %w", volunteerID, err)
	}
	return nil
}

func (r *UserRepo) IncrementCounterTx(ctx context.Context, tx db.Tx, userID string, counter repository.Counter) error {
	if !counter.Valid() {
		return fmt.Errorf("unknown counter %q", counter)
	}
	query := fmt.Sprintf("UPDATE users SET %[1]s = %[1]s + 1 WHERE user_id = $1", counter)
	if _, err := tx.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("failed to increment %s for %s: %w", counter, userID, err)
	}
	return nil
}

func (r *UserRepo) UpdateAvailability(ctx context.Context, userID string, available bool, taskCapacity int, latitude, longitude *float64) error {
	tag, err := r.db.Exec(ctx, `
        UPDATE users
        SET available = $1,
            task_capacity = $2,
            latitude = COALESCE($3, latitude),
            longitude = COALESCE($4, longitude)
        WHERE user_id = $5
    `, available, taskCapacity, latitude, longitude, userID)
	if err != nil {
		return fmt.Errorf("failed to update availability of %s: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrObjectNotFound
	}
	return nil
}

func (r *UserRepo) ListAssignableVolunteers(ctx context.Context) ([]*repository.User, error) {
	var users []*repository.User
	err := r.db.Select(ctx, &users, "SELECT"+userColumns+`
        FROM users
        WHERE role = $1 AND verification_status = $2 AND available
          AND active_tasks < GREATEST(task_capacity, 1)
        ORDER BY created_at ASC, user_id ASC`,
		lifecycle.RoleVolunteer.String(), string(lifecycle.VerificationVerified))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignable volunteers: %w", err)
	}
	return users, nil
}

// List returns up to limit accounts, oldest first. A blank role lists every role.
func (r *UserRepo) List(ctx context.Context, role string, limit int) ([]*repository.User, error) {
	var users []*repository.User
	err := r.db.Select(ctx, &users, "SELECT"+userColumns+" FROM users WHERE ($1 = '' OR role = $1) ORDER BY created_at ASC LIMIT $2", role, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepo) ListByVerification(ctx context.Context, status string) ([]*repository.User, error) {
	var users []*repository.User
	err := r.db.Select(ctx, &users, "SELECT"+userColumns+" FROM users WHERE verification_status = $1 ORDER BY created_at ASC", status)
	if err != nil {
		return nil, fmt.Errorf("failed to list users by verification: %w", err)
	}
	return users, nil
}
