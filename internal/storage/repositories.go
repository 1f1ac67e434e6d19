//go:generate mockgen -source ./repositories.go -destination=./mocks/repositories.go -package=mock_storage
package storage

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
)

type RequestRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, req *repository.FoodRequest) error
	GetByID(ctx context.Context, id string) (*repository.FoodRequest, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.FoodRequest, error)
	// UpdateTx writes req only if the stored row still has expectedStatus and
	// expectedVersion. It reports false when the row moved on.
	UpdateTx(ctx context.Context, tx db.Tx, req *repository.FoodRequest, expectedStatus string, expectedVersion int64) (bool, error)
	ListByNGO(ctx context.Context, ngoID string) ([]*repository.FoodRequest, error)
	ListByDonor(ctx context.Context, donorID string) ([]*repository.FoodRequest, error)
	ListByVolunteer(ctx context.Context, volunteerID string) ([]*repository.FoodRequest, error)
	ListByStatus(ctx context.Context, status string, limit int) ([]*repository.FoodRequest, error)
	ListAwaitingVolunteer(ctx context.Context, limit int) ([]*repository.FoodRequest, error)
	ListAwaitingCoVolunteer(ctx context.Context, limit int) ([]*repository.FoodRequest, error)
	ListActive(ctx context.Context) ([]lifecycle.FoodRequest, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *repository.User) error
	GetByID(ctx context.Context, id string) (*repository.User, error)
	GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.User, error)
	// UpdateVerificationTx applies a verification decision only while the stored status
	// is still expectedStatus.
	UpdateVerificationTx(ctx context.Context, tx db.Tx, user *repository.User, expectedStatus string) (bool, error)
	// ReserveTaskSlotTx takes one unit of a volunteer's capacity. It reports false when
	// the volunteer is full, unavailable or unverified.
	ReserveTaskSlotTx(ctx context.Context, tx db.Tx, volunteerID string) (bool, error)
	ReleaseTaskSlotTx(ctx context.Context, tx db.Tx, volunteerID string) error
	IncrementCounterTx(ctx context.Context, tx db.Tx, userID string, counter repository.Counter) error
	UpdateAvailability(ctx context.Context, userID string, available bool, taskCapacity int, latitude, longitude *float64) error
	ListAssignableVolunteers(ctx context.Context) ([]*repository.User, error)
	ListByVerification(ctx context.Context, status string) ([]*repository.User, error)
	List(ctx context.Context, role string, limit int) ([]*repository.User, error)
}

type AuditRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, entry *repository.AuditLogEntry) error
	List(ctx context.Context, limit int) ([]*repository.AuditLogEntry, error)
}

type OutboxTaskRepository interface {
	CreateTx(ctx context.Context, tx db.Tx, task *repository.OutboxTask) error
	GetProcessableTasksTx(ctx context.Context, tx db.Tx, limit, maxAttempts int) ([]*repository.OutboxTask, error)
	UpdateTaskStatusTx(ctx context.Context, tx db.Tx, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
	UpdateTaskStatus(ctx context.Context, db db.DB, id uuid.UUID, status repository.TaskStatus, attempts int, lastError *string, completedAt *time.Time) error
}

// VolunteerDirectory yields assignment candidates for a pickup point, best first.
type VolunteerDirectory interface {
	Candidates(ctx context.Context, origin *geo.Point, exclude ...string) ([]lifecycle.User, error)
	// LiveLocation is the fresh presence point of a volunteer, falling back to the
	// declared one.
	LiveLocation(ctx context.Context, volunteer lifecycle.User) *geo.Point
}

// Presence records live volunteer activity.
type Presence interface {
	Touch(ctx context.Context, volunteerID string, p *geo.Point) error
	SetInactive(ctx context.Context, volunteerID string) error
	Locations(ctx context.Context, ids []string) (map[string]geo.Point, error)
}

type RequestCache interface {
	Get(requestID string) (lifecycle.FoodRequest, bool)
	Set(req lifecycle.FoodRequest)
	Delete(requestID string)
}

// Welcomer greets a freshly registered account. Failures never undo the registration.
type Welcomer interface {
	Welcome(ctx context.Context, user lifecycle.User) error
}
