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

const requestColumns = `
    request_id, ngo_id, food_type, food_category, quantity, quantity_unit, people_count,
    required_date, required_time, pickup_location, pickup_latitude, pickup_longitude,
    special_instructions, urgency_score, status, donor_id, availability_time, food_condition,
    volunteer_id, co_volunteer_id, extra_volunteer_reason, delivery_photo_url, ngo_rating,
    ngo_feedback, version, created_at, updated_at, accepted_at, assigned_at, picked_up_at,
    in_transit_at, delivered_at, completed_at, extra_volunteer_requested_at,
    co_volunteer_assigned_at`

type RequestRepo struct {
	db db.DB
}

func NewRequestRepo(db db.DB) storage.RequestRepository {
	return &RequestRepo{db: db}
}

func (r *RequestRepo) CreateTx(ctx context.Context, tx db.Tx, req *repository.FoodRequest) error {
	_, err := tx.Exec(ctx, `
        INSERT INTO food_requests (
            request_id, ngo_id, food_type, food_category, quantity, quantity_unit, people_count,
            required_date, required_time, pickup_location, pickup_latitude, pickup_longitude,
            special_instructions, urgency_score, status, version, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
    `, req.ID, req.NGOID, req.FoodType, req.FoodCategory, req.Quantity, req.QuantityUnit, req.PeopleCount,
		req.RequiredDate, req.RequiredTime, req.PickupLocation, req.PickupLatitude, req.PickupLongitude,
		req.SpecialInstructions, req.UrgencyScore, req.Status, req.Version, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert request %s: %w", req.ID, err)
	}
	return nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id string) (*repository.FoodRequest, error) {
	var req repository.FoodRequest
	err := r.db.Get(ctx, &req, "SELECT"+requestColumns+" FROM food_requests WHERE request_id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

// GetByIDTx reads without locking; the write that follows is a compare-and-set.
func (r *RequestRepo) GetByIDTx(ctx context.Context, tx db.Tx, id string) (*repository.FoodRequest, error) {
	var req repository.FoodRequest
	err := tx.Get(ctx, &req, "SELECT"+requestColumns+" FROM food_requests WHERE request_id = $1", id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrObjectNotFound
		}
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepo) UpdateTx(ctx context.Context, tx db.Tx, req *repository.FoodRequest, expectedStatus string, expectedVersion int64) (bool, error) {
	tag, err := tx.Exec(ctx, `
        UPDATE food_requests
        SET
            status = $1,
            donor_id = $2,
            availability_time = $3,
            food_condition = $4,
            volunteer_id = $5,
            co_volunteer_id = $6,
            extra_volunteer_reason = $7,
            delivery_photo_url = $8,
            ngo_rating = $9,
            ngo_feedback = $10,
            urgency_score = $11,
            version = $12,
            updated_at = $13,
            accepted_at = $14,
            assigned_at = $15,
            picked_up_at = $16,
            in_transit_at = $17,
            delivered_at = $18,
            completed_at = $19,
            extra_volunteer_requested_at = $20,
            co_volunteer_assigned_at = $21
        WHERE request_id = $22 AND status = $23 AND version = $24
    `, req.Status, req.DonorID, req.AvailabilityTime, req.FoodCondition, req.VolunteerID, req.CoVolunteerID,
		req.ExtraVolunteerReason, req.DeliveryPhotoURL, req.Rating, req.Feedback, req.UrgencyScore,
		req.Version, req.UpdatedAt, req.AcceptedAt, req.AssignedAt, req.PickedUpAt, req.InTransitAt,
		req.DeliveredAt, req.CompletedAt, req.ExtraVolunteerRequestedAt, req.CoVolunteerAssignedAt,
		req.ID, expectedStatus, expectedVersion)
	if err != nil {
		return false, fmt.Errorf("failed to update request %s: %w", req.ID, err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *RequestRepo) list(ctx context.Context, query string, args ...interface{}) ([]*repository.FoodRequest, error) {
	var requests []*repository.FoodRequest
	if err := r.db.Select(ctx, &requests, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}
	return requests, nil
}

func (r *RequestRepo) ListByNGO(ctx context.Context, ngoID string) ([]*repository.FoodRequest, error) {
	return r.list(ctx, "SELECT"+requestColumns+" FROM food_requests WHERE ngo_id = $1 ORDER BY created_at DESC", ngoID)
}

func (r *RequestRepo) ListByDonor(ctx context.Context, donorID string) ([]*repository.FoodRequest, error) {
	return r.list(ctx, "SELECT"+requestColumns+" FROM food_requests WHERE donor_id = $1 ORDER BY accepted_at DESC", donorID)
}

func (r *RequestRepo) ListByVolunteer(ctx context.Context, volunteerID string) ([]*repository.FoodRequest, error) {
	return r.list(ctx, "SELECT"+requestColumns+`
        FROM food_requests
        WHERE volunteer_id = $1 OR co_volunteer_id = $1
        ORDER BY assigned_at DESC`, volunteerID)
}

func (r *RequestRepo) ListByStatus(ctx context.Context, status string, limit int) ([]*repository.FoodRequest, error) {
	query := "SELECT" + requestColumns + " FROM food_requests WHERE status = $1 ORDER BY urgency_score DESC, created_at ASC"
	args := []interface{}{status}
	if limit > 0 {
		query += " LIMIT $2"
		args = append(args, limit)
	}
	return r.list(ctx, query, args...)
}

// ListAwaitingVolunteer returns accepted requests whose assignment was deferred, oldest
// acceptance first.
func (r *RequestRepo) ListAwaitingVolunteer(ctx context.Context, limit int) ([]*repository.FoodRequest, error) {
	return r.list(ctx, "SELECT"+requestColumns+`
        FROM food_requests
        WHERE status = $1 AND volunteer_id = ''
        ORDER BY accepted_at ASC
        LIMIT $2`, string(lifecycle.StatusAcceptedByDonor), limit)
}

func (r *RequestRepo) ListAwaitingCoVolunteer(ctx context.Context, limit int) ([]*repository.FoodRequest, error) {
	return r.list(ctx, "SELECT"+requestColumns+`
        FROM food_requests
        WHERE status IN ($1, $2) AND extra_volunteer_reason <> '' AND co_volunteer_id = ''
        ORDER BY extra_volunteer_requested_at ASC
        LIMIT $3`, string(lifecycle.StatusPickedUp), string(lifecycle.StatusInTransit), limit)
}

// ListActive feeds the request cache.
func (r *RequestRepo) ListActive(ctx context.Context) ([]lifecycle.FoodRequest, error) {
	rows, err := r.list(ctx, "SELECT"+requestColumns+" FROM food_requests WHERE status <> $1", string(lifecycle.StatusCompleted))
	if err != nil {
		return nil, err
	}
	out := make([]lifecycle.FoodRequest, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.ToDomain())
	}
	return out, nil
}
