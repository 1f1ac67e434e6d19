package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

var (
	ErrObjectNotFound = errors.New("not found")
	ErrAlreadyExists  = errors.New("already exists")
)

// FoodRequest is one row of food_requests. Unset party ids are stored as ''.
type FoodRequest struct {
	ID                  string    `db:"request_id"`
	NGOID               string    `db:"ngo_id"`
	FoodType            string    `db:"food_type"`
	FoodCategory        string    `db:"food_category"`
	Quantity            int       `db:"quantity"`
	QuantityUnit        string    `db:"quantity_unit"`
	PeopleCount         int       `db:"people_count"`
	RequiredDate        time.Time `db:"required_date"`
	RequiredTime        string    `db:"required_time"`
	PickupLocation      string    `db:"pickup_location"`
	PickupLatitude      *float64  `db:"pickup_latitude"`
	PickupLongitude     *float64  `db:"pickup_longitude"`
	SpecialInstructions string    `db:"special_instructions"`
	UrgencyScore        float64   `db:"urgency_score"`

	Status               string `db:"status"`
	DonorID              string `db:"donor_id"`
	AvailabilityTime     string `db:"availability_time"`
	FoodCondition        string `db:"food_condition"`
	VolunteerID          string `db:"volunteer_id"`
	CoVolunteerID        string `db:"co_volunteer_id"`
	ExtraVolunteerReason string `db:"extra_volunteer_reason"`
	DeliveryPhotoURL     string `db:"delivery_photo_url"`
	Rating               int    `db:"ngo_rating"`
	Feedback             string `db:"ngo_feedback"`

	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`

	AcceptedAt                *time.Time `db:"accepted_at"`
	AssignedAt                *time.Time `db:"assigned_at"`
	PickedUpAt                *time.Time `db:"picked_up_at"`
	InTransitAt               *time.Time `db:"in_transit_at"`
	DeliveredAt               *time.Time `db:"delivered_at"`
	CompletedAt               *time.Time `db:"completed_at"`
	ExtraVolunteerRequestedAt *time.Time `db:"extra_volunteer_requested_at"`
	CoVolunteerAssignedAt     *time.Time `db:"co_volunteer_assigned_at"`
}

func NewFoodRequest(r lifecycle.FoodRequest) *FoodRequest {
	row := &FoodRequest{
		ID:                        r.ID,
		NGOID:                     r.NGOID,
		FoodType:                  r.FoodType,
		FoodCategory:              r.FoodCategory,
		Quantity:                  r.Quantity,
		QuantityUnit:              r.QuantityUnit,
		PeopleCount:               r.PeopleCount,
		RequiredDate:              r.RequiredDate,
		RequiredTime:              r.RequiredTime,
		PickupLocation:            r.PickupLocation,
		SpecialInstructions:       r.SpecialInstructions,
		UrgencyScore:              r.UrgencyScore,
		Status:                    string(r.Status),
		DonorID:                   r.DonorID,
		AvailabilityTime:          r.AvailabilityTime,
		FoodCondition:             r.FoodCondition,
		VolunteerID:               r.VolunteerID,
		CoVolunteerID:             r.CoVolunteerID,
		ExtraVolunteerReason:      r.ExtraVolunteerReason,
		DeliveryPhotoURL:          r.DeliveryPhotoURL,
		Rating:                    r.Rating,
		Feedback:                  r.Feedback,
		Version:                   r.Version,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
		AcceptedAt:                r.AcceptedAt,
		AssignedAt:                r.AssignedAt,
		PickedUpAt:                r.PickedUpAt,
		InTransitAt:               r.InTransitAt,
		DeliveredAt:               r.DeliveredAt,
		CompletedAt:               r.CompletedAt,
		ExtraVolunteerRequestedAt: r.ExtraVolunteerRequestedAt,
		CoVolunteerAssignedAt:     r.CoVolunteerAssignedAt,
	}
	if r.PickupPoint != nil {
		lat, lng := r.PickupPoint.Latitude, r.PickupPoint.Longitude
		row.PickupLatitude, row.PickupLongitude = &lat, &lng
	}
	return row
}

// ToDomain converts the row. It does not validate lifecycle invariants.
func (r *FoodRequest) ToDomain() lifecycle.FoodRequest {
	req := lifecycle.FoodRequest{
		ID:                        r.ID,
		NGOID:                     r.NGOID,
		FoodType:                  r.FoodType,
		FoodCategory:              r.FoodCategory,
		Quantity:                  r.Quantity,
		QuantityUnit:              r.QuantityUnit,
		PeopleCount:               r.PeopleCount,
		RequiredDate:              r.RequiredDate.UTC(),
		RequiredTime:              r.RequiredTime,
		PickupLocation:            r.PickupLocation,
		SpecialInstructions:       r.SpecialInstructions,
		UrgencyScore:              r.UrgencyScore,
		Status:                    lifecycle.Status(r.Status),
		DonorID:                   r.DonorID,
		AvailabilityTime:          r.AvailabilityTime,
		FoodCondition:             r.FoodCondition,
		VolunteerID:               r.VolunteerID,
		CoVolunteerID:             r.CoVolunteerID,
		ExtraVolunteerReason:      r.ExtraVolunteerReason,
		DeliveryPhotoURL:          r.DeliveryPhotoURL,
		Rating:                    r.Rating,
		Feedback:                  r.Feedback,
		Version:                   r.Version,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
		AcceptedAt:                r.AcceptedAt,
		AssignedAt:                r.AssignedAt,
		PickedUpAt:                r.PickedUpAt,
		InTransitAt:               r.InTransitAt,
		DeliveredAt:               r.DeliveredAt,
		CompletedAt:               r.CompletedAt,
		ExtraVolunteerRequestedAt: r.ExtraVolunteerRequestedAt,
		CoVolunteerAssignedAt:     r.CoVolunteerAssignedAt,
	}
	if r.PickupLatitude != nil && r.PickupLongitude != nil {
		req.PickupPoint = &geo.Point{Latitude: *r.PickupLatitude, Longitude: *r.PickupLongitude}
	}
	return req
}

type User struct {
	ID            string   `db:"user_id"`
	Role          string   `db:"role"`
	Name          string   `db:"name"`
	Email         string   `db:"email"`
	Phone         string   `db:"phone"`
	Location      string   `db:"location"`
	Latitude      *float64 `db:"latitude"`
	Longitude     *float64 `db:"longitude"`
	Organization  string   `db:"organization"`
	DonorType     string   `db:"donor_type"`
	TransportMode string   `db:"transport_mode"`

	VerificationStatus string     `db:"verification_status"`
	VerificationNotes  string     `db:"verification_notes"`
	VerifiedBy         string     `db:"verified_by"`
	VerifiedAt         *time.Time `db:"verified_at"`

	Available    bool `db:"available"`
	TaskCapacity int  `db:"task_capacity"`
	ActiveTasks  int  `db:"active_tasks"`

	TotalRequests     int `db:"total_requests"`
	CompletedRequests int `db:"completed_requests"`
	TotalDonations    int `db:"total_donations"`
	CompletedTasks    int `db:"completed_tasks"`

	CreatedAt time.Time `db:"created_at"`
}

func NewUser(u lifecycle.User) *User {
	row := &User{
		ID:                 u.ID,
		Role:               u.Role.String(),
		Name:               u.Name,
		Email:              u.Email,
		Phone:              u.Phone,
		Location:           u.Location,
		Organization:       u.Organization,
		DonorType:          u.DonorType,
		TransportMode:      string(u.TransportMode),
		VerificationStatus: string(u.Verification),
		VerificationNotes:  u.VerificationNotes,
		VerifiedBy:         u.VerifiedBy,
		VerifiedAt:         u.VerifiedAt,
		Available:          u.Available,
		TaskCapacity:       u.TaskCapacity,
		ActiveTasks:        u.ActiveTasks,
		TotalRequests:      u.TotalRequests,
		CompletedRequests:  u.CompletedRequests,
		TotalDonations:     u.TotalDonations,
		CompletedTasks:     u.CompletedTasks,
		CreatedAt:          u.RegisteredAt,
	}
	if u.Point != nil {
		lat, lng := u.Point.Latitude, u.Point.Longitude
		row.Latitude, row.Longitude = &lat, &lng
	}
	return row
}

func (u *User) ToDomain() (lifecycle.User, error) {
	role, err := lifecycle.ParseRole(u.Role)
	if err != nil {
		return lifecycle.User{}, fmt.Errorf("user %s: %w", u.ID, err)
	}
	user := lifecycle.User{
		ID:                u.ID,
		Role:              role,
		Name:              u.Name,
		Email:             u.Email,
		Phone:             u.Phone,
		Location:          u.Location,
		Organization:      u.Organization,
		DonorType:         u.DonorType,
		TransportMode:     lifecycle.TransportMode(u.TransportMode),
		Verification:      lifecycle.VerificationStatus(u.VerificationStatus),
		VerificationNotes: u.VerificationNotes,
		VerifiedBy:        u.VerifiedBy,
		VerifiedAt:        u.VerifiedAt,
		Available:         u.Available,
		TaskCapacity:      u.TaskCapacity,
		ActiveTasks:       u.ActiveTasks,
		TotalRequests:     u.TotalRequests,
		CompletedRequests: u.CompletedRequests,
		TotalDonations:    u.TotalDonations,
		CompletedTasks:    u.CompletedTasks,
		RegisteredAt:      u.CreatedAt,
	}
	if u.Latitude != nil && u.Longitude != nil {
		user.Point = &geo.Point{Latitude: *u.Latitude, Longitude: *u.Longitude}
	}
	return user, nil
}

// Counter names a per-user statistics column.
type Counter string

const (
	CounterTotalRequests     Counter = "total_requests"
	CounterCompletedRequests Counter = "completed_requests"
	CounterTotalDonations    Counter = "total_donations"
	CounterCompletedTasks    Counter = "completed_tasks"
)

func (c Counter) Valid() bool {
	switch c {
	case CounterTotalRequests, CounterCompletedRequests, CounterTotalDonations, CounterCompletedTasks:
		return true
	}
	return false
}

type AuditLogEntry struct {
	ID        uuid.UUID       `db:"log_id"`
	Action    string          `db:"action"`
	UserID    string          `db:"user_id"`
	RequestID string          `db:"request_id"`
	Details   json.RawMessage `db:"details"`
	CreatedAt time.Time       `db:"created_at"`
}
