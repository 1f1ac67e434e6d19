package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Devadharshani13/SmartPlate/internal/assignment"
	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrConcurrentUpdate means every retry lost the compare-and-set. The client
	// should refetch.
	ErrConcurrentUpdate  = errors.New("concurrent update")
	ErrAlreadyRegistered = errors.New("profile already registered")
	ErrForbidden         = errors.New("forbidden")
)

// Audit log actions.
const (
	AuditRequestCreated          = "REQUEST_CREATED"
	AuditDonationAccepted        = "DONATION_ACCEPTED"
	AuditVolunteerAssigned       = "VOLUNTEER_ASSIGNED"
	AuditStatusUpdated           = "STATUS_UPDATED"
	AuditReceiptConfirmed        = "RECEIPT_CONFIRMED"
	AuditExtraVolunteerRequested = "EXTRA_VOLUNTEER_REQUESTED"
	AuditCoVolunteerAssigned     = "CO_VOLUNTEER_ASSIGNED"
	AuditUserVerified            = "USER_VERIFIED"
	AuditUserRejected            = "USER_REJECTED"
	AuditProfileCreated          = "PROFILE_CREATED"
)

const phoneDigits = 10

type ProfileInput struct {
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	Location      string   `json:"location"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	Organization  string   `json:"organization,omitempty"`
	DonorType     string   `json:"donor_type,omitempty"`
	TransportMode string   `json:"transport_mode,omitempty"`
}

// user validates the input and builds the account it describes.
func (in ProfileInput) user(id string, role lifecycle.Role, now time.Time) (lifecycle.User, error) {
	if !role.Valid() {
		return lifecycle.User{}, fmt.Errorf("%w: unknown role", lifecycle.ErrInvalidInput)
	}
	u := lifecycle.User{
		ID:           id,
		Role:         role,
		Name:         strings.TrimSpace(in.Name),
		Email:        strings.TrimSpace(in.Email),
		Location:     strings.TrimSpace(in.Location),
		Organization: strings.TrimSpace(in.Organization),
		DonorType:    strings.TrimSpace(in.DonorType),
		RegisteredAt: now,
	}
	if u.Name == "" || u.Email == "" {
		return lifecycle.User{}, fmt.Errorf("%w: name and email are required", lifecycle.ErrInvalidInput)
	}
	if !strings.Contains(u.Email, "@") {
		return lifecycle.User{}, fmt.Errorf("%w: malformed email", lifecycle.ErrInvalidInput)
	}

	phone, err := NormalizePhone(in.Phone)
	if err != nil {
		return lifecycle.User{}, err
	}
	u.Phone = phone

	point, err := geo.PointFrom(in.Latitude, in.Longitude)
	if err != nil {
		return lifecycle.User{}, fmt.Errorf("%w: %v", lifecycle.ErrInvalidInput, err)
	}
	u.Point = point

	switch role {
	case lifecycle.RoleNGO:
		if u.Organization == "" {
			return lifecycle.User{}, fmt.Errorf("%w: organization is required", lifecycle.ErrInvalidInput)
		}
	case lifecycle.RoleVolunteer:
		mode := lifecycle.TransportMode(strings.TrimSpace(in.TransportMode))
		if !mode.Valid() {
			return lifecycle.User{}, fmt.Errorf("%w: unknown transport_mode %q", lifecycle.ErrInvalidInput, in.TransportMode)
		}
		u.TransportMode = mode
		u.Available = true
		u.TaskCapacity = lifecycle.DefaultTaskCapacity
	}
	if role.RequiresVerification() {
		u.Verification = lifecycle.VerificationPending
	}
	return u, nil
}

// NormalizePhone strips separators and requires exactly ten digits. An empty phone is allowed.
func NormalizePhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", nil
	}
	var b strings.Builder
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '(', r == ')', r == '+', r == '.':
		default:
			return "", fmt.Errorf("%w: phone contains %q", lifecycle.ErrInvalidInput, r)
		}
	}
	digits := b.String()
	if len(digits) != phoneDigits {
		return "", fmt.Errorf("%w: phone must have %d digits", lifecycle.ErrInvalidInput, phoneDigits)
	}
	return digits, nil
}

type AvailabilityInput struct {
	Available    bool     `json:"available"`
	TaskCapacity int      `json:"task_capacity,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// Outcome is the committed snapshot of a transition. AssignmentDeferred is set when the
// donor's acceptance went through but no volunteer could be reserved yet.
type Outcome struct {
	Request            lifecycle.FoodRequest `json:"request"`
	AssignmentDeferred bool                  `json:"assignment_deferred,omitempty"`
}

type ActionsView struct {
	Request lifecycle.FoodRequest `json:"request"`
	Actions []lifecycle.Action    `json:"actions"`
	Advice  *assignment.Advice    `json:"extra_volunteer_advice,omitempty"`
}

type AuditLog struct {
	LogID     string          `json:"log_id"`
	ActorID   string          `json:"actor_id"`
	RequestID string          `json:"request_id,omitempty"`
	Action    string          `json:"action"`
	Details   json.RawMessage `json:"details"`
	Timestamp time.Time       `json:"timestamp"`
}

// RetryStats summarizes one pass of the assignment retrier.
type RetryStats struct {
	Assigned   int `json:"assigned"`
	Deferred   int `json:"deferred"`
	CoAssigned int `json:"co_assigned"`
	Failed     int `json:"failed"`
}
