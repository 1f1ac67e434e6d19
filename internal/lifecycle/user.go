package lifecycle

import (
	"time"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
)

const DefaultTaskCapacity = 1

type User struct {
	ID            string        `json:"user_id"`
	Role          Role          `json:"role"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone,omitempty"`
	Location      string        `json:"location"`
	Point         *geo.Point    `json:"point,omitempty"`
	Organization  string        `json:"organization,omitempty"`
	DonorType     string        `json:"donor_type,omitempty"`
	TransportMode TransportMode `json:"transport_mode,omitempty"`

	Verification      VerificationStatus `json:"verification_status,omitempty"`
	VerificationNotes string             `json:"verification_notes,omitempty"`
	VerifiedBy        string             `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time         `json:"verified_at,omitempty"`

	Available    bool `json:"available"`
	TaskCapacity int  `json:"task_capacity"`
	ActiveTasks  int  `json:"active_tasks"`

	TotalRequests     int `json:"total_requests"`
	CompletedRequests int `json:"completed_requests"`
	TotalDonations    int `json:"total_donations"`
	CompletedTasks    int `json:"completed_tasks"`

	RegisteredAt time.Time `json:"created_at"`
}

func (u User) Verified() bool {
	return !u.Role.RequiresVerification() || u.Verification == VerificationVerified
}

// HasCapacity reports whether a volunteer can take one more task.
func (u User) HasCapacity() bool {
	capacity := u.TaskCapacity
	if capacity <= 0 {
		capacity = DefaultTaskCapacity
	}
	return u.Available && u.ActiveTasks < capacity
}

func (u User) Actor() Actor {
	return Actor{ID: u.ID, Role: u.Role, Verification: u.Verification}
}

// Actor is the identity a lifecycle operation is attempted on behalf of.
type Actor struct {
	ID           string             `json:"user_id"`
	Role         Role               `json:"role"`
	Verification VerificationStatus `json:"verification_status,omitempty"`
}

func (a Actor) Verified() bool {
	return !a.Role.RequiresVerification() || a.Verification == VerificationVerified
}
