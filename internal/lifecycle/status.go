package lifecycle

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusPending             Status = "pending"
	StatusAcceptedByDonor     Status = "accepted_by_donor"
	StatusAssignedToVolunteer Status = "assigned_to_volunteer"
	StatusPickedUp            Status = "picked_up"
	StatusInTransit           Status = "in_transit"
	StatusDelivered           Status = "delivered"
	StatusCompleted           Status = "completed"
)

// statusOrder lists request statuses in lifecycle order.
var statusOrder = []Status{
	StatusPending,
	StatusAcceptedByDonor,
	StatusAssignedToVolunteer,
	StatusPickedUp,
	StatusInTransit,
	StatusDelivered,
	StatusCompleted,
}

// Rank is the position of s in the lifecycle, or -1 for an unknown status.
func (s Status) Rank() int {
	for i, candidate := range statusOrder {
		if candidate == s {
			return i
		}
	}
	return -1
}

func (s Status) Valid() bool { return s.Rank() >= 0 }

func (s Status) Terminal() bool { return s == StatusCompleted }

// AtLeast reports whether s has reached other in the lifecycle.
func (s Status) AtLeast(other Status) bool {
	return s.Valid() && s.Rank() >= other.Rank()
}

// Active statuses are the ones where a request still needs someone to act.
func (s Status) Active() bool {
	return s.Valid() && !s.Terminal()
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", ErrInvalidInput, s)
	}
	return st, nil
}

func Statuses() []Status {
	return append([]Status(nil), statusOrder...)
}

// VerificationStatus is the account approval sub-state. Empty means the role needs none.
type VerificationStatus string

const (
	VerificationNone     VerificationStatus = ""
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

func (v VerificationStatus) Rank() int {
	switch v {
	case VerificationPending:
		return 0
	case VerificationVerified, VerificationRejected:
		return 1
	default:
		return -1
	}
}

func (v VerificationStatus) Terminal() bool {
	return v == VerificationVerified || v == VerificationRejected
}

type TransportMode string

const (
	TransportVan        TransportMode = "van"
	TransportCar        TransportMode = "car"
	TransportTwoWheeler TransportMode = "two_wheeler"
	TransportBicycle    TransportMode = "bicycle"
	TransportOnFoot     TransportMode = "on_foot"
)

func (m TransportMode) Valid() bool {
	switch m {
	case TransportVan, TransportCar, TransportTwoWheeler, TransportBicycle, TransportOnFoot:
		return true
	}
	return false
}
