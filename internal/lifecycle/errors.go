package lifecycle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidTransition: the edge is not in the table or the actor does not match.
	// Never retried automatically.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrAlreadyAccepted: another donor won the race for this request.
	ErrAlreadyAccepted = errors.New("request already accepted")
	// ErrAlreadyAssigned: a volunteer (or co-volunteer) is already in place.
	ErrAlreadyAssigned = errors.New("request already assigned")
	// ErrNoVolunteerAvailable is a deferred outcome, the request keeps its state and is retried later.
	ErrNoVolunteerAvailable = errors.New("no volunteer available")
	// ErrVerificationRequired: the actor's account is not verified yet.
	ErrVerificationRequired = errors.New("account verification required")
	ErrInvalidInput         = errors.New("invalid input")
	// ErrMalformedSnapshot marks a caller bug: the snapshot breaks the request invariants.
	ErrMalformedSnapshot = errors.New("malformed request snapshot")
)

func reject(kind error, format string, args ...any) error {
	return fmt.Errorf("%w: %s", kind, fmt.Sprintf(format, args...))
}
