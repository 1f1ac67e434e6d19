package lifecycle

import "strings"

type VerificationResult struct {
	User  User  `json:"user"`
	Event Event `json:"event"`
}

// Verify moves an ngo or volunteer account out of pending. Both outcomes are final.
func (e *Engine) Verify(target User, actor Actor, decision VerificationStatus, notes string) (VerificationResult, error) {
	if !actor.Role.Can(ActionVerifyAccount) {
		return VerificationResult{}, reject(ErrInvalidTransition, "%s may not verify accounts", actor.Role)
	}
	if target.ID == "" {
		return VerificationResult{}, reject(ErrMalformedSnapshot, "missing user id")
	}
	if !target.Role.RequiresVerification() {
		return VerificationResult{}, reject(ErrInvalidTransition, "%s accounts are not verified", target.Role)
	}
	if decision != VerificationVerified && decision != VerificationRejected {
		return VerificationResult{}, reject(ErrInvalidInput, "decision must be %s or %s", VerificationVerified, VerificationRejected)
	}
	if target.Verification != VerificationPending {
		return VerificationResult{}, reject(ErrInvalidTransition, "user %s is already %s", target.ID, target.Verification)
	}

	now := e.now()
	next := target
	next.Verification = decision
	next.VerificationNotes = strings.TrimSpace(notes)
	next.VerifiedBy = actor.ID
	next.VerifiedAt = &now

	return VerificationResult{
		User: next,
		Event: Event{
			Type:      EventVerificationUpdated,
			UserID:    target.ID,
			NewStatus: string(decision),
			Timestamp: now,
			Recipients: Recipients{
				UserIDs: []string{target.ID},
				Roles:   []Role{RoleAdmin},
			},
		},
	}, nil
}
