package lifecycle

import (
	"fmt"
	"strings"
)

// Role is the closed set of account kinds. The zero value is not a valid role.
type Role uint8

const (
	RoleNGO Role = iota + 1
	RoleDonor
	RoleVolunteer
	RoleAdmin
)

var roleNames = map[Role]string{
	RoleNGO:       "ngo",
	RoleDonor:     "donor",
	RoleVolunteer: "volunteer",
	RoleAdmin:     "admin",
}

func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for role, name := range roleNames {
		if name == s {
			return role, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, s)
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", uint8(r))
}

func (r Role) Valid() bool {
	_, ok := roleNames[r]
	return ok
}

// RequiresVerification reports whether accounts of this role must be approved by an
// admin before they can take part in the lifecycle.
func (r Role) RequiresVerification() bool {
	return r == RoleNGO || r == RoleVolunteer
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", r)
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	parsed, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Action names one lifecycle operation.
type Action string

const (
	ActionCreateRequest         Action = "create_request"
	ActionAccept                Action = "accept"
	ActionAssignVolunteer       Action = "assign_volunteer"
	ActionPickUp                Action = "pick_up"
	ActionStartTransit          Action = "start_transit"
	ActionDeliver               Action = "deliver"
	ActionConfirmReceipt        Action = "confirm_receipt"
	ActionRequestExtraVolunteer Action = "request_extra_volunteer"
	ActionAssignCoVolunteer     Action = "assign_co_volunteer"
	ActionVerifyAccount         Action = "verify_account"
)

// capabilities maps each role to the actions a member of that role may ever attempt.
// Assignment actions belong to no role: only the system performs them.
var capabilities = map[Role][]Action{
	RoleNGO:       {ActionCreateRequest, ActionConfirmReceipt},
	RoleDonor:     {ActionAccept},
	RoleVolunteer: {ActionPickUp, ActionStartTransit, ActionDeliver, ActionRequestExtraVolunteer},
	RoleAdmin:     {ActionVerifyAccount},
}

func (r Role) Can(a Action) bool {
	for _, permitted := range capabilities[r] {
		if permitted == a {
			return true
		}
	}
	return false
}

// Capabilities returns a copy of the actions the role may attempt.
func (r Role) Capabilities() []Action {
	return append([]Action(nil), capabilities[r]...)
}
