package lifecycle

import "time"

type EventType string

const (
	EventRequestStatusChanged EventType = "request_status_changed"
	EventNewRequest           EventType = "new_request"
	EventVerificationUpdated  EventType = "verification_updated"
)

func EventTypes() []EventType {
	return []EventType{EventRequestStatusChanged, EventNewRequest, EventVerificationUpdated}
}

// Recipients addresses an event to individual users and to every member of some roles.
type Recipients struct {
	UserIDs []string `json:"user_ids,omitempty"`
	Roles   []Role   `json:"roles,omitempty"`
}

func (r Recipients) Includes(userID string, role Role) bool {
	for _, id := range r.UserIDs {
		if id == userID {
			return true
		}
	}
	for _, candidate := range r.Roles {
		if candidate == role {
			return true
		}
	}
	return false
}

// Event is emitted once per accepted transition. Exactly one of RequestID and UserID is set.
type Event struct {
	Type       EventType  `json:"type"`
	RequestID  string     `json:"request_id,omitempty"`
	UserID     string     `json:"user_id,omitempty"`
	NewStatus  string     `json:"new_status"`
	Timestamp  time.Time  `json:"timestamp"`
	Recipients Recipients `json:"recipients"`
}

// Subject is the id the event's NewStatus refers to.
func (e Event) Subject() string {
	if e.RequestID != "" {
		return e.RequestID
	}
	return e.UserID
}

// Rank orders NewStatus within its sub-machine so receivers can skip stale events.
func (e Event) Rank() int {
	if e.Type == EventVerificationUpdated {
		return VerificationStatus(e.NewStatus).Rank()
	}
	return Status(e.NewStatus).Rank()
}

func requestEvent(kind EventType, req FoodRequest, at time.Time, roles ...Role) Event {
	return Event{
		Type:      kind,
		RequestID: req.ID,
		NewStatus: string(req.Status),
		Timestamp: at,
		Recipients: Recipients{
			UserIDs: req.Parties(),
			Roles:   roles,
		},
	}
}
