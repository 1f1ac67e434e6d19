// Package lifecycle holds the donation request state machine. Every operation takes a
// snapshot and returns a new one plus the notification to emit; nothing here touches
// storage, so persistence and mutual exclusion are the caller's job.
package lifecycle

import (
	"strings"
	"time"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/urgency"
)

const maxFeedbackLength = 1000

type edge struct {
	from Status
	to   Status
}

// transitions is the single source of truth for legal request edges.
var transitions = map[Action]edge{
	ActionAccept:                {from: StatusPending, to: StatusAcceptedByDonor},
	ActionAssignVolunteer:       {from: StatusAcceptedByDonor, to: StatusAssignedToVolunteer},
	ActionPickUp:                {from: StatusAssignedToVolunteer, to: StatusPickedUp},
	ActionStartTransit:          {from: StatusPickedUp, to: StatusInTransit},
	ActionDeliver:               {from: StatusInTransit, to: StatusDelivered},
	ActionConfirmReceipt:        {from: StatusDelivered, to: StatusCompleted},
	ActionRequestExtraVolunteer: {from: StatusPickedUp, to: StatusPickedUp},
}

// Result is the outcome of an accepted transition.
type Result struct {
	Request FoodRequest `json:"request"`
	Event   Event       `json:"event"`
}

type Engine struct {
	location *time.Location
	timeNow  func() time.Time
}

// NewEngine returns an engine that interprets required dates and times in location.
func NewEngine(location *time.Location) *Engine {
	if location == nil {
		location = time.UTC
	}
	return &Engine{location: location, timeNow: time.Now}
}

// WithClock returns a copy of the engine reading the time from now.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	cp := *e
	cp.timeNow = now
	return &cp
}

func (e *Engine) now() time.Time {
	return e.timeNow().UTC()
}

// Urgency recomputes the request's score against the current time.
func (e *Engine) Urgency(req FoodRequest) float64 {
	deadline, err := urgency.Deadline(req.RequiredDate, req.RequiredTime, e.location)
	if err != nil {
		return req.UrgencyScore
	}
	return urgency.Score(deadline, req.PeopleCount, e.now())
}

func (e *Engine) Create(actor Actor, in CreateInput, requestID string) (Result, error) {
	if !actor.Role.Can(ActionCreateRequest) {
		return Result{}, reject(ErrInvalidTransition, "%s may not create requests", actor.Role)
	}
	if !actor.Verified() {
		return Result{}, reject(ErrVerificationRequired, "ngo %s is not verified", actor.ID)
	}
	if requestID == "" {
		return Result{}, reject(ErrInvalidInput, "missing request id")
	}

	req := FoodRequest{
		ID:                  requestID,
		NGOID:               actor.ID,
		FoodType:            strings.TrimSpace(in.FoodType),
		FoodCategory:        strings.TrimSpace(in.FoodCategory),
		Quantity:            in.Quantity,
		QuantityUnit:        strings.TrimSpace(in.QuantityUnit),
		PeopleCount:         in.PeopleCount,
		RequiredTime:        strings.TrimSpace(in.RequiredTime),
		PickupLocation:      strings.TrimSpace(in.PickupLocation),
		SpecialInstructions: strings.TrimSpace(in.SpecialInstructions),
		Status:              StatusPending,
		Version:             1,
	}

	switch {
	case req.FoodType == "":
		return Result{}, reject(ErrInvalidInput, "food_type is required")
	case req.FoodCategory == "":
		return Result{}, reject(ErrInvalidInput, "food_category is required")
	case req.Quantity <= 0:
		return Result{}, reject(ErrInvalidInput, "quantity must be positive")
	case req.QuantityUnit == "":
		return Result{}, reject(ErrInvalidInput, "quantity_unit is required")
	case req.PeopleCount <= 0:
		return Result{}, reject(ErrInvalidInput, "people_count must be positive")
	case req.PickupLocation == "":
		return Result{}, reject(ErrInvalidInput, "pickup_location is required")
	}

	date, err := time.Parse(urgency.DateLayout, strings.TrimSpace(in.RequiredDate))
	if err != nil {
		return Result{}, reject(ErrInvalidInput, "required_date must be YYYY-MM-DD")
	}
	req.RequiredDate = date

	deadline, err := urgency.Deadline(date, req.RequiredTime, e.location)
	if err != nil {
		return Result{}, reject(ErrInvalidInput, "%v", err)
	}

	point, err := geo.PointFrom(in.PickupLatitude, in.PickupLongitude)
	if err != nil {
		return Result{}, reject(ErrInvalidInput, "%v", err)
	}
	req.PickupPoint = point

	now := e.now()
	req.UrgencyScore = urgency.Score(deadline, req.PeopleCount, now)
	req.CreatedAt = now
	req.UpdatedAt = now

	return Result{Request: req, Event: requestEvent(EventNewRequest, req, now, RoleDonor)}, nil
}

func (e *Engine) Accept(req FoodRequest, actor Actor, in AcceptInput) (Result, error) {
	if err := e.guard(ActionAccept, req, actor); err != nil {
		return Result{}, err
	}

	availability := strings.TrimSpace(in.AvailabilityTime)
	condition := strings.TrimSpace(in.FoodCondition)
	if availability == "" || condition == "" {
		return Result{}, reject(ErrInvalidInput, "availability_time and food_condition are required")
	}

	now := e.now()
	next := req
	next.Status = StatusAcceptedByDonor
	next.DonorID = actor.ID
	next.AvailabilityTime = availability
	next.FoodCondition = condition
	next.AcceptedAt = &now
	next.UpdatedAt = now

	return e.result(next, now), nil
}

// AssignVolunteer is the system half of acceptance: it binds the chosen candidate.
func (e *Engine) AssignVolunteer(req FoodRequest, candidate User) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if req.VolunteerID != "" {
		return Result{}, reject(ErrAlreadyAssigned, "request %s already has volunteer %s", req.ID, req.VolunteerID)
	}
	if req.Status != StatusAcceptedByDonor {
		return Result{}, reject(ErrInvalidTransition, "request %s is %s, not %s", req.ID, req.Status, StatusAcceptedByDonor)
	}
	if err := checkCandidate(candidate); err != nil {
		return Result{}, err
	}

	now := e.now()
	next := req
	next.Status = StatusAssignedToVolunteer
	next.VolunteerID = candidate.ID
	next.AssignedAt = &now
	next.UpdatedAt = now

	return e.result(next, now), nil
}

func (e *Engine) PickUp(req FoodRequest, actor Actor) (Result, error) {
	if err := e.guard(ActionPickUp, req, actor); err != nil {
		return Result{}, err
	}

	now := e.now()
	next := req
	next.Status = StatusPickedUp
	next.PickedUpAt = &now
	next.UpdatedAt = now

	return e.result(next, now), nil
}

func (e *Engine) StartTransit(req FoodRequest, actor Actor) (Result, error) {
	if err := e.guard(ActionStartTransit, req, actor); err != nil {
		return Result{}, err
	}

	now := e.now()
	next := req
	next.Status = StatusInTransit
	next.InTransitAt = &now
	next.UpdatedAt = now

	return e.result(next, now), nil
}

func (e *Engine) Deliver(req FoodRequest, actor Actor, in DeliverInput) (Result, error) {
	if err := e.guard(ActionDeliver, req, actor); err != nil {
		return Result{}, err
	}

	now := e.now()
	next := req
	next.Status = StatusDelivered
	next.DeliveredAt = &now
	next.UpdatedAt = now
	if url := strings.TrimSpace(in.PhotoURL); url != "" {
		next.DeliveryPhotoURL = url
	}

	return e.result(next, now), nil
}

func (e *Engine) ConfirmReceipt(req FoodRequest, actor Actor, in ConfirmInput) (Result, error) {
	if err := e.guard(ActionConfirmReceipt, req, actor); err != nil {
		return Result{}, err
	}
	if in.Rating < 0 || in.Rating > 5 {
		return Result{}, reject(ErrInvalidInput, "rating must be between 1 and 5")
	}
	feedback := strings.TrimSpace(in.Feedback)
	if len(feedback) > maxFeedbackLength {
		return Result{}, reject(ErrInvalidInput, "feedback is longer than %d characters", maxFeedbackLength)
	}

	now := e.now()
	next := req
	next.Status = StatusCompleted
	next.CompletedAt = &now
	next.UpdatedAt = now
	next.Rating = in.Rating
	next.Feedback = feedback

	return e.result(next, now), nil
}

// RequestExtraVolunteer records why a second volunteer is needed. Status stays picked_up;
// the caller follows up with AssignCoVolunteer.
func (e *Engine) RequestExtraVolunteer(req FoodRequest, actor Actor, reason string) (Result, error) {
	if err := e.guard(ActionRequestExtraVolunteer, req, actor); err != nil {
		return Result{}, err
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return Result{}, reject(ErrInvalidInput, "extra_volunteer_reason is required")
	}

	now := e.now()
	next := req
	next.ExtraVolunteerReason = reason
	next.ExtraVolunteerRequestedAt = &now
	next.UpdatedAt = now

	return e.result(next, now), nil
}

func (e *Engine) AssignCoVolunteer(req FoodRequest, candidate User) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}
	if req.Status != StatusPickedUp && req.Status != StatusInTransit {
		return Result{}, reject(ErrInvalidTransition, "request %s is %s, co-volunteers join between pickup and delivery", req.ID, req.Status)
	}
	if req.ExtraVolunteerReason == "" {
		return Result{}, reject(ErrInvalidTransition, "request %s has no extra volunteer request", req.ID)
	}
	if req.CoVolunteerID != "" {
		return Result{}, reject(ErrAlreadyAssigned, "request %s already has co-volunteer %s", req.ID, req.CoVolunteerID)
	}
	if candidate.ID == req.VolunteerID {
		return Result{}, reject(ErrInvalidTransition, "primary volunteer %s cannot be the co-volunteer", candidate.ID)
	}
	if err := checkCandidate(candidate); err != nil {
		return Result{}, err
	}

	now := e.now()
	next := req
	next.CoVolunteerID = candidate.ID
	next.CoVolunteerAssignedAt = &now
	next.UpdatedAt = now

	return e.result(next, now), nil
}

// PermittedActions lists the actions actor could perform on req right now.
func (e *Engine) PermittedActions(req FoodRequest, actor Actor) []Action {
	var permitted []Action
	for _, action := range actor.Role.Capabilities() {
		if _, ok := transitions[action]; !ok {
			continue
		}
		if e.guard(action, req, actor) == nil {
			permitted = append(permitted, action)
		}
	}
	return permitted
}

func (e *Engine) result(next FoodRequest, at time.Time) Result {
	return Result{Request: next, Event: requestEvent(EventRequestStatusChanged, next, at)}
}

// guard checks everything about an actor-driven transition except its payload.
func (e *Engine) guard(action Action, req FoodRequest, actor Actor) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if !actor.Role.Can(action) {
		return reject(ErrInvalidTransition, "%s may not %s", actor.Role, action)
	}
	step, ok := transitions[action]
	if !ok {
		return reject(ErrInvalidTransition, "%s is not a request transition", action)
	}

	switch action {
	case ActionAccept:
		switch {
		case req.Status == step.from:
		case req.Status.Terminal():
			return reject(ErrInvalidTransition, "request %s is %s, not %s", req.ID, req.Status, step.from)
		default:
			return reject(ErrAlreadyAccepted, "request %s is already %s by donor %s", req.ID, req.Status, req.DonorID)
		}
	case ActionConfirmReceipt:
		if actor.ID != req.NGOID {
			return reject(ErrInvalidTransition, "request %s belongs to another ngo", req.ID)
		}
		if req.Status != step.from {
			return reject(ErrInvalidTransition, "request %s is %s, not %s", req.ID, req.Status, step.from)
		}
	default:
		if req.Status != step.from {
			return reject(ErrInvalidTransition, "request %s is %s, not %s", req.ID, req.Status, step.from)
		}
		if actor.ID != req.VolunteerID {
			return reject(ErrInvalidTransition, "volunteer %s is not assigned to request %s", actor.ID, req.ID)
		}
		if action == ActionRequestExtraVolunteer {
			if req.CoVolunteerID != "" {
				return reject(ErrInvalidTransition, "request %s already has a co-volunteer", req.ID)
			}
			if req.ExtraVolunteerReason != "" {
				return reject(ErrInvalidTransition, "request %s already asked for an extra volunteer", req.ID)
			}
		}
	}

	if !actor.Verified() {
		return reject(ErrVerificationRequired, "%s %s is not verified", actor.Role, actor.ID)
	}
	return nil
}

func checkCandidate(candidate User) error {
	if candidate.ID == "" || candidate.Role != RoleVolunteer {
		return reject(ErrInvalidTransition, "candidate %q is not a volunteer", candidate.ID)
	}
	if !candidate.Verified() {
		return reject(ErrVerificationRequired, "volunteer %s is not verified", candidate.ID)
	}
	if !candidate.HasCapacity() {
		return reject(ErrNoVolunteerAvailable, "volunteer %s has no free capacity", candidate.ID)
	}
	return nil
}
