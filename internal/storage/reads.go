package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Devadharshani13/SmartPlate/internal/assignment"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
)

// GetRequest returns a request to its parties and admins. Donors may also see pending
// requests, which is what the donor feed shows. Anyone else gets ErrNotFound.
func (s *Storage) GetRequest(ctx context.Context, actor lifecycle.Actor, requestID string) (lifecycle.FoodRequest, error) {
	req, err := s.load(ctx, requestID)
	if err != nil {
		return lifecycle.FoodRequest{}, err
	}
	if !canView(actor, req) {
		return lifecycle.FoodRequest{}, fmt.Errorf("%w: request %s", ErrNotFound, requestID)
	}
	return req, nil
}

// RequestActions returns the request with what actor can do next. The assigned volunteer
// of a picked up request also gets extra volunteer advice, until one was asked for.
func (s *Storage) RequestActions(ctx context.Context, actor lifecycle.Actor, requestID string) (ActionsView, error) {
	req, err := s.GetRequest(ctx, actor, requestID)
	if err != nil {
		return ActionsView{}, err
	}

	view := ActionsView{Request: req, Actions: s.engine.PermittedActions(req, actor)}
	if view.Actions == nil {
		view.Actions = []lifecycle.Action{}
	}

	if actor.Role == lifecycle.RoleVolunteer && actor.ID == req.VolunteerID &&
		req.Status == lifecycle.StatusPickedUp && req.ExtraVolunteerReason == "" {
		volunteer, err := s.user(ctx, actor.ID)
		if err != nil {
			return ActionsView{}, err
		}
		from := volunteer.Point
		if s.directory != nil {
			from = s.directory.LiveLocation(ctx, volunteer)
		}
		advice := assignment.SuggestExtraVolunteer(req, volunteer, from)
		view.Advice = &advice
	}
	return view, nil
}

func (s *Storage) NGORequests(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error) {
	if actor.Role != lifecycle.RoleNGO {
		return nil, fmt.Errorf("%w: ngo only", ErrForbidden)
	}
	return s.list(s.requests.ListByNGO(ctx, actor.ID))
}

// DonorFeed lists pending requests by urgency, recomputed against the current time,
// most urgent first and older first among equals.
func (s *Storage) DonorFeed(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error) {
	if actor.Role != lifecycle.RoleDonor {
		return nil, fmt.Errorf("%w: donors only", ErrForbidden)
	}
	requests, err := s.list(s.requests.ListByStatus(ctx, string(lifecycle.StatusPending), 0))
	if err != nil {
		return nil, err
	}
	for i := range requests {
		requests[i].UrgencyScore = s.engine.Urgency(requests[i])
	}
	sort.SliceStable(requests, func(i, j int) bool {
		if requests[i].UrgencyScore != requests[j].UrgencyScore {
			return requests[i].UrgencyScore > requests[j].UrgencyScore
		}
		return requests[i].CreatedAt.Before(requests[j].CreatedAt)
	})
	return requests, nil
}

func (s *Storage) DonorDonations(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error) {
	if actor.Role != lifecycle.RoleDonor {
		return nil, fmt.Errorf("%w: donors only", ErrForbidden)
	}
	return s.list(s.requests.ListByDonor(ctx, actor.ID))
}

// VolunteerTasks lists requests where the volunteer is primary or co-volunteer.
func (s *Storage) VolunteerTasks(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.FoodRequest, error) {
	if actor.Role != lifecycle.RoleVolunteer {
		return nil, fmt.Errorf("%w: volunteers only", ErrForbidden)
	}
	return s.list(s.requests.ListByVolunteer(ctx, actor.ID))
}

func (s *Storage) AuditLogs(ctx context.Context, actor lifecycle.Actor, limit int) ([]AuditLog, error) {
	if actor.Role != lifecycle.RoleAdmin {
		return nil, fmt.Errorf("%w: admins only", ErrForbidden)
	}
	entries, err := s.audits.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	logs := make([]AuditLog, 0, len(entries))
	for _, e := range entries {
		details := e.Details
		if len(details) == 0 {
			details = json.RawMessage(`{}`)
		}
		logs = append(logs, AuditLog{
			LogID:     e.ID.String(),
			ActorID:   e.UserID,
			RequestID: e.RequestID,
			Action:    e.Action,
			Details:   details,
			Timestamp: e.CreatedAt,
		})
	}
	return logs, nil
}

// load reads through the cache of active requests.
func (s *Storage) load(ctx context.Context, requestID string) (lifecycle.FoodRequest, error) {
	if s.cache != nil {
		if req, ok := s.cache.Get(requestID); ok {
			return req, nil
		}
	}
	row, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return lifecycle.FoodRequest{}, fmt.Errorf("%w: request %s", ErrNotFound, requestID)
		}
		return lifecycle.FoodRequest{}, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	req := row.ToDomain()
	if s.cache != nil {
		s.cache.Set(req)
	}
	return req, nil
}

func (s *Storage) list(rows []*repository.FoodRequest, err error) ([]lifecycle.FoodRequest, error) {
	if err != nil {
		return nil, err
	}
	requests := make([]lifecycle.FoodRequest, 0, len(rows))
	for _, row := range rows {
		requests = append(requests, row.ToDomain())
	}
	return requests, nil
}

func canView(actor lifecycle.Actor, req lifecycle.FoodRequest) bool {
	switch {
	case actor.Role == lifecycle.RoleAdmin:
		return true
	case req.Involves(actor.ID):
		return true
	case actor.Role == lifecycle.RoleDonor && req.Status == lifecycle.StatusPending:
		return true
	}
	return false
}
