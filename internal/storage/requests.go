package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
)

func (s *Storage) CreateRequest(ctx context.Context, actor lifecycle.Actor, in lifecycle.CreateInput) (lifecycle.FoodRequest, error) {
	res, err := s.engine.Create(actor, in, newID())
	if err != nil {
		s.rejected(lifecycle.ActionCreateRequest, err)
		return lifecycle.FoodRequest{}, err
	}

	ch := change{
		next:   res.Request,
		events: []lifecycle.Event{res.Event},
		audits: []auditRecord{{
			action:    AuditRequestCreated,
			actorID:   actor.ID,
			actorRole: actor.Role,
			requestID: res.Request.ID,
			details: map[string]interface{}{
				"food_type":     res.Request.FoodType,
				"people_count":  res.Request.PeopleCount,
				"urgency_score": res.Request.UrgencyScore,
			},
		}},
		counters: []counterBump{{userID: actor.ID, counter: repository.CounterTotalRequests}},
	}

	err = db.WithTx(ctx, s.db, func(tx db.Tx) error {
		if err := s.requests.CreateTx(ctx, tx, repository.NewFoodRequest(res.Request)); err != nil {
			return err
		}
		return s.record(ctx, tx, &ch)
	})
	if err != nil {
		s.rejected(lifecycle.ActionCreateRequest, err)
		return lifecycle.FoodRequest{}, fmt.Errorf("failed to create request: %w", err)
	}

	metrics.RequestsCreatedTotal.Inc()
	s.committed(ch)
	s.logger.Info("request created",
		zap.String("request_id", res.Request.ID),
		zap.String("ngo_id", actor.ID),
		zap.Float64("urgency_score", res.Request.UrgencyScore))
	return res.Request, nil
}

// Accept records the donor's acceptance and, in the same transaction, binds the best
// volunteer that still has a free slot. When nobody can be reserved the acceptance
// still commits and the outcome is marked deferred.
func (s *Storage) Accept(ctx context.Context, actor lifecycle.Actor, requestID string, in lifecycle.AcceptInput) (Outcome, error) {
	return s.transition(ctx, requestID, lifecycle.ActionAccept, func(ctx context.Context, tx db.Tx, cur lifecycle.FoodRequest) (change, error) {
		accepted, err := s.engine.Accept(cur, actor, in)
		if err != nil {
			return change{}, err
		}
		ch := change{
			next:   accepted.Request,
			events: []lifecycle.Event{accepted.Event},
			audits: []auditRecord{{
				action:    AuditDonationAccepted,
				actorID:   actor.ID,
				actorRole: actor.Role,
				requestID: cur.ID,
				details: map[string]interface{}{
					"availability_time": accepted.Request.AvailabilityTime,
					"food_condition":    accepted.Request.FoodCondition,
				},
			}},
			counters: []counterBump{{userID: actor.ID, counter: repository.CounterTotalDonations}},
		}

		assigned, ok, err := s.assignVolunteer(ctx, tx, accepted.Request)
		if err != nil {
			return change{}, err
		}
		if !ok {
			ch.deferred = true
			return ch, nil
		}
		ch.next = assigned.Request
		ch.events = append(ch.events, assigned.Event)
		ch.audits = append(ch.audits, assignedAudit(AuditVolunteerAssigned, assigned.Request.ID, assigned.Request.VolunteerID))
		return ch, nil
	})
}

// AssignPending retries the volunteer assignment of an accepted request. It reports a
// deferred outcome, without writing, when still nobody is free.
func (s *Storage) AssignPending(ctx context.Context, requestID string) (Outcome, error) {
	var snapshot lifecycle.FoodRequest
	out, err := s.transition(ctx, requestID, lifecycle.ActionAssignVolunteer, func(ctx context.Context, tx db.Tx, cur lifecycle.FoodRequest) (change, error) {
		snapshot = cur
		if !cur.NeedsVolunteer() {
			return change{}, fmt.Errorf("%w: request %s does not need a volunteer", lifecycle.ErrAlreadyAssigned, cur.ID)
		}
		assigned, ok, err := s.assignVolunteer(ctx, tx, cur)
		if err != nil {
			return change{}, err
		}
		if !ok {
			return change{}, fmt.Errorf("%w: request %s", lifecycle.ErrNoVolunteerAvailable, cur.ID)
		}
		return change{
			next:   assigned.Request,
			events: []lifecycle.Event{assigned.Event},
			audits: []auditRecord{assignedAudit(AuditVolunteerAssigned, cur.ID, assigned.Request.VolunteerID)},
		}, nil
	})
	if errors.Is(err, lifecycle.ErrNoVolunteerAvailable) {
		return Outcome{Request: snapshot, AssignmentDeferred: true}, nil
	}
	return out, err
}

// AssignPendingCoVolunteer retries a co-volunteer request that found nobody the first time.
func (s *Storage) AssignPendingCoVolunteer(ctx context.Context, requestID string) (Outcome, error) {
	var snapshot lifecycle.FoodRequest
	out, err := s.transition(ctx, requestID, lifecycle.ActionAssignCoVolunteer, func(ctx context.Context, tx db.Tx, cur lifecycle.FoodRequest) (change, error) {
		snapshot = cur
		if !cur.NeedsCoVolunteer() {
			return change{}, fmt.Errorf("%w: request %s does not need a co-volunteer", lifecycle.ErrAlreadyAssigned, cur.ID)
		}
		assigned, ok, err := s.assignCoVolunteer(ctx, tx, cur)
		if err != nil {
			return change{}, err
		}
		if !ok {
			return change{}, fmt.Errorf("%w: request %s", lifecycle.ErrNoVolunteerAvailable, cur.ID)
		}
		return change{
			next:   assigned.Request,
			events: []lifecycle.Event{assigned.Event},
			audits: []auditRecord{assignedAudit(AuditCoVolunteerAssigned, cur.ID, assigned.Request.CoVolunteerID)},
		}, nil
	})
	if errors.Is(err, lifecycle.ErrNoVolunteerAvailable) {
		return Outcome{Request: snapshot, AssignmentDeferred: true}, nil
	}
	return out, err
}

// RetryAssignments walks deferred primary and co-volunteer assignments, oldest first.
// Failures of single requests are counted and logged, not returned.
func (s *Storage) RetryAssignments(ctx context.Context, limit int) (RetryStats, error) {
	var stats RetryStats

	awaiting, err := s.requests.ListAwaitingVolunteer(ctx, limit)
	if err != nil {
		return stats, fmt.Errorf("failed to list requests awaiting a volunteer: %w", err)
	}
	for _, row := range awaiting {
		out, err := s.AssignPending(ctx, row.ID)
		switch {
		case err != nil:
			if !superseded(err) {
				stats.Failed++
				s.logger.Warn("assignment retry failed", zap.String("request_id", row.ID), zap.Error(err))
			}
		case out.AssignmentDeferred:
			stats.Deferred++
		default:
			stats.Assigned++
		}
	}

	awaitingCo, err := s.requests.ListAwaitingCoVolunteer(ctx, limit)
	if err != nil {
		return stats, fmt.Errorf("failed to list requests awaiting a co-volunteer: %w", err)
	}
	for _, row := range awaitingCo {
		out, err := s.AssignPendingCoVolunteer(ctx, row.ID)
		switch {
		case err != nil:
			if !superseded(err) {
				stats.Failed++
				s.logger.Warn("co-volunteer retry failed", zap.String("request_id", row.ID), zap.Error(err))
			}
		case out.AssignmentDeferred:
			stats.Deferred++
		default:
			stats.CoAssigned++
		}
	}

	metrics.AssignmentRetriesTotal.WithLabelValues("assigned").Add(float64(stats.Assigned + stats.CoAssigned))
	metrics.AssignmentRetriesTotal.WithLabelValues("deferred").Add(float64(stats.Deferred))
	metrics.AssignmentRetriesTotal.WithLabelValues("failed").Add(float64(stats.Failed))
	return stats, nil
}

// superseded errors mean another writer already moved the request on.
func superseded(err error) bool {
	return errors.Is(err, lifecycle.ErrAlreadyAssigned) ||
		errors.Is(err, lifecycle.ErrInvalidTransition) ||
		errors.Is(err, ErrConcurrentUpdate)
}

func (s *Storage) PickUp(ctx context.Context, actor lifecycle.Actor, requestID string) (Outcome, error) {
	return s.transition(ctx, requestID, lifecycle.ActionPickUp, func(_ context.Context, _ db.Tx, cur lifecycle.FoodRequest) (change, error) {
		res, err := s.engine.PickUp(cur, actor)
		if err != nil {
			return change{}, err
		}
		return statusChange(cur, res, actor, nil), nil
	})
}

func (s *Storage) StartTransit(ctx context.Context, actor lifecycle.Actor, requestID string) (Outcome, error) {
	return s.transition(ctx, requestID, lifecycle.ActionStartTransit, func(_ context.Context, _ db.Tx, cur lifecycle.FoodRequest) (change, error) {
		res, err := s.engine.StartTransit(cur, actor)
		if err != nil {
			return change{}, err
		}
		return statusChange(cur, res, actor, nil), nil
	})
}

// Deliver frees the task slots of every volunteer on the request and credits them
// with a completed task.
func (s *Storage) Deliver(ctx context.Context, actor lifecycle.Actor, requestID string, in lifecycle.DeliverInput) (Outcome, error) {
	return s.transition(ctx, requestID, lifecycle.ActionDeliver, func(_ context.Context, _ db.Tx, cur lifecycle.FoodRequest) (change, error) {
		res, err := s.engine.Deliver(cur, actor, in)
		if err != nil {
			return change{}, err
		}
		ch := statusChange(cur, res, actor, map[string]interface{}{
			"has_photo": res.Request.DeliveryPhotoURL != "",
		})
		for _, id := range []string{res.Request.VolunteerID, res.Request.CoVolunteerID} {
			if id == "" {
				continue
			}
			ch.release = append(ch.release, id)
			ch.counters = append(ch.counters, counterBump{userID: id, counter: repository.CounterCompletedTasks})
		}
		return ch, nil
	})
}

func (s *Storage) ConfirmReceipt(ctx context.Context, actor lifecycle.Actor, requestID string, in lifecycle.ConfirmInput) (Outcome, error) {
	return s.transition(ctx, requestID, lifecycle.ActionConfirmReceipt, func(_ context.Context, _ db.Tx, cur lifecycle.FoodRequest) (change, error) {
		res, err := s.engine.ConfirmReceipt(cur, actor, in)
		if err != nil {
			return change{}, err
		}
		details := map[string]interface{}{}
		if res.Request.Rating > 0 {
			details["rating"] = res.Request.Rating
		}
		return change{
			next:   res.Request,
			events: []lifecycle.Event{res.Event},
			audits: []auditRecord{{
				action:    AuditReceiptConfirmed,
				actorID:   actor.ID,
				actorRole: actor.Role,
				requestID: cur.ID,
				details:   details,
			}},
			counters: []counterBump{{userID: cur.NGOID, counter: repository.CounterCompletedRequests}},
		}, nil
	})
}

// RequestExtraVolunteer records the reason and tries to bind a co-volunteer right away.
// When nobody is free the outcome is deferred and the retrier keeps looking.
func (s *Storage) RequestExtraVolunteer(ctx context.Context, actor lifecycle.Actor, requestID, reason string) (Outcome, error) {
	return s.transition(ctx, requestID, lifecycle.ActionRequestExtraVolunteer, func(ctx context.Context, tx db.Tx, cur lifecycle.FoodRequest) (change, error) {
		res, err := s.engine.RequestExtraVolunteer(cur, actor, reason)
		if err != nil {
			return change{}, err
		}
		ch := change{
			next:   res.Request,
			events: []lifecycle.Event{res.Event},
			audits: []auditRecord{{
				action:    AuditExtraVolunteerRequested,
				actorID:   actor.ID,
				actorRole: actor.Role,
				requestID: cur.ID,
				details:   map[string]interface{}{"reason": res.Request.ExtraVolunteerReason},
			}},
		}

		assigned, ok, err := s.assignCoVolunteer(ctx, tx, res.Request)
		if err != nil {
			return change{}, err
		}
		if !ok {
			ch.deferred = true
			return ch, nil
		}
		ch.next = assigned.Request
		ch.events = append(ch.events, assigned.Event)
		ch.audits = append(ch.audits, assignedAudit(AuditCoVolunteerAssigned, cur.ID, assigned.Request.CoVolunteerID))
		return ch, nil
	})
}

// assignVolunteer tries the directory's candidates in order and reserves the first one
// with a free slot. ok is false when nobody could be reserved.
func (s *Storage) assignVolunteer(ctx context.Context, tx db.Tx, req lifecycle.FoodRequest) (lifecycle.Result, bool, error) {
	return s.reserveFirst(ctx, tx, req, func(candidate lifecycle.User) (lifecycle.Result, error) {
		return s.engine.AssignVolunteer(req, candidate)
	})
}

func (s *Storage) assignCoVolunteer(ctx context.Context, tx db.Tx, req lifecycle.FoodRequest) (lifecycle.Result, bool, error) {
	return s.reserveFirst(ctx, tx, req, func(candidate lifecycle.User) (lifecycle.Result, error) {
		return s.engine.AssignCoVolunteer(req, candidate)
	}, req.VolunteerID)
}

func (s *Storage) reserveFirst(
	ctx context.Context,
	tx db.Tx,
	req lifecycle.FoodRequest,
	bind func(lifecycle.User) (lifecycle.Result, error),
	exclude ...string,
) (lifecycle.Result, bool, error) {
	if s.directory == nil {
		return lifecycle.Result{}, false, nil
	}
	candidates, err := s.directory.Candidates(ctx, req.PickupPoint, exclude...)
	if err != nil {
		return lifecycle.Result{}, false, fmt.Errorf("failed to list volunteer candidates: %w", err)
	}

	for _, candidate := range candidates {
		res, err := bind(candidate)
		if err != nil {
			if errors.Is(err, lifecycle.ErrNoVolunteerAvailable) || errors.Is(err, lifecycle.ErrVerificationRequired) {
				continue
			}
			return lifecycle.Result{}, false, err
		}

		reserved, err := s.users.ReserveTaskSlotTx(ctx, tx, candidate.ID)
		if err != nil {
			return lifecycle.Result{}, false, err
		}
		if !reserved {
			s.logger.Debug("volunteer slot taken by another request",
				zap.String("request_id", req.ID), zap.String("volunteer_id", candidate.ID))
			continue
		}
		return res, true, nil
	}
	return lifecycle.Result{}, false, nil
}

func statusChange(cur lifecycle.FoodRequest, res lifecycle.Result, actor lifecycle.Actor, extra map[string]interface{}) change {
	details := map[string]interface{}{
		"from": string(cur.Status),
		"to":   string(res.Request.Status),
	}
	for k, v := range extra {
		details[k] = v
	}
	return change{
		next:   res.Request,
		events: []lifecycle.Event{res.Event},
		audits: []auditRecord{{
			action:    AuditStatusUpdated,
			actorID:   actor.ID,
			actorRole: actor.Role,
			requestID: cur.ID,
			details:   details,
		}},
	}
}

func assignedAudit(action, requestID, volunteerID string) auditRecord {
	return auditRecord{
		action:    action,
		requestID: requestID,
		details:   map[string]interface{}{"volunteer_id": volunteerID},
	}
}
