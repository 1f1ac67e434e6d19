package storage

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
)

// RegisterProfile creates the account of an authenticated subject. NGO and volunteer
// accounts start pending verification.
func (s *Storage) RegisterProfile(ctx context.Context, userID string, role lifecycle.Role, in ProfileInput) (lifecycle.User, error) {
	if userID == "" {
		return lifecycle.User{}, fmt.Errorf("%w: missing subject", lifecycle.ErrInvalidInput)
	}
	user, err := in.user(userID, role, timeNow().UTC())
	if err != nil {
		return lifecycle.User{}, err
	}

	if err := s.users.Create(ctx, repository.NewUser(user)); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return lifecycle.User{}, ErrAlreadyRegistered
		}
		metrics.OperationErrorsTotal.WithLabelValues("register_profile").Inc()
		return lifecycle.User{}, fmt.Errorf("failed to create profile: %w", err)
	}

	// The account is already durable, a lost audit entry is only logged.
	err = db.WithTx(ctx, s.db, func(tx db.Tx) error {
		return s.writeAudit(ctx, tx, auditRecord{
			action:    AuditProfileCreated,
			actorID:   user.ID,
			actorRole: user.Role,
			details:   map[string]interface{}{"verification_status": string(user.Verification)},
		})
	})
	if err != nil {
		s.logger.Warn("failed to audit profile creation", zap.String("user_id", user.ID), zap.Error(err))
	}

	if user.Role == lifecycle.RoleVolunteer {
		s.touchPresence(ctx, user.ID, user.Point)
	}
	if s.welcomer != nil {
		if err := s.welcomer.Welcome(ctx, user); err != nil {
			metrics.OperationErrorsTotal.WithLabelValues("welcome_email").Inc()
			s.logger.Warn("failed to send welcome email", zap.String("user_id", user.ID), zap.Error(err))
		}
	}
	s.logger.Info("profile registered", zap.String("user_id", user.ID), zap.String("role", user.Role.String()))
	return user, nil
}

// Me returns the caller's own account.
func (s *Storage) Me(ctx context.Context, userID string) (lifecycle.User, error) {
	return s.user(ctx, userID)
}

// ResolveActor turns a token subject and role into the actor operations run as. The
// role must match the registered profile.
func (s *Storage) ResolveActor(ctx context.Context, userID string, role lifecycle.Role) (lifecycle.Actor, error) {
	user, err := s.user(ctx, userID)
	if err != nil {
		return lifecycle.Actor{}, err
	}
	if user.Role != role {
		return lifecycle.Actor{}, fmt.Errorf("%w: token role %s does not match profile role %s", ErrForbidden, role, user.Role)
	}
	return user.Actor(), nil
}

// UpdateAvailability stores the volunteer's availability and location, mirrors them into
// presence and wakes the assignment retrier when the volunteer becomes available.
func (s *Storage) UpdateAvailability(ctx context.Context, actor lifecycle.Actor, in AvailabilityInput) (lifecycle.User, error) {
	if actor.Role != lifecycle.RoleVolunteer {
		return lifecycle.User{}, fmt.Errorf("%w: only volunteers have availability", ErrForbidden)
	}
	if in.TaskCapacity < 0 {
		return lifecycle.User{}, fmt.Errorf("%w: task_capacity must not be negative", lifecycle.ErrInvalidInput)
	}
	point, err := geo.PointFrom(in.Latitude, in.Longitude)
	if err != nil {
		return lifecycle.User{}, fmt.Errorf("%w: %v", lifecycle.ErrInvalidInput, err)
	}

	current, err := s.user(ctx, actor.ID)
	if err != nil {
		return lifecycle.User{}, err
	}
	capacity := in.TaskCapacity
	if capacity == 0 {
		capacity = current.TaskCapacity
	}
	if capacity <= 0 {
		capacity = lifecycle.DefaultTaskCapacity
	}

	if err := s.users.UpdateAvailability(ctx, actor.ID, in.Available, capacity, in.Latitude, in.Longitude); err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return lifecycle.User{}, fmt.Errorf("%w: user %s", ErrNotFound, actor.ID)
		}
		metrics.OperationErrorsTotal.WithLabelValues("update_availability").Inc()
		return lifecycle.User{}, fmt.Errorf("failed to update availability: %w", err)
	}

	if in.Available {
		s.touchPresence(ctx, actor.ID, point)
		if s.onCapacityFreed != nil {
			s.onCapacityFreed()
		}
	} else if s.presence != nil {
		if err := s.presence.SetInactive(ctx, actor.ID); err != nil {
			s.logger.Warn("failed to mark volunteer inactive", zap.String("user_id", actor.ID), zap.Error(err))
		}
	}

	updated := current
	updated.Available = in.Available
	updated.TaskCapacity = capacity
	if point != nil {
		updated.Point = point
	}
	return updated, nil
}

// Verify applies an admin decision to a pending account.
func (s *Storage) Verify(ctx context.Context, actor lifecycle.Actor, userID string, decision lifecycle.VerificationStatus, notes string) (lifecycle.User, error) {
	logger := s.logger.With(zap.String("user_id", userID), zap.String("action", string(lifecycle.ActionVerifyAccount)))

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		var res lifecycle.VerificationResult
		err := db.WithTx(ctx, s.db, func(tx db.Tx) error {
			row, err := s.users.GetByIDTx(ctx, tx, userID)
			if err != nil {
				if errors.Is(err, repository.ErrObjectNotFound) {
					return fmt.Errorf("%w: user %s", ErrNotFound, userID)
				}
				return fmt.Errorf("failed to load user %s: %w", userID, err)
			}
			target, err := row.ToDomain()
			if err != nil {
				return err
			}
			if res, err = s.engine.Verify(target, actor, decision, notes); err != nil {
				return err
			}

			ok, err := s.users.UpdateVerificationTx(ctx, tx, repository.NewUser(res.User), string(target.Verification))
			if err != nil {
				return err
			}
			if !ok {
				return errLostRace
			}

			action := AuditUserVerified
			if decision == lifecycle.VerificationRejected {
				action = AuditUserRejected
			}
			if err := s.writeAudit(ctx, tx, auditRecord{
				action:    action,
				actorID:   actor.ID,
				actorRole: actor.Role,
				details: map[string]interface{}{
					"target_user_id": userID,
					"target_role":    target.Role.String(),
					"notes":          res.User.VerificationNotes,
				},
			}); err != nil {
				return err
			}
			return s.enqueue(ctx, tx, res.Event)
		})

		switch {
		case err == nil:
			metrics.VerificationsTotal.WithLabelValues(string(decision)).Inc()
			logger.Info("verification decided", zap.String("decision", string(decision)), zap.String("admin_id", actor.ID))
			return res.User, nil
		case errors.Is(err, errLostRace):
			metrics.ConcurrentUpdatesTotal.Inc()
		default:
			s.rejected(lifecycle.ActionVerifyAccount, err)
			return lifecycle.User{}, err
		}
	}
	return lifecycle.User{}, ErrConcurrentUpdate
}

func (s *Storage) PendingVerifications(ctx context.Context, actor lifecycle.Actor) ([]lifecycle.User, error) {
	if actor.Role != lifecycle.RoleAdmin {
		return nil, fmt.Errorf("%w: admins only", ErrForbidden)
	}
	rows, err := s.users.ListByVerification(ctx, string(lifecycle.VerificationPending))
	if err != nil {
		return nil, fmt.Errorf("failed to list pending verifications: %w", err)
	}
	return s.toUsers(rows), nil
}

// MaxUserListing caps one admin listing of accounts.
const MaxUserListing = 10000

// Users lists accounts for an admin, oldest first. The zero role lists every role.
func (s *Storage) Users(ctx context.Context, actor lifecycle.Actor, role lifecycle.Role) ([]lifecycle.User, error) {
	if actor.Role != lifecycle.RoleAdmin {
		return nil, fmt.Errorf("%w: admins only", ErrForbidden)
	}
	filter := ""
	if role != 0 {
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role", lifecycle.ErrInvalidInput)
		}
		filter = role.String()
	}
	rows, err := s.users.List(ctx, filter, MaxUserListing)
	if err != nil {
		metrics.OperationErrorsTotal.WithLabelValues("list_users").Inc()
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return s.toUsers(rows), nil
}

func (s *Storage) user(ctx context.Context, userID string) (lifecycle.User, error) {
	row, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return lifecycle.User{}, fmt.Errorf("%w: user %s", ErrNotFound, userID)
		}
		return lifecycle.User{}, fmt.Errorf("failed to load user %s: %w", userID, err)
	}
	return row.ToDomain()
}

func (s *Storage) toUsers(rows []*repository.User) []lifecycle.User {
	users := make([]lifecycle.User, 0, len(rows))
	for _, row := range rows {
		u, err := row.ToDomain()
		if err != nil {
			s.logger.Warn("skipping unreadable user row", zap.String("user_id", row.ID), zap.Error(err))
			continue
		}
		users = append(users, u)
	}
	return users
}

func (s *Storage) touchPresence(ctx context.Context, volunteerID string, p *geo.Point) {
	if s.presence == nil {
		return
	}
	if err := s.presence.Touch(ctx, volunteerID, p); err != nil {
		s.logger.Warn("failed to update presence", zap.String("user_id", volunteerID), zap.Error(err))
	}
}
