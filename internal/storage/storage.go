package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/db"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
)

const (
	defaultMaxRetries = 3
	defaultTopic      = "smartplate-events"
	// systemActor signs the audit entries of automatic assignments.
	systemActor = "system"
)

var (
	timeNow = time.Now
	newID   = uuid.NewString
)

// errLostRace makes the transition loop reload the snapshot and try again.
var errLostRace = errors.New("request changed concurrently")

type Options struct {
	Engine    *lifecycle.Engine
	Directory VolunteerDirectory
	Cache     RequestCache
	Presence  Presence
	Logger    *zap.Logger
	// EventsTopic is the broker topic outbox tasks are addressed to.
	EventsTopic string
	// MaxRetries bounds compare-and-set attempts per operation.
	MaxRetries int
	// OnCapacityFreed is called after a commit that gave a volunteer slot back.
	OnCapacityFreed func()
	// Welcomer, when set, greets every new account once it is stored.
	Welcomer Welcomer
}

// Storage runs lifecycle operations against Postgres. Each operation loads the
// snapshot, asks the engine for the next one and writes it back with a
// compare-and-set, together with its audit entries and outbox events.
type Storage struct {
	db       db.DB
	requests RequestRepository
	users    UserRepository
	audits   AuditRepository
	outbox   OutboxTaskRepository

	engine          *lifecycle.Engine
	directory       VolunteerDirectory
	cache           RequestCache
	presence        Presence
	logger          *zap.Logger
	topic           string
	maxRetries      int
	onCapacityFreed func()
	welcomer        Welcomer
}

func NewStorage(
	database db.DB,
	requests RequestRepository,
	users UserRepository,
	audits AuditRepository,
	outbox OutboxTaskRepository,
	opts Options,
) *Storage {
	s := &Storage{
		db:              database,
		requests:        requests,
		users:           users,
		audits:          audits,
		outbox:          outbox,
		engine:          opts.Engine,
		directory:       opts.Directory,
		cache:           opts.Cache,
		presence:        opts.Presence,
		logger:          opts.Logger,
		topic:           opts.EventsTopic,
		maxRetries:      opts.MaxRetries,
		onCapacityFreed: opts.OnCapacityFreed,
		welcomer:        opts.Welcomer,
	}
	if s.engine == nil {
		s.engine = lifecycle.NewEngine(time.UTC)
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.topic == "" {
		s.topic = defaultTopic
	}
	if s.maxRetries <= 0 {
		s.maxRetries = defaultMaxRetries
	}
	return s
}

// Engine exposes the lifecycle rules the storage applies.
func (s *Storage) Engine() *lifecycle.Engine {
	return s.engine
}

type auditRecord struct {
	action    string
	actorID   string
	actorRole lifecycle.Role
	requestID string
	details   map[string]interface{}
}

type counterBump struct {
	userID  string
	counter repository.Counter
}

// change is everything one committed operation writes.
type change struct {
	next     lifecycle.FoodRequest
	events   []lifecycle.Event
	audits   []auditRecord
	counters []counterBump
	// release lists volunteers whose task slot is given back.
	release  []string
	deferred bool
}

// step computes a change from the current snapshot. It may use tx for writes that must
// commit together with the request, such as capacity reservations.
type step func(ctx context.Context, tx db.Tx, cur lifecycle.FoodRequest) (change, error)

func (s *Storage) transition(ctx context.Context, requestID string, action lifecycle.Action, fn step) (Outcome, error) {
	logger := s.logger.With(zap.String("request_id", requestID), zap.String("action", string(action)))

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		var ch change
		err := db.WithTx(ctx, s.db, func(tx db.Tx) error {
			cur, err := s.loadTx(ctx, tx, requestID)
			if err != nil {
				return err
			}
			if ch, err = fn(ctx, tx, cur); err != nil {
				return err
			}
			ch.next.Version = cur.Version + 1

			ok, err := s.requests.UpdateTx(ctx, tx, repository.NewFoodRequest(ch.next), string(cur.Status), cur.Version)
			if err != nil {
				return err
			}
			if !ok {
				return errLostRace
			}
			return s.record(ctx, tx, &ch)
		})

		switch {
		case err == nil:
			s.committed(ch)
			logger.Info("transition committed",
				zap.String("status", string(ch.next.Status)),
				zap.Int64("version", ch.next.Version),
				zap.Bool("assignment_deferred", ch.deferred))
			return Outcome{Request: ch.next, AssignmentDeferred: ch.deferred}, nil
		case errors.Is(err, errLostRace):
			metrics.ConcurrentUpdatesTotal.Inc()
			logger.Debug("compare-and-set lost, reloading", zap.Int("attempt", attempt))
		default:
			s.rejected(action, err)
			return Outcome{}, err
		}
	}

	logger.Warn("giving up after repeated concurrent updates", zap.Int("attempts", s.maxRetries))
	metrics.OperationErrorsTotal.WithLabelValues(string(action)).Inc()
	return Outcome{}, ErrConcurrentUpdate
}

func (s *Storage) loadTx(ctx context.Context, tx db.Tx, requestID string) (lifecycle.FoodRequest, error) {
	row, err := s.requests.GetByIDTx(ctx, tx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrObjectNotFound) {
			return lifecycle.FoodRequest{}, fmt.Errorf("%w: request %s", ErrNotFound, requestID)
		}
		return lifecycle.FoodRequest{}, fmt.Errorf("failed to load request %s: %w", requestID, err)
	}
	return row.ToDomain(), nil
}

// record writes the side rows of a change inside its transaction.
func (s *Storage) record(ctx context.Context, tx db.Tx, ch *change) error {
	for _, volunteerID := range ch.release {
		if err := s.users.ReleaseTaskSlotTx(ctx, tx, volunteerID); err != nil {
			return err
		}
	}
	for _, bump := range ch.counters {
		if err := s.users.IncrementCounterTx(ctx, tx, bump.userID, bump.counter); err != nil {
			return err
		}
	}
	for _, a := range ch.audits {
		if err := s.writeAudit(ctx, tx, a); err != nil {
			return err
		}
	}
	for _, e := range ch.events {
		if err := s.enqueue(ctx, tx, e); err != nil {
			return err
		}
	}
	return nil
}

func (s *Storage) writeAudit(ctx context.Context, tx db.Tx, a auditRecord) error {
	details := make(map[string]interface{}, len(a.details)+1)
	for k, v := range a.details {
		details[k] = v
	}
	if a.actorRole.Valid() {
		details["actor_role"] = a.actorRole.String()
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("failed to marshal audit details: %w", err)
	}

	actorID := a.actorID
	if actorID == "" {
		actorID = systemActor
	}
	return s.audits.CreateTx(ctx, tx, &repository.AuditLogEntry{
		Action:    a.action,
		UserID:    actorID,
		RequestID: a.requestID,
		Details:   raw,
		CreatedAt: timeNow().UTC(),
	})
}

func (s *Storage) enqueue(ctx context.Context, tx db.Tx, e lifecycle.Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", e.Type, err)
	}
	return s.outbox.CreateTx(ctx, tx, &repository.OutboxTask{
		Payload: payload,
		Topic:   s.topic,
		Key:     e.Subject(),
	})
}

// committed runs the in-process follow-ups of a change once its transaction is durable.
func (s *Storage) committed(ch change) {
	if s.cache != nil && ch.next.ID != "" {
		s.cache.Set(ch.next)
	}
	for _, e := range ch.events {
		metrics.TransitionsTotal.WithLabelValues(e.NewStatus).Inc()
	}
	if ch.deferred {
		metrics.AssignmentsDeferredTotal.Inc()
	}
	if len(ch.release) > 0 && s.onCapacityFreed != nil {
		s.onCapacityFreed()
	}
}

func (s *Storage) rejected(action lifecycle.Action, err error) {
	reason := rejectionReason(err)
	switch reason {
	case "":
		metrics.OperationErrorsTotal.WithLabelValues(string(action)).Inc()
		s.logger.Error("operation failed", zap.String("action", string(action)), zap.Error(err))
	case "no_volunteer":
		metrics.AssignmentsDeferredTotal.Inc()
	default:
		metrics.RejectionsTotal.WithLabelValues(string(action), reason).Inc()
		s.logger.Debug("operation rejected", zap.String("action", string(action)), zap.String("reason", reason), zap.Error(err))
	}
}

// rejectionReason names the expected failures. It is empty for infrastructure errors.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return "invalid_transition"
	case errors.Is(err, lifecycle.ErrAlreadyAccepted):
		return "already_accepted"
	case errors.Is(err, lifecycle.ErrAlreadyAssigned):
		return "already_assigned"
	case errors.Is(err, lifecycle.ErrNoVolunteerAvailable):
		return "no_volunteer"
	case errors.Is(err, lifecycle.ErrVerificationRequired):
		return "verification_required"
	case errors.Is(err, lifecycle.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrForbidden):
		return "forbidden"
	}
	return ""
}
