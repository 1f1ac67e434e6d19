package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/kafka"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
	"github.com/Devadharshani13/SmartPlate/internal/metrics"
	"github.com/Devadharshani13/SmartPlate/internal/repository"
)

// UserLookup loads the account an event refers to.
type UserLookup interface {
	GetByID(ctx context.Context, id string) (*repository.User, error)
}

// Notifier turns account milestones into emails.
type Notifier struct {
	sender Sender
	users  UserLookup
	logger *zap.Logger
}

func NewNotifier(sender Sender, users UserLookup, logger *zap.Logger) *Notifier {
	return &Notifier{sender: sender, users: users, logger: logger.Named("mail")}
}

func (n *Notifier) Welcome(ctx context.Context, user lifecycle.User) error {
	msg, err := WelcomeMessage(user)
	if err != nil {
		return err
	}
	return n.send(ctx, "welcome", msg)
}

// Handler consumes lifecycle events and emails the account owner when a
// verification_updated event reports the account verified. Other events are ignored.
func (n *Notifier) Handler() kafka.Handler {
	return func(ctx context.Context, _ []byte, value []byte) error {
		var ev lifecycle.Event
		if err := json.Unmarshal(value, &ev); err != nil {
			return fmt.Errorf("%w: %v", kafka.ErrMalformed, err)
		}
		if ev.Type != lifecycle.EventVerificationUpdated || lifecycle.VerificationStatus(ev.NewStatus) != lifecycle.VerificationVerified {
			return nil
		}
		if ev.UserID == "" {
			return fmt.Errorf("%w: verification event without user_id", kafka.ErrMalformed)
		}

		row, err := n.users.GetByID(ctx, ev.UserID)
		if err != nil {
			return fmt.Errorf("failed to load verified user %s: %w", ev.UserID, err)
		}
		user, err := row.ToDomain()
		if err != nil {
			return fmt.Errorf("%w: %v", kafka.ErrMalformed, err)
		}
		// A later decision may have superseded the one this event reports.
		if user.Verification != lifecycle.VerificationVerified {
			n.logger.Info("skipping stale verification email", zap.String("user_id", user.ID))
			return nil
		}
		msg, err := VerifiedMessage(user)
		if err != nil {
			return err
		}
		if err := n.send(ctx, "verified", msg); err != nil {
			if errors.Is(err, ErrNoRecipient) {
				n.logger.Warn("verified account has no email", zap.String("user_id", user.ID))
				return nil
			}
			return err
		}
		return nil
	}
}

func (n *Notifier) send(ctx context.Context, kind string, msg Message) error {
	if err := n.sender.Send(ctx, msg); err != nil {
		metrics.EmailsSentTotal.WithLabelValues(kind, "failed").Inc()
		return err
	}
	metrics.EmailsSentTotal.WithLabelValues(kind, "sent").Inc()
	return nil
}
