package storage

import (
	"context"

	"go.uber.org/zap"

	"github.com/Devadharshani13/SmartPlate/internal/assignment"
	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

// Directory lists assignable volunteers from Postgres, places them at their live
// presence location when one is fresh, and lets the policy order them.
type Directory struct {
	users    UserRepository
	presence Presence
	policy   assignment.Policy
	logger   *zap.Logger
}

func NewDirectory(users UserRepository, presence Presence, policy assignment.Policy, logger *zap.Logger) *Directory {
	if policy == nil {
		policy = assignment.Nearest{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Directory{users: users, presence: presence, policy: policy, logger: logger}
}

func (d *Directory) Candidates(ctx context.Context, origin *geo.Point, exclude ...string) ([]lifecycle.User, error) {
	rows, err := d.users.ListAssignableVolunteers(ctx)
	if err != nil {
		return nil, err
	}

	volunteers := make([]lifecycle.User, 0, len(rows))
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		u, err := row.ToDomain()
		if err != nil {
			d.logger.Warn("skipping unreadable volunteer row", zap.String("user_id", row.ID), zap.Error(err))
			continue
		}
		volunteers = append(volunteers, u)
		ids = append(ids, u.ID)
	}

	live := d.locations(ctx, ids)
	candidates := make([]assignment.Candidate, 0, len(volunteers))
	for _, u := range volunteers {
		candidates = append(candidates, assignment.Candidate{User: u, Point: pointOf(u, live)})
	}

	ordered := d.policy.Order(origin, assignment.Without(candidates, exclude...))
	out := make([]lifecycle.User, 0, len(ordered))
	for _, c := range ordered {
		out = append(out, c.User)
	}
	return out, nil
}

func (d *Directory) LiveLocation(ctx context.Context, volunteer lifecycle.User) *geo.Point {
	return pointOf(volunteer, d.locations(ctx, []string{volunteer.ID}))
}

// locations degrades to no live data when presence is down.
func (d *Directory) locations(ctx context.Context, ids []string) map[string]geo.Point {
	if d.presence == nil || len(ids) == 0 {
		return nil
	}
	live, err := d.presence.Locations(ctx, ids)
	if err != nil {
		d.logger.Warn("presence lookup failed, using profile locations", zap.Error(err))
		return nil
	}
	return live
}

func pointOf(u lifecycle.User, live map[string]geo.Point) *geo.Point {
	if p, ok := live[u.ID]; ok {
		return &p
	}
	return u.Point
}
