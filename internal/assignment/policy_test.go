package assignment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

var registered = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func candidate(id string, at *geo.Point, regOffset time.Duration) Candidate {
	return Candidate{
		User: lifecycle.User{
			ID:           id,
			Role:         lifecycle.RoleVolunteer,
			Verification: lifecycle.VerificationVerified,
			Available:    true,
			TaskCapacity: 1,
			RegisteredAt: registered.Add(regOffset),
		},
		Point: at,
	}
}

func ids(cs []Candidate) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.User.ID)
	}
	return out
}

func TestNearest_Order(t *testing.T) {
	pickup := &geo.Point{Latitude: 13.0827, Longitude: 80.2707}
	near := &geo.Point{Latitude: 13.09, Longitude: 80.27}
	far := &geo.Point{Latitude: 12.97, Longitude: 77.59}

	tests := []struct {
		name       string
		origin     *geo.Point
		candidates []Candidate
		want       []string
	}{
		{
			name:       "closest first",
			origin:     pickup,
			candidates: []Candidate{candidate("far", far, 0), candidate("near", near, 0)},
			want:       []string{"near", "far"},
		},
		{
			name:       "missing location goes last",
			origin:     pickup,
			candidates: []Candidate{candidate("nowhere", nil, -time.Hour), candidate("far", far, 0)},
			want:       []string{"far", "nowhere"},
		},
		{
			name:   "tie broken by registration then id",
			origin: pickup,
			candidates: []Candidate{
				candidate("b", near, time.Hour),
				candidate("c", near, 0),
				candidate("a", near, time.Hour),
			},
			want: []string{"c", "a", "b"},
		},
		{
			name:       "no pickup point falls back to registration order",
			origin:     nil,
			candidates: []Candidate{candidate("late", near, time.Hour), candidate("early", far, 0)},
			want:       []string{"early", "late"},
		},
		{
			name:   "candidates without location keep registration order",
			origin: pickup,
			candidates: []Candidate{
				candidate("z-late", nil, time.Hour),
				candidate("near", near, 2*time.Hour),
				candidate("y-early", nil, 0),
			},
			want: []string{"near", "y-early", "z-late"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Nearest{}.Order(tc.origin, tc.candidates)
			assert.Equal(t, tc.want, ids(got))
		})
	}
}

func TestEligible(t *testing.T) {
	busy := candidate("busy", nil, 0)
	busy.User.ActiveTasks = 1

	offline := candidate("offline", nil, 0)
	offline.User.Available = false

	pending := candidate("pending", nil, 0)
	pending.User.Verification = lifecycle.VerificationPending

	donor := candidate("donor", nil, 0)
	donor.User.Role = lifecycle.RoleDonor

	got := Eligible([]Candidate{busy, offline, pending, donor, candidate("ok", nil, 0)})
	assert.Equal(t, []string{"ok"}, ids(got))
}

func TestWithout(t *testing.T) {
	all := []Candidate{candidate("a", nil, 0), candidate("b", nil, 0), candidate("c", nil, 0)}
	assert.Equal(t, []string{"a", "c"}, ids(Without(all, "b")))
	assert.Equal(t, []string{"a", "b", "c"}, ids(Without(all)))
}
