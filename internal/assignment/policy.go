// Package assignment decides which volunteer gets a request.
package assignment

import (
	"sort"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

// Candidate is a volunteer together with the point it is ranked by. Point is the live
// presence location when one is fresh, otherwise the declared profile location.
type Candidate struct {
	User  lifecycle.User
	Point *geo.Point
}

// Policy orders the candidates that may take a request at origin, best first. Candidates
// that cannot take a task are dropped.
type Policy interface {
	Order(origin *geo.Point, candidates []Candidate) []Candidate
}

// Nearest ranks by haversine distance to the pickup point. Ties go to the earlier
// registration, then to the smaller id. Candidates without a point rank last.
type Nearest struct{}

func (Nearest) Order(origin *geo.Point, candidates []Candidate) []Candidate {
	eligible := Eligible(candidates)
	sort.SliceStable(eligible, func(i, j int) bool {
		a, b := eligible[i].User, eligible[j].User
		if !a.RegisteredAt.Equal(b.RegisteredAt) {
			return a.RegisteredAt.Before(b.RegisteredAt)
		}
		return a.ID < b.ID
	})
	geo.SortByDistance(origin, eligible, func(c Candidate) *geo.Point { return c.Point })
	return eligible
}

// Eligible keeps verified volunteers with a free slot, in input order.
func Eligible(candidates []Candidate) []Candidate {
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.User.Role != lifecycle.RoleVolunteer || !c.User.Verified() || !c.User.HasCapacity() {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Without returns candidates minus the given user ids.
func Without(candidates []Candidate, ids ...string) []Candidate {
	if len(ids) == 0 {
		return candidates
	}
	skip := make(map[string]bool, len(ids))
	for _, id := range ids {
		skip[id] = true
	}
	out := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if !skip[c.User.ID] {
			out = append(out, c)
		}
	}
	return out
}
