// Package urgency derives the 0..10 priority used to sort donation requests.
package urgency

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

const (
	Max = 10.0
	Min = 0.0

	// Deadlines closer than this get the full time component.
	imminentHours = 24.0
	// Deadlines further away than this get no time component.
	horizonHours = 7 * 24.0

	fullPeopleCount = 100.0

	timeWeight   = 0.6
	peopleWeight = 0.4
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrInvalidDeadline = errors.New("invalid deadline")

// Deadline combines a required date and an optional HH:MM time in loc.
// The calendar day of date is read in UTC, the way required dates are stored.
// A blank time means the end of that day.
func Deadline(date time.Time, clock string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	if date.IsZero() {
		return time.Time{}, fmt.Errorf("%w: required date is empty", ErrInvalidDeadline)
	}

	hour, minute := 23, 59
	if clock = strings.TrimSpace(clock); clock != "" {
		t, err := time.Parse(TimeLayout, clock)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: required time %q is not HH:MM", ErrInvalidDeadline, clock)
		}
		hour, minute = t.Hour(), t.Minute()
	}

	y, m, d := date.UTC().Date()
	return time.Date(y, m, d, hour, minute, 0, 0, loc), nil
}

// Score is monotone: an earlier deadline or a larger peopleCount never lowers it.
func Score(deadline time.Time, peopleCount int, now time.Time) float64 {
	score := timeWeight*timeComponent(deadline.Sub(now).Hours()) + peopleWeight*peopleComponent(peopleCount)
	return round2(clamp(score))
}

func timeComponent(hoursLeft float64) float64 {
	switch {
	case hoursLeft <= imminentHours:
		return Max
	case hoursLeft >= horizonHours:
		return Min
	default:
		return Max * (horizonHours - hoursLeft) / (horizonHours - imminentHours)
	}
}

func peopleComponent(peopleCount int) float64 {
	if peopleCount <= 0 {
		return Min
	}
	return math.Min(Max, float64(peopleCount)/fullPeopleCount*Max)
}

func clamp(v float64) float64 {
	return math.Max(Min, math.Min(Max, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
