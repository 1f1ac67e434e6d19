package urgency

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

func TestScoreScenarios(t *testing.T) {
	t.Run("today with 500 people is maximal", func(t *testing.T) {
		deadline, err := Deadline(now, "", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, Max, Score(deadline, 500, now))
	})

	t.Run("today with an hour already passed is maximal", func(t *testing.T) {
		deadline, err := Deadline(now, "08:00", time.UTC)
		require.NoError(t, err)
		assert.Equal(t, Max, Score(deadline, 500, now))
	})

	t.Run("a month away for one person is near zero", func(t *testing.T) {
		deadline, err := Deadline(now.AddDate(0, 0, 30), "12:00", time.UTC)
		require.NoError(t, err)
		assert.InDelta(t, 0, Score(deadline, 1, now), 0.05)
	})

	t.Run("stays within bounds", func(t *testing.T) {
		assert.Equal(t, Min, Score(now.AddDate(1, 0, 0), 0, now))
		assert.Equal(t, Max, Score(now.AddDate(-1, 0, 0), 100000, now))
	})
}

func TestScoreMonotonicInDeadline(t *testing.T) {
	for _, people := range []int{0, 1, 40, 100, 900} {
		prev := -1.0
		// Walk the deadline from 10 days out towards now and past it.
		for h := 240; h >= -24; h-- {
			s := Score(now.Add(time.Duration(h)*time.Hour), people, now)
			assert.GreaterOrEqual(t, s, prev, "people=%d hours=%d", people, h)
			prev = s
		}
	}
}

func TestScoreMonotonicInPeople(t *testing.T) {
	for _, h := range []int{-5, 0, 12, 30, 72, 150, 500} {
		deadline := now.Add(time.Duration(h) * time.Hour)
		prev := -1.0
		for people := 0; people <= 300; people++ {
			s := Score(deadline, people, now)
			assert.GreaterOrEqual(t, s, prev, "hours=%d people=%d", h, people)
			prev = s
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	deadline := now.Add(50 * time.Hour)
	first := Score(deadline, 70, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Score(deadline, 70, now))
	}
}

func TestDeadline(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		clock   string
		want    time.Time
		wantErr bool
	}{
		{name: "explicit time", clock: "14:15", want: time.Date(2025, 3, 12, 14, 15, 0, 0, ist)},
		{name: "blank time is end of day", clock: " ", want: time.Date(2025, 3, 12, 23, 59, 0, 0, ist)},
		{name: "bad time", clock: "2pm", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Deadline(date, tc.clock, ist)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDeadline)
				return
			}
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "want %s got %s", tc.want, got)
		})
	}

	_, err := Deadline(time.Time{}, "10:00", ist)
	assert.ErrorIs(t, err, ErrInvalidDeadline)
}

func TestDeadlineIgnoresDateZone(t *testing.T) {
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	ist := time.FixedZone("IST", 5*3600+1800)
	date := time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2026, 10, 14, 8, 0, 0, 0, time.UTC)

	for _, clock := range []string{"", "09:30"} {
		want, err := Deadline(date, clock, ist)
		require.NoError(t, err)

		got, err := Deadline(date.In(la), clock, ist)
		require.NoError(t, err)
		assert.True(t, want.Equal(got), "clock %q: want %s got %s", clock, want, got)
		assert.Equal(t, Score(want, 120, asOf), Score(got, 120, asOf))
	}
}
