package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

func TestCapacityScore(t *testing.T) {
	assert.Equal(t, 10.0, CapacityScore(lifecycle.TransportVan, 0, 50))
	assert.Equal(t, 7.0-3.0, CapacityScore(lifecycle.TransportCar, 100, 10))
	assert.Equal(t, 2.0-0.5-2.5, CapacityScore(lifecycle.TransportOnFoot, 5, 100))
	assert.Equal(t, 5.0, CapacityScore("hovercraft", 0, 0))
}

func TestSuggestExtraVolunteer(t *testing.T) {
	pickup := &geo.Point{Latitude: 13.0827, Longitude: 80.2707}
	bengaluru := &geo.Point{Latitude: 12.9716, Longitude: 77.5946}

	tests := []struct {
		name     string
		mode     lifecycle.TransportMode
		quantity int
		from     *geo.Point
		want     Advice
	}{
		{
			name:     "van copes",
			mode:     lifecycle.TransportVan,
			quantity: 120,
			from:     pickup,
			want:     Advice{Score: 6.5},
		},
		{
			name:     "heavy load on a bicycle",
			mode:     lifecycle.TransportBicycle,
			quantity: 150,
			from:     pickup,
			want:     Advice{Suggested: true, Reason: ReasonHeavyLoad, Score: -2},
		},
		{
			name:     "long ride on foot",
			mode:     lifecycle.TransportOnFoot,
			quantity: 20,
			from:     bengaluru,
			want:     Advice{Suggested: true, Reason: ReasonLongDistance, Score: -1},
		},
		{
			name:     "small load but weak transport",
			mode:     lifecycle.TransportOnFoot,
			quantity: 60,
			from:     nil,
			want:     Advice{Suggested: true, Reason: ReasonCapacityConstraint, Score: 1.5},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := lifecycle.FoodRequest{Quantity: tc.quantity, PickupPoint: pickup}
			vol := lifecycle.User{ID: "v1", TransportMode: tc.mode}
			assert.Equal(t, tc.want, SuggestExtraVolunteer(req, vol, tc.from))
		})
	}
}
