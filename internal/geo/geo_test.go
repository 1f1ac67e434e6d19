package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm(t *testing.T) {
	chennai := Point{Latitude: 13.0827, Longitude: 80.2707}
	bengaluru := Point{Latitude: 12.9716, Longitude: 77.5946}

	t.Run("known city pair", func(t *testing.T) {
		d := DistanceKm(chennai, bengaluru)
		assert.InDelta(t, 290, d, 5)
	})

	t.Run("symmetric", func(t *testing.T) {
		assert.InDelta(t, DistanceKm(chennai, bengaluru), DistanceKm(bengaluru, chennai), 1e-9)
	})

	t.Run("same point", func(t *testing.T) {
		assert.Zero(t, DistanceKm(chennai, chennai))
	})
}

func TestDistanceMissingPoint(t *testing.T) {
	p := &Point{Latitude: 1, Longitude: 1}
	assert.True(t, math.IsInf(Distance(p, nil), 1))
	assert.True(t, math.IsInf(Distance(nil, p), 1))
}

func TestNewPoint(t *testing.T) {
	tests := []struct {
		name    string
		lat     float64
		lng     float64
		wantErr bool
	}{
		{name: "valid", lat: 12.5, lng: 77.1},
		{name: "poles and antimeridian", lat: -90, lng: 180},
		{name: "latitude too big", lat: 90.1, lng: 0, wantErr: true},
		{name: "longitude too small", lat: 0, lng: -180.5, wantErr: true},
		{name: "nan", lat: math.NaN(), lng: 0, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPoint(tc.lat, tc.lng)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCoordinates)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPointFrom(t *testing.T) {
	lat, lng := 10.0, 20.0

	p, err := PointFrom(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	_, err = PointFrom(&lat, nil)
	assert.ErrorIs(t, err, ErrInvalidCoordinates)

	p, err = PointFrom(&lat, &lng)
	require.NoError(t, err)
	assert.Equal(t, &Point{Latitude: 10, Longitude: 20}, p)
}

func TestSortByDistance(t *testing.T) {
	origin := &Point{Latitude: 0, Longitude: 0}
	type site struct {
		name string
		at   *Point
	}
	sites := []site{
		{name: "unknown"},
		{name: "far", at: &Point{Latitude: 5, Longitude: 5}},
		{name: "near", at: &Point{Latitude: 0.1, Longitude: 0.1}},
	}

	SortByDistance(origin, sites, func(s site) *Point { return s.at })

	assert.Equal(t, []string{"near", "far", "unknown"}, []string{sites[0].name, sites[1].name, sites[2].name})
}
