package geo

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

const earthRadiusKm = 6371

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Point is a WGS84 coordinate pair in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewPoint(lat, lng float64) (Point, error) {
	if err := ValidateLatitude(lat); err != nil {
		return Point{}, err
	}
	if err := ValidateLongitude(lng); err != nil {
		return Point{}, err
	}
	return Point{Latitude: lat, Longitude: lng}, nil
}

// PointFrom builds an optional point from nullable columns. Both halves must be present.
func PointFrom(lat, lng *float64) (*Point, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, fmt.Errorf("%w: latitude and longitude must be given together", ErrInvalidCoordinates)
	}
	p, err := NewPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func ValidateLatitude(lat float64) error {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude must be between -90 and 90", ErrInvalidCoordinates)
	}
	return nil
}

func ValidateLongitude(lng float64) error {
	if math.IsNaN(lng) || lng < -180 || lng > 180 {
		return fmt.Errorf("%w: longitude must be between -180 and 180", ErrInvalidCoordinates)
	}
	return nil
}

// DistanceKm returns the great-circle distance between a and b.
func DistanceKm(a, b Point) float64 {
	lat1Rad := a.Latitude * math.Pi / 180
	lat2Rad := b.Latitude * math.Pi / 180
	deltaLat := (b.Latitude - a.Latitude) * math.Pi / 180
	deltaLon := (b.Longitude - a.Longitude) * math.Pi / 180

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Distance is like DistanceKm but treats a missing end as infinitely far away.
func Distance(a, b *Point) float64 {
	if a == nil || b == nil {
		return math.Inf(1)
	}
	return DistanceKm(*a, *b)
}

// SortByDistance orders items by distance from origin, items without a point last.
// The sort is stable so callers can pre-sort by a secondary key.
func SortByDistance[T any](origin *Point, items []T, pointOf func(T) *Point) {
	sort.SliceStable(items, func(i, j int) bool {
		return Distance(origin, pointOf(items[i])) < Distance(origin, pointOf(items[j]))
	})
}
