package assignment

import (
	"math"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
	"github.com/Devadharshani13/SmartPlate/internal/lifecycle"
)

const (
	defaultTransportCapacity = 5.0
	minCapacityScore         = 2.0

	heavyLoadQuantity   = 100
	longDistanceKm      = 30.0
	quantityGrace       = 50.0
	maxDistancePenalty  = 3.0
	distancePenaltyUnit = 10.0
	quantityPenaltyUnit = 20.0
)

// Reasons the advisor can suggest for an extra volunteer.
const (
	ReasonHeavyLoad          = "heavy_load"
	ReasonLongDistance       = "long_distance"
	ReasonCapacityConstraint = "capacity_constraint"
)

var transportCapacity = map[lifecycle.TransportMode]float64{
	lifecycle.TransportVan:        10,
	lifecycle.TransportCar:        7,
	lifecycle.TransportTwoWheeler: 5,
	lifecycle.TransportBicycle:    3,
	lifecycle.TransportOnFoot:     2,
}

// CapacityScore estimates how comfortably one volunteer can carry quantity over
// distanceKm with mode. Unknown modes count as a two-wheeler.
func CapacityScore(mode lifecycle.TransportMode, distanceKm float64, quantity int) float64 {
	capacity, ok := transportCapacity[mode]
	if !ok {
		capacity = defaultTransportCapacity
	}
	distancePenalty := math.Min(distanceKm/distancePenaltyUnit, maxDistancePenalty)
	quantityPenalty := math.Max(0, (float64(quantity)-quantityGrace)/quantityPenaltyUnit)
	return capacity - distancePenalty - quantityPenalty
}

// Advice is a suggestion only; nothing applies it automatically.
type Advice struct {
	Suggested bool    `json:"suggested"`
	Reason    string  `json:"reason,omitempty"`
	Score     float64 `json:"capacity_score"`
}

// SuggestExtraVolunteer looks at the assigned volunteer's transport and the distance
// from the volunteer to the pickup point. An unknown distance counts as zero.
func SuggestExtraVolunteer(req lifecycle.FoodRequest, volunteer lifecycle.User, from *geo.Point) Advice {
	distance := geo.Distance(from, req.PickupPoint)
	if math.IsInf(distance, 1) {
		distance = 0
	}

	score := CapacityScore(volunteer.TransportMode, distance, req.Quantity)
	advice := Advice{Score: math.Round(score*100) / 100}
	if score >= minCapacityScore {
		return advice
	}

	advice.Suggested = true
	switch {
	case req.Quantity > heavyLoadQuantity:
		advice.Reason = ReasonHeavyLoad
	case distance > longDistanceKm:
		advice.Reason = ReasonLongDistance
	default:
		advice.Reason = ReasonCapacityConstraint
	}
	return advice
}
