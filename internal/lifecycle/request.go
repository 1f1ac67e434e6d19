package lifecycle

import (
	"time"

	"github.com/Devadharshani13/SmartPlate/internal/geo"
)

// FoodRequest is a value snapshot of one donation request. Empty ids mean "unset".
type FoodRequest struct {
	ID                  string     `json:"request_id"`
	NGOID               string     `json:"ngo_id"`
	FoodType            string     `json:"food_type"`
	FoodCategory        string     `json:"food_category"`
	Quantity            int        `json:"quantity"`
	QuantityUnit        string     `json:"quantity_unit"`
	PeopleCount         int        `json:"people_count"`
	RequiredDate        time.Time  `json:"required_date"`
	RequiredTime        string     `json:"required_time,omitempty"`
	PickupLocation      string     `json:"pickup_location"`
	PickupPoint         *geo.Point `json:"pickup_point,omitempty"`
	SpecialInstructions string     `json:"special_instructions,omitempty"`
	UrgencyScore        float64    `json:"urgency_score"`

	Status               Status `json:"status"`
	DonorID              string `json:"donor_id,omitempty"`
	AvailabilityTime     string `json:"availability_time,omitempty"`
	FoodCondition        string `json:"food_condition,omitempty"`
	VolunteerID          string `json:"volunteer_id,omitempty"`
	CoVolunteerID        string `json:"co_volunteer_id,omitempty"`
	ExtraVolunteerReason string `json:"extra_volunteer_reason,omitempty"`
	DeliveryPhotoURL     string `json:"delivery_photo_url,omitempty"`
	Rating               int    `json:"ngo_rating,omitempty"`
	Feedback             string `json:"ngo_feedback,omitempty"`

	Version   int64     `json:"version"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	AcceptedAt                *time.Time `json:"accepted_at,omitempty"`
	AssignedAt                *time.Time `json:"assigned_at,omitempty"`
	PickedUpAt                *time.Time `json:"picked_up_at,omitempty"`
	InTransitAt               *time.Time `json:"in_transit_at,omitempty"`
	DeliveredAt               *time.Time `json:"delivered_at,omitempty"`
	CompletedAt               *time.Time `json:"completed_at,omitempty"`
	ExtraVolunteerRequestedAt *time.Time `json:"extra_volunteer_requested_at,omitempty"`
	CoVolunteerAssignedAt     *time.Time `json:"co_volunteer_assigned_at,omitempty"`
}

// Parties returns every user with a stake in the request, without duplicates.
func (r FoodRequest) Parties() []string {
	parties := make([]string, 0, 4)
	seen := make(map[string]bool, 4)
	for _, id := range []string{r.NGOID, r.DonorID, r.VolunteerID, r.CoVolunteerID} {
		if id != "" && !seen[id] {
			seen[id] = true
			parties = append(parties, id)
		}
	}
	return parties
}

// Involves reports whether userID is one of the request's parties.
func (r FoodRequest) Involves(userID string) bool {
	for _, id := range r.Parties() {
		if id == userID {
			return true
		}
	}
	return false
}

// NeedsVolunteer is true while the donor has accepted but nobody is assigned.
func (r FoodRequest) NeedsVolunteer() bool {
	return r.Status == StatusAcceptedByDonor && r.VolunteerID == ""
}

// NeedsCoVolunteer is true when an extra volunteer was asked for and none is assigned yet.
func (r FoodRequest) NeedsCoVolunteer() bool {
	return r.ExtraVolunteerReason != "" && r.CoVolunteerID == "" &&
		(r.Status == StatusPickedUp || r.Status == StatusInTransit)
}

// Validate checks the snapshot invariants.
func (r FoodRequest) Validate() error {
	if r.ID == "" {
		return reject(ErrMalformedSnapshot, "missing request id")
	}
	if r.NGOID == "" {
		return reject(ErrMalformedSnapshot, "request %s has no owner", r.ID)
	}
	if !r.Status.Valid() {
		return reject(ErrMalformedSnapshot, "request %s has unknown status %q", r.ID, r.Status)
	}
	if (r.DonorID != "") != r.Status.AtLeast(StatusAcceptedByDonor) {
		return reject(ErrMalformedSnapshot, "request %s: donor presence disagrees with status %s", r.ID, r.Status)
	}
	if (r.VolunteerID != "") != r.Status.AtLeast(StatusAssignedToVolunteer) {
		return reject(ErrMalformedSnapshot, "request %s: volunteer presence disagrees with status %s", r.ID, r.Status)
	}
	if r.CoVolunteerID != "" {
		if r.ExtraVolunteerReason == "" || !r.Status.AtLeast(StatusPickedUp) {
			return reject(ErrMalformedSnapshot, "request %s has a co-volunteer that was never requested", r.ID)
		}
		if r.CoVolunteerID == r.VolunteerID {
			return reject(ErrMalformedSnapshot, "request %s: co-volunteer equals primary volunteer", r.ID)
		}
	}
	return nil
}

type CreateInput struct {
	FoodType            string   `json:"food_type"`
	FoodCategory        string   `json:"food_category"`
	Quantity            int      `json:"quantity"`
	QuantityUnit        string   `json:"quantity_unit"`
	PeopleCount         int      `json:"people_count"`
	RequiredDate        string   `json:"required_date"`
	RequiredTime        string   `json:"required_time"`
	PickupLocation      string   `json:"pickup_location"`
	PickupLatitude      *float64 `json:"pickup_latitude,omitempty"`
	PickupLongitude     *float64 `json:"pickup_longitude,omitempty"`
	SpecialInstructions string   `json:"special_instructions"`
}

type AcceptInput struct {
	AvailabilityTime string `json:"availability_time"`
	FoodCondition    string `json:"food_condition"`
}

type DeliverInput struct {
	PhotoURL string `json:"delivery_photo_url,omitempty"`
}

type ConfirmInput struct {
	Rating   int    `json:"rating,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}
