package queries

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrGetTripDeliveriesQueryIsNotConstructed = errors.New(
		"GetTripDeliveriesQuery must be created via NewGetTripDeliveriesQuery constructor",
	)
)

// GetTripDeliveriesQuery retrieves the deliveries bound to a trip. Travelers
// use this view to see their manifest before and during a trip.
type GetTripDeliveriesQuery struct {
	tripID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetTripDeliveriesQuery creates a query for one trip's deliveries.
func NewGetTripDeliveriesQuery(tripID kernel.UUID) (GetTripDeliveriesQuery, error) {
	if err := tripID.Validate(); err != nil {
		return GetTripDeliveriesQuery{}, err
	}

	return GetTripDeliveriesQuery{
		tripID: tripID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetTripDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetTripDeliveriesQueryIsNotConstructed)
}

// TripID returns the trip whose deliveries are requested.
func (q GetTripDeliveriesQuery) TripID() kernel.UUID {
	return q.tripID
}

// GetTripDeliveriesQueryResponse is one delivery on a trip's manifest.
type GetTripDeliveriesQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string
	PickupCity     string
	DeliveryCity   string
	EstimatedPrice float64
}
