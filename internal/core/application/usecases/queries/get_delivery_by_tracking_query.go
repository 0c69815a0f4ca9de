// Package queries contains read-side operations of the CQRS architecture.
// Query handlers read the database directly, bypassing the aggregate
// repositories, and return flat response structures shaped for the callers.
package queries

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrGetDeliveryByTrackingQueryIsNotConstructed = errors.New(
		"GetDeliveryByTrackingQuery must be created via NewGetDeliveryByTrackingQuery constructor",
	)
)

// GetDeliveryByTrackingQuery retrieves the public view of a delivery by its
// tracking number. This is the lookup behind the public tracking page, so it
// runs through a cache before touching the database.
type GetDeliveryByTrackingQuery struct {
	trackingNumber kernel.TrackingNumber

	guard guard.ConstructorGuard
}

// NewGetDeliveryByTrackingQuery creates a query for one tracking number.
func NewGetDeliveryByTrackingQuery(trackingNumber kernel.TrackingNumber) (GetDeliveryByTrackingQuery, error) {
	if err := trackingNumber.Validate(); err != nil {
		return GetDeliveryByTrackingQuery{}, err
	}

	return GetDeliveryByTrackingQuery{
		trackingNumber: trackingNumber,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryByTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryByTrackingQueryIsNotConstructed)
}

// TrackingNumber returns the tracking number to look up.
func (q GetDeliveryByTrackingQuery) TrackingNumber() kernel.TrackingNumber {
	return q.trackingNumber
}

// GetDeliveryByTrackingQueryResponse is the public tracking view of a delivery.
type GetDeliveryByTrackingQueryResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Status         string
	EstimatedPrice float64
	ParcelCount    int
}
