package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetByTrackingNumber retrieves a delivery aggregate by its tracking number.
	GetByTrackingNumber(ctx context.Context, trackingNumber kernel.TrackingNumber) (*delivery.Delivery, error)

	// CountBoundToTrip counts the deliveries referencing the trip, excluding
	// canceled ones. Used to enforce the trip's parcel capacity.
	CountBoundToTrip(ctx context.Context, tripID kernel.UUID) (int, error)

	// GetActiveBoundToTrip retrieves the non-terminal deliveries referencing
	// the trip. Used to warn when a trip with live deliveries is canceled.
	GetActiveBoundToTrip(ctx context.Context, tripID kernel.UUID) ([]*delivery.Delivery, error)
}
