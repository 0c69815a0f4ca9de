package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
)

// TrackingCache caches tracking-number lookups so public tracking queries do
// not hit the database on every request. A cache miss is reported with a nil
// entry, not an error.
type TrackingCache interface {
	// Get returns the cached delivery identifier for the tracking number, or
	// nil when the entry is absent.
	Get(ctx context.Context, trackingNumber kernel.TrackingNumber) (*kernel.UUID, error)

	// Set caches the delivery identifier for the tracking number.
	Set(ctx context.Context, trackingNumber kernel.TrackingNumber, deliveryID kernel.UUID) error
}
