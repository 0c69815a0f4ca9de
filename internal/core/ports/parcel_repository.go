package ports

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
)

// ParcelRepository defines the persistence contract for parcel aggregates.
type ParcelRepository interface {
	// Add persists a new parcel aggregate to storage.
	Add(ctx context.Context, aggregate *parcel.Parcel) error

	// Update persists changes to an existing parcel aggregate.
	Update(ctx context.Context, aggregate *parcel.Parcel) error

	// Get retrieves a parcel aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*parcel.Parcel, error)

	// GetByIDs retrieves the parcels with the given identifiers. A missing
	// identifier yields an ObjectNotFoundError rather than a shorter slice.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*parcel.Parcel, error)

	// DeleteUnboundBefore removes parcels that were created before the cutoff
	// and never bound to a delivery. Returns the number of parcels removed.
	DeleteUnboundBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
