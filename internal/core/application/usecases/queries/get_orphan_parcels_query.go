package queries

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrGetOrphanParcelsQueryIsNotConstructed = errors.New(
		"GetOrphanParcelsQuery must be created via NewGetOrphanParcelsQuery constructor",
	)
)

// GetOrphanParcelsQuery retrieves parcels that were estimated but never bound
// to a delivery. Operators use this view to see what the cleanup job will
// eventually remove.
type GetOrphanParcelsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOrphanParcelsQuery creates a query for unbound parcels.
// This is a parameterless query that fetches every parcel without a delivery.
func NewGetOrphanParcelsQuery() GetOrphanParcelsQuery {
	return GetOrphanParcelsQuery{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
func (q GetOrphanParcelsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrphanParcelsQueryIsNotConstructed)
}

// GetOrphanParcelsQueryResponse is one parcel awaiting delivery assembly.
type GetOrphanParcelsQueryResponse struct {
	ID             kernel.UUID
	Description    string
	Status         string
	EstimatedPrice float64
	CreatedAt      time.Time
}
