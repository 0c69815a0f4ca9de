package queries

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrphanParcelsQueryHandler retrieves unbound parcels from the database.
// Canceled parcels are excluded; they are unbound by definition and carry no
// pending work.
type GetOrphanParcelsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrphanParcelsQueryHandler creates a handler for orphan parcel queries.
func NewGetOrphanParcelsQueryHandler(db *gorm.DB) GetOrphanParcelsQueryHandler {
	return GetOrphanParcelsQueryHandler{db: db}
}

// Handle executes the query. No orphans yields an empty slice, not an error.
func (h GetOrphanParcelsQueryHandler) Handle(
	ctx context.Context,
	query GetOrphanParcelsQuery,
) ([]GetOrphanParcelsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	parcels := make([]GetOrphanParcelsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			description,
			status,
			estimated_price,
			created_at
		FROM parcels
		WHERE delivery_id IS NULL
		  AND status != ?
		ORDER BY created_at
	`, parcel.StatusCanceled).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrphanParcelsQueryResponse
		var id uuid.UUID
		var status parcel.Status
		var priceCents int64

		err = rows.Scan(
			&id,
			&resp.Description,
			&status,
			&priceCents,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		parcelID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = parcelID
		resp.Status = status.String()

		price, priceErr := kernel.NewMoney(priceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		resp.EstimatedPrice = price.Float64()

		parcels = append(parcels, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return parcels, nil
}
