package queries

import (
	"context"

	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetTripDeliveriesQueryHandler retrieves the manifest of a trip from the
// database: every delivery bound to the trip that has not reached a terminal
// state, ordered by tracking number for stable output.
type GetTripDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetTripDeliveriesQueryHandler creates a handler for trip manifest queries.
func NewGetTripDeliveriesQueryHandler(db *gorm.DB) GetTripDeliveriesQueryHandler {
	return GetTripDeliveriesQueryHandler{db: db}
}

// Handle executes the manifest query. A trip with no active deliveries yields
// an empty slice, not an error.
func (h GetTripDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetTripDeliveriesQuery,
) ([]GetTripDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetTripDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			tracking_number,
			status,
			pickup_city,
			delivery_city,
			estimated_price
		FROM deliveries
		WHERE trip_id = ?
		  AND status NOT IN (?, ?, ?)
		ORDER BY tracking_number
	`, query.TripID().String(),
		delivery.StatusDelivered, delivery.StatusCanceled, delivery.StatusFailed,
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetTripDeliveriesQueryResponse
		var id uuid.UUID
		var status delivery.Status
		var priceCents int64

		err = rows.Scan(
			&id,
			&resp.TrackingNumber,
			&status,
			&resp.PickupCity,
			&resp.DeliveryCity,
			&priceCents,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID
		resp.Status = status.String()

		price, priceErr := kernel.NewMoney(priceCents)
		if priceErr != nil {
			return nil, priceErr
		}
		resp.EstimatedPrice = price.Float64()

		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
