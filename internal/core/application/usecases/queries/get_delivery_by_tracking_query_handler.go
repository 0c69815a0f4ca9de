package queries

import (
	"context"
	"database/sql"
	"errors"

	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/ports"
	"parcelmarket/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryByTrackingQueryHandler resolves a tracking number to its delivery.
// Tracking lookups are the hottest read path of the platform, so the handler
// consults the tracking cache first and only falls through to the database
// when the number has not been seen yet. Cache errors are ignored: a broken
// cache degrades the lookup to a database read, it does not fail it.
type GetDeliveryByTrackingQueryHandler struct {
	db    *gorm.DB
	cache ports.TrackingCache
}

// NewGetDeliveryByTrackingQueryHandler creates a handler for tracking lookups.
func NewGetDeliveryByTrackingQueryHandler(
	db *gorm.DB,
	cache ports.TrackingCache,
) GetDeliveryByTrackingQueryHandler {
	return GetDeliveryByTrackingQueryHandler{db: db, cache: cache}
}

// Handle executes the tracking lookup. Returns errs.ErrObjectNotFound when no
// delivery carries the tracking number.
func (h GetDeliveryByTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryByTrackingQuery,
) (GetDeliveryByTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryByTrackingQueryResponse{}, err
	}

	if cachedID, cacheErr := h.cache.Get(ctx, query.TrackingNumber()); cacheErr == nil && cachedID != nil {
		resp, err := h.fetchByID(ctx, *cachedID)
		if err == nil {
			return resp, nil
		}
		if !errors.Is(err, errs.ErrObjectNotFound) {
			return GetDeliveryByTrackingQueryResponse{}, err
		}
		// A stale cache entry points at a delivery that no longer exists;
		// fall through to the tracking number itself.
	}

	resp, err := h.fetchByTrackingNumber(ctx, query.TrackingNumber())
	if err != nil {
		return GetDeliveryByTrackingQueryResponse{}, err
	}

	_ = h.cache.Set(ctx, query.TrackingNumber(), resp.ID)

	return resp, nil
}

func (h GetDeliveryByTrackingQueryHandler) fetchByID(
	ctx context.Context,
	deliveryID kernel.UUID,
) (GetDeliveryByTrackingQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.tracking_number,
			d.status,
			d.estimated_price,
			(SELECT COUNT(*) FROM parcels p WHERE p.delivery_id = d.id)
		FROM deliveries d
		WHERE d.id = ?
	`, deliveryID.String()).Row()

	return scanDeliveryRow(row, "deliveryID", deliveryID.String())
}

func (h GetDeliveryByTrackingQueryHandler) fetchByTrackingNumber(
	ctx context.Context,
	trackingNumber kernel.TrackingNumber,
) (GetDeliveryByTrackingQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.tracking_number,
			d.status,
			d.estimated_price,
			(SELECT COUNT(*) FROM parcels p WHERE p.delivery_id = d.id)
		FROM deliveries d
		WHERE d.tracking_number = ?
	`, trackingNumber.String()).Row()

	return scanDeliveryRow(row, "trackingNumber", trackingNumber.String())
}

func scanDeliveryRow(row *sql.Row, paramName, lookup string) (GetDeliveryByTrackingQueryResponse, error) {
	var resp GetDeliveryByTrackingQueryResponse
	var id uuid.UUID
	var status delivery.Status
	var priceCents int64

	err := row.Scan(
		&id,
		&resp.TrackingNumber,
		&status,
		&priceCents,
		&resp.ParcelCount,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryByTrackingQueryResponse{}, errs.NewObjectNotFoundErrorWithCause(paramName, lookup, err)
	}
	if err != nil {
		return GetDeliveryByTrackingQueryResponse{}, err
	}

	deliveryID, idErr := kernel.UUIDFromBytes(id[:])
	if idErr != nil {
		return GetDeliveryByTrackingQueryResponse{}, idErr
	}
	resp.ID = deliveryID
	resp.Status = status.String()

	price, priceErr := kernel.NewMoney(priceCents)
	if priceErr != nil {
		return GetDeliveryByTrackingQueryResponse{}, priceErr
	}
	resp.EstimatedPrice = price.Float64()

	return resp, nil
}
