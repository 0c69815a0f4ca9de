package commands

import (
	"context"
	"time"
)

// CleanupOrphanParcelsCommandHandler deletes parcels that were never bound to a
// delivery within the retention window.
type CleanupOrphanParcelsCommandHandler struct {
	uowFactory ParcelUoWFactory
	clock      func() time.Time
}

// NewCleanupOrphanParcelsCommandHandler creates a handler for orphan parcel cleanup.
func NewCleanupOrphanParcelsCommandHandler(uowFactory ParcelUoWFactory) CleanupOrphanParcelsCommandHandler {
	return CleanupOrphanParcelsCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the cleanup command and returns the number of removed parcels.
func (h *CleanupOrphanParcelsCommandHandler) Handle(ctx context.Context, cmd CleanupOrphanParcelsCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cutoff := h.clock().Add(-cmd.Retention())
	removed, err := uow.ParcelRepository().DeleteUnboundBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return removed, nil
}
