package commands

import (
	"context"

	"parcelmarket/internal/core/domain/model/trip"
)

// UpdateTripStatusResult reports the outcome of a trip status change. When a
// trip is completed or canceled while deliveries are still in flight, the
// change goes through and AffectedDeliveries carries their count as a warning.
type UpdateTripStatusResult struct {
	Trip               *trip.Trip
	AffectedDeliveries int
}

// UpdateTripStatusCommandHandler handles trip lifecycle transitions.
type UpdateTripStatusCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewUpdateTripStatusCommandHandler creates a handler for trip status changes.
func NewUpdateTripStatusCommandHandler(uowFactory TripUoWFactory) UpdateTripStatusCommandHandler {
	return UpdateTripStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip status change command.
// Ending a trip never blocks on its deliveries; callers decide what to do with
// the reported count.
func (h *UpdateTripStatusCommandHandler) Handle(ctx context.Context, cmd UpdateTripStatusCommand) (UpdateTripStatusResult, error) {
	if err := cmd.Validate(); err != nil {
		return UpdateTripStatusResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return UpdateTripStatusResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	targetTrip, err := uow.TripRepository().Get(ctx, cmd.TripID())
	if err != nil {
		return UpdateTripStatusResult{}, err
	}

	if err = targetTrip.ChangeStatus(cmd.Target()); err != nil {
		return UpdateTripStatusResult{}, err
	}

	affected := 0
	if targetTrip.Status().IsTerminal() {
		active, err := uow.DeliveryRepository().GetActiveBoundToTrip(ctx, targetTrip.ID())
		if err != nil {
			return UpdateTripStatusResult{}, err
		}
		affected = len(active)
	}

	if err = uow.TripRepository().Update(ctx, targetTrip); err != nil {
		return UpdateTripStatusResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return UpdateTripStatusResult{}, err
	}

	return UpdateTripStatusResult{
		Trip:               targetTrip,
		AffectedDeliveries: affected,
	}, nil
}
