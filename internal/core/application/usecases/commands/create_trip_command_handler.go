package commands

import (
	"context"

	"parcelmarket/internal/core/domain/model/trip"
	"parcelmarket/internal/pkg/errs"
)

// CreateTripCommandHandler handles the business logic for trip announcement.
type CreateTripCommandHandler struct {
	uowFactory TripUoWFactory
}

// NewCreateTripCommandHandler creates a handler for trip announcement.
func NewCreateTripCommandHandler(uowFactory TripUoWFactory) CreateTripCommandHandler {
	return CreateTripCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the trip announcement command.
// The traveler must be a registered participant; the trip starts SCHEDULED.
func (h *CreateTripCommandHandler) Handle(ctx context.Context, cmd CreateTripCommand) (*trip.Trip, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	travelerExists, err := uow.ParticipantRepository().Exists(ctx, cmd.TravelerID())
	if err != nil {
		return nil, err
	}
	if !travelerExists {
		return nil, errs.NewObjectNotFoundError("travelerID", cmd.TravelerID())
	}

	newTrip, err := trip.NewTrip(
		cmd.TripID(),
		cmd.TravelerID(),
		cmd.StartCity(), cmd.StartCountry(),
		cmd.EndCity(), cmd.EndCountry(),
		cmd.StartTime(), cmd.EndTime(),
		cmd.Vehicle(),
		cmd.MaxParcels(),
		cmd.AvailableVolumeM3(),
		cmd.MaxWeightKg(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.TripRepository().Add(ctx, newTrip); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newTrip, nil
}
