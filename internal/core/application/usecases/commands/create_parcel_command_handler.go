package commands

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/services"
)

// CreateParcelResult reports the outcome of parcel registration: the stored
// parcel and the price the estimator suggested for it.
type CreateParcelResult struct {
	ParcelID       kernel.UUID
	SuggestedPrice kernel.Money
}

// CreateParcelCommandHandler handles the business logic for parcel registration.
// Computes the suggested price and persists the parcel in PENDING status.
type CreateParcelCommandHandler struct {
	uowFactory ParcelUoWFactory
	estimator  services.PriceEstimator
}

// NewCreateParcelCommandHandler creates a handler for parcel registration.
func NewCreateParcelCommandHandler(
	uowFactory ParcelUoWFactory,
	estimator services.PriceEstimator,
) CreateParcelCommandHandler {
	return CreateParcelCommandHandler{
		uowFactory: uowFactory,
		estimator:  estimator,
	}
}

// Handle processes the parcel registration command.
// The suggested price is computed from the declared traits before the parcel
// is constructed, so an invalid weight/size pairing fails before touching storage.
func (h *CreateParcelCommandHandler) Handle(ctx context.Context, cmd CreateParcelCommand) (CreateParcelResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateParcelResult{}, err
	}

	suggested, err := h.estimator.Estimate(cmd.Size(), cmd.Category(), cmd.WeightKg(), cmd.Fragile())
	if err != nil {
		return CreateParcelResult{}, err
	}

	newParcel, err := parcel.NewParcel(
		cmd.ParcelID(),
		cmd.Description(),
		cmd.WeightKg(),
		cmd.Size(),
		cmd.Category(),
		cmd.Fragile(),
		cmd.SpecialInstructions(),
		suggested,
	)
	if err != nil {
		return CreateParcelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParcelRepository().Add(ctx, newParcel); err != nil {
		return CreateParcelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateParcelResult{}, err
	}

	return CreateParcelResult{
		ParcelID:       newParcel.ID(),
		SuggestedPrice: suggested,
	}, nil
}
