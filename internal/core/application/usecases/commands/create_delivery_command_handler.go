package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/invoice"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/pkg/errs"
)

// BillingPolicy carries the configured invoicing rates applied when a delivery
// is created: the platform's commission and the tax rate, both as fractions of
// the final price, and how long the payer has before the invoice is due.
type BillingPolicy struct {
	PlatformFeeRate float64
	TaxRate         float64
	PaymentTerm     time.Duration
}

// CreateDeliveryResult reports the outcome of delivery assembly.
type CreateDeliveryResult struct {
	DeliveryID     kernel.UUID
	InvoiceID      kernel.UUID
	TrackingNumber kernel.TrackingNumber
	FinalPrice     kernel.Money
	ParcelIDs      []kernel.UUID
}

// CreateDeliveryCommandHandler handles the business logic for delivery assembly.
//
// In a single transaction it resolves the sender, receiver, parcels, and
// optional trip, prices the delivery from the parcel estimates plus the
// sender's adjustment, binds the parcels, and issues the draft invoice.
type CreateDeliveryCommandHandler struct {
	uowFactory UoWFactory
	adjuster   services.PriceAdjuster
	billing    BillingPolicy
	clock      func() time.Time
}

// NewCreateDeliveryCommandHandler creates a handler for delivery assembly.
func NewCreateDeliveryCommandHandler(
	uowFactory UoWFactory,
	adjuster services.PriceAdjuster,
	billing BillingPolicy,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		adjuster:   adjuster,
		billing:    billing,
		clock:      time.Now,
	}
}

// Handle processes the delivery assembly command.
//
// Each precondition failure surfaces as its own error: an unresolvable sender,
// receiver, trip, or parcel is an ObjectNotFoundError naming the parameter; an
// already-bound parcel is a validation error; a full trip is a
// CapacityExceededError. Nothing is persisted unless every step succeeds.
func (h *CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) (CreateDeliveryResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateDeliveryResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateDeliveryResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := h.resolveParticipants(ctx, uow, cmd); err != nil {
		return CreateDeliveryResult{}, err
	}

	parcels, err := uow.ParcelRepository().GetByIDs(ctx, cmd.ParcelIDs())
	if err != nil {
		return CreateDeliveryResult{}, err
	}

	if cmd.TripID() != nil {
		if err = h.checkTripCapacity(ctx, uow, *cmd.TripID()); err != nil {
			return CreateDeliveryResult{}, err
		}
	}

	finalPrice, err := h.priceDelivery(parcels, cmd.AdjustmentPercent())
	if err != nil {
		return CreateDeliveryResult{}, err
	}

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		cmd.SenderID(),
		cmd.ReceiverID(),
		cmd.TripID(),
		cmd.PickupAddress(),
		cmd.DeliveryAddress(),
		cmd.PickupInstructions(),
		cmd.DeliveryInstructions(),
		kernel.NewTrackingNumber(),
		finalPrice,
		cmd.ParcelIDs(),
	)
	if err != nil {
		return CreateDeliveryResult{}, err
	}

	if err = uow.DeliveryRepository().Add(ctx, newDelivery); err != nil {
		return CreateDeliveryResult{}, err
	}

	for _, p := range parcels {
		if err = p.BindToDelivery(newDelivery.ID()); err != nil {
			return CreateDeliveryResult{}, err
		}
		if err = p.ChangeStatus(parcel.StatusAccepted); err != nil {
			return CreateDeliveryResult{}, err
		}
		if err = uow.ParcelRepository().Update(ctx, p); err != nil {
			return CreateDeliveryResult{}, err
		}
	}

	newInvoice, err := h.issueInvoice(newDelivery, finalPrice)
	if err != nil {
		return CreateDeliveryResult{}, err
	}

	if err = uow.InvoiceRepository().Add(ctx, newInvoice); err != nil {
		return CreateDeliveryResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateDeliveryResult{}, err
	}

	return CreateDeliveryResult{
		DeliveryID:     newDelivery.ID(),
		InvoiceID:      newInvoice.ID(),
		TrackingNumber: newDelivery.TrackingNumber(),
		FinalPrice:     finalPrice,
		ParcelIDs:      newDelivery.ParcelIDs(),
	}, nil
}

func (h *CreateDeliveryCommandHandler) resolveParticipants(ctx context.Context, uow UoW, cmd CreateDeliveryCommand) error {
	participants := uow.ParticipantRepository()

	senderExists, err := participants.Exists(ctx, cmd.SenderID())
	if err != nil {
		return err
	}
	if !senderExists {
		return errs.NewObjectNotFoundError("senderID", cmd.SenderID())
	}

	receiverExists, err := participants.Exists(ctx, cmd.ReceiverID())
	if err != nil {
		return err
	}
	if !receiverExists {
		return errs.NewObjectNotFoundError("receiverID", cmd.ReceiverID())
	}

	return nil
}

func (h *CreateDeliveryCommandHandler) checkTripCapacity(ctx context.Context, uow UoW, tripID kernel.UUID) error {
	boundTrip, err := uow.TripRepository().Get(ctx, tripID)
	if err != nil {
		return err
	}

	boundCount, err := uow.DeliveryRepository().CountBoundToTrip(ctx, tripID)
	if err != nil {
		return err
	}

	if !boundTrip.CanAcceptDelivery(boundCount) {
		return errs.NewCapacityExceededError(tripID.String(), boundCount, boundTrip.MaxParcels())
	}

	return nil
}

func (h *CreateDeliveryCommandHandler) priceDelivery(parcels []*parcel.Parcel, adjustmentPercent int) (kernel.Money, error) {
	suggested := kernel.Money{}
	for _, p := range parcels {
		suggested = suggested.Add(p.EstimatedPrice())
	}

	return h.adjuster.Adjust(suggested, adjustmentPercent)
}

func (h *CreateDeliveryCommandHandler) issueInvoice(d *delivery.Delivery, finalPrice kernel.Money) (*invoice.Invoice, error) {
	fee, err := kernel.NewMoneyFromFloat(finalPrice.Float64() * h.billing.PlatformFeeRate)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.NewMoneyFromFloat(finalPrice.Float64() * h.billing.TaxRate)
	if err != nil {
		return nil, err
	}

	now := h.clock()
	return invoice.NewInvoice(
		kernel.NewUUID(),
		d.ID(),
		d.SenderID(),
		finalPrice, fee, tax,
		now, now.Add(h.billing.PaymentTerm),
	)
}
