package commands

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/invoice"
)

// UpdateDeliveryStatusCommandHandler handles delivery lifecycle transitions.
//
// Payment transitions cascade to the delivery's invoice in the same
// transaction: entering PAYMENT_PENDING issues the draft invoice, a successful
// payment marks it PAID, a failed one FAILED. Other transitions leave the
// invoice untouched.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      func() time.Time
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for delivery status changes.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the delivery status change command.
// An illegal transition is rejected before anything is written; the delivery
// keeps its current state.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) (*delivery.Delivery, error) {
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

	targetDelivery, err := uow.DeliveryRepository().Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = targetDelivery.ChangeStatus(cmd.Target()); err != nil {
		return nil, err
	}

	if err = uow.DeliveryRepository().Update(ctx, targetDelivery); err != nil {
		return nil, err
	}

	if err = h.cascadeToInvoice(ctx, uow, targetDelivery, cmd.Target()); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return targetDelivery, nil
}

func (h *UpdateDeliveryStatusCommandHandler) cascadeToInvoice(
	ctx context.Context,
	uow DeliveryUoW,
	d *delivery.Delivery,
	target delivery.Status,
) error {
	var invoiceTarget invoice.Status

	switch target {
	case delivery.StatusPaymentPending:
		invoiceTarget = invoice.StatusPending
	case delivery.StatusPaymentSuccess:
		invoiceTarget = invoice.StatusPaid
	case delivery.StatusPaymentFailed:
		invoiceTarget = invoice.StatusFailed
	default:
		return nil
	}

	deliveryInvoice, err := uow.InvoiceRepository().GetByDelivery(ctx, d.ID())
	if err != nil {
		return err
	}

	// Retrying payment on an already-pending invoice is not a transition.
	if deliveryInvoice.Status() == invoiceTarget {
		return nil
	}

	if err = deliveryInvoice.ChangeStatus(invoiceTarget, h.clock()); err != nil {
		return err
	}

	return uow.InvoiceRepository().Update(ctx, deliveryInvoice)
}
