package commands

import (
	"context"
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/invoice"
	"parcelmarket/internal/pkg/errs"
)

// UpdateInvoiceStatusCommandHandler handles invoice settlement corrections.
//
// PENDING, PAID, PARTIAL, and FAILED are open to any resolvable actor;
// cancelling or refunding an invoice requires an administrator.
type UpdateInvoiceStatusCommandHandler struct {
	uowFactory InvoiceUoWFactory
	clock      func() time.Time
}

// NewUpdateInvoiceStatusCommandHandler creates a handler for invoice status changes.
func NewUpdateInvoiceStatusCommandHandler(uowFactory InvoiceUoWFactory) UpdateInvoiceStatusCommandHandler {
	return UpdateInvoiceStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the invoice status change command.
// The payment date follows the status: entering PAID stamps it, leaving PAID
// clears it.
func (h *UpdateInvoiceStatusCommandHandler) Handle(ctx context.Context, cmd UpdateInvoiceStatusCommand) (*invoice.Invoice, error) {
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

	if err := h.authorize(ctx, uow, cmd); err != nil {
		return nil, err
	}

	targetInvoice, err := uow.InvoiceRepository().Get(ctx, cmd.InvoiceID())
	if err != nil {
		return nil, err
	}

	if err = targetInvoice.ChangeStatus(cmd.Target(), h.clock()); err != nil {
		return nil, err
	}

	if err = uow.InvoiceRepository().Update(ctx, targetInvoice); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return targetInvoice, nil
}

func (h *UpdateInvoiceStatusCommandHandler) authorize(ctx context.Context, uow InvoiceUoW, cmd UpdateInvoiceStatusCommand) error {
	if cmd.Target() != invoice.StatusCanceled && cmd.Target() != invoice.StatusRefunded {
		return nil
	}

	actor, err := uow.ParticipantRepository().Get(ctx, cmd.ActorID())
	if err != nil {
		return err
	}

	if !actor.CanAdministrate() {
		return errs.NewValueIsInvalidErrorWithCause(
			"actorID",
			errors.New("cancel and refund require an administrator"),
		)
	}

	return nil
}
