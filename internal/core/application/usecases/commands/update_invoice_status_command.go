package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/invoice"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrUpdateInvoiceStatusCommandIsNotConstructed = errors.New(
		"UpdateInvoiceStatusCommand must be created via NewUpdateInvoiceStatusCommand constructor",
	)
)

// UpdateInvoiceStatusCommand represents a request to correct an invoice's
// settlement state. The acting participant is part of the command because
// cancellations and refunds are administrator-only.
type UpdateInvoiceStatusCommand struct { //nolint:recvcheck //using for validation
	actorID   kernel.UUID
	invoiceID kernel.UUID
	target    invoice.Status

	guard guard.ConstructorGuard
}

// NewUpdateInvoiceStatusCommand creates a command to change an invoice's status.
// OVERDUE is never a valid request target; it is only entered by the overdue
// marking job.
func NewUpdateInvoiceStatusCommand(
	actorID kernel.UUID,
	invoiceID kernel.UUID,
	target invoice.Status,
) (UpdateInvoiceStatusCommand, error) {
	cmd := UpdateInvoiceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActorID(actorID),
		cmd.setInvoiceID(invoiceID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateInvoiceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateInvoiceStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateInvoiceStatusCommandIsNotConstructed)
}

// ActorID returns the identifier of the participant requesting the change.
func (c UpdateInvoiceStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// InvoiceID returns the identifier of the invoice to update.
func (c UpdateInvoiceStatusCommand) InvoiceID() kernel.UUID {
	return c.invoiceID
}

// Target returns the requested status.
func (c UpdateInvoiceStatusCommand) Target() invoice.Status {
	return c.target
}

func (c *UpdateInvoiceStatusCommand) setActorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actorID", err)
	}

	c.actorID = id
	return nil
}

func (c *UpdateInvoiceStatusCommand) setInvoiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.invoiceID = id
	return nil
}

func (c *UpdateInvoiceStatusCommand) setTarget(target invoice.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == invoice.StatusOverdue {
		return errs.NewValueIsInvalidErrorWithCause(
			"target",
			errors.New("OVERDUE is set by the overdue marking job, not by request"),
		)
	}

	c.target = target
	return nil
}
