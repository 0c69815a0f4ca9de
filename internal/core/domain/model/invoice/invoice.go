package invoice

import (
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
)

var (
	// ErrInvoiceIsNotConstructed is returned when an Invoice instance was not
	// created through NewInvoice or RestoreInvoice.
	ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice constructor")
)

// Invoice is the aggregate root for the billing record of a delivery.
//
// Invoice follows these invariants:
//   - References exactly one delivery and one payer
//   - totalAmount always equals amount + platformFee + taxAmount
//   - paymentDate is set if and only if the invoice is PAID
//   - Status transitions follow the invoice lifecycle table
type Invoice struct {
	id         kernel.UUID
	deliveryID kernel.UUID
	payerID    kernel.UUID

	amount      kernel.Money
	platformFee kernel.Money
	taxAmount   kernel.Money
	totalAmount kernel.Money

	issueDate   time.Time
	dueDate     time.Time
	paymentDate *time.Time

	status Status

	isConstructed bool
}

// NewInvoice creates a DRAFT invoice for a delivery. The total is derived from
// the amount breakdown, never passed in.
func NewInvoice(
	id kernel.UUID,
	deliveryID kernel.UUID,
	payerID kernel.UUID,
	amount, platformFee, taxAmount kernel.Money,
	issueDate, dueDate time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		status:        StatusDraft,
		isConstructed: true,
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setDeliveryID(deliveryID),
		inv.setPayerID(payerID),
		inv.setAmounts(amount, platformFee, taxAmount),
		inv.setDates(issueDate, dueDate),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

// RestoreInvoice rehydrates an Invoice from persistence. The stored total must
// still equal the sum of its parts.
func RestoreInvoice(
	id kernel.UUID,
	deliveryID kernel.UUID,
	payerID kernel.UUID,
	amount, platformFee, taxAmount, totalAmount kernel.Money,
	issueDate, dueDate time.Time,
	paymentDate *time.Time,
	status Status,
) (*Invoice, error) {
	if err := errors.Join(
		id.Validate(),
		deliveryID.Validate(),
		payerID.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if !amount.Add(platformFee).Add(taxAmount).IsEqual(totalAmount) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalAmount",
			fmt.Errorf("%s does not equal amount %s + fee %s + tax %s",
				totalAmount, amount, platformFee, taxAmount),
		)
	}

	return &Invoice{
		id:            id,
		deliveryID:    deliveryID,
		payerID:       payerID,
		amount:        amount,
		platformFee:   platformFee,
		taxAmount:     taxAmount,
		totalAmount:   totalAmount,
		issueDate:     issueDate,
		dueDate:       dueDate,
		paymentDate:   paymentDate,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Invoice instance was properly constructed.
func (i *Invoice) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInvoiceIsNotConstructed
	}
	return nil
}

// IsEqual compares two invoices by their unique identifiers.
func (i *Invoice) IsEqual(other *Invoice) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the invoice's unique identifier.
func (i *Invoice) ID() kernel.UUID {
	return i.id
}

// DeliveryID returns the identifier of the billed delivery.
func (i *Invoice) DeliveryID() kernel.UUID {
	return i.deliveryID
}

// PayerID returns the identifier of the participant owing the invoice.
func (i *Invoice) PayerID() kernel.UUID {
	return i.payerID
}

// Amount returns the base delivery charge.
func (i *Invoice) Amount() kernel.Money {
	return i.amount
}

// PlatformFee returns the marketplace commission line.
func (i *Invoice) PlatformFee() kernel.Money {
	return i.platformFee
}

// TaxAmount returns the tax line.
func (i *Invoice) TaxAmount() kernel.Money {
	return i.taxAmount
}

// TotalAmount returns the sum of amount, platform fee, and tax.
func (i *Invoice) TotalAmount() kernel.Money {
	return i.totalAmount
}

// IssueDate returns when the invoice was issued.
func (i *Invoice) IssueDate() time.Time {
	return i.issueDate
}

// DueDate returns the payment deadline.
func (i *Invoice) DueDate() time.Time {
	return i.dueDate
}

// PaymentDate returns when the invoice was paid, or nil if it never was.
func (i *Invoice) PaymentDate() *time.Time {
	return i.paymentDate
}

// Status returns the current lifecycle status.
func (i *Invoice) Status() Status {
	return i.status
}

// IsOverdue reports whether a pending invoice has passed its due date at the
// given moment.
func (i *Invoice) IsOverdue(now time.Time) bool {
	return i.status == StatusPending && now.After(i.dueDate)
}

// ChangeStatus moves the invoice along one edge of its lifecycle table.
// Entering PAID stamps the payment date; leaving it clears the stamp so the
// paymentDate invariant holds across administrative corrections.
func (i *Invoice) ChangeStatus(target Status, now time.Time) error {
	newStatus, err := i.status.TransitionTo(target)
	if err != nil {
		return err
	}

	switch {
	case newStatus == StatusPaid:
		paid := now
		i.paymentDate = &paid
	case i.status == StatusPaid:
		i.paymentDate = nil
	}

	i.status = newStatus
	return nil
}

// MarkOverdue flags a pending invoice past its due date as OVERDUE. Calling it
// on an invoice that is not yet due, or not pending, is rejected.
func (i *Invoice) MarkOverdue(now time.Time) error {
	if !i.IsOverdue(now) {
		return errs.NewInvalidTransitionError("invoice", i.status.String(), StatusOverdue.String())
	}
	return i.ChangeStatus(StatusOverdue, now)
}

// Recalculate replaces the amount breakdown and re-derives the total. Allowed
// only while the invoice is still a draft.
func (i *Invoice) Recalculate(amount, platformFee, taxAmount kernel.Money) error {
	if i.status != StatusDraft {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoice",
			fmt.Errorf("amounts of a %s invoice cannot be changed", i.status),
		)
	}
	return i.setAmounts(amount, platformFee, taxAmount)
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryID", err)
	}
	i.deliveryID = id
	return nil
}

func (i *Invoice) setPayerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("payerID", err)
	}
	i.payerID = id
	return nil
}

func (i *Invoice) setAmounts(amount, platformFee, taxAmount kernel.Money) error {
	if amount.IsZero() {
		return errs.NewValueIsRequiredError("amount")
	}
	i.amount = amount
	i.platformFee = platformFee
	i.taxAmount = taxAmount
	i.totalAmount = amount.Add(platformFee).Add(taxAmount)
	return nil
}

func (i *Invoice) setDates(issueDate, dueDate time.Time) error {
	if issueDate.IsZero() || dueDate.IsZero() {
		return errs.NewValueIsRequiredError("dates")
	}
	if dueDate.Before(issueDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"dueDate",
			fmt.Errorf("due date %s precedes issue date %s", dueDate, issueDate),
		)
	}
	i.issueDate = issueDate
	i.dueDate = dueDate
	return nil
}
