package invoice

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Status represents the payment lifecycle state of an invoice.
//
// DRAFT is the issuance state; PENDING means the invoice awaits payment.
// PAID, PARTIAL, and FAILED reflect settlement outcomes and may be corrected
// between each other by an administrator. OVERDUE is entered when a pending
// invoice passes its due date. CANCELED and REFUNDED are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	StatusDraft
	StatusPending
	StatusPaid
	StatusPartial
	StatusFailed
	StatusOverdue
	StatusCanceled
	StatusRefunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:  "UNKNOWN",
		StatusDraft:    "DRAFT",
		StatusPending:  "PENDING",
		StatusPaid:     "PAID",
		StatusPartial:  "PARTIAL",
		StatusFailed:   "FAILED",
		StatusOverdue:  "OVERDUE",
		StatusCanceled: "CANCELED",
		StatusRefunded: "REFUNDED",
	}
}

// statusTransitions is the adjacency table of the invoice state machine.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusDraft:    {StatusPending, StatusCanceled},
		StatusPending:  {StatusPaid, StatusPartial, StatusFailed, StatusOverdue, StatusCanceled},
		StatusPaid:     {StatusPending, StatusPartial, StatusFailed, StatusRefunded},
		StatusPartial:  {StatusPaid, StatusPending, StatusFailed},
		StatusFailed:   {StatusPaid, StatusPending, StatusPartial},
		StatusOverdue:  {StatusPaid, StatusPartial, StatusFailed, StatusPending, StatusCanceled},
		StatusCanceled: {},
		StatusRefunded: {},
	}
}

// StatusFromString parses the wire representation of an invoice status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"invoiceStatus",
		fmt.Errorf("%q is not a valid invoice status", s),
	)
}

// Validate checks that the value is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"invoiceStatus",
			fmt.Errorf("%d is not a valid invoice status", s),
		)
	}
	return nil
}

// String returns the wire name of the status, or "UNKNOWN" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no transitions leave this status.
func (s Status) IsTerminal() bool {
	edges, ok := statusTransitions()[s]
	return ok && len(edges) == 0
}

// CanTransitionTo reports whether the adjacency table defines an edge from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns the target status if the edge s -> target exists, or an
// InvalidTransitionError identifying both states otherwise.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("invoice", s.String(), target.String())
	}
	return target, nil
}
