package delivery

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery. Transitions are validated
// against an explicit adjacency table (see the package documentation for the
// diagram); an illegal request is rejected with a typed InvalidTransitionError and
// leaves the status untouched.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	StatusUnassigned
	StatusReserved
	StatusPending
	StatusAccepted
	StatusPaymentPending
	StatusPaymentSuccess
	StatusPaymentFailed
	StatusPickedUp
	StatusInTransit
	StatusDelivered
	StatusCanceled
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "UNKNOWN",
		StatusUnassigned:     "UNASSIGNED",
		StatusReserved:       "RESERVED",
		StatusPending:        "PENDING",
		StatusAccepted:       "ACCEPTED",
		StatusPaymentPending: "PAYMENT_PENDING",
		StatusPaymentSuccess: "PAYMENT_SUCCESS",
		StatusPaymentFailed:  "PAYMENT_FAILED",
		StatusPickedUp:       "PICKED_UP",
		StatusInTransit:      "IN_TRANSIT",
		StatusDelivered:      "DELIVERED",
		StatusCanceled:       "CANCELED",
		StatusFailed:         "FAILED",
	}
}

// statusTransitions is the adjacency table of the delivery state machine.
// CANCELED and FAILED appear as targets of every non-terminal state.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusUnassigned:     {StatusReserved, StatusCanceled, StatusFailed},
		StatusReserved:       {StatusPending, StatusCanceled, StatusFailed},
		StatusPending:        {StatusAccepted, StatusCanceled, StatusFailed},
		StatusAccepted:       {StatusPaymentPending, StatusCanceled, StatusFailed},
		StatusPaymentPending: {StatusPaymentSuccess, StatusPaymentFailed, StatusCanceled, StatusFailed},
		StatusPaymentSuccess: {StatusPickedUp, StatusCanceled, StatusFailed},
		StatusPaymentFailed:  {StatusPaymentPending, StatusCanceled, StatusFailed},
		StatusPickedUp:       {StatusInTransit, StatusCanceled, StatusFailed},
		StatusInTransit:      {StatusDelivered, StatusCanceled, StatusFailed},
		StatusDelivered:      {},
		StatusCanceled:       {},
		StatusFailed:         {},
	}
}

// StatusFromString parses the wire representation of a delivery status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"deliveryStatus",
		fmt.Errorf("%q is not a valid delivery status", s),
	)
}

// Validate checks that the value is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryStatus",
			fmt.Errorf("%d is not a valid delivery status", s),
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
// InvalidTransitionError identifying both states otherwise. A no-op request
// (target == s) is rejected as illegal.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return StatusUnknown, err
	}
	if !s.CanTransitionTo(target) {
		return StatusUnknown, errs.NewInvalidTransitionError("delivery", s.String(), target.String())
	}
	return target, nil
}
