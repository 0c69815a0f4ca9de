package parcel

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a parcel, independent of its price.
//
// State transitions:
//
//	PENDING ──> ACCEPTED ──> REGISTERED ──> PICKED_UP
//	   │            │             │
//	   └────────────┴─────────────┴──> CANCELED
//
// PICKED_UP and CANCELED are terminal. Transitions are validated against an
// explicit adjacency table; an illegal request is rejected with a typed
// InvalidTransitionError and leaves the status untouched.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	StatusPending
	StatusAccepted
	StatusRegistered
	StatusPickedUp
	StatusCanceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusPending:    "PENDING",
		StatusAccepted:   "ACCEPTED",
		StatusRegistered: "REGISTERED",
		StatusPickedUp:   "PICKED_UP",
		StatusCanceled:   "CANCELED",
	}
}

// statusTransitions is the adjacency table of the parcel state machine.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:    {StatusAccepted, StatusCanceled},
		StatusAccepted:   {StatusRegistered, StatusCanceled},
		StatusRegistered: {StatusPickedUp, StatusCanceled},
		StatusPickedUp:   {},
		StatusCanceled:   {},
	}
}

// StatusFromString parses the wire representation of a parcel status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"parcelStatus",
		fmt.Errorf("%q is not a valid parcel status", s),
	)
}

// Validate checks that the value is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"parcelStatus",
			fmt.Errorf("%d is not a valid parcel status", s),
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
		return StatusUnknown, errs.NewInvalidTransitionError("parcel", s.String(), target.String())
	}
	return target, nil
}
