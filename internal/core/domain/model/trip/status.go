package trip

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// Status represents the lifecycle state of a trip.
//
// State transitions:
//
//	SCHEDULED ──> IN_PROGRESS ──> COMPLETED
//	    │              │
//	    ├──────────────┴──> CANCELED
//	    └──> COMPLETED
//
// COMPLETED and CANCELED are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	StatusScheduled
	StatusInProgress
	StatusCompleted
	StatusCanceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "UNKNOWN",
		StatusScheduled:  "SCHEDULED",
		StatusInProgress: "IN_PROGRESS",
		StatusCompleted:  "COMPLETED",
		StatusCanceled:   "CANCELED",
	}
}

// statusTransitions is the adjacency table of the trip state machine.
func statusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusScheduled:  {StatusInProgress, StatusCompleted, StatusCanceled},
		StatusInProgress: {StatusCompleted, StatusCanceled},
		StatusCompleted:  {},
		StatusCanceled:   {},
	}
}

// StatusFromString parses the wire representation of a trip status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != StatusUnknown {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"tripStatus",
		fmt.Errorf("%q is not a valid trip status", s),
	)
}

// Validate checks that the value is one of the declared statuses.
func (s Status) Validate() error {
	if _, ok := statusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"tripStatus",
			fmt.Errorf("%d is not a valid trip status", s),
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
		return StatusUnknown, errs.NewInvalidTransitionError("trip", s.String(), target.String())
	}
	return target, nil
}
