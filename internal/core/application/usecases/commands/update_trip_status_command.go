package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/trip"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrUpdateTripStatusCommandIsNotConstructed = errors.New(
		"UpdateTripStatusCommand must be created via NewUpdateTripStatusCommand constructor",
	)
)

// UpdateTripStatusCommand represents a request to move a trip along one edge of
// its lifecycle.
type UpdateTripStatusCommand struct { //nolint:recvcheck //using for validation
	tripID kernel.UUID
	target trip.Status

	guard guard.ConstructorGuard
}

// NewUpdateTripStatusCommand creates a command to change a trip's status.
func NewUpdateTripStatusCommand(tripID kernel.UUID, target trip.Status) (UpdateTripStatusCommand, error) {
	cmd := UpdateTripStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateTripStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateTripStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateTripStatusCommandIsNotConstructed)
}

// TripID returns the identifier of the trip to update.
func (c UpdateTripStatusCommand) TripID() kernel.UUID {
	return c.tripID
}

// Target returns the requested status.
func (c UpdateTripStatusCommand) Target() trip.Status {
	return c.target
}

func (c *UpdateTripStatusCommand) setTripID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tripID = id
	return nil
}

func (c *UpdateTripStatusCommand) setTarget(target trip.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}
