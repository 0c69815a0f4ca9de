package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/participant"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrRegisterParticipantCommandIsNotConstructed = errors.New(
		"RegisterParticipantCommand must be created via NewRegisterParticipantCommand constructor",
	)
)

// RegisterParticipantCommand represents a request to register a marketplace
// account with a role.
type RegisterParticipantCommand struct { //nolint:recvcheck //using for validation
	participantID kernel.UUID
	name          string
	role          participant.Role

	guard guard.ConstructorGuard
}

// NewRegisterParticipantCommand creates a command to register a participant.
func NewRegisterParticipantCommand(
	participantID kernel.UUID,
	name string,
	role participant.Role,
) (RegisterParticipantCommand, error) {
	cmd := RegisterParticipantCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParticipantID(participantID),
		cmd.setName(name),
		cmd.setRole(role),
	); err != nil {
		return RegisterParticipantCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterParticipantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterParticipantCommandIsNotConstructed)
}

// ParticipantID returns the unique identifier for the participant.
func (c RegisterParticipantCommand) ParticipantID() kernel.UUID {
	return c.participantID
}

// Name returns the display name.
func (c RegisterParticipantCommand) Name() string {
	return c.name
}

// Role returns the requested role.
func (c RegisterParticipantCommand) Role() participant.Role {
	return c.role
}

func (c *RegisterParticipantCommand) setParticipantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.participantID = id
	return nil
}

func (c *RegisterParticipantCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *RegisterParticipantCommand) setRole(role participant.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}

	c.role = role
	return nil
}
