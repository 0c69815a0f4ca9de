package commands

import (
	"context"

	"parcelmarket/internal/core/domain/model/participant"
)

// RegisterParticipantCommandHandler handles marketplace account registration.
type RegisterParticipantCommandHandler struct {
	uowFactory ParticipantUoWFactory
}

// NewRegisterParticipantCommandHandler creates a handler for participant registration.
func NewRegisterParticipantCommandHandler(uowFactory ParticipantUoWFactory) RegisterParticipantCommandHandler {
	return RegisterParticipantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command.
func (h *RegisterParticipantCommandHandler) Handle(ctx context.Context, cmd RegisterParticipantCommand) (*participant.Participant, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newParticipant, err := participant.NewParticipant(cmd.ParticipantID(), cmd.Name(), cmd.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ParticipantRepository().Add(ctx, newParticipant); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newParticipant, nil
}
