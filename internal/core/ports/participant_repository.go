package ports

import (
	"context"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/participant"
)

// ParticipantRepository defines the persistence contract for participant aggregates.
type ParticipantRepository interface {
	// Add persists a new participant aggregate to storage.
	Add(ctx context.Context, aggregate *participant.Participant) error

	// Get retrieves a participant aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*participant.Participant, error)

	// Exists reports whether a participant with the given identifier is registered.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
