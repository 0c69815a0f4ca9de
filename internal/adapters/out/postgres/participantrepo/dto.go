// Package participantrepo provides data transfer objects and mapping functions
// for participant persistence.
package participantrepo

import (
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/participant"

	"github.com/google/uuid"
)

// ParticipantDTO represents the database structure for persisting participants.
type ParticipantDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`
	Role int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for participant entities.
func (ParticipantDTO) TableName() string {
	return "participants"
}

// fromDomain converts a participant domain aggregate to its database representation.
func fromDomain(aggregate *participant.Participant) ParticipantDTO {
	return ParticipantDTO{
		ID:   aggregate.ID().Bytes(),
		Name: aggregate.Name(),
		Role: int(aggregate.Role()),
	}
}

// toDomain converts a database DTO to a participant domain aggregate.
func toDomain(dto ParticipantDTO) (*participant.Participant, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return participant.RestoreParticipant(id, dto.Name, participant.Role(dto.Role))
}
