// Package triprepo provides data transfer objects and mapping functions for
// trip persistence.
package triprepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/trip"

	"github.com/google/uuid"
)

// TripDTO represents the database structure for persisting trip aggregates.
type TripDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	TravelerID        uuid.UUID `gorm:"type:uuid;not null;index"`
	StartCity         string    `gorm:"type:varchar(255);not null"`
	StartCountry      string    `gorm:"type:varchar(255);not null"`
	EndCity           string    `gorm:"type:varchar(255);not null"`
	EndCountry        string    `gorm:"type:varchar(255);not null"`
	StartTime         time.Time `gorm:"not null"`
	EndTime           time.Time `gorm:"not null"`
	Vehicle           int       `gorm:"type:int;not null"`
	MaxParcels        int       `gorm:"type:int;not null"`
	AvailableVolumeM3 float64   `gorm:"type:numeric;not null"`
	MaxWeightKg       float64   `gorm:"type:numeric;not null"`
	Status            int       `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for trip entities.
func (TripDTO) TableName() string {
	return "trips"
}

// fromDomain converts a trip domain aggregate to its database representation.
func fromDomain(aggregate *trip.Trip) TripDTO {
	return TripDTO{
		ID:                aggregate.ID().Bytes(),
		TravelerID:        aggregate.TravelerID().Bytes(),
		StartCity:         aggregate.StartCity(),
		StartCountry:      aggregate.StartCountry(),
		EndCity:           aggregate.EndCity(),
		EndCountry:        aggregate.EndCountry(),
		StartTime:         aggregate.StartTime(),
		EndTime:           aggregate.EndTime(),
		Vehicle:           int(aggregate.Vehicle()),
		MaxParcels:        aggregate.MaxParcels(),
		AvailableVolumeM3: aggregate.AvailableVolumeM3(),
		MaxWeightKg:       aggregate.MaxWeightKg(),
		Status:            int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a trip domain aggregate using RestoreTrip.
func toDomain(dto TripDTO) (*trip.Trip, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	travelerID, err := kernel.UUIDFromBytes(dto.TravelerID[:])
	if err != nil {
		return nil, err
	}

	return trip.RestoreTrip(
		id,
		travelerID,
		dto.StartCity, dto.StartCountry,
		dto.EndCity, dto.EndCountry,
		dto.StartTime, dto.EndTime,
		trip.VehicleType(dto.Vehicle),
		dto.MaxParcels,
		dto.AvailableVolumeM3,
		dto.MaxWeightKg,
		trip.Status(dto.Status),
	)
}
