// Package deliveryrepo provides data transfer objects and mapping functions for
// delivery persistence. It implements the repository pattern for the delivery
// aggregate, converting between domain entities and database rows.
package deliveryrepo

import (
	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. The tracking number carries a unique index: it is the public
// identifier of a delivery and is never reassigned.
type DeliveryDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SenderID             uuid.UUID  `gorm:"type:uuid;not null;index"`
	ReceiverID           uuid.UUID  `gorm:"type:uuid;not null;index"`
	TripID               *uuid.UUID `gorm:"type:uuid;index"`
	PickupAddress        AddressDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	DeliveryAddress      AddressDTO `gorm:"embedded;embeddedPrefix:delivery_"`
	PickupInstructions   string     `gorm:"type:varchar(512)"`
	DeliveryInstructions string     `gorm:"type:varchar(512)"`
	TrackingNumber       string     `gorm:"type:varchar(32);not null;uniqueIndex"`
	EstimatedPrice       int64      `gorm:"type:bigint;not null"`
	ActualPrice          int64      `gorm:"type:bigint;not null"`
	Status               int        `gorm:"type:int;not null;index"`

	Parcels []DeliveryParcelDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// AddressDTO represents an embedded postal address within the delivery table.
type AddressDTO struct {
	Number     string `gorm:"type:varchar(32)"`
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(255)"`
	PostalCode string `gorm:"type:varchar(32)"`
	Country    string `gorm:"type:varchar(255)"`
	Complement string `gorm:"type:varchar(255)"`
}

// DeliveryParcelDTO links a delivery to one of its parcels. Membership is
// fixed when the delivery is assembled, so the rows are written once.
type DeliveryParcelDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ParcelID   uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for delivery parcel links.
func (DeliveryParcelDTO) TableName() string {
	return "delivery_parcels"
}

// fromDomain converts a delivery domain aggregate to its database representation.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var tripID *uuid.UUID
	if id := aggregate.TripID(); id != nil {
		raw := id.Bytes()
		tripID = &raw
	}

	parcels := make([]DeliveryParcelDTO, 0, len(aggregate.ParcelIDs()))
	for _, parcelID := range aggregate.ParcelIDs() {
		parcels = append(parcels, DeliveryParcelDTO{
			DeliveryID: aggregate.ID().Bytes(),
			ParcelID:   parcelID.Bytes(),
		})
	}

	return DeliveryDTO{
		ID:                   aggregate.ID().Bytes(),
		SenderID:             aggregate.SenderID().Bytes(),
		ReceiverID:           aggregate.ReceiverID().Bytes(),
		TripID:               tripID,
		PickupAddress:        addressFromDomain(aggregate.PickupAddress()),
		DeliveryAddress:      addressFromDomain(aggregate.DeliveryAddress()),
		PickupInstructions:   aggregate.PickupInstructions(),
		DeliveryInstructions: aggregate.DeliveryInstructions(),
		TrackingNumber:       aggregate.TrackingNumber().String(),
		EstimatedPrice:       aggregate.EstimatedPrice().Cents(),
		ActualPrice:          aggregate.ActualPrice().Cents(),
		Status:               int(aggregate.Status()),
		Parcels:              parcels,
	}
}

func addressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{
		Number:     a.Number(),
		Street:     a.Street(),
		City:       a.City(),
		PostalCode: a.PostalCode(),
		Country:    a.Country(),
		Complement: a.Complement(),
	}
}

// toDomain converts a database DTO to a delivery domain aggregate using RestoreDelivery.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	senderID, err := kernel.UUIDFromBytes(dto.SenderID[:])
	if err != nil {
		return nil, err
	}

	receiverID, err := kernel.UUIDFromBytes(dto.ReceiverID[:])
	if err != nil {
		return nil, err
	}

	var tripID *kernel.UUID
	if dto.TripID != nil {
		tID, tripErr := kernel.UUIDFromBytes((*dto.TripID)[:])
		if tripErr != nil {
			return nil, tripErr
		}
		tripID = &tID
	}

	pickupAddress, err := addressToDomain(dto.PickupAddress)
	if err != nil {
		return nil, err
	}

	deliveryAddress, err := addressToDomain(dto.DeliveryAddress)
	if err != nil {
		return nil, err
	}

	trackingNumber, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	estimatedPrice, err := kernel.NewMoney(dto.EstimatedPrice)
	if err != nil {
		return nil, err
	}

	actualPrice, err := kernel.NewMoney(dto.ActualPrice)
	if err != nil {
		return nil, err
	}

	parcelIDs := make([]kernel.UUID, 0, len(dto.Parcels))
	for _, link := range dto.Parcels {
		parcelID, parcelErr := kernel.UUIDFromBytes(link.ParcelID[:])
		if parcelErr != nil {
			return nil, parcelErr
		}
		parcelIDs = append(parcelIDs, parcelID)
	}

	return delivery.RestoreDelivery(
		id,
		senderID,
		receiverID,
		tripID,
		pickupAddress,
		deliveryAddress,
		dto.PickupInstructions,
		dto.DeliveryInstructions,
		trackingNumber,
		estimatedPrice,
		actualPrice,
		parcelIDs,
		delivery.Status(dto.Status),
	)
}

func addressToDomain(dto AddressDTO) (kernel.Address, error) {
	return kernel.NewAddress(dto.Number, dto.Street, dto.City, dto.PostalCode, dto.Country, dto.Complement)
}
