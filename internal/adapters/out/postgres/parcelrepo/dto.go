// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. It implements the repository pattern for the parcel
// aggregate, converting between domain entities and database rows.
package parcelrepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
// CreatedAt backs the orphan cleanup cutoff: a parcel with a NULL delivery_id
// older than the retention window is eligible for removal.
type ParcelDTO struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryID          *uuid.UUID `gorm:"type:uuid;index"`
	Description         string     `gorm:"type:varchar(512);not null"`
	WeightKg            float64    `gorm:"type:numeric;not null"`
	Size                int        `gorm:"type:int;not null"`
	Category            int        `gorm:"type:int;not null"`
	Fragile             bool       `gorm:"not null"`
	SpecialInstructions string     `gorm:"type:varchar(512)"`
	EstimatedPrice      int64      `gorm:"type:bigint;not null"`
	Status              int        `gorm:"type:int;not null;index"`
	CreatedAt           time.Time  `gorm:"autoCreateTime;index"`

	Images []ParcelImageDTO `gorm:"foreignKey:ParcelID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// ParcelImageDTO represents one stored image reference attached to a parcel.
type ParcelImageDTO struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	ParcelID uuid.UUID `gorm:"type:uuid;not null;index"`
	URL      string    `gorm:"type:varchar(1024);not null"`
	Title    string    `gorm:"type:varchar(255)"`
}

// TableName specifies the database table name for parcel image references.
func (ParcelImageDTO) TableName() string {
	return "parcel_images"
}

// fromDomain converts a parcel domain aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	var deliveryID *uuid.UUID
	if id := aggregate.DeliveryID(); id != nil {
		raw := id.Bytes()
		deliveryID = &raw
	}

	images := make([]ParcelImageDTO, 0, len(aggregate.Images()))
	for _, ref := range aggregate.Images() {
		images = append(images, ParcelImageDTO{
			ParcelID: aggregate.ID().Bytes(),
			URL:      ref.URL(),
			Title:    ref.Title(),
		})
	}

	return ParcelDTO{
		ID:                  aggregate.ID().Bytes(),
		DeliveryID:          deliveryID,
		Description:         aggregate.Description(),
		WeightKg:            aggregate.WeightKg(),
		Size:                int(aggregate.Size()),
		Category:            int(aggregate.Category()),
		Fragile:             aggregate.Fragile(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		EstimatedPrice:      aggregate.EstimatedPrice().Cents(),
		Status:              int(aggregate.Status()),
		Images:              images,
	}
}

// toDomain converts a database DTO to a parcel domain aggregate using RestoreParcel.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var deliveryID *kernel.UUID
	if dto.DeliveryID != nil {
		dID, deliveryErr := kernel.UUIDFromBytes((*dto.DeliveryID)[:])
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		deliveryID = &dID
	}

	images := make([]parcel.ImageRef, 0, len(dto.Images))
	for _, imageDTO := range dto.Images {
		ref, refErr := parcel.NewImageRef(imageDTO.URL, imageDTO.Title)
		if refErr != nil {
			return nil, refErr
		}
		images = append(images, ref)
	}

	price, err := kernel.NewMoney(dto.EstimatedPrice)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		id,
		deliveryID,
		dto.Description,
		dto.WeightKg,
		parcel.SizeCategory(dto.Size),
		parcel.Category(dto.Category),
		dto.Fragile,
		dto.SpecialInstructions,
		images,
		price,
		parcel.Status(dto.Status),
	)
}
