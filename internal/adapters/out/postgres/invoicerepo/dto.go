// Package invoicerepo provides data transfer objects and mapping functions for
// invoice persistence.
package invoicerepo

import (
	"time"

	"parcelmarket/internal/core/domain/model/invoice"
	"parcelmarket/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InvoiceDTO represents the database structure for persisting invoice
// aggregates. One invoice per delivery, enforced by the unique index.
type InvoiceDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryID  uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	PayerID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	Amount      int64      `gorm:"type:bigint;not null"`
	PlatformFee int64      `gorm:"type:bigint;not null"`
	TaxAmount   int64      `gorm:"type:bigint;not null"`
	TotalAmount int64      `gorm:"type:bigint;not null"`
	IssueDate   time.Time  `gorm:"not null"`
	DueDate     time.Time  `gorm:"not null;index"`
	PaymentDate *time.Time `gorm:""`
	Status      int        `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for invoice entities.
func (InvoiceDTO) TableName() string {
	return "invoices"
}

// fromDomain converts an invoice domain aggregate to its database representation.
func fromDomain(aggregate *invoice.Invoice) InvoiceDTO {
	var paymentDate *time.Time
	if paid := aggregate.PaymentDate(); paid != nil {
		stamped := *paid
		paymentDate = &stamped
	}

	return InvoiceDTO{
		ID:          aggregate.ID().Bytes(),
		DeliveryID:  aggregate.DeliveryID().Bytes(),
		PayerID:     aggregate.PayerID().Bytes(),
		Amount:      aggregate.Amount().Cents(),
		PlatformFee: aggregate.PlatformFee().Cents(),
		TaxAmount:   aggregate.TaxAmount().Cents(),
		TotalAmount: aggregate.TotalAmount().Cents(),
		IssueDate:   aggregate.IssueDate(),
		DueDate:     aggregate.DueDate(),
		PaymentDate: paymentDate,
		Status:      int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an invoice domain aggregate using RestoreInvoice.
func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}

	payerID, err := kernel.UUIDFromBytes(dto.PayerID[:])
	if err != nil {
		return nil, err
	}

	amount, err := kernel.NewMoney(dto.Amount)
	if err != nil {
		return nil, err
	}

	platformFee, err := kernel.NewMoney(dto.PlatformFee)
	if err != nil {
		return nil, err
	}

	taxAmount, err := kernel.NewMoney(dto.TaxAmount)
	if err != nil {
		return nil, err
	}

	totalAmount, err := kernel.NewMoney(dto.TotalAmount)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		deliveryID,
		payerID,
		amount, platformFee, taxAmount, totalAmount,
		dto.IssueDate, dto.DueDate,
		dto.PaymentDate,
		invoice.Status(dto.Status),
	)
}
