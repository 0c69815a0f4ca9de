package ports

import (
	"context"
	"time"

	"parcelmarket/internal/core/domain/model/invoice"
	"parcelmarket/internal/core/domain/model/kernel"
)

// InvoiceRepository defines the persistence contract for invoice aggregates.
type InvoiceRepository interface {
	// Add persists a new invoice aggregate to storage.
	Add(ctx context.Context, aggregate *invoice.Invoice) error

	// Update persists changes to an existing invoice aggregate.
	Update(ctx context.Context, aggregate *invoice.Invoice) error

	// Get retrieves an invoice aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*invoice.Invoice, error)

	// GetByDelivery retrieves the invoice issued for the given delivery.
	GetByDelivery(ctx context.Context, deliveryID kernel.UUID) (*invoice.Invoice, error)

	// GetPendingDueBefore retrieves pending invoices whose due date has passed.
	// Used by the overdue marking job.
	GetPendingDueBefore(ctx context.Context, cutoff time.Time) ([]*invoice.Invoice, error)
}
