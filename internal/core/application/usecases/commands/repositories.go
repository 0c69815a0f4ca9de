// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"parcelmarket/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ParcelRepoFactory provides access to the parcel repository within a transaction.
	ParcelRepoFactory interface {
		ParcelRepository() ports.ParcelRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// TripRepoFactory provides access to the trip repository within a transaction.
	TripRepoFactory interface {
		TripRepository() ports.TripRepository
	}

	// InvoiceRepoFactory provides access to the invoice repository within a transaction.
	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// ParticipantRepoFactory provides access to the participant repository within a transaction.
	ParticipantRepoFactory interface {
		ParticipantRepository() ports.ParticipantRepository
	}

	// ParcelUoW manages transactions for parcel-only operations.
	ParcelUoW interface {
		TxManager
		ParcelRepoFactory
	}

	// ParcelUoWFactory creates new parcel unit of work instances.
	ParcelUoWFactory interface {
		Create() ParcelUoW
	}

	// DeliveryUoW manages transactions for delivery status operations, which
	// may cascade into the invoice aggregate.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
		InvoiceRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// TripUoW manages transactions for trip operations, which need to inspect
	// the deliveries bound to the trip and resolve the offering traveler.
	TripUoW interface {
		TxManager
		TripRepoFactory
		DeliveryRepoFactory
		ParticipantRepoFactory
	}

	// TripUoWFactory creates new trip unit of work instances.
	TripUoWFactory interface {
		Create() TripUoW
	}

	// InvoiceUoW manages transactions for invoice operations. The participant
	// repository is included because cancel/refund corrections are gated on the
	// acting participant's role.
	InvoiceUoW interface {
		TxManager
		InvoiceRepoFactory
		ParticipantRepoFactory
	}

	// InvoiceUoWFactory creates new invoice unit of work instances.
	InvoiceUoWFactory interface {
		Create() InvoiceUoW
	}

	// ParticipantUoW manages transactions for participant-only operations.
	ParticipantUoW interface {
		TxManager
		ParticipantRepoFactory
	}

	// ParticipantUoWFactory creates new participant unit of work instances.
	ParticipantUoWFactory interface {
		Create() ParticipantUoW
	}

	// UoW manages transactions across every aggregate of the marketplace.
	// Used for delivery assembly, which touches parcels, the trip, the
	// participants, and the issued invoice in one transaction.
	UoW interface {
		TxManager
		ParcelRepoFactory
		DeliveryRepoFactory
		TripRepoFactory
		InvoiceRepoFactory
		ParticipantRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
