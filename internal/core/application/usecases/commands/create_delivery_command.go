package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrCreateDeliveryCommandIsNotConstructed = errors.New(
		"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
	)
)

// CreateDeliveryCommand represents a request to assemble a delivery from
// registered parcels: sender, receiver, both addresses, the optional trip,
// and a bounded percentage adjustment of the suggested price.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	senderID   kernel.UUID
	receiverID kernel.UUID
	tripID     *kernel.UUID

	parcelIDs []kernel.UUID

	pickupAddress        kernel.Address
	deliveryAddress      kernel.Address
	pickupInstructions   string
	deliveryInstructions string

	adjustmentPercent int

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a command to assemble a delivery.
// The adjustment percentage must lie within the bounds the price adjuster
// enforces; rejecting it here keeps malformed requests out of the transaction.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	tripID *kernel.UUID,
	parcelIDs []kernel.UUID,
	pickupAddress kernel.Address,
	deliveryAddress kernel.Address,
	pickupInstructions string,
	deliveryInstructions string,
	adjustmentPercent int,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		pickupInstructions:   pickupInstructions,
		deliveryInstructions: deliveryInstructions,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setSenderID(senderID),
		cmd.setReceiverID(receiverID),
		cmd.setTripID(tripID),
		cmd.setParcelIDs(parcelIDs),
		cmd.setAddresses(pickupAddress, deliveryAddress),
		cmd.setAdjustmentPercent(adjustmentPercent),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the unique identifier for the delivery.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

// SenderID returns the identifier of the sending participant.
func (c CreateDeliveryCommand) SenderID() kernel.UUID {
	return c.senderID
}

// ReceiverID returns the identifier of the receiving participant.
func (c CreateDeliveryCommand) ReceiverID() kernel.UUID {
	return c.receiverID
}

// TripID returns the identifier of the trip to bind, or nil for an unassigned delivery.
func (c CreateDeliveryCommand) TripID() *kernel.UUID {
	return c.tripID
}

// ParcelIDs returns the identifiers of the parcels to ship.
func (c CreateDeliveryCommand) ParcelIDs() []kernel.UUID {
	return c.parcelIDs
}

// PickupAddress returns the address the parcels are collected at.
func (c CreateDeliveryCommand) PickupAddress() kernel.Address {
	return c.pickupAddress
}

// DeliveryAddress returns the address the parcels are delivered to.
func (c CreateDeliveryCommand) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

// PickupInstructions returns notes for the pickup.
func (c CreateDeliveryCommand) PickupInstructions() string {
	return c.pickupInstructions
}

// DeliveryInstructions returns notes for the dropoff.
func (c CreateDeliveryCommand) DeliveryInstructions() string {
	return c.deliveryInstructions
}

// AdjustmentPercent returns the sender's percentage adjustment of the suggested price.
func (c CreateDeliveryCommand) AdjustmentPercent() int {
	return c.adjustmentPercent
}

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderID", err)
	}

	c.senderID = id
	return nil
}

func (c *CreateDeliveryCommand) setReceiverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiverID", err)
	}

	c.receiverID = id
	return nil
}

func (c *CreateDeliveryCommand) setTripID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("tripID", err)
	}

	c.tripID = id
	return nil
}

func (c *CreateDeliveryCommand) setParcelIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("parcelIDs")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("parcelIDs", err)
		}
	}

	c.parcelIDs = ids
	return nil
}

func (c *CreateDeliveryCommand) setAddresses(pickup, dropoff kernel.Address) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupAddress", err)
	}
	if err := dropoff.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryAddress", err)
	}

	c.pickupAddress = pickup
	c.deliveryAddress = dropoff
	return nil
}

func (c *CreateDeliveryCommand) setAdjustmentPercent(percent int) error {
	if percent < services.MinAdjustmentPercent || percent > services.MaxAdjustmentPercent {
		return errs.NewValueIsOutOfRangeError(
			"adjustmentPercent", percent,
			services.MinAdjustmentPercent, services.MaxAdjustmentPercent,
		)
	}

	c.adjustmentPercent = percent
	return nil
}
