package delivery

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery constructor")
)

// Delivery is the aggregate root for one shipment contract.
//
// Delivery follows these invariants:
//   - Must have valid sender, receiver, and (if bound) trip identifiers
//   - Pickup and delivery addresses must be constructed Addresses
//   - Must reference at least one parcel; the parcel set is fixed at creation
//   - The tracking number is assigned once and never regenerated
//   - Status transitions follow the delivery lifecycle table
//   - The actual price is recorded at most once, when the delivery completes
type Delivery struct {
	id         kernel.UUID
	senderID   kernel.UUID
	receiverID kernel.UUID

	// tripID is the transport leg carrying this delivery (nil when unassigned)
	tripID *kernel.UUID

	pickupAddress        kernel.Address
	deliveryAddress      kernel.Address
	pickupInstructions   string
	deliveryInstructions string

	trackingNumber kernel.TrackingNumber

	estimatedPrice kernel.Money
	actualPrice    kernel.Money

	parcelIDs []kernel.UUID
	status    Status

	isConstructed bool
}

// NewDelivery creates a Delivery at the start of its lifecycle. The initial status
// is RESERVED when a trip is already attached and UNASSIGNED otherwise.
//
// The parcel list must be non-empty; existence of the referenced parcels and trip
// is checked by the application layer, which also performs the capacity check
// before attaching a trip.
func NewDelivery(
	id kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	tripID *kernel.UUID,
	pickupAddress kernel.Address,
	deliveryAddress kernel.Address,
	pickupInstructions string,
	deliveryInstructions string,
	trackingNumber kernel.TrackingNumber,
	estimatedPrice kernel.Money,
	parcelIDs []kernel.UUID,
) (*Delivery, error) {
	d := &Delivery{
		pickupInstructions:   pickupInstructions,
		deliveryInstructions: deliveryInstructions,
		estimatedPrice:       estimatedPrice,
		status:               StatusUnassigned,
		isConstructed:        true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setSenderID(senderID),
		d.setReceiverID(receiverID),
		d.setTripID(tripID),
		d.setPickupAddress(pickupAddress),
		d.setDeliveryAddress(deliveryAddress),
		d.setTrackingNumber(trackingNumber),
		d.setParcelIDs(parcelIDs),
	); err != nil {
		return nil, err
	}

	if d.tripID != nil {
		d.status = StatusReserved
	}

	return d, nil
}

// RestoreDelivery rehydrates a Delivery from persistence. The status must be a
// valid enumeration value; no lifecycle rules are re-run.
func RestoreDelivery(
	id kernel.UUID,
	senderID kernel.UUID,
	receiverID kernel.UUID,
	tripID *kernel.UUID,
	pickupAddress kernel.Address,
	deliveryAddress kernel.Address,
	pickupInstructions string,
	deliveryInstructions string,
	trackingNumber kernel.TrackingNumber,
	estimatedPrice kernel.Money,
	actualPrice kernel.Money,
	parcelIDs []kernel.UUID,
	status Status,
) (*Delivery, error) {
	if err := errors.Join(
		id.Validate(),
		senderID.Validate(),
		receiverID.Validate(),
		pickupAddress.Validate(),
		deliveryAddress.Validate(),
		trackingNumber.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if tripID != nil {
		if err := tripID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Delivery{
		id:                   id,
		senderID:             senderID,
		receiverID:           receiverID,
		tripID:               tripID,
		pickupAddress:        pickupAddress,
		deliveryAddress:      deliveryAddress,
		pickupInstructions:   pickupInstructions,
		deliveryInstructions: deliveryInstructions,
		trackingNumber:       trackingNumber,
		estimatedPrice:       estimatedPrice,
		actualPrice:          actualPrice,
		parcelIDs:            parcelIDs,
		status:               status,
		isConstructed:        true,
	}, nil
}

// Validate ensures the Delivery instance was properly constructed.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// IsEqual compares two deliveries by their unique identifiers.
func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// SenderID returns the sending client's identifier.
func (d *Delivery) SenderID() kernel.UUID {
	return d.senderID
}

// ReceiverID returns the receiving client's identifier.
func (d *Delivery) ReceiverID() kernel.UUID {
	return d.receiverID
}

// TripID returns the attached trip's identifier, or nil when unassigned.
func (d *Delivery) TripID() *kernel.UUID {
	return d.tripID
}

// PickupAddress returns the pickup address.
func (d *Delivery) PickupAddress() kernel.Address {
	return d.pickupAddress
}

// DeliveryAddress returns the destination address.
func (d *Delivery) DeliveryAddress() kernel.Address {
	return d.deliveryAddress
}

// PickupInstructions returns the free-text pickup instructions.
func (d *Delivery) PickupInstructions() string {
	return d.pickupInstructions
}

// DeliveryInstructions returns the free-text delivery instructions.
func (d *Delivery) DeliveryInstructions() string {
	return d.deliveryInstructions
}

// TrackingNumber returns the unique tracking number assigned at creation.
func (d *Delivery) TrackingNumber() kernel.TrackingNumber {
	return d.trackingNumber
}

// EstimatedPrice returns the agreed price recorded at creation.
func (d *Delivery) EstimatedPrice() kernel.Money {
	return d.estimatedPrice
}

// ActualPrice returns the final charged price, zero until the delivery completes.
func (d *Delivery) ActualPrice() kernel.Money {
	return d.actualPrice
}

// ParcelIDs returns the identifiers of the parcels bound to this delivery.
func (d *Delivery) ParcelIDs() []kernel.UUID {
	return d.parcelIDs
}

// Status returns the current lifecycle status.
func (d *Delivery) Status() Status {
	return d.status
}

// ChangeStatus moves the delivery along one edge of its lifecycle table. Reaching
// DELIVERED records the actual price as the estimated price if none was recorded
// before. An illegal target is rejected and no field is mutated.
func (d *Delivery) ChangeStatus(target Status) error {
	newStatus, err := d.status.TransitionTo(target)
	if err != nil {
		return err
	}

	d.status = newStatus
	if newStatus == StatusDelivered && d.actualPrice.IsZero() {
		d.actualPrice = d.estimatedPrice
	}
	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setSenderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("senderID", err)
	}
	d.senderID = id
	return nil
}

func (d *Delivery) setReceiverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("receiverID", err)
	}
	d.receiverID = id
	return nil
}

func (d *Delivery) setTripID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("tripID", err)
	}
	d.tripID = id
	return nil
}

func (d *Delivery) setPickupAddress(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickupAddress", err)
	}
	d.pickupAddress = a
	return nil
}

func (d *Delivery) setDeliveryAddress(a kernel.Address) error {
	if err := a.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryAddress", err)
	}
	d.deliveryAddress = a
	return nil
}

func (d *Delivery) setTrackingNumber(tn kernel.TrackingNumber) error {
	if err := tn.Validate(); err != nil {
		return err
	}
	d.trackingNumber = tn
	return nil
}

func (d *Delivery) setParcelIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return errs.NewValueIsRequiredError("parcelIDs")
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsInvalidErrorWithCause("parcelIDs", err)
		}
	}
	d.parcelIDs = ids
	return nil
}
