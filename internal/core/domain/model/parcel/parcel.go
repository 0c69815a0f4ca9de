package parcel

import (
	"errors"
	"fmt"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
)

var (
	// ErrParcelIsNotConstructed is returned when a Parcel instance was not created
	// through NewParcel or RestoreParcel. This ensures all parcels are properly
	// validated.
	ErrParcelIsNotConstructed = errors.New("Parcel must be created via NewParcel constructor")

	// ErrParcelAlreadyBound is returned when binding a parcel that already belongs
	// to a delivery. The binding is permanent; a parcel can never be moved between
	// deliveries.
	ErrParcelAlreadyBound = errors.New("parcel is already bound to a delivery")
)

// Parcel is the aggregate root for a physical item in the marketplace.
//
// Parcel follows these invariants:
//   - Must have a valid unique identifier
//   - Weight must be positive and inside the size category's weight range
//   - Size category and content category must be valid enumeration values
//   - The estimated price is assigned at construction
//   - Binds to at most one delivery, permanently
//   - Status transitions follow the parcel lifecycle table
type Parcel struct {
	id kernel.UUID

	// deliveryID is the owning delivery (nil until the parcel is bound)
	deliveryID *kernel.UUID

	description         string
	weightKg            float64
	size                SizeCategory
	category            Category
	fragile             bool
	specialInstructions string

	// images holds stored photo references in attachment order
	images []ImageRef

	estimatedPrice kernel.Money
	status         Status

	isConstructed bool
}

// NewParcel creates a freshly estimated Parcel with PENDING status and no owning
// delivery. The estimated price is computed by the estimation service before
// construction; NewParcel only guarantees it is present.
//
// All parameter validation errors are aggregated and returned as one error.
func NewParcel(
	id kernel.UUID,
	description string,
	weightKg float64,
	size SizeCategory,
	category Category,
	fragile bool,
	specialInstructions string,
	estimatedPrice kernel.Money,
) (*Parcel, error) {
	p := &Parcel{
		fragile:             fragile,
		specialInstructions: specialInstructions,
		estimatedPrice:      estimatedPrice,
		status:              StatusPending,
		isConstructed:       true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setDescription(description),
		p.setSize(size),
		p.setCategory(category),
		p.setWeight(weightKg),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreParcel rehydrates a Parcel from persistence without re-running the
// creation-time weight/size coupling check, so historical records whose category
// ranges have since changed still load. The status must be a valid enumeration
// value.
func RestoreParcel(
	id kernel.UUID,
	deliveryID *kernel.UUID,
	description string,
	weightKg float64,
	size SizeCategory,
	category Category,
	fragile bool,
	specialInstructions string,
	images []ImageRef,
	estimatedPrice kernel.Money,
	status Status,
) (*Parcel, error) {
	if err := errors.Join(
		id.Validate(),
		size.Validate(),
		category.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	if deliveryID != nil {
		if err := deliveryID.Validate(); err != nil {
			return nil, err
		}
	}

	return &Parcel{
		id:                  id,
		deliveryID:          deliveryID,
		description:         description,
		weightKg:            weightKg,
		size:                size,
		category:            category,
		fragile:             fragile,
		specialInstructions: specialInstructions,
		images:              images,
		estimatedPrice:      estimatedPrice,
		status:              status,
		isConstructed:       true,
	}, nil
}

// Validate ensures the Parcel instance was properly constructed.
func (p *Parcel) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrParcelIsNotConstructed
	}
	return nil
}

// IsEqual compares two parcels by their unique identifiers.
func (p *Parcel) IsEqual(other *Parcel) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the parcel's unique identifier.
func (p *Parcel) ID() kernel.UUID {
	return p.id
}

// DeliveryID returns the owning delivery's identifier, or nil if the parcel is
// not yet bound.
func (p *Parcel) DeliveryID() *kernel.UUID {
	return p.deliveryID
}

// IsBound reports whether the parcel belongs to a delivery.
func (p *Parcel) IsBound() bool {
	return p.deliveryID != nil
}

// Description returns the free-text description of the contents.
func (p *Parcel) Description() string {
	return p.description
}

// WeightKg returns the parcel weight in kilograms.
func (p *Parcel) WeightKg() float64 {
	return p.weightKg
}

// Size returns the parcel's size category.
func (p *Parcel) Size() SizeCategory {
	return p.size
}

// Category returns the parcel's content category.
func (p *Parcel) Category() Category {
	return p.category
}

// Fragile reports whether the parcel needs fragile handling.
func (p *Parcel) Fragile() bool {
	return p.fragile
}

// SpecialInstructions returns the optional handling instructions.
func (p *Parcel) SpecialInstructions() string {
	return p.specialInstructions
}

// Images returns the stored photo references in attachment order.
func (p *Parcel) Images() []ImageRef {
	return p.images
}

// EstimatedPrice returns the price computed at estimation time.
func (p *Parcel) EstimatedPrice() kernel.Money {
	return p.estimatedPrice
}

// Status returns the current lifecycle status.
func (p *Parcel) Status() Status {
	return p.status
}

// BindToDelivery permanently attaches the parcel to a delivery. Binding an
// already-bound parcel fails with ErrParcelAlreadyBound even for the same
// delivery, so double submission is caught early.
func (p *Parcel) BindToDelivery(deliveryID kernel.UUID) error {
	if err := deliveryID.Validate(); err != nil {
		return err
	}
	if p.deliveryID != nil {
		return errs.NewValueIsInvalidErrorWithCause("parcelID", ErrParcelAlreadyBound)
	}

	p.deliveryID = &deliveryID
	return nil
}

// AttachImage appends a stored photo reference to the parcel.
func (p *Parcel) AttachImage(ref ImageRef) {
	p.images = append(p.images, ref)
}

// Reestimate replaces the estimated price. Prices are otherwise immutable; this is
// the explicit re-estimation path and is only legal while the parcel is unbound.
func (p *Parcel) Reestimate(price kernel.Money) error {
	if p.deliveryID != nil {
		return errs.NewValueIsInvalidErrorWithCause("parcelID", ErrParcelAlreadyBound)
	}
	p.estimatedPrice = price
	return nil
}

// ChangeStatus moves the parcel along one edge of its lifecycle table. An illegal
// target is rejected with an InvalidTransitionError and no field is mutated.
func (p *Parcel) ChangeStatus(target Status) error {
	newStatus, err := p.status.TransitionTo(target)
	if err != nil {
		return err
	}

	p.status = newStatus
	return nil
}

func (p *Parcel) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Parcel) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	p.description = description
	return nil
}

func (p *Parcel) setSize(size SizeCategory) error {
	if err := size.Validate(); err != nil {
		return err
	}
	p.size = size
	return nil
}

func (p *Parcel) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	p.category = category
	return nil
}

func (p *Parcel) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"weight",
			fmt.Errorf("%v is not greater than 0", weightKg),
		)
	}

	// The weight/size coupling is enforced here on the server side rather than
	// trusted from the client's pre-clamped input.
	if p.size != SizeUnknown && !p.size.ContainsWeight(weightKg) {
		minKg, maxKg := p.size.WeightRange()
		return errs.NewValueIsOutOfRangeError("weight", weightKg, minKg, maxKg)
	}

	p.weightKg = weightKg
	return nil
}
