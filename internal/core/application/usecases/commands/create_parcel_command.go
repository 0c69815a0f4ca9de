package commands

import (
	"errors"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrCreateParcelCommandIsNotConstructed = errors.New(
		"CreateParcelCommand must be created via NewCreateParcelCommand constructor",
	)
)

// CreateParcelCommand represents a request to register a parcel and obtain its
// suggested shipping price. The parcel starts in PENDING status, unbound to any
// delivery.
type CreateParcelCommand struct { //nolint:recvcheck //using for validation
	parcelID            kernel.UUID
	description         string
	weightKg            float64
	size                parcel.SizeCategory
	category            parcel.Category
	fragile             bool
	specialInstructions string

	guard guard.ConstructorGuard
}

// NewCreateParcelCommand creates a command to register a new parcel.
// Size and category are validated here; the weight/size coupling is enforced by
// the parcel aggregate itself.
func NewCreateParcelCommand(
	parcelID kernel.UUID,
	description string,
	weightKg float64,
	size parcel.SizeCategory,
	category parcel.Category,
	fragile bool,
	specialInstructions string,
) (CreateParcelCommand, error) {
	cmd := CreateParcelCommand{
		fragile:             fragile,
		specialInstructions: specialInstructions,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setParcelID(parcelID),
		cmd.setDescription(description),
		cmd.setWeight(weightKg),
		cmd.setSize(size),
		cmd.setCategory(category),
	); err != nil {
		return CreateParcelCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateParcelCommand) Validate() error {
	return c.guard.Validate(ErrCreateParcelCommandIsNotConstructed)
}

// ParcelID returns the unique identifier for the parcel.
func (c CreateParcelCommand) ParcelID() kernel.UUID {
	return c.parcelID
}

// Description returns the free-text description of the parcel contents.
func (c CreateParcelCommand) Description() string {
	return c.description
}

// WeightKg returns the declared parcel weight in kilograms.
func (c CreateParcelCommand) WeightKg() float64 {
	return c.weightKg
}

// Size returns the declared size category.
func (c CreateParcelCommand) Size() parcel.SizeCategory {
	return c.size
}

// Category returns the declared contents category.
func (c CreateParcelCommand) Category() parcel.Category {
	return c.category
}

// Fragile reports whether the parcel needs fragile handling.
func (c CreateParcelCommand) Fragile() bool {
	return c.fragile
}

// SpecialInstructions returns any handling notes for the traveler.
func (c CreateParcelCommand) SpecialInstructions() string {
	return c.specialInstructions
}

func (c *CreateParcelCommand) setParcelID(parcelID kernel.UUID) error {
	if err := parcelID.Validate(); err != nil {
		return err
	}

	c.parcelID = parcelID
	return nil
}

func (c *CreateParcelCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}

	c.description = description
	return nil
}

func (c *CreateParcelCommand) setWeight(weightKg float64) error {
	if weightKg <= 0 {
		return errs.NewValueIsInvalidError("weightKg")
	}

	c.weightKg = weightKg
	return nil
}

func (c *CreateParcelCommand) setSize(size parcel.SizeCategory) error {
	if err := size.Validate(); err != nil {
		return err
	}

	c.size = size
	return nil
}

func (c *CreateParcelCommand) setCategory(category parcel.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	c.category = category
	return nil
}
