package commands

import (
	"errors"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/trip"
	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrCreateTripCommandIsNotConstructed = errors.New(
		"CreateTripCommand must be created via NewCreateTripCommand constructor",
	)
)

// CreateTripCommand represents a traveler's request to announce a transport leg
// deliveries can be bound to.
type CreateTripCommand struct { //nolint:recvcheck //using for validation
	tripID     kernel.UUID
	travelerID kernel.UUID

	startCity    string
	startCountry string
	endCity      string
	endCountry   string

	startTime time.Time
	endTime   time.Time

	vehicle           trip.VehicleType
	maxParcels        int
	availableVolumeM3 float64
	maxWeightKg       float64

	guard guard.ConstructorGuard
}

// NewCreateTripCommand creates a command to announce a trip. Route, schedule,
// and capacity bounds are re-validated by the trip aggregate; only identifiers
// are checked here.
func NewCreateTripCommand(
	tripID kernel.UUID,
	travelerID kernel.UUID,
	startCity, startCountry string,
	endCity, endCountry string,
	startTime, endTime time.Time,
	vehicle trip.VehicleType,
	maxParcels int,
	availableVolumeM3 float64,
	maxWeightKg float64,
) (CreateTripCommand, error) {
	cmd := CreateTripCommand{
		startCity:         startCity,
		startCountry:      startCountry,
		endCity:           endCity,
		endCountry:        endCountry,
		startTime:         startTime,
		endTime:           endTime,
		vehicle:           vehicle,
		maxParcels:        maxParcels,
		availableVolumeM3: availableVolumeM3,
		maxWeightKg:       maxWeightKg,
		guard:             guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setTripID(tripID),
		cmd.setTravelerID(travelerID),
	); err != nil {
		return CreateTripCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateTripCommand) Validate() error {
	return c.guard.Validate(ErrCreateTripCommandIsNotConstructed)
}

// TripID returns the unique identifier for the trip.
func (c CreateTripCommand) TripID() kernel.UUID {
	return c.tripID
}

// TravelerID returns the identifier of the offering traveler.
func (c CreateTripCommand) TravelerID() kernel.UUID {
	return c.travelerID
}

// StartCity returns the departure city.
func (c CreateTripCommand) StartCity() string { return c.startCity }

// StartCountry returns the departure country.
func (c CreateTripCommand) StartCountry() string { return c.startCountry }

// EndCity returns the arrival city.
func (c CreateTripCommand) EndCity() string { return c.endCity }

// EndCountry returns the arrival country.
func (c CreateTripCommand) EndCountry() string { return c.endCountry }

// StartTime returns the scheduled departure time.
func (c CreateTripCommand) StartTime() time.Time { return c.startTime }

// EndTime returns the scheduled arrival time.
func (c CreateTripCommand) EndTime() time.Time { return c.endTime }

// Vehicle returns the vehicle type used for the trip.
func (c CreateTripCommand) Vehicle() trip.VehicleType { return c.vehicle }

// MaxParcels returns the trip's delivery capacity.
func (c CreateTripCommand) MaxParcels() int { return c.maxParcels }

// AvailableVolumeM3 returns the free cargo volume in cubic meters.
func (c CreateTripCommand) AvailableVolumeM3() float64 { return c.availableVolumeM3 }

// MaxWeightKg returns the maximum cargo weight in kilograms.
func (c CreateTripCommand) MaxWeightKg() float64 { return c.maxWeightKg }

func (c *CreateTripCommand) setTripID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.tripID = id
	return nil
}

func (c *CreateTripCommand) setTravelerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("travelerID", err)
	}

	c.travelerID = id
	return nil
}
