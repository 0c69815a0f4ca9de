package trip

import (
	"errors"
	"fmt"
	"time"

	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"
)

var (
	// ErrTripIsNotConstructed is returned when a Trip instance was not created
	// through NewTrip or RestoreTrip.
	ErrTripIsNotConstructed = errors.New("Trip must be created via NewTrip constructor")
)

// Trip is the aggregate root for a traveler's transport leg.
//
// Trip follows these invariants:
//   - Must have a valid traveler identifier and non-empty start/end cities
//   - The scheduled window must be ordered (start before end)
//   - maxParcels, available volume, and max weight must be positive
//   - Status transitions follow the trip lifecycle table
type Trip struct {
	id         kernel.UUID
	travelerID kernel.UUID

	startCity    string
	startCountry string
	endCity      string
	endCountry   string

	startTime time.Time
	endTime   time.Time

	vehicle VehicleType

	// maxParcels bounds the number of non-canceled deliveries referencing the trip
	maxParcels int

	availableVolumeM3 float64
	maxWeightKg       float64

	status Status

	isConstructed bool
}

// NewTrip creates a Trip in SCHEDULED status.
// All parameter validation errors are aggregated and returned as one error.
func NewTrip(
	id kernel.UUID,
	travelerID kernel.UUID,
	startCity, startCountry string,
	endCity, endCountry string,
	startTime, endTime time.Time,
	vehicle VehicleType,
	maxParcels int,
	availableVolumeM3 float64,
	maxWeightKg float64,
) (*Trip, error) {
	t := &Trip{
		startCountry:  startCountry,
		endCountry:    endCountry,
		status:        StatusScheduled,
		isConstructed: true,
	}

	if err := errors.Join(
		t.setID(id),
		t.setTravelerID(travelerID),
		t.setCities(startCity, endCity),
		t.setWindow(startTime, endTime),
		t.setVehicle(vehicle),
		t.setMaxParcels(maxParcels),
		t.setCapacity(availableVolumeM3, maxWeightKg),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTrip rehydrates a Trip from persistence. The status must be a valid
// enumeration value.
func RestoreTrip(
	id kernel.UUID,
	travelerID kernel.UUID,
	startCity, startCountry string,
	endCity, endCountry string,
	startTime, endTime time.Time,
	vehicle VehicleType,
	maxParcels int,
	availableVolumeM3 float64,
	maxWeightKg float64,
	status Status,
) (*Trip, error) {
	if err := errors.Join(
		id.Validate(),
		travelerID.Validate(),
		vehicle.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return &Trip{
		id:                id,
		travelerID:        travelerID,
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
		status:            status,
		isConstructed:     true,
	}, nil
}

// Validate ensures the Trip instance was properly constructed.
func (t *Trip) Validate() error {
	if t == nil || !t.isConstructed {
		return ErrTripIsNotConstructed
	}
	return nil
}

// IsEqual compares two trips by their unique identifiers.
func (t *Trip) IsEqual(other *Trip) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the trip's unique identifier.
func (t *Trip) ID() kernel.UUID {
	return t.id
}

// TravelerID returns the offering traveler's identifier.
func (t *Trip) TravelerID() kernel.UUID {
	return t.travelerID
}

// StartCity returns the departure city.
func (t *Trip) StartCity() string {
	return t.startCity
}

// StartCountry returns the departure country.
func (t *Trip) StartCountry() string {
	return t.startCountry
}

// EndCity returns the arrival city.
func (t *Trip) EndCity() string {
	return t.endCity
}

// EndCountry returns the arrival country.
func (t *Trip) EndCountry() string {
	return t.endCountry
}

// StartTime returns the scheduled departure time.
func (t *Trip) StartTime() time.Time {
	return t.startTime
}

// EndTime returns the scheduled arrival time.
func (t *Trip) EndTime() time.Time {
	return t.endTime
}

// Vehicle returns the vehicle type used for the trip.
func (t *Trip) Vehicle() VehicleType {
	return t.vehicle
}

// MaxParcels returns the maximum number of deliveries the trip can carry.
func (t *Trip) MaxParcels() int {
	return t.maxParcels
}

// AvailableVolumeM3 returns the free cargo volume in cubic meters.
func (t *Trip) AvailableVolumeM3() float64 {
	return t.availableVolumeM3
}

// MaxWeightKg returns the maximum cargo weight in kilograms.
func (t *Trip) MaxWeightKg() float64 {
	return t.maxWeightKg
}

// Status returns the current lifecycle status.
func (t *Trip) Status() Status {
	return t.status
}

// CanAcceptDelivery reports whether one more delivery fits under the trip's parcel
// capacity, given the count of non-canceled deliveries already bound. Trips in a
// terminal state accept nothing.
func (t *Trip) CanAcceptDelivery(boundCount int) bool {
	if t.status.IsTerminal() {
		return false
	}
	return boundCount+1 <= t.maxParcels
}

// ChangeStatus moves the trip along one edge of its lifecycle table. An illegal
// target is rejected with an InvalidTransitionError and no field is mutated.
func (t *Trip) ChangeStatus(target Status) error {
	newStatus, err := t.status.TransitionTo(target)
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

func (t *Trip) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Trip) setTravelerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("travelerID", err)
	}
	t.travelerID = id
	return nil
}

func (t *Trip) setCities(startCity, endCity string) error {
	if startCity == "" {
		return errs.NewValueIsRequiredError("startCity")
	}
	if endCity == "" {
		return errs.NewValueIsRequiredError("endCity")
	}
	t.startCity = startCity
	t.endCity = endCity
	return nil
}

func (t *Trip) setWindow(startTime, endTime time.Time) error {
	if startTime.IsZero() || endTime.IsZero() {
		return errs.NewValueIsRequiredError("schedule")
	}
	if !startTime.Before(endTime) {
		return errs.NewValueIsInvalidErrorWithCause(
			"schedule",
			fmt.Errorf("start %s is not before end %s", startTime, endTime),
		)
	}
	t.startTime = startTime
	t.endTime = endTime
	return nil
}

func (t *Trip) setVehicle(vehicle VehicleType) error {
	if err := vehicle.Validate(); err != nil {
		return err
	}
	t.vehicle = vehicle
	return nil
}

func (t *Trip) setMaxParcels(maxParcels int) error {
	if maxParcels <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxParcels",
			fmt.Errorf("%d is not greater than 0", maxParcels),
		)
	}
	t.maxParcels = maxParcels
	return nil
}

func (t *Trip) setCapacity(volumeM3, weightKg float64) error {
	if volumeM3 <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"availableVolume",
			fmt.Errorf("%v is not greater than 0", volumeM3),
		)
	}
	if weightKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"maxWeight",
			fmt.Errorf("%v is not greater than 0", weightKg),
		)
	}
	t.availableVolumeM3 = volumeM3
	t.maxWeightKg = weightKg
	return nil
}
