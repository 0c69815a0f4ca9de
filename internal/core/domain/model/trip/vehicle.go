package trip

import (
	"fmt"

	"parcelmarket/internal/pkg/errs"
)

// VehicleType identifies the kind of vehicle a traveler uses for a trip.
type VehicleType int

const (
	// VehicleUnknown represents an invalid or undefined vehicle type.
	VehicleUnknown VehicleType = iota

	VehicleBicycle
	VehicleMotorcycle
	VehicleCar
	VehicleVan
	VehicleTruck
	VehicleAirplane
)

func getVehicleTypeStrings() map[VehicleType]string {
	return map[VehicleType]string{
		VehicleUnknown:    "UNKNOWN",
		VehicleBicycle:    "BICYCLE",
		VehicleMotorcycle: "MOTORCYCLE",
		VehicleCar:        "CAR",
		VehicleVan:        "VAN",
		VehicleTruck:      "TRUCK",
		VehicleAirplane:   "AIRPLANE",
	}
}

// VehicleTypeFromString parses the wire representation of a vehicle type.
func VehicleTypeFromString(s string) (VehicleType, error) {
	for vehicle, str := range getVehicleTypeStrings() {
		if str == s && vehicle != VehicleUnknown {
			return vehicle, nil
		}
	}
	return VehicleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"vehicleType",
		fmt.Errorf("%q is not a valid vehicle type", s),
	)
}

// Validate checks that the value is one of the declared vehicle types.
func (v VehicleType) Validate() error {
	if _, ok := getVehicleTypeStrings()[v]; !ok || v == VehicleUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicleType",
			fmt.Errorf("%d is not a valid vehicle type", v),
		)
	}
	return nil
}

// String returns the wire name of the vehicle type, or "UNKNOWN" for invalid values.
func (v VehicleType) String() string {
	if str, ok := getVehicleTypeStrings()[v]; ok {
		return str
	}
	return "UNKNOWN"
}
