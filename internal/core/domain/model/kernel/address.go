package kernel

import (
	"errors"

	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

// ErrAddressIsNotConstructed indicates that an Address was not created through
// NewAddress.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is a value object representing a postal address used for pickup and
// delivery points. The street line is the only mandatory component: the upstream
// marketplace accepts partially filled addresses everywhere else, but a delivery
// cannot be routed without a street.
type Address struct {
	number     string
	street     string
	city       string
	postalCode string
	country    string
	complement string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. Street must be non-empty; all other
// components are optional free text.
func NewAddress(number, street, city, postalCode, country, complement string) (Address, error) {
	if street == "" {
		return Address{}, errs.NewValueIsRequiredError("street")
	}

	return Address{
		number:     number,
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
		complement: complement,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Number returns the street number component.
func (a Address) Number() string {
	return a.number
}

// Street returns the street line. Never empty for a constructed Address.
func (a Address) Street() string {
	return a.street
}

// City returns the city component.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code component.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country component.
func (a Address) Country() string {
	return a.country
}

// Complement returns the free-text complement line (apartment, floor, gate code).
func (a Address) Complement() string {
	return a.complement
}

// IsEqual compares two addresses component by component.
func (a Address) IsEqual(other Address) bool {
	return a.number == other.number &&
		a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode &&
		a.country == other.country &&
		a.complement == other.complement
}
