package kernel

import (
	"errors"
	"fmt"

	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an
// improperly initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an immutable postal address value object. Assignments hold a
// denormalized copy taken from the order at request time, so later edits to
// the order's shipping address do not retroactively change an in-flight job.
//
// Street and city are required; the postal code is optional.
type Address struct { //nolint:recvcheck //using for validation
	street     string
	city       string
	postalCode string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address. Street and city must be non-empty.
func NewAddress(street string, city string, postalCode string) (Address, error) {
	addr := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addr.setStreet(street),
		addr.setCity(city),
	); err != nil {
		return Address{}, err
	}

	addr.postalCode = postalCode
	return addr, nil
}

// Validate checks the Address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code, which may be empty.
func (a Address) PostalCode() string {
	return a.postalCode
}

// IsEqual compares two addresses field by field. Both must be properly
// constructed for the comparison to succeed.
func (a Address) IsEqual(other Address) (bool, error) {
	if err := errors.Join(a.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return a.street == other.street &&
		a.city == other.city &&
		a.postalCode == other.postalCode, nil
}

// String implements fmt.Stringer in the form "street, city postalCode".
func (a Address) String() string {
	if a.postalCode == "" {
		return fmt.Sprintf("%s, %s", a.street, a.city)
	}
	return fmt.Sprintf("%s, %s %s", a.street, a.city, a.postalCode)
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}

	a.street = street
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}

	a.city = city
	return nil
}
