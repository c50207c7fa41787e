package organization

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// ErrOrganizationIsNotConstructed is returned when an Organization instance
// was not created through NewOrganization or RestoreOrganization.
var ErrOrganizationIsNotConstructed = errors.New(
	"Organization must be created via NewOrganization or RestoreOrganization constructor")

// Organization is the aggregate root for a delivery-service tenant. It holds
// display metadata, the owning user, and the depot location used to estimate
// delivery distance for payment derivation.
//
// Invariants:
//   - Exactly one owner; the owner is implicitly a member.
//   - A disabled organization accepts no new delivery requests, invitations,
//     or applications.
//   - Disabling requires that no active assignments reference the
//     organization (checked by the disable use case, not here).
type Organization struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string
	about   string
	depot   kernel.Location
	active  bool

	isConstructed bool
}

// NewOrganization creates an active Organization owned by ownerID.
// The name must be non-empty and the depot location valid.
func NewOrganization(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	about string,
	depot kernel.Location,
) (*Organization, error) {
	org := &Organization{
		active:        true,
		isConstructed: true,
	}

	if err := errors.Join(
		org.setID(id),
		org.setOwnerID(ownerID),
		org.setName(name),
		org.setDepot(depot),
	); err != nil {
		return nil, err
	}

	org.about = about
	return org, nil
}

// RestoreOrganization reconstructs an Organization from persistence.
func RestoreOrganization(
	id kernel.UUID,
	ownerID kernel.UUID,
	name string,
	about string,
	depot kernel.Location,
	active bool,
) (*Organization, error) {
	org, err := NewOrganization(id, ownerID, name, about, depot)
	if err != nil {
		return nil, err
	}

	org.active = active
	return org, nil
}

// Validate ensures the Organization was created through a constructor.
func (o *Organization) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrganizationIsNotConstructed
	}

	return nil
}

// IsEqual compares two organizations by identifier.
func (o *Organization) IsEqual(other *Organization) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the organization's unique identifier.
func (o *Organization) ID() kernel.UUID {
	return o.id
}

// OwnerID returns the identifier of the user who owns the organization.
func (o *Organization) OwnerID() kernel.UUID {
	return o.ownerID
}

// Name returns the organization's display name.
func (o *Organization) Name() string {
	return o.name
}

// About returns the organization's free-text description.
func (o *Organization) About() string {
	return o.about
}

// Depot returns the organization's depot location.
func (o *Organization) Depot() kernel.Location {
	return o.depot
}

// IsActive reports whether the organization accepts new work and members.
func (o *Organization) IsActive() bool {
	return o.active
}

// IsOwnedBy reports whether userID owns the organization.
func (o *Organization) IsOwnedBy(userID kernel.UUID) bool {
	return o.ownerID.IsEqual(userID)
}

// UpdateDetails changes the organization's display metadata.
// Only the owner may edit; ownership is verified by the calling use case.
func (o *Organization) UpdateDetails(name string, about string) error {
	if err := o.setName(name); err != nil {
		return err
	}

	o.about = about
	return nil
}

// Disable soft-disables the organization. Disabled organizations are kept
// for history but accept no new requests. Returns InvalidStateError if the
// organization is already disabled.
func (o *Organization) Disable() error {
	if !o.active {
		return errs.NewInvalidStateError("organization", "disabled", "disable")
	}

	o.active = false
	return nil
}

func (o *Organization) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Organization) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	o.ownerID = ownerID
	return nil
}

func (o *Organization) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	o.name = name
	return nil
}

func (o *Organization) setDepot(depot kernel.Location) error {
	if err := depot.Validate(); err != nil {
		return err
	}
	o.depot = depot
	return nil
}
