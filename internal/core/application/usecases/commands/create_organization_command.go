package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrCreateOrganizationCommandIsNotConstructed = errors.New(
		"CreateOrganizationCommand must be created via NewCreateOrganizationCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateOrganizationCommand represents a request to register a new delivery
// organization with its owner and depot location.
type CreateOrganizationCommand struct { //nolint:recvcheck //using for validation
	organizationID kernel.UUID
	ownerID        kernel.UUID
	name           string
	about          string
	depot          kernel.Location

	guard guard.ConstructorGuard
}

// NewCreateOrganizationCommand creates a command to register a new
// organization. Validates that identifiers are valid, the name is not empty,
// and the depot location is valid.
func NewCreateOrganizationCommand(
	organizationID kernel.UUID,
	ownerID kernel.UUID,
	name string,
	about string,
	depot kernel.Location,
) (CreateOrganizationCommand, error) {
	cmd := CreateOrganizationCommand{
		about: about,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrganizationID(organizationID),
		cmd.setOwnerID(ownerID),
		cmd.setName(name),
		cmd.setDepot(depot),
	); err != nil {
		return CreateOrganizationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrganizationCommandIsNotConstructed)
}

// OrganizationID returns the unique identifier for the new organization.
func (c CreateOrganizationCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// OwnerID returns the user who will own the organization.
func (c CreateOrganizationCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the organization's display name.
func (c CreateOrganizationCommand) Name() string {
	return c.name
}

// About returns the optional free-text description.
func (c CreateOrganizationCommand) About() string {
	return c.about
}

// Depot returns the organization's dispatch point.
func (c CreateOrganizationCommand) Depot() kernel.Location {
	return c.depot
}

func (c *CreateOrganizationCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *CreateOrganizationCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateOrganizationCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateOrganizationCommand) setDepot(depot kernel.Location) error {
	if err := depot.Validate(); err != nil {
		return err
	}

	c.depot = depot
	return nil
}
