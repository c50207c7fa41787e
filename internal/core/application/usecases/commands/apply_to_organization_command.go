package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrApplyToOrganizationCommandIsNotConstructed = errors.New(
	"ApplyToOrganizationCommand must be created via NewApplyToOrganizationCommand constructor",
)

// ApplyToOrganizationCommand represents a user applying to join an
// organization as a worker.
type ApplyToOrganizationCommand struct { //nolint:recvcheck //using for validation
	requestID      kernel.UUID
	organizationID kernel.UUID
	actorID        kernel.UUID
	message        string

	guard guard.ConstructorGuard
}

// NewApplyToOrganizationCommand creates a command for a user to apply to an
// organization. The actor is the applicant.
func NewApplyToOrganizationCommand(
	requestID kernel.UUID,
	organizationID kernel.UUID,
	actorID kernel.UUID,
	message string,
) (ApplyToOrganizationCommand, error) {
	cmd := ApplyToOrganizationCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOrganizationID(organizationID),
		cmd.setActorID(actorID),
	); err != nil {
		return ApplyToOrganizationCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyToOrganizationCommand) Validate() error {
	return c.guard.Validate(ErrApplyToOrganizationCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new hiring request.
func (c ApplyToOrganizationCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrganizationID returns the organization applied to.
func (c ApplyToOrganizationCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// ActorID returns the applying user.
func (c ApplyToOrganizationCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Message returns the optional free-text message.
func (c ApplyToOrganizationCommand) Message() string {
	return c.message
}

func (c *ApplyToOrganizationCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *ApplyToOrganizationCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *ApplyToOrganizationCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
