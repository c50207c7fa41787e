package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrInviteWorkerCommandIsNotConstructed = errors.New(
	"InviteWorkerCommand must be created via NewInviteWorkerCommand constructor",
)

// InviteWorkerCommand represents an organization owner inviting a user to
// join the organization as a worker.
type InviteWorkerCommand struct { //nolint:recvcheck //using for validation
	requestID      kernel.UUID
	organizationID kernel.UUID
	userID         kernel.UUID
	actorID        kernel.UUID
	message        string

	guard guard.ConstructorGuard
}

// NewInviteWorkerCommand creates a command to invite a user into an
// organization.
func NewInviteWorkerCommand(
	requestID kernel.UUID,
	organizationID kernel.UUID,
	userID kernel.UUID,
	actorID kernel.UUID,
	message string,
) (InviteWorkerCommand, error) {
	cmd := InviteWorkerCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setOrganizationID(organizationID),
		cmd.setUserID(userID),
		cmd.setActorID(actorID),
	); err != nil {
		return InviteWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c InviteWorkerCommand) Validate() error {
	return c.guard.Validate(ErrInviteWorkerCommandIsNotConstructed)
}

// RequestID returns the unique identifier for the new hiring request.
func (c InviteWorkerCommand) RequestID() kernel.UUID {
	return c.requestID
}

// OrganizationID returns the inviting organization.
func (c InviteWorkerCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// UserID returns the invited user.
func (c InviteWorkerCommand) UserID() kernel.UUID {
	return c.userID
}

// ActorID returns the acting user, who must own the organization.
func (c InviteWorkerCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Message returns the optional free-text message.
func (c InviteWorkerCommand) Message() string {
	return c.message
}

func (c *InviteWorkerCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *InviteWorkerCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *InviteWorkerCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	c.userID = userID
	return nil
}

func (c *InviteWorkerCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
