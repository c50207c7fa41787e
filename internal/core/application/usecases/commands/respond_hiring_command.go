package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrRespondHiringCommandIsNotConstructed = errors.New(
	"RespondHiringCommand must be created via NewRespondHiringCommand constructor",
)

// RespondHiringCommand represents the receiving party's decision on a
// pending hiring request: the invited user for an invitation, the
// organization owner for an application.
type RespondHiringCommand struct { //nolint:recvcheck //using for validation
	requestID kernel.UUID
	actorID   kernel.UUID
	accept    bool

	guard guard.ConstructorGuard
}

// NewRespondHiringCommand creates a command to resolve a hiring request.
func NewRespondHiringCommand(
	requestID kernel.UUID,
	actorID kernel.UUID,
	accept bool,
) (RespondHiringCommand, error) {
	cmd := RespondHiringCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRequestID(requestID),
		cmd.setActorID(actorID),
	); err != nil {
		return RespondHiringCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RespondHiringCommand) Validate() error {
	return c.guard.Validate(ErrRespondHiringCommandIsNotConstructed)
}

// RequestID returns the hiring request being resolved.
func (c RespondHiringCommand) RequestID() kernel.UUID {
	return c.requestID
}

// ActorID returns the responding user.
func (c RespondHiringCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Accept reports whether the request is accepted or rejected.
func (c RespondHiringCommand) Accept() bool {
	return c.accept
}

func (c *RespondHiringCommand) setRequestID(requestID kernel.UUID) error {
	if err := requestID.Validate(); err != nil {
		return err
	}

	c.requestID = requestID
	return nil
}

func (c *RespondHiringCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
