package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAdvanceStatusCommandIsNotConstructed = errors.New(
		"AdvanceStatusCommand must be created via NewAdvanceStatusCommand constructor",
	)
	ErrNextStatusIsInvalid = errors.New("next status must be InTransit or Completed")
)

// AdvanceStatusCommand represents the assigned worker moving an assignment
// along the delivery path: picking the package up or handing it over.
type AdvanceStatusCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	actorID      kernel.UUID
	next         assignment.Status

	guard guard.ConstructorGuard
}

// NewAdvanceStatusCommand creates a command to advance an assignment.
// next must be InTransit or Completed; whether that transition is legal from
// the current status is decided by the aggregate.
func NewAdvanceStatusCommand(
	assignmentID kernel.UUID,
	actorID kernel.UUID,
	next assignment.Status,
) (AdvanceStatusCommand, error) {
	cmd := AdvanceStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setActorID(actorID),
		cmd.setNext(next),
	); err != nil {
		return AdvanceStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceStatusCommandIsNotConstructed)
}

// AssignmentID returns the assignment being advanced.
func (c AdvanceStatusCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// ActorID returns the acting user, who must be the assigned worker.
func (c AdvanceStatusCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Next returns the target status.
func (c AdvanceStatusCommand) Next() assignment.Status {
	return c.next
}

func (c *AdvanceStatusCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AdvanceStatusCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *AdvanceStatusCommand) setNext(next assignment.Status) error {
	if next != assignment.InTransit && next != assignment.Completed {
		return ErrNextStatusIsInvalid
	}

	c.next = next
	return nil
}
