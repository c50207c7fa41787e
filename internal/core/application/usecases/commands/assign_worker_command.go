package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrAssignWorkerCommandIsNotConstructed = errors.New(
	"AssignWorkerCommand must be created via NewAssignWorkerCommand constructor",
)

// AssignWorkerCommand represents an organization owner attaching one of the
// organization's workers to an accepted assignment.
type AssignWorkerCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	workerID     kernel.UUID
	actorID      kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignWorkerCommand creates a command to attach a worker to an
// assignment.
func NewAssignWorkerCommand(
	assignmentID kernel.UUID,
	workerID kernel.UUID,
	actorID kernel.UUID,
) (AssignWorkerCommand, error) {
	cmd := AssignWorkerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setWorkerID(workerID),
		cmd.setActorID(actorID),
	); err != nil {
		return AssignWorkerCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignWorkerCommand) Validate() error {
	return c.guard.Validate(ErrAssignWorkerCommandIsNotConstructed)
}

// AssignmentID returns the assignment to attach the worker to.
func (c AssignWorkerCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// WorkerID returns the worker being attached.
func (c AssignWorkerCommand) WorkerID() kernel.UUID {
	return c.workerID
}

// ActorID returns the acting user, who must own the organization.
func (c AssignWorkerCommand) ActorID() kernel.UUID {
	return c.actorID
}

func (c *AssignWorkerCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *AssignWorkerCommand) setWorkerID(workerID kernel.UUID) error {
	if err := workerID.Validate(); err != nil {
		return err
	}

	c.workerID = workerID
	return nil
}

func (c *AssignWorkerCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
