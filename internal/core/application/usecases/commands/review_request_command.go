package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrReviewRequestCommandIsNotConstructed = errors.New(
	"ReviewRequestCommand must be created via NewReviewRequestCommand constructor",
)

// ReviewRequestCommand represents an organization owner's decision on a
// Requested assignment: accept it into the work queue or reject it.
type ReviewRequestCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	actorID      kernel.UUID
	accept       bool

	guard guard.ConstructorGuard
}

// NewReviewRequestCommand creates a command to review a delivery request.
// accept true moves the assignment to Assigned, false cancels it.
func NewReviewRequestCommand(
	assignmentID kernel.UUID,
	actorID kernel.UUID,
	accept bool,
) (ReviewRequestCommand, error) {
	cmd := ReviewRequestCommand{
		accept: accept,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setActorID(actorID),
	); err != nil {
		return ReviewRequestCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ReviewRequestCommand) Validate() error {
	return c.guard.Validate(ErrReviewRequestCommandIsNotConstructed)
}

// AssignmentID returns the assignment under review.
func (c ReviewRequestCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// ActorID returns the reviewing user, who must own the organization.
func (c ReviewRequestCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Accept reports whether the request is accepted or rejected.
func (c ReviewRequestCommand) Accept() bool {
	return c.accept
}

func (c *ReviewRequestCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *ReviewRequestCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}
