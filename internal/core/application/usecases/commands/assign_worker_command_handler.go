package commands

import (
	"context"
	"errors"
	"time"

	"fulfillment/internal/pkg/errs"
)

// AssignWorkerCommandHandler handles attaching a worker to an accepted
// assignment. The worker must be the organization's owner or hold a
// membership in it; re-assignment while the job is still Assigned simply
// replaces the worker.
type AssignWorkerCommandHandler struct {
	uowFactory FulfillmentUoWFactory
}

// NewAssignWorkerCommandHandler creates a handler for worker assignment
// operations.
func NewAssignWorkerCommandHandler(uowFactory FulfillmentUoWFactory) AssignWorkerCommandHandler {
	return AssignWorkerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the worker assignment command.
// Loads the assignment under a row lock, verifies ownership and the
// worker's membership, then records the worker and the assignment time.
func (h AssignWorkerCommandHandler) Handle(ctx context.Context, cmd AssignWorkerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	a, err := uow.AssignmentRepository().GetForUpdate(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	org, err := uow.OrganizationRepository().Get(ctx, a.OrganizationID())
	if err != nil {
		return err
	}

	if !org.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError("assignment", "actor does not own the organization")
	}

	// The owner works deliveries without a membership row.
	if !org.IsOwnedBy(cmd.WorkerID()) {
		membership, memberErr := uow.MembershipRepository().GetActiveByUser(ctx, cmd.WorkerID())
		if errors.Is(memberErr, errs.ErrObjectNotFound) || (memberErr == nil && !membership.BelongsTo(org.ID())) {
			return errs.NewForbiddenError("worker", "user is not a member of the organization")
		}
		if memberErr != nil {
			return memberErr
		}
	}

	if err = a.AssignWorker(cmd.WorkerID(), time.Now().UTC()); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
