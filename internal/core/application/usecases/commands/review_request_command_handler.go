package commands

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
)

// ReviewRequestCommandHandler handles the organization owner's decision on a
// delivery request. Loads the assignment under a row lock so concurrent
// reviews of the same request serialize, then mirrors the decision into the
// order's fulfillment status.
type ReviewRequestCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewReviewRequestCommandHandler creates a handler for delivery request
// review operations.
func NewReviewRequestCommandHandler(uowFactory DeliveryUoWFactory) ReviewRequestCommandHandler {
	return ReviewRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the review command.
// Accepting moves the assignment to Assigned and the order to
// AcceptedForDelivery; rejecting cancels the assignment and returns the
// order to AwaitingFulfillment so the merchant can request elsewhere.
func (h ReviewRequestCommandHandler) Handle(ctx context.Context, cmd ReviewRequestCommand) error {
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

	decision := assignment.Cancelled
	fulfillment := order.AwaitingFulfillment
	if cmd.Accept() {
		decision = assignment.Assigned
		fulfillment = order.AcceptedForDelivery
	}

	if err = a.Review(decision); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, a); err != nil {
		return err
	}

	if err = uow.OrderStore().UpdateFulfillmentStatus(ctx, a.OrderID(), fulfillment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
