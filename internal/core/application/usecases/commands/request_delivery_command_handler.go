package commands

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/pkg/errs"
)

// RequestDeliveryCommandHandler handles the merchant-facing entry point of
// the delivery flow. Creates a Requested assignment denormalizing the
// order's address and drop-off location.
//
// The one-active-assignment-per-order rule is pre-checked for a clear error
// message and backed by the assignment repository's partial unique index, so
// a concurrent duplicate request still surfaces as ConflictError on Add.
type RequestDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewRequestDeliveryCommandHandler creates a handler for delivery request
// operations.
func NewRequestDeliveryCommandHandler(uowFactory DeliveryUoWFactory) RequestDeliveryCommandHandler {
	return RequestDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery request command.
// Verifies the actor owns the order and the organization is active, then
// creates the assignment within a single transaction.
func (h RequestDeliveryCommandHandler) Handle(ctx context.Context, cmd RequestDeliveryCommand) error {
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

	ord, err := uow.OrderStore().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if !ord.IsOwnedBy(cmd.ActorID()) {
		return errs.NewForbiddenError("order", "actor is not the order's merchant")
	}

	org, err := uow.OrganizationRepository().Get(ctx, cmd.OrganizationID())
	if err != nil {
		return err
	}

	if !org.IsActive() {
		return errs.NewInvalidStateError("organization", "disabled", "request delivery")
	}

	if _, err = uow.AssignmentRepository().GetActiveByOrder(ctx, ord.ID()); err == nil {
		return errs.NewConflictError("assignment", "order already has an active assignment")
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	a, err := assignment.NewAssignment(cmd.AssignmentID(), ord.ID(), ord.MerchantID(),
		org.ID(), ord.Address(), ord.Dropoff(), cmd.Fee(), cmd.Instructions())
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
