package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// AdvanceStatusCommandHandler handles the worker-driven delivery path.
// Moving to InTransit marks the order OutForDelivery; moving to Completed
// marks it Delivered and derives the worker's payment in the same
// transaction. The payment insert is idempotent, so a retried completion
// never pays twice.
type AdvanceStatusCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	calculator services.PaymentCalculator
}

// NewAdvanceStatusCommandHandler creates a handler for status advancement
// operations.
func NewAdvanceStatusCommandHandler(
	uowFactory FulfillmentUoWFactory,
	calculator services.PaymentCalculator,
) AdvanceStatusCommandHandler {
	return AdvanceStatusCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes the status advancement command.
// Loads the assignment under a row lock so concurrent advances serialize,
// applies the transition, mirrors it into the order's fulfillment status,
// and on completion writes the derived payment.
func (h AdvanceStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceStatusCommand) error {
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

	if err = a.Advance(cmd.Next(), cmd.ActorID()); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, a); err != nil {
		return err
	}

	fulfillment := order.OutForDelivery
	if cmd.Next() == assignment.Completed {
		fulfillment = order.Delivered
	}

	if err = uow.OrderStore().UpdateFulfillmentStatus(ctx, a.OrderID(), fulfillment); err != nil {
		return err
	}

	if cmd.Next() == assignment.Completed {
		if err = h.derivePayment(ctx, uow, a); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h AdvanceStatusCommandHandler) derivePayment(ctx context.Context, uow FulfillmentUoW, a *assignment.Assignment) error {
	org, err := uow.OrganizationRepository().Get(ctx, a.OrganizationID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderStore().Get(ctx, a.OrderID())
	if err != nil {
		return err
	}

	p, err := h.calculator.Calculate(a, org.Depot(), ord.TotalWeight(), time.Now().UTC())
	if err != nil {
		return err
	}

	return uow.PaymentRepository().Add(ctx, p)
}
