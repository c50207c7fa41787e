package commands

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/services"
)

// SweepPaymentsCommandHandler re-derives missing payments for completed
// assignments. Safe to run concurrently with completions because the
// payment insert is idempotent; running the same derivation twice produces
// one row.
type SweepPaymentsCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	calculator services.PaymentCalculator
}

// NewSweepPaymentsCommandHandler creates a handler for payment
// reconciliation sweeps.
func NewSweepPaymentsCommandHandler(
	uowFactory FulfillmentUoWFactory,
	calculator services.PaymentCalculator,
) SweepPaymentsCommandHandler {
	return SweepPaymentsCommandHandler{
		uowFactory: uowFactory,
		calculator: calculator,
	}
}

// Handle processes one reconciliation pass within a single transaction.
func (h SweepPaymentsCommandHandler) Handle(ctx context.Context, cmd SweepPaymentsCommand) error {
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

	assignments, err := uow.AssignmentRepository().GetCompletedWithoutPayment(ctx, cmd.Limit())
	if err != nil {
		return err
	}

	for _, a := range assignments {
		org, orgErr := uow.OrganizationRepository().Get(ctx, a.OrganizationID())
		if orgErr != nil {
			return orgErr
		}

		ord, ordErr := uow.OrderStore().Get(ctx, a.OrderID())
		if ordErr != nil {
			return ordErr
		}

		p, calcErr := h.calculator.Calculate(a, org.Depot(), ord.TotalWeight(), time.Now().UTC())
		if calcErr != nil {
			return calcErr
		}

		if err = uow.PaymentRepository().Add(ctx, p); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
