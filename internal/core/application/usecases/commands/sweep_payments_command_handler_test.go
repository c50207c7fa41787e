package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSweepPaymentsCommandRejectsNonPositiveLimit(t *testing.T) {
	for _, limit := range []int{0, -1} {
		_, err := commands.NewSweepPaymentsCommand(limit)
		require.ErrorIs(t, err, commands.ErrLimitIsInvalid)
	}
}

func TestSweepPaymentsCommandHandler_Handle_DerivesMissingPayments(t *testing.T) {
	ctx := t.Context()

	workerID := kernel.NewUUID()
	org := testOrganization(t, kernel.NewUUID())
	ord := testOrder(t, kernel.NewUUID())
	first := testAssignment(t, ord.ID(), org.ID(), assignment.Completed, &workerID)
	second := testAssignment(t, kernel.NewUUID(), org.ID(), assignment.Completed, &workerID)

	cmd, err := commands.NewSweepPaymentsCommand(10)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orgRepo := new(MockOrganizationRepository)
	orderStore := new(MockOrderStore)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AssignmentRepository").Return(assignmentRepo).Once()
	assignmentRepo.On("GetCompletedWithoutPayment", ctx, 10).
		Return([]*assignment.Assignment{first, second}, nil).
		Once()
	uow.On("OrganizationRepository").Return(orgRepo).Twice()
	orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Twice()
	uow.On("OrderStore").Return(orderStore).Twice()
	orderStore.On("Get", ctx, first.OrderID()).Return(ord, nil).Once()
	orderStore.On("Get", ctx, second.OrderID()).Return(ord, nil).Once()
	uow.On("PaymentRepository").Return(paymentRepo).Twice()
	paymentRepo.On("Add", ctx, mock.AnythingOfType("*payment.Payment")).Return(nil).Twice()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepPaymentsCommandHandler(factory, testCalculator(t))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, paymentRepo.Calls, 2)

	derived := make(map[kernel.UUID]bool)
	for _, call := range paymentRepo.Calls {
		p, ok := call.Arguments.Get(1).(*payment.Payment)
		require.True(t, ok)
		derived[p.AssignmentID()] = true
	}
	assert.True(t, derived[first.ID()])
	assert.True(t, derived[second.ID()])
	uow.AssertExpectations(t)
}

func TestSweepPaymentsCommandHandler_Handle_NothingToSweep(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewSweepPaymentsCommand(5)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	paymentRepo := new(MockPaymentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetCompletedWithoutPayment", ctx, 5).
			Return([]*assignment.Assignment{}, nil).
			Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockFulfillmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewSweepPaymentsCommandHandler(factory, testCalculator(t))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	paymentRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
