package commands_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewRequestCommandHandler_Handle_Accept(t *testing.T) {
	ctx := t.Context()

	ownerID := kernel.NewUUID()
	org := testOrganization(t, ownerID)
	a := testAssignment(t, kernel.NewUUID(), org.ID(), assignment.Requested, nil)

	cmd, err := commands.NewReviewRequestCommand(a.ID(), ownerID, true)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orgRepo := new(MockOrganizationRepository)
	orderStore := new(MockOrderStore)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		uow.On("OrderStore").Return(orderStore).Once(),
		orderStore.On("UpdateFulfillmentStatus", ctx, a.OrderID(), order.AcceptedForDelivery).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, assignment.Assigned, a.Status())
	uow.AssertExpectations(t)
	orderStore.AssertExpectations(t)
}

func TestReviewRequestCommandHandler_Handle_Reject(t *testing.T) {
	ctx := t.Context()

	ownerID := kernel.NewUUID()
	org := testOrganization(t, ownerID)
	a := testAssignment(t, kernel.NewUUID(), org.ID(), assignment.Requested, nil)

	cmd, err := commands.NewReviewRequestCommand(a.ID(), ownerID, false)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orgRepo := new(MockOrganizationRepository)
	orderStore := new(MockOrderStore)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.Assignment")).Return(nil).Once(),
		uow.On("OrderStore").Return(orderStore).Once(),
		orderStore.On("UpdateFulfillmentStatus", ctx, a.OrderID(), order.AwaitingFulfillment).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, assignment.Cancelled, a.Status())
}

func TestReviewRequestCommandHandler_Handle_ForbiddenForNonOwner(t *testing.T) {
	ctx := t.Context()

	org := testOrganization(t, kernel.NewUUID())
	a := testAssignment(t, kernel.NewUUID(), org.ID(), assignment.Requested, nil)

	cmd, err := commands.NewReviewRequestCommand(a.ID(), kernel.NewUUID(), true)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orgRepo := new(MockOrganizationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, assignment.Requested, a.Status())
}

func TestReviewRequestCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()

	ownerID := kernel.NewUUID()
	org := testOrganization(t, ownerID)
	a := testAssignment(t, kernel.NewUUID(), org.ID(), assignment.Assigned, nil)

	cmd, err := commands.NewReviewRequestCommand(a.ID(), ownerID, true)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	orgRepo := new(MockOrganizationRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetForUpdate", ctx, a.ID()).Return(a, nil).Once(),
		uow.On("OrganizationRepository").Return(orgRepo).Once(),
		orgRepo.On("Get", ctx, org.ID()).Return(org, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrInvalidState)
}

func TestReviewRequestCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewReviewRequestCommand(kernel.NewUUID(), kernel.NewUUID(), true)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("AssignmentRepository").Return(assignmentRepo).Once(),
		assignmentRepo.On("GetForUpdate", ctx, cmd.AssignmentID()).
			Return(nil, errs.NewObjectNotFoundError("assignment", cmd.AssignmentID().String())).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReviewRequestCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
