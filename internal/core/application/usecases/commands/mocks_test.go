package commands_test

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/hiring"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/organization"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrganizationRepository struct{ mock.Mock }

func (m *MockOrganizationRepository) Add(ctx context.Context, org *organization.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *organization.Organization) error {
	args := m.Called(ctx, org)
	return args.Error(0)
}

func (m *MockOrganizationRepository) GetActiveByOwner(ctx context.Context, ownerID kernel.UUID) (*organization.Organization, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Organization), args.Error(1)
}

type MockMembershipRepository struct{ mock.Mock }

func (m *MockMembershipRepository) Add(ctx context.Context, membership *organization.Membership) error {
	args := m.Called(ctx, membership)
	return args.Error(0)
}

func (m *MockMembershipRepository) GetActiveByUser(ctx context.Context, userID kernel.UUID) (*organization.Membership, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*organization.Membership), args.Error(1)
}

type MockHiringRequestRepository struct{ mock.Mock }

func (m *MockHiringRequestRepository) Add(ctx context.Context, req *hiring.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockHiringRequestRepository) Update(ctx context.Context, req *hiring.Request) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockHiringRequestRepository) Get(ctx context.Context, id kernel.UUID) (*hiring.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hiring.Request), args.Error(1)
}

func (m *MockHiringRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*hiring.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hiring.Request), args.Error(1)
}

func (m *MockHiringRequestRepository) FindPending(ctx context.Context, organizationID kernel.UUID,
	userID kernel.UUID, direction hiring.Direction,
) (*hiring.Request, error) {
	args := m.Called(ctx, organizationID, userID, direction)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*hiring.Request), args.Error(1)
}

func (m *MockHiringRequestRepository) GetAllPendingByUser(ctx context.Context, userID kernel.UUID) ([]*hiring.Request, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*hiring.Request), args.Error(1)
}

type MockAssignmentRepository struct{ mock.Mock }

func (m *MockAssignmentRepository) Add(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Update(ctx context.Context, a *assignment.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assignment.Assignment), args.Error(1)
}

func (m *MockAssignmentRepository) GetCompletedWithoutPayment(ctx context.Context, limit int) ([]*assignment.Assignment, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*assignment.Assignment), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByAssignment(ctx context.Context, assignmentID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, assignmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockOrderStore struct{ mock.Mock }

func (m *MockOrderStore) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderStore) UpdateFulfillmentStatus(ctx context.Context, orderID kernel.UUID, status order.FulfillmentStatus) error {
	args := m.Called(ctx, orderID, status)
	return args.Error(0)
}

// MockUoW implements every composite unit of work interface the command
// handlers accept, so the per-handler tests share one transaction mock.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrganizationRepository() ports.OrganizationRepository {
	args := m.Called()
	return args.Get(0).(ports.OrganizationRepository)
}

func (m *MockUoW) MembershipRepository() ports.MembershipRepository {
	args := m.Called()
	return args.Get(0).(ports.MembershipRepository)
}

func (m *MockUoW) HiringRequestRepository() ports.HiringRequestRepository {
	args := m.Called()
	return args.Get(0).(ports.HiringRequestRepository)
}

func (m *MockUoW) AssignmentRepository() ports.AssignmentRepository {
	args := m.Called()
	return args.Get(0).(ports.AssignmentRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) OrderStore() ports.OrderStore {
	args := m.Called()
	return args.Get(0).(ports.OrderStore)
}

type MockOrganizationUoWFactory struct{ mock.Mock }

func (m *MockOrganizationUoWFactory) Create() commands.OrganizationUoW {
	args := m.Called()
	return args.Get(0).(commands.OrganizationUoW)
}

type MockHiringUoWFactory struct{ mock.Mock }

func (m *MockHiringUoWFactory) Create() commands.HiringUoW {
	args := m.Called()
	return args.Get(0).(commands.HiringUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}
