package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/model/organization"
	"fulfillment/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func testOrganization(t *testing.T, ownerID kernel.UUID) *organization.Organization {
	t.Helper()

	depot, err := kernel.NewLocation(5, 5)
	require.NoError(t, err)

	org, err := organization.NewOrganization(kernel.NewUUID(), ownerID, "Swift Couriers", "", depot)
	require.NoError(t, err)
	return org
}

func testOrder(t *testing.T, merchantID kernel.UUID) *order.Order {
	t.Helper()

	address, err := kernel.NewAddress("12 Pier Rd", "Portsmouth", "PO1 3AX")
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(7, 9)
	require.NoError(t, err)
	line, err := order.NewLine("books", 2, 3)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), merchantID, address, dropoff, []order.Line{line})
	require.NoError(t, err)
	return o
}

func testAssignment(t *testing.T, orderID kernel.UUID, organizationID kernel.UUID, status assignment.Status, workerID *kernel.UUID) *assignment.Assignment {
	t.Helper()

	address, err := kernel.NewAddress("12 Pier Rd", "Portsmouth", "PO1 3AX")
	require.NoError(t, err)
	dropoff, err := kernel.NewLocation(7, 9)
	require.NoError(t, err)

	var assignedAt *time.Time
	if workerID != nil {
		at := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
		assignedAt = &at
	}

	a, err := assignment.RestoreAssignment(
		kernel.NewUUID(), orderID, kernel.NewUUID(), organizationID,
		address, dropoff, decimal.NewFromInt(50), "",
		status, workerID, assignedAt)
	require.NoError(t, err)
	return a
}

func testCalculator(t *testing.T) services.PaymentCalculator {
	t.Helper()

	distancePolicy, err := services.NewTieredDistanceBonus(10, decimal.NewFromInt(5), 3)
	require.NoError(t, err)
	weightPolicy, err := services.NewPerUnitWeightBonus(decimal.NewFromFloat(0.5), 5)
	require.NoError(t, err)

	calculator, err := services.NewPaymentCalculator(distancePolicy, weightPolicy)
	require.NoError(t, err)
	return calculator
}
