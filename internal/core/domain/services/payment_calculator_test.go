package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, x, y kernel.Coordinate) kernel.Location {
	t.Helper()
	loc, err := kernel.NewLocation(x, y)
	require.NoError(t, err)
	return loc
}

func completedAssignment(t *testing.T, dropoff kernel.Location, fee decimal.Decimal) *assignment.Assignment {
	t.Helper()

	address, err := kernel.NewAddress("12 Pier Rd", "Portsmouth", "PO1 3AX")
	require.NoError(t, err)

	workerID := kernel.NewUUID()
	assignedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)

	a, err := assignment.RestoreAssignment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		address,
		dropoff,
		fee,
		"",
		assignment.Completed,
		&workerID,
		&assignedAt,
	)
	require.NoError(t, err)
	return a
}

func TestTieredDistanceBonus(t *testing.T) {
	perTier := decimal.NewFromInt(5)
	policy, err := services.NewTieredDistanceBonus(10, perTier, 3)
	require.NoError(t, err)

	tests := []struct {
		name     string
		distance int
		want     decimal.Decimal
	}{
		{"zero distance", 0, decimal.Zero},
		{"below first tier", 9, decimal.Zero},
		{"exactly one tier", 10, decimal.NewFromInt(5)},
		{"two tiers", 25, decimal.NewFromInt(10)},
		{"capped at tier limit", 99, decimal.NewFromInt(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(policy.Bonus(tt.distance)))
		})
	}
}

func TestNewTieredDistanceBonusRejectsInvalidConfig(t *testing.T) {
	_, err := services.NewTieredDistanceBonus(0, decimal.NewFromInt(5), 3)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = services.NewTieredDistanceBonus(10, decimal.NewFromInt(-1), 3)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

	_, err = services.NewTieredDistanceBonus(10, decimal.NewFromInt(5), 0)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPerUnitWeightBonus(t *testing.T) {
	rate := decimal.NewFromFloat(0.5)
	policy, err := services.NewPerUnitWeightBonus(rate, 5)
	require.NoError(t, err)

	tests := []struct {
		name   string
		weight int
		want   decimal.Decimal
	}{
		{"zero weight", 0, decimal.Zero},
		{"at free threshold", 5, decimal.Zero},
		{"one unit over", 6, decimal.NewFromFloat(0.5)},
		{"ten units over", 15, decimal.NewFromInt(5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(policy.Bonus(tt.weight)))
		})
	}
}

func TestNewPaymentCalculatorRequiresPolicies(t *testing.T) {
	weightPolicy, err := services.NewPerUnitWeightBonus(decimal.NewFromInt(1), 0)
	require.NoError(t, err)
	distancePolicy, err := services.NewTieredDistanceBonus(10, decimal.NewFromInt(5), 3)
	require.NoError(t, err)

	_, err = services.NewPaymentCalculator(nil, weightPolicy)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = services.NewPaymentCalculator(distancePolicy, nil)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestPaymentCalculatorCalculate(t *testing.T) {
	distancePolicy, err := services.NewTieredDistanceBonus(10, decimal.NewFromInt(5), 3)
	require.NoError(t, err)
	weightPolicy, err := services.NewPerUnitWeightBonus(decimal.NewFromFloat(0.5), 5)
	require.NoError(t, err)

	calculator, err := services.NewPaymentCalculator(distancePolicy, weightPolicy)
	require.NoError(t, err)

	depot := mustLocation(t, 1, 1)
	dropoff := mustLocation(t, 11, 6) // distance 15, one full tier

	fee := decimal.NewFromInt(100)
	a := completedAssignment(t, dropoff, fee)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	p, err := calculator.Calculate(a, depot, 15, now)
	require.NoError(t, err)

	assert.True(t, a.ID().IsEqual(p.AssignmentID()))
	assert.True(t, a.Worker().IsEqual(p.PayeeID()))
	assert.True(t, a.MerchantID().IsEqual(p.MerchantID()))
	assert.Equal(t, payment.Pending, p.Status())
	assert.Equal(t, now, p.CreatedAt())

	assert.True(t, fee.Equal(p.Breakdown().Base()))
	assert.True(t, decimal.NewFromInt(5).Equal(p.Breakdown().DistanceBonus()))
	assert.True(t, decimal.NewFromInt(5).Equal(p.Breakdown().WeightBonus()))
	assert.True(t, decimal.NewFromInt(110).Equal(p.Amount()))
}

func TestPaymentCalculatorCalculateWithoutBonuses(t *testing.T) {
	distancePolicy, err := services.NewTieredDistanceBonus(10, decimal.NewFromInt(5), 3)
	require.NoError(t, err)
	weightPolicy, err := services.NewPerUnitWeightBonus(decimal.NewFromFloat(0.5), 5)
	require.NoError(t, err)

	calculator, err := services.NewPaymentCalculator(distancePolicy, weightPolicy)
	require.NoError(t, err)

	depot := mustLocation(t, 1, 1)
	dropoff := mustLocation(t, 3, 4) // distance 5, below the first tier

	fee := decimal.NewFromInt(40)
	a := completedAssignment(t, dropoff, fee)

	p, err := calculator.Calculate(a, depot, 3, time.Now().UTC())
	require.NoError(t, err)

	assert.True(t, fee.Equal(p.Amount()))
	assert.True(t, p.Breakdown().DistanceBonus().IsZero())
	assert.True(t, p.Breakdown().WeightBonus().IsZero())
}

func TestPaymentCalculatorRejectsNotCompletedAssignment(t *testing.T) {
	distancePolicy, err := services.NewTieredDistanceBonus(10, decimal.NewFromInt(5), 3)
	require.NoError(t, err)
	weightPolicy, err := services.NewPerUnitWeightBonus(decimal.NewFromFloat(0.5), 5)
	require.NoError(t, err)

	calculator, err := services.NewPaymentCalculator(distancePolicy, weightPolicy)
	require.NoError(t, err)

	address, err := kernel.NewAddress("12 Pier Rd", "Portsmouth", "")
	require.NoError(t, err)
	dropoff := mustLocation(t, 3, 4)

	a, err := assignment.NewAssignment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		address,
		dropoff,
		decimal.NewFromInt(40),
		"",
	)
	require.NoError(t, err)

	_, err = calculator.Calculate(a, mustLocation(t, 1, 1), 3, time.Now().UTC())
	assert.ErrorIs(t, err, services.ErrAssignmentNotCompleted)
}

func TestPaymentCalculatorRejectsInvalidAssignment(t *testing.T) {
	distancePolicy, err := services.NewTieredDistanceBonus(10, decimal.NewFromInt(5), 3)
	require.NoError(t, err)
	weightPolicy, err := services.NewPerUnitWeightBonus(decimal.NewFromFloat(0.5), 5)
	require.NoError(t, err)

	calculator, err := services.NewPaymentCalculator(distancePolicy, weightPolicy)
	require.NoError(t, err)

	_, err = calculator.Calculate(&assignment.Assignment{}, mustLocation(t, 1, 1), 3, time.Now().UTC())
	assert.Error(t, err)
}
