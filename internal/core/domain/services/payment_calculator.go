package services

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrAssignmentNotCompleted is returned when payment derivation is attempted
// for an assignment that has not reached the Completed status.
var ErrAssignmentNotCompleted = errors.New("assignment is not completed")

// DistanceBonusPolicy computes the distance component of a worker's
// compensation from the depot-to-dropoff distance.
type DistanceBonusPolicy interface {
	Bonus(distance int) decimal.Decimal
}

// WeightBonusPolicy computes the weight component of a worker's compensation
// from the total shipped weight.
type WeightBonusPolicy interface {
	Bonus(totalWeight int) decimal.Decimal
}

// TieredDistanceBonus awards a flat bonus per distance tier. A delivery whose
// distance is below the first tier earns nothing.
type TieredDistanceBonus struct {
	tierSize  int
	perTier   decimal.Decimal
	tierLimit int
}

// NewTieredDistanceBonus creates a TieredDistanceBonus. tierSize is the
// distance covered by one tier, perTier the bonus each full tier earns, and
// tierLimit caps the number of paid tiers.
func NewTieredDistanceBonus(tierSize int, perTier decimal.Decimal, tierLimit int) (TieredDistanceBonus, error) {
	if tierSize <= 0 {
		return TieredDistanceBonus{}, errs.NewValueIsInvalidErrorWithCause("tierSize",
			errors.New("tier size must be greater than 0"))
	}
	if perTier.IsNegative() {
		return TieredDistanceBonus{}, errs.NewValueIsInvalidErrorWithCause("perTier",
			errors.New("per tier bonus cannot be negative"))
	}
	if tierLimit <= 0 {
		return TieredDistanceBonus{}, errs.NewValueIsInvalidErrorWithCause("tierLimit",
			errors.New("tier limit must be greater than 0"))
	}

	return TieredDistanceBonus{
		tierSize:  tierSize,
		perTier:   perTier,
		tierLimit: tierLimit,
	}, nil
}

// Bonus returns perTier for each full tier covered, capped at tierLimit tiers.
func (t TieredDistanceBonus) Bonus(distance int) decimal.Decimal {
	if distance <= 0 {
		return decimal.Zero
	}

	tiers := distance / t.tierSize
	if tiers > t.tierLimit {
		tiers = t.tierLimit
	}

	return t.perTier.Mul(decimal.NewFromInt(int64(tiers)))
}

// PerUnitWeightBonus awards a fixed rate per weight unit above a free
// threshold. Weight at or below the threshold earns nothing.
type PerUnitWeightBonus struct {
	ratePerUnit decimal.Decimal
	freeUnits   int
}

// NewPerUnitWeightBonus creates a PerUnitWeightBonus. freeUnits is the weight
// carried without extra compensation.
func NewPerUnitWeightBonus(ratePerUnit decimal.Decimal, freeUnits int) (PerUnitWeightBonus, error) {
	if ratePerUnit.IsNegative() {
		return PerUnitWeightBonus{}, errs.NewValueIsInvalidErrorWithCause("ratePerUnit",
			errors.New("rate per unit cannot be negative"))
	}
	if freeUnits < 0 {
		return PerUnitWeightBonus{}, errs.NewValueIsInvalidErrorWithCause("freeUnits",
			errors.New("free units cannot be negative"))
	}

	return PerUnitWeightBonus{
		ratePerUnit: ratePerUnit,
		freeUnits:   freeUnits,
	}, nil
}

// Bonus returns ratePerUnit for each weight unit above the free threshold.
func (p PerUnitWeightBonus) Bonus(totalWeight int) decimal.Decimal {
	billable := totalWeight - p.freeUnits
	if billable <= 0 {
		return decimal.Zero
	}

	return p.ratePerUnit.Mul(decimal.NewFromInt(int64(billable)))
}

// PaymentCalculator is a domain service that derives the compensation record
// for a completed assignment. The derived amount is the merchant-set base fee
// plus the distance and weight bonuses computed by the configured policies.
//
// The calculator is pure: it never persists anything and never inspects
// whether a payment already exists. Idempotency of payment creation is the
// caller's concern.
type PaymentCalculator struct {
	distancePolicy DistanceBonusPolicy
	weightPolicy   WeightBonusPolicy
}

// NewPaymentCalculator creates a PaymentCalculator with the given policies.
func NewPaymentCalculator(distancePolicy DistanceBonusPolicy, weightPolicy WeightBonusPolicy) (PaymentCalculator, error) {
	if distancePolicy == nil {
		return PaymentCalculator{}, errs.NewValueIsRequiredError("distancePolicy")
	}
	if weightPolicy == nil {
		return PaymentCalculator{}, errs.NewValueIsRequiredError("weightPolicy")
	}

	return PaymentCalculator{
		distancePolicy: distancePolicy,
		weightPolicy:   weightPolicy,
	}, nil
}

// Calculate derives the pending payment for a completed assignment.
//
// depot is the organization's dispatch point and totalWeight the sum of the
// order's line weights. The assignment must be Completed and must carry a
// worker, who becomes the payee.
func (pc PaymentCalculator) Calculate(
	a *assignment.Assignment,
	depot kernel.Location,
	totalWeight int,
	now time.Time,
) (*payment.Payment, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	if a.Status() != assignment.Completed {
		return nil, ErrAssignmentNotCompleted
	}

	distance, err := depot.Distance(a.Dropoff())
	if err != nil {
		return nil, err
	}

	breakdown, err := payment.NewBreakdown(
		a.Fee(),
		pc.distancePolicy.Bonus(distance),
		pc.weightPolicy.Bonus(totalWeight),
	)
	if err != nil {
		return nil, err
	}

	return payment.NewPayment(
		kernel.NewUUID(),
		a.ID(),
		*a.Worker(),
		a.MerchantID(),
		breakdown,
		now,
	)
}
