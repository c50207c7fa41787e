package payment

import (
	"errors"
	"fmt"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrPaymentIsNotConstructed is returned when a Payment instance was not
// created through NewPayment or RestorePayment.
var ErrPaymentIsNotConstructed = errors.New(
	"Payment must be created via NewPayment or RestorePayment constructor")

// Status represents the settlement state of a payment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// Pending means the payment is owed but not yet settled.
	Pending

	// Paid means an external settlement collaborator flipped the payment.
	// The fulfillment core never writes this value itself.
	Paid
)

// Validate checks the Status is Pending or Paid.
func (s Status) Validate() error {
	if s != Pending && s != Paid {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case Pending:
		return "Pending"
	case Paid:
		return "Paid"
	default:
		return "Unknown"
	}
}

// Breakdown itemizes how a payment amount was derived: the merchant-set base
// fee plus independently attributable bonuses. Amounts must be non-negative
// and the base positive.
type Breakdown struct {
	base          decimal.Decimal
	distanceBonus decimal.Decimal
	weightBonus   decimal.Decimal

	isConstructed bool
}

// NewBreakdown creates a Breakdown from the base fee and the two bonuses.
func NewBreakdown(base decimal.Decimal, distanceBonus decimal.Decimal, weightBonus decimal.Decimal) (Breakdown, error) {
	if !base.IsPositive() {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause("base",
			errors.New("base must be greater than 0"))
	}
	if distanceBonus.IsNegative() {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause("distanceBonus",
			errors.New("distance bonus cannot be negative"))
	}
	if weightBonus.IsNegative() {
		return Breakdown{}, errs.NewValueIsInvalidErrorWithCause("weightBonus",
			errors.New("weight bonus cannot be negative"))
	}

	return Breakdown{
		base:          base,
		distanceBonus: distanceBonus,
		weightBonus:   weightBonus,
		isConstructed: true,
	}, nil
}

// Validate ensures the Breakdown was created through NewBreakdown.
func (b Breakdown) Validate() error {
	if !b.isConstructed {
		return errs.NewValueIsRequiredError("breakdown must be created via NewBreakdown constructor")
	}
	return nil
}

// Base returns the merchant-set base fee component.
func (b Breakdown) Base() decimal.Decimal {
	return b.base
}

// DistanceBonus returns the distance bonus component.
func (b Breakdown) DistanceBonus() decimal.Decimal {
	return b.distanceBonus
}

// WeightBonus returns the weight bonus component.
func (b Breakdown) WeightBonus() decimal.Decimal {
	return b.weightBonus
}

// Total returns the sum of the base and all bonuses.
func (b Breakdown) Total() decimal.Decimal {
	return b.base.Add(b.distanceBonus).Add(b.weightBonus)
}

// Payment is the derived compensation record for one completed assignment.
// The amount always equals the breakdown total.
type Payment struct {
	id           kernel.UUID
	assignmentID kernel.UUID
	payeeID      kernel.UUID
	merchantID   kernel.UUID
	amount       decimal.Decimal
	breakdown    Breakdown
	status       Status
	createdAt    time.Time

	isConstructed bool
}

// NewPayment creates a Pending payment for an assignment. The amount is
// derived from the breakdown total, never passed in.
func NewPayment(
	id kernel.UUID,
	assignmentID kernel.UUID,
	payeeID kernel.UUID,
	merchantID kernel.UUID,
	breakdown Breakdown,
	createdAt time.Time,
) (*Payment, error) {
	p := &Payment{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setAssignmentID(assignmentID),
		p.setPayeeID(payeeID),
		p.setMerchantID(merchantID),
		p.setBreakdown(breakdown),
		p.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePayment reconstructs a Payment from persistence.
func RestorePayment(
	id kernel.UUID,
	assignmentID kernel.UUID,
	payeeID kernel.UUID,
	merchantID kernel.UUID,
	breakdown Breakdown,
	status Status,
	createdAt time.Time,
) (*Payment, error) {
	p, err := NewPayment(id, assignmentID, payeeID, merchantID, breakdown, createdAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	p.status = status
	return p, nil
}

// Validate ensures the Payment was created through a constructor.
func (p *Payment) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPaymentIsNotConstructed
	}

	return nil
}

// IsEqual compares two payments by identifier.
func (p *Payment) IsEqual(other *Payment) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the payment's unique identifier.
func (p *Payment) ID() kernel.UUID {
	return p.id
}

// AssignmentID returns the completed assignment the payment compensates.
func (p *Payment) AssignmentID() kernel.UUID {
	return p.assignmentID
}

// PayeeID returns the worker owed the payment.
func (p *Payment) PayeeID() kernel.UUID {
	return p.payeeID
}

// MerchantID returns the merchant in whose context the payment arose.
func (p *Payment) MerchantID() kernel.UUID {
	return p.merchantID
}

// Amount returns the total amount owed.
func (p *Payment) Amount() decimal.Decimal {
	return p.amount
}

// Breakdown returns the itemized derivation of the amount.
func (p *Payment) Breakdown() Breakdown {
	return p.breakdown
}

// Status returns the settlement status.
func (p *Payment) Status() Status {
	return p.status
}

// CreatedAt returns when the payment was derived.
func (p *Payment) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Payment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Payment) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	p.assignmentID = assignmentID
	return nil
}

func (p *Payment) setPayeeID(payeeID kernel.UUID) error {
	if err := payeeID.Validate(); err != nil {
		return err
	}
	p.payeeID = payeeID
	return nil
}

func (p *Payment) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	p.merchantID = merchantID
	return nil
}

func (p *Payment) setBreakdown(breakdown Breakdown) error {
	if err := breakdown.Validate(); err != nil {
		return err
	}
	p.breakdown = breakdown
	p.amount = breakdown.Total()
	return nil
}

func (p *Payment) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	p.createdAt = createdAt
	return nil
}
