// Package paymentrepo provides data transfer objects and mapping functions
// for payment persistence.
package paymentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentDTO represents the database structure for persisting derived
// payments. The unique index on AssignmentID enforces at most one payment
// per assignment, which is what makes payment derivation idempotent.
type PaymentDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	AssignmentID  uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	PayeeID       uuid.UUID       `gorm:"type:uuid;index"`
	MerchantID    uuid.UUID       `gorm:"type:uuid;index"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2)"`
	Base          decimal.Decimal `gorm:"type:numeric(12,2)"`
	DistanceBonus decimal.Decimal `gorm:"type:numeric(12,2)"`
	WeightBonus   decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status        int
	CreatedAt     time.Time
}

// TableName specifies the database table name for payment entities.
func (PaymentDTO) TableName() string {
	return "payments"
}

func fromDomain(p *payment.Payment) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID().Bytes(),
		AssignmentID:  p.AssignmentID().Bytes(),
		PayeeID:       p.PayeeID().Bytes(),
		MerchantID:    p.MerchantID().Bytes(),
		Amount:        p.Amount(),
		Base:          p.Breakdown().Base(),
		DistanceBonus: p.Breakdown().DistanceBonus(),
		WeightBonus:   p.Breakdown().WeightBonus(),
		Status:        int(p.Status()),
		CreatedAt:     p.CreatedAt(),
	}
}

func toDomain(dto PaymentDTO) (*payment.Payment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}

	payeeID, err := kernel.UUIDFromBytes(dto.PayeeID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	breakdown, err := payment.NewBreakdown(dto.Base, dto.DistanceBonus, dto.WeightBonus)
	if err != nil {
		return nil, err
	}

	return payment.RestorePayment(id, assignmentID, payeeID, merchantID,
		breakdown, payment.Status(dto.Status), dto.CreatedAt)
}
