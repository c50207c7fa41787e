package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
)

// PaymentRepository defines the persistence contract for derived payment
// records.
type PaymentRepository interface {
	// Add persists a new payment. A unique index on the assignment column
	// enforces at most one payment per assignment; inserting a duplicate is
	// a silent no-op, which makes payment derivation idempotent.
	Add(ctx context.Context, aggregate *payment.Payment) error

	// GetByAssignment retrieves the payment derived for an assignment.
	// Returns ObjectNotFoundError if none has been derived yet.
	GetByAssignment(ctx context.Context, assignmentID kernel.UUID) (*payment.Payment, error)
}
