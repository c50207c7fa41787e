package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for delivery
// assignment aggregates.
type AssignmentRepository interface {
	// Add persists a new assignment. Returns ConflictError if the order
	// already has an active assignment, backed by a partial unique index on
	// the order column over non-cancelled rows.
	Add(ctx context.Context, aggregate *assignment.Assignment) error

	// Update persists changes to an existing assignment.
	Update(ctx context.Context, aggregate *assignment.Assignment) error

	// Get retrieves an assignment by its unique identifier.
	// Returns ObjectNotFoundError if no such assignment exists.
	Get(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetForUpdate retrieves an assignment by identifier with a row lock
	// held until the surrounding transaction ends. All mutating flows load
	// through this so concurrent transitions on one assignment serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*assignment.Assignment, error)

	// GetActiveByOrder retrieves the order's non-cancelled assignment, if
	// any. Returns ObjectNotFoundError when the order has none.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.Assignment, error)

	// GetCompletedWithoutPayment retrieves completed assignments that have
	// no payment row yet, up to limit. Used by the reconciliation sweep.
	GetCompletedWithoutPayment(ctx context.Context, limit int) ([]*assignment.Assignment, error)
}
