package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/hiring"
	"fulfillment/internal/core/domain/model/kernel"
)

// HiringRequestRepository defines the persistence contract for hiring
// negotiation requests.
type HiringRequestRepository interface {
	// Add persists a new hiring request.
	Add(ctx context.Context, aggregate *hiring.Request) error

	// Update persists changes to an existing hiring request.
	Update(ctx context.Context, aggregate *hiring.Request) error

	// Get retrieves a hiring request by its unique identifier.
	// Returns ObjectNotFoundError if no such request exists.
	Get(ctx context.Context, id kernel.UUID) (*hiring.Request, error)

	// GetForUpdate retrieves a hiring request by identifier with a row lock
	// held until the surrounding transaction ends. Used by resolution flows
	// so concurrent decisions on the same request serialize.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*hiring.Request, error)

	// FindPending retrieves the pending request between an organization and
	// a user in the given direction, if one exists.
	// Returns ObjectNotFoundError when there is none.
	FindPending(ctx context.Context, organizationID kernel.UUID, userID kernel.UUID,
		direction hiring.Direction) (*hiring.Request, error)

	// GetAllPendingByUser retrieves every pending request involving the
	// user, in either direction. Used to auto-reject leftovers once the
	// user joins an organization.
	GetAllPendingByUser(ctx context.Context, userID kernel.UUID) ([]*hiring.Request, error)
}
