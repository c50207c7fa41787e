package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/organization"
)

// OrganizationRepository defines the persistence contract for organization
// aggregates.
type OrganizationRepository interface {
	// Add persists a new organization aggregate to storage.
	Add(ctx context.Context, aggregate *organization.Organization) error

	// Update persists changes to an existing organization aggregate.
	Update(ctx context.Context, aggregate *organization.Organization) error

	// Get retrieves an organization by its unique identifier.
	// Returns ObjectNotFoundError if no such organization exists.
	Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error)

	// GetActiveByOwner retrieves the owner's active organization, if any.
	// Returns ObjectNotFoundError if the owner has no active organization.
	GetActiveByOwner(ctx context.Context, ownerID kernel.UUID) (*organization.Organization, error)
}

// MembershipRepository defines the persistence contract for organization
// memberships. A membership row existing means the user is an active member;
// ending a membership deletes the row.
type MembershipRepository interface {
	// Add persists a new membership. Returns ConflictError if the user
	// already holds a membership anywhere, backed by a unique index on the
	// user column.
	Add(ctx context.Context, aggregate *organization.Membership) error

	// GetActiveByUser retrieves the user's membership, if any.
	// Returns ObjectNotFoundError if the user belongs to no organization.
	GetActiveByUser(ctx context.Context, userID kernel.UUID) (*organization.Membership, error)
}
