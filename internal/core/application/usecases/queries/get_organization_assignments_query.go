package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrganizationAssignmentsQueryIsNotConstructed = errors.New(
	"GetOrganizationAssignmentsQuery must be created via NewGetOrganizationAssignmentsQuery constructor",
)

// AssignmentFilter narrows an organization's work queue view.
type AssignmentFilter string

const (
	// FilterAll returns every assignment ever routed to the organization.
	FilterAll AssignmentFilter = "all"
	// FilterInbox returns requests still awaiting the owner's review.
	FilterInbox AssignmentFilter = "inbox"
	// FilterUnassigned returns accepted jobs that have no worker yet.
	FilterUnassigned AssignmentFilter = "unassigned"
)

// Validate checks that the filter is one of the known values.
func (f AssignmentFilter) Validate() error {
	switch f {
	case FilterAll, FilterInbox, FilterUnassigned:
		return nil
	default:
		return errs.NewValueIsInvalidError("filter")
	}
}

// GetOrganizationAssignmentsQuery retrieves an organization's work queue.
// Only the owner may look at it; the handler resolves ownership from the
// organizations table before reading assignments.
type GetOrganizationAssignmentsQuery struct {
	guard          guard.ConstructorGuard
	organizationID kernel.UUID
	actorID        kernel.UUID
	filter         AssignmentFilter
}

// NewGetOrganizationAssignmentsQuery creates a query for the organization's
// work queue, narrowed by filter.
func NewGetOrganizationAssignmentsQuery(
	organizationID kernel.UUID,
	actorID kernel.UUID,
	filter AssignmentFilter,
) (GetOrganizationAssignmentsQuery, error) {
	if err := errors.Join(
		organizationID.Validate(),
		actorID.Validate(),
		filter.Validate(),
	); err != nil {
		return GetOrganizationAssignmentsQuery{}, err
	}

	return GetOrganizationAssignmentsQuery{
		guard:          guard.NewConstructorGuard(),
		organizationID: organizationID,
		actorID:        actorID,
		filter:         filter,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrganizationAssignmentsQueryIsNotConstructed if validation
// fails.
func (q GetOrganizationAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrganizationAssignmentsQueryIsNotConstructed)
}

// OrganizationID returns the organization whose queue is retrieved.
func (q GetOrganizationAssignmentsQuery) OrganizationID() kernel.UUID {
	return q.organizationID
}

// ActorID returns the user requesting the view.
func (q GetOrganizationAssignmentsQuery) ActorID() kernel.UUID {
	return q.actorID
}

// Filter returns the requested queue narrowing.
func (q GetOrganizationAssignmentsQuery) Filter() AssignmentFilter {
	return q.filter
}

// GetOrganizationAssignmentsQueryResponse represents one assignment in the
// organization's work queue.
type GetOrganizationAssignmentsQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	WorkerID     *kernel.UUID
	Status       assignment.Status
	Fee          decimal.Decimal
	Dropoff      kernel.Location
	Instructions string
}
