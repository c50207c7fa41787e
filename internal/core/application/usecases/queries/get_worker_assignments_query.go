package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"
)

var ErrGetWorkerAssignmentsQueryIsNotConstructed = errors.New(
	"GetWorkerAssignmentsQuery must be created via NewGetWorkerAssignmentsQuery constructor",
)

// GetWorkerAssignmentsQuery retrieves the jobs assigned to a worker,
// optionally narrowed to a single status. Passing StatusUnknown returns
// jobs in every status.
type GetWorkerAssignmentsQuery struct {
	guard    guard.ConstructorGuard
	workerID kernel.UUID
	status   assignment.Status
}

// NewGetWorkerAssignmentsQuery creates a query for the worker's jobs.
// status narrows the result; StatusUnknown means no narrowing.
func NewGetWorkerAssignmentsQuery(
	workerID kernel.UUID,
	status assignment.Status,
) (GetWorkerAssignmentsQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerAssignmentsQuery{}, err
	}

	if status != assignment.StatusUnknown {
		if err := status.Validate(); err != nil {
			return GetWorkerAssignmentsQuery{}, err
		}
	}

	return GetWorkerAssignmentsQuery{
		guard:    guard.NewConstructorGuard(),
		workerID: workerID,
		status:   status,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkerAssignmentsQueryIsNotConstructed if validation fails.
func (q GetWorkerAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerAssignmentsQueryIsNotConstructed)
}

// WorkerID returns the worker whose jobs are retrieved.
func (q GetWorkerAssignmentsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// Status returns the status narrowing, StatusUnknown meaning none.
func (q GetWorkerAssignmentsQuery) Status() assignment.Status {
	return q.status
}

// GetWorkerAssignmentsQueryResponse represents one job from the worker's
// point of view, with everything needed to carry out the delivery.
type GetWorkerAssignmentsQueryResponse struct {
	ID           kernel.UUID
	OrderID      kernel.UUID
	Status       assignment.Status
	Address      kernel.Address
	Dropoff      kernel.Location
	Instructions string
	AssignedAt   *time.Time
}
