package queries

import (
	"errors"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetWorkerPaymentsQueryIsNotConstructed = errors.New(
	"GetWorkerPaymentsQuery must be created via NewGetWorkerPaymentsQuery constructor",
)

// GetWorkerPaymentsQuery retrieves a worker's derived payments with their
// full breakdown.
type GetWorkerPaymentsQuery struct {
	guard    guard.ConstructorGuard
	workerID kernel.UUID
}

// NewGetWorkerPaymentsQuery creates a query for the worker's payments.
func NewGetWorkerPaymentsQuery(workerID kernel.UUID) (GetWorkerPaymentsQuery, error) {
	if err := workerID.Validate(); err != nil {
		return GetWorkerPaymentsQuery{}, err
	}

	return GetWorkerPaymentsQuery{
		guard:    guard.NewConstructorGuard(),
		workerID: workerID,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetWorkerPaymentsQueryIsNotConstructed if validation fails.
func (q GetWorkerPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetWorkerPaymentsQueryIsNotConstructed)
}

// WorkerID returns the worker whose payments are retrieved.
func (q GetWorkerPaymentsQuery) WorkerID() kernel.UUID {
	return q.workerID
}

// GetWorkerPaymentsQueryResponse represents one derived payment with
// the attribution of each bonus.
type GetWorkerPaymentsQueryResponse struct {
	ID            kernel.UUID
	AssignmentID  kernel.UUID
	Amount        decimal.Decimal
	Base          decimal.Decimal
	DistanceBonus decimal.Decimal
	WeightBonus   decimal.Decimal
	Status        payment.Status
	CreatedAt     time.Time
}
