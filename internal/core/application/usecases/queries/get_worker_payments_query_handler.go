package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetWorkerPaymentsQueryHandler retrieves a worker's payments from the
// database.
type GetWorkerPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerPaymentsQueryHandler creates a handler for worker payment
// queries. Requires a GORM database connection for query execution.
func NewGetWorkerPaymentsQueryHandler(db *gorm.DB) GetWorkerPaymentsQueryHandler {
	return GetWorkerPaymentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the worker's payments.
// Results are sorted newest first.
func (h GetWorkerPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerPaymentsQuery,
) ([]GetWorkerPaymentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	payments := make([]GetWorkerPaymentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			assignment_id,
			amount,
			base,
			distance_bonus,
			weight_bonus,
			status,
			created_at
		FROM payments
		WHERE payee_id = ?
		ORDER BY created_at DESC, id
	`, query.WorkerID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, assignmentID uuid.UUID
		var amount, base, distanceBonus, weightBonus decimal.Decimal
		var status int
		var createdAt time.Time

		err = rows.Scan(&id, &assignmentID, &amount, &base,
			&distanceBonus, &weightBonus, &status, &createdAt)
		if err != nil {
			return nil, err
		}

		paymentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		assignment, aErr := kernel.UUIDFromBytes(assignmentID[:])
		if aErr != nil {
			return nil, aErr
		}

		payments = append(payments, GetWorkerPaymentsQueryResponse{
			ID:            paymentID,
			AssignmentID:  assignment,
			Amount:        amount,
			Base:          base,
			DistanceBonus: distanceBonus,
			WeightBonus:   weightBonus,
			Status:        payment.Status(status),
			CreatedAt:     createdAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}
