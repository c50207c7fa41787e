package queries

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetWorkerAssignmentsQueryHandler retrieves a worker's jobs from the
// database.
type GetWorkerAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetWorkerAssignmentsQueryHandler creates a handler for worker job
// queries. Requires a GORM database connection for query execution.
func NewGetWorkerAssignmentsQueryHandler(db *gorm.DB) GetWorkerAssignmentsQueryHandler {
	return GetWorkerAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the worker's jobs.
// Results are sorted by assignment ID for consistent output.
func (h GetWorkerAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetWorkerAssignmentsQuery,
) ([]GetWorkerAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			status,
			address_street,
			address_city,
			address_postal_code,
			dropoff_x,
			dropoff_y,
			instructions,
			assigned_at
		FROM assignments
		WHERE worker_id = ?
	`

	args := []any{query.WorkerID().Bytes()}
	if query.Status() != assignment.StatusUnknown {
		sql += ` AND status = ?`
		args = append(args, int(query.Status()))
	}
	sql += ` ORDER BY id`

	jobs := make([]GetWorkerAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var status int
		var street, city, postalCode, instructions string
		var dropoffX, dropoffY int8
		var assignedAt *time.Time

		err = rows.Scan(&id, &orderID, &status, &street, &city, &postalCode,
			&dropoffX, &dropoffY, &instructions, &assignedAt)
		if err != nil {
			return nil, err
		}

		assignmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		order, orderErr := kernel.UUIDFromBytes(orderID[:])
		if orderErr != nil {
			return nil, orderErr
		}

		address, addrErr := kernel.NewAddress(street, city, postalCode)
		if addrErr != nil {
			return nil, addrErr
		}

		dropoff, locErr := kernel.NewLocation(kernel.Coordinate(dropoffX), kernel.Coordinate(dropoffY))
		if locErr != nil {
			return nil, locErr
		}

		jobs = append(jobs, GetWorkerAssignmentsQueryResponse{
			ID:           assignmentID,
			OrderID:      order,
			Status:       assignment.Status(status),
			Address:      address,
			Dropoff:      dropoff,
			Instructions: instructions,
			AssignedAt:   assignedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return jobs, nil
}
