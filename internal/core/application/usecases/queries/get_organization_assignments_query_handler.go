package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrganizationAssignmentsQueryHandler retrieves an organization's work
// queue from the database. Ownership is checked against the organizations
// table before any assignment row is read.
type GetOrganizationAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetOrganizationAssignmentsQueryHandler creates a handler for
// organization queue queries. Requires a GORM database connection for query
// execution.
func NewGetOrganizationAssignmentsQueryHandler(db *gorm.DB) GetOrganizationAssignmentsQueryHandler {
	return GetOrganizationAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the organization's assignments.
// Returns ObjectNotFoundError when the organization does not exist and
// ForbiddenError when the actor is not its owner. Results are sorted by
// assignment ID for consistent output.
func (h GetOrganizationAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetOrganizationAssignmentsQuery,
) ([]GetOrganizationAssignmentsQueryResponse, error) {
	if err := h.checkOwnership(ctx, query); err != nil {
		return nil, err
	}

	assignments := make([]GetOrganizationAssignmentsQueryResponse, 0)

	sql := `
		SELECT
			id,
			order_id,
			worker_id,
			status,
			fee,
			dropoff_x,
			dropoff_y,
			instructions
		FROM assignments
		WHERE organization_id = ?
	`

	args := []any{query.OrganizationID().Bytes()}
	switch query.Filter() {
	case FilterInbox:
		sql += ` AND status = ?`
		args = append(args, int(assignment.Requested))
	case FilterUnassigned:
		sql += ` AND status = ? AND worker_id IS NULL`
		args = append(args, int(assignment.Assigned))
	case FilterAll:
	}
	sql += ` ORDER BY id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID uuid.UUID
		var workerID *uuid.UUID
		var status int
		var fee decimal.Decimal
		var dropoffX, dropoffY int8
		var instructions string

		err = rows.Scan(&id, &orderID, &workerID, &status, &fee,
			&dropoffX, &dropoffY, &instructions)
		if err != nil {
			return nil, err
		}

		resp, respErr := newOrganizationAssignmentResponse(id, orderID, workerID,
			status, fee, dropoffX, dropoffY, instructions)
		if respErr != nil {
			return nil, respErr
		}

		assignments = append(assignments, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return assignments, nil
}

func (h GetOrganizationAssignmentsQueryHandler) checkOwnership(
	ctx context.Context,
	query GetOrganizationAssignmentsQuery,
) error {
	if err := query.Validate(); err != nil {
		return err
	}

	var ownerID uuid.UUID
	result := h.db.WithContext(ctx).Raw(`
		SELECT owner_id FROM organizations WHERE id = ?
	`, query.OrganizationID().Bytes()).Scan(&ownerID)
	if result.Error != nil {
		return result.Error
	}

	// Raw Scan reports an empty result as zero rows affected.
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("organization", query.OrganizationID().String())
	}

	if ownerID != query.ActorID().Bytes() {
		return errs.NewForbiddenError("organization", "actor does not own the organization")
	}

	return nil
}

func newOrganizationAssignmentResponse(
	id uuid.UUID,
	orderID uuid.UUID,
	workerID *uuid.UUID,
	status int,
	fee decimal.Decimal,
	dropoffX int8,
	dropoffY int8,
	instructions string,
) (GetOrganizationAssignmentsQueryResponse, error) {
	assignmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrganizationAssignmentsQueryResponse{}, err
	}

	order, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetOrganizationAssignmentsQueryResponse{}, err
	}

	var worker *kernel.UUID
	if workerID != nil {
		w, workerErr := kernel.UUIDFromBytes((*workerID)[:])
		if workerErr != nil {
			return GetOrganizationAssignmentsQueryResponse{}, workerErr
		}
		worker = &w
	}

	dropoff, err := kernel.NewLocation(kernel.Coordinate(dropoffX), kernel.Coordinate(dropoffY))
	if err != nil {
		return GetOrganizationAssignmentsQueryResponse{}, err
	}

	return GetOrganizationAssignmentsQueryResponse{
		ID:           assignmentID,
		OrderID:      order,
		WorkerID:     worker,
		Status:       assignment.Status(status),
		Fee:          fee,
		Dropoff:      dropoff,
		Instructions: instructions,
	}, nil
}
