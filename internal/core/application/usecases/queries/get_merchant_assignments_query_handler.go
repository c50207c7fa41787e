package queries

import (
	"context"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetMerchantAssignmentsQueryHandler retrieves a merchant's delivery
// requests from the database. Reads the assignment rows directly rather
// than rehydrating aggregates, since the projection never mutates state.
type GetMerchantAssignmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetMerchantAssignmentsQueryHandler creates a handler for merchant
// request queries. Requires a GORM database connection for query execution.
func NewGetMerchantAssignmentsQueryHandler(db *gorm.DB) GetMerchantAssignmentsQueryHandler {
	return GetMerchantAssignmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve the merchant's delivery requests.
// Results are sorted by assignment ID for consistent output.
func (h GetMerchantAssignmentsQueryHandler) Handle(
	ctx context.Context,
	query GetMerchantAssignmentsQuery,
) ([]GetMerchantAssignmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	assignments := make([]GetMerchantAssignmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			organization_id,
			status,
			fee
		FROM assignments
		WHERE merchant_id = ?
		ORDER BY id
	`, query.MerchantID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id, orderID, organizationID uuid.UUID
		var status int
		var fee decimal.Decimal

		err = rows.Scan(&id, &orderID, &organizationID, &status, &fee)
		if err != nil {
			return nil, err
		}

		resp, respErr := newMerchantAssignmentResponse(id, orderID, organizationID, status, fee)
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

func newMerchantAssignmentResponse(
	id uuid.UUID,
	orderID uuid.UUID,
	organizationID uuid.UUID,
	status int,
	fee decimal.Decimal,
) (GetMerchantAssignmentsQueryResponse, error) {
	assignmentID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetMerchantAssignmentsQueryResponse{}, err
	}

	order, err := kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetMerchantAssignmentsQueryResponse{}, err
	}

	organization, err := kernel.UUIDFromBytes(organizationID[:])
	if err != nil {
		return GetMerchantAssignmentsQueryResponse{}, err
	}

	return GetMerchantAssignmentsQueryResponse{
		ID:             assignmentID,
		OrderID:        order,
		OrganizationID: organization,
		Status:         assignment.Status(status),
		Fee:            fee,
	}, nil
}
