package queries

import (
	"errors"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetMerchantAssignmentsQueryIsNotConstructed = errors.New(
	"GetMerchantAssignmentsQuery must be created via NewGetMerchantAssignmentsQuery constructor",
)

// GetMerchantAssignmentsQuery retrieves every delivery request a merchant
// has placed, across all organizations and statuses.
type GetMerchantAssignmentsQuery struct {
	guard      guard.ConstructorGuard
	merchantID kernel.UUID
}

// NewGetMerchantAssignmentsQuery creates a query for the merchant's
// delivery requests.
func NewGetMerchantAssignmentsQuery(merchantID kernel.UUID) (GetMerchantAssignmentsQuery, error) {
	if err := merchantID.Validate(); err != nil {
		return GetMerchantAssignmentsQuery{}, err
	}

	return GetMerchantAssignmentsQuery{
		guard:      guard.NewConstructorGuard(),
		merchantID: merchantID,
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetMerchantAssignmentsQueryIsNotConstructed if validation fails.
func (q GetMerchantAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetMerchantAssignmentsQueryIsNotConstructed)
}

// MerchantID returns the merchant whose requests are retrieved.
func (q GetMerchantAssignmentsQuery) MerchantID() kernel.UUID {
	return q.merchantID
}

// GetMerchantAssignmentsQueryResponse represents one delivery request from
// the merchant's point of view.
type GetMerchantAssignmentsQueryResponse struct {
	ID             kernel.UUID
	OrderID        kernel.UUID
	OrganizationID kernel.UUID
	Status         assignment.Status
	Fee            decimal.Decimal
}
