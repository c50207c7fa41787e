package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
)

// OrderStore is the read-mostly contract over the storefront's order data.
// The fulfillment core reads orders to denormalize delivery details and
// writes back exactly one field, the fulfillment status.
type OrderStore interface {
	// Add persists a new order read model. Exposed for the storefront-facing
	// ingestion path and for test fixtures.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	// Returns ObjectNotFoundError if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateFulfillmentStatus writes the externally-visible fulfillment
	// status of an order. The only write the fulfillment core performs on
	// order data.
	UpdateFulfillmentStatus(ctx context.Context, orderID kernel.UUID,
		status order.FulfillmentStatus) error
}
