package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// FulfillmentStatus is the single order field the fulfillment core writes.
// It mirrors the delivery workflow for the storefront's benefit.
type FulfillmentStatus int

const (
	// FulfillmentUnknown represents an invalid or undefined status.
	FulfillmentUnknown FulfillmentStatus = iota

	// AwaitingFulfillment is the initial status, and the status an order
	// returns to when a delivery request is rejected so the merchant can
	// request again.
	AwaitingFulfillment

	// AcceptedForDelivery means a delivery organization accepted the request.
	AcceptedForDelivery

	// OutForDelivery means the assigned worker picked the order up.
	OutForDelivery

	// Delivered means the worker completed the delivery.
	Delivered
)

func getFulfillmentStatusStrings() map[FulfillmentStatus]string {
	return map[FulfillmentStatus]string{
		FulfillmentUnknown:  "Unknown",
		AwaitingFulfillment: "AwaitingFulfillment",
		AcceptedForDelivery: "AcceptedForDelivery",
		OutForDelivery:      "OutForDelivery",
		Delivered:           "Delivered",
	}
}

// Validate checks the FulfillmentStatus is one of the defined states.
func (s FulfillmentStatus) Validate() error {
	switch s {
	case AwaitingFulfillment, AcceptedForDelivery, OutForDelivery, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("fulfillmentStatus",
			fmt.Errorf("%d is not a valid fulfillment status", s))
	}
}

// String implements fmt.Stringer.
func (s FulfillmentStatus) String() string {
	if str, ok := getFulfillmentStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
