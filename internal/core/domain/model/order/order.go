package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New(
		"Order must be created via NewOrder or RestoreOrder constructor")

	// ErrLineIsNotConstructed is returned when a Line instance was not
	// created through NewLine.
	ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")
)

// Line is one order item as the fulfillment core needs it: a description,
// a unit weight, and a quantity. Prices and product references stay with
// the storefront.
type Line struct {
	description string
	weight      int
	quantity    int

	isConstructed bool
}

// NewLine creates an order line. Weight must be non-negative and quantity
// positive.
func NewLine(description string, weight int, quantity int) (Line, error) {
	if weight < 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("weight",
			errors.New("weight cannot be negative"))
	}
	if quantity <= 0 {
		return Line{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			errors.New("quantity must be greater than 0"))
	}

	return Line{
		description:   description,
		weight:        weight,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the Line was created through NewLine.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// Description returns the line's item description.
func (l Line) Description() string {
	return l.description
}

// Weight returns the unit weight of the item.
func (l Line) Weight() int {
	return l.weight
}

// Quantity returns how many units the line holds.
func (l Line) Quantity() int {
	return l.quantity
}

// Order is the fulfillment core's read model of a storefront order.
type Order struct {
	id                kernel.UUID
	merchantID        kernel.UUID
	address           kernel.Address
	dropoff           kernel.Location
	lines             []Line
	fulfillmentStatus FulfillmentStatus

	isConstructed bool
}

// NewOrder creates an order read model in AwaitingFulfillment status.
func NewOrder(
	id kernel.UUID,
	merchantID kernel.UUID,
	address kernel.Address,
	dropoff kernel.Location,
	lines []Line,
) (*Order, error) {
	o := &Order{
		fulfillmentStatus: AwaitingFulfillment,
		isConstructed:     true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setMerchantID(merchantID),
		o.setAddress(address),
		o.setDropoff(dropoff),
		o.setLines(lines),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order read model from persistence.
func RestoreOrder(
	id kernel.UUID,
	merchantID kernel.UUID,
	address kernel.Address,
	dropoff kernel.Location,
	lines []Line,
	fulfillmentStatus FulfillmentStatus,
) (*Order, error) {
	o, err := NewOrder(id, merchantID, address, dropoff, lines)
	if err != nil {
		return nil, err
	}

	if err = fulfillmentStatus.Validate(); err != nil {
		return nil, err
	}

	o.fulfillmentStatus = fulfillmentStatus
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// MerchantID returns the merchant who owns the order.
func (o *Order) MerchantID() kernel.UUID {
	return o.merchantID
}

// Address returns the order's shipping address.
func (o *Order) Address() kernel.Address {
	return o.address
}

// Dropoff returns the order's drop-off location on the city grid.
func (o *Order) Dropoff() kernel.Location {
	return o.dropoff
}

// Lines returns the order's items.
func (o *Order) Lines() []Line {
	return o.lines
}

// FulfillmentStatus returns the externally-visible fulfillment status.
func (o *Order) FulfillmentStatus() FulfillmentStatus {
	return o.fulfillmentStatus
}

// IsOwnedBy reports whether merchantID owns the order.
func (o *Order) IsOwnedBy(merchantID kernel.UUID) bool {
	return o.merchantID.IsEqual(merchantID)
}

// TotalWeight returns the summed weight of all lines (unit weight times
// quantity), used by the weight bonus policy of payment derivation.
func (o *Order) TotalWeight() int {
	total := 0
	for _, line := range o.lines {
		total += line.weight * line.quantity
	}
	return total
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setMerchantID(merchantID kernel.UUID) error {
	if err := merchantID.Validate(); err != nil {
		return err
	}
	o.merchantID = merchantID
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setDropoff(dropoff kernel.Location) error {
	if err := dropoff.Validate(); err != nil {
		return err
	}
	o.dropoff = dropoff
	return nil
}

func (o *Order) setLines(lines []Line) error {
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}
	o.lines = lines
	return nil
}
