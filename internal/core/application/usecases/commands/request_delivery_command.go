package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrRequestDeliveryCommandIsNotConstructed = errors.New(
		"RequestDeliveryCommand must be created via NewRequestDeliveryCommand constructor",
	)
	ErrFeeIsInvalid = errors.New("fee must be greater than 0")
)

// RequestDeliveryCommand represents a merchant's request to have an order
// delivered by a chosen organization for an offered fee.
type RequestDeliveryCommand struct { //nolint:recvcheck //using for validation
	assignmentID   kernel.UUID
	orderID        kernel.UUID
	organizationID kernel.UUID
	actorID        kernel.UUID
	fee            decimal.Decimal
	instructions   string

	guard guard.ConstructorGuard
}

// NewRequestDeliveryCommand creates a command to request delivery of an
// order. Validates that identifiers are valid and the fee is positive. The
// actor must be the order's merchant, which the handler verifies against the
// stored order.
func NewRequestDeliveryCommand(
	assignmentID kernel.UUID,
	orderID kernel.UUID,
	organizationID kernel.UUID,
	actorID kernel.UUID,
	fee decimal.Decimal,
	instructions string,
) (RequestDeliveryCommand, error) {
	cmd := RequestDeliveryCommand{
		instructions: instructions,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAssignmentID(assignmentID),
		cmd.setOrderID(orderID),
		cmd.setOrganizationID(organizationID),
		cmd.setActorID(actorID),
		cmd.setFee(fee),
	); err != nil {
		return RequestDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RequestDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRequestDeliveryCommandIsNotConstructed)
}

// AssignmentID returns the unique identifier for the new assignment.
func (c RequestDeliveryCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// OrderID returns the order the merchant wants delivered.
func (c RequestDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrganizationID returns the organization asked to deliver.
func (c RequestDeliveryCommand) OrganizationID() kernel.UUID {
	return c.organizationID
}

// ActorID returns the requesting merchant.
func (c RequestDeliveryCommand) ActorID() kernel.UUID {
	return c.actorID
}

// Fee returns the merchant's offered base fee.
func (c RequestDeliveryCommand) Fee() decimal.Decimal {
	return c.fee
}

// Instructions returns the optional delivery instructions.
func (c RequestDeliveryCommand) Instructions() string {
	return c.instructions
}

func (c *RequestDeliveryCommand) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}

	c.assignmentID = assignmentID
	return nil
}

func (c *RequestDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RequestDeliveryCommand) setOrganizationID(organizationID kernel.UUID) error {
	if err := organizationID.Validate(); err != nil {
		return err
	}

	c.organizationID = organizationID
	return nil
}

func (c *RequestDeliveryCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *RequestDeliveryCommand) setFee(fee decimal.Decimal) error {
	if !fee.IsPositive() {
		return ErrFeeIsInvalid
	}

	c.fee = fee
	return nil
}
