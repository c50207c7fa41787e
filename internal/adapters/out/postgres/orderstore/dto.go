// Package orderstore provides data transfer objects and mapping functions
// for the storefront order data the fulfillment core reads. The core
// denormalizes delivery details from these rows and writes back only the
// fulfillment status.
package orderstore

import (
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for order read models.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	MerchantID        uuid.UUID  `gorm:"type:uuid;index"`
	Address           AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Dropoff           DropoffDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	FulfillmentStatus int
	Lines             []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the orders
// table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
}

// DropoffDTO represents the embedded drop-off coordinates within the orders
// table.
type DropoffDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

// OrderLineDTO represents one order item row.
type OrderLineDTO struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	OrderID     uuid.UUID `gorm:"type:uuid;index"`
	Description string
	Weight      int
	Quantity    int
}

// TableName specifies the database table name for order line entities.
func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	lines := make([]OrderLineDTO, 0, len(o.Lines()))
	for _, line := range o.Lines() {
		lines = append(lines, OrderLineDTO{
			OrderID:     o.ID().Bytes(),
			Description: line.Description(),
			Weight:      line.Weight(),
			Quantity:    line.Quantity(),
		})
	}

	return OrderDTO{
		ID:         o.ID().Bytes(),
		MerchantID: o.MerchantID().Bytes(),
		Address: AddressDTO{
			Street:     o.Address().Street(),
			City:       o.Address().City(),
			PostalCode: o.Address().PostalCode(),
		},
		Dropoff: DropoffDTO{
			X: o.Dropoff().X(),
			Y: o.Dropoff().Y(),
		},
		FulfillmentStatus: int(o.FulfillmentStatus()),
		Lines:             lines,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.PostalCode)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewLocation(dto.Dropoff.X, dto.Dropoff.Y)
	if err != nil {
		return nil, err
	}

	lines := make([]order.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := order.NewLine(lineDTO.Description, lineDTO.Weight, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return order.RestoreOrder(id, merchantID, address, dropoff, lines,
		order.FulfillmentStatus(dto.FulfillmentStatus))
}
