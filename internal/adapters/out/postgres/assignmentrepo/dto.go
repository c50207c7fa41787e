// Package assignmentrepo provides data transfer objects and mapping
// functions for delivery assignment persistence.
package assignmentrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/assignment"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssignmentDTO represents the database structure for persisting delivery
// assignments. The partial unique index on OrderID (over non-cancelled rows,
// status <> 5 being Cancelled) backs the one-active-assignment-per-order
// rule.
type AssignmentDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID  `gorm:"type:uuid;index:idx_assignments_active_order,unique,where:status <> 5"`
	MerchantID     uuid.UUID  `gorm:"type:uuid;index"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;index"`
	WorkerID       *uuid.UUID `gorm:"type:uuid;index"`
	Address        AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Dropoff        DropoffDTO `gorm:"embedded;embeddedPrefix:dropoff_"`
	Fee            decimal.Decimal `gorm:"type:numeric(12,2)"`
	Instructions   string
	Status         int `gorm:"index"`
	AssignedAt     *time.Time
}

// TableName specifies the database table name for assignment entities.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// AddressDTO represents the embedded drop-off address within the
// assignments table.
type AddressDTO struct {
	Street     string
	City       string
	PostalCode string
}

// DropoffDTO represents the embedded drop-off coordinates within the
// assignments table.
type DropoffDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

func fromDomain(a *assignment.Assignment) AssignmentDTO {
	var workerID *uuid.UUID
	if id := a.Worker(); id != nil {
		raw := id.Bytes()
		workerID = &raw
	}

	return AssignmentDTO{
		ID:             a.ID().Bytes(),
		OrderID:        a.OrderID().Bytes(),
		MerchantID:     a.MerchantID().Bytes(),
		OrganizationID: a.OrganizationID().Bytes(),
		WorkerID:       workerID,
		Address: AddressDTO{
			Street:     a.Address().Street(),
			City:       a.Address().City(),
			PostalCode: a.Address().PostalCode(),
		},
		Dropoff: DropoffDTO{
			X: a.Dropoff().X(),
			Y: a.Dropoff().Y(),
		},
		Fee:          a.Fee(),
		Instructions: a.Instructions(),
		Status:       int(a.Status()),
		AssignedAt:   a.AssignedAt(),
	}
}

func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	merchantID, err := kernel.UUIDFromBytes(dto.MerchantID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	var workerID *kernel.UUID
	if dto.WorkerID != nil {
		wID, workerErr := kernel.UUIDFromBytes((*dto.WorkerID)[:])
		if workerErr != nil {
			return nil, workerErr
		}

		workerID = &wID
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.PostalCode)
	if err != nil {
		return nil, err
	}

	dropoff, err := kernel.NewLocation(dto.Dropoff.X, dto.Dropoff.Y)
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(id, orderID, merchantID, organizationID,
		address, dropoff, dto.Fee, dto.Instructions,
		assignment.Status(dto.Status), workerID, dto.AssignedAt)
}
