// Package hiringrepo provides data transfer objects and mapping functions
// for hiring request persistence.
package hiringrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/hiring"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting hiring
// requests. The partial unique index (rows with status = 1 being Pending)
// backs the one-pending-request-per-(organization, user, direction) rule.
type RequestDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index:idx_hiring_requests_pending_parties,unique,where:status = 1"`
	UserID         uuid.UUID `gorm:"type:uuid;index:idx_hiring_requests_pending_parties,unique,where:status = 1;index"`
	Direction      int       `gorm:"index:idx_hiring_requests_pending_parties,unique,where:status = 1"`
	Status         int       `gorm:"index"`
	Message        string
	CreatedAt      time.Time
}

// TableName specifies the database table name for hiring request entities.
func (RequestDTO) TableName() string {
	return "hiring_requests"
}

func fromDomain(r *hiring.Request) RequestDTO {
	return RequestDTO{
		ID:             r.ID().Bytes(),
		OrganizationID: r.OrganizationID().Bytes(),
		UserID:         r.UserID().Bytes(),
		Direction:      int(r.Direction()),
		Status:         int(r.Status()),
		Message:        r.Message(),
		CreatedAt:      r.CreatedAt(),
	}
}

func toDomain(dto RequestDTO) (*hiring.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	organizationID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return hiring.RestoreRequest(id, organizationID, userID,
		hiring.Direction(dto.Direction), hiring.Status(dto.Status),
		dto.Message, dto.CreatedAt)
}
