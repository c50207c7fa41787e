// Package orgrepo provides data transfer objects and mapping functions for
// organization persistence. This package implements the repository pattern for
// the organization aggregate and its memberships, handling the conversion
// between domain entities and database representations.
package orgrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/organization"

	"github.com/google/uuid"
)

// OrganizationDTO represents the database structure for persisting
// organization aggregates.
type OrganizationDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`
	Name    string
	About   string
	Depot   DepotDTO `gorm:"embedded;embeddedPrefix:depot_"`
	Active  bool
}

// TableName specifies the database table name for organization entities.
func (OrganizationDTO) TableName() string {
	return "organizations"
}

// DepotDTO represents the embedded depot coordinates within the
// organizations table.
type DepotDTO struct {
	X kernel.Coordinate `gorm:"type:smallint"`
	Y kernel.Coordinate `gorm:"type:smallint"`
}

// MembershipDTO represents the database structure for persisting
// memberships. The unique index on UserID backs the rule that a user holds
// at most one membership at a time.
type MembershipDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;index"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex"`
	JoinedAt       time.Time
}

// TableName specifies the database table name for membership entities.
func (MembershipDTO) TableName() string {
	return "memberships"
}

func organizationFromDomain(org *organization.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:      org.ID().Bytes(),
		OwnerID: org.OwnerID().Bytes(),
		Name:    org.Name(),
		About:   org.About(),
		Depot: DepotDTO{
			X: org.Depot().X(),
			Y: org.Depot().Y(),
		},
		Active: org.IsActive(),
	}
}

func organizationToDomain(dto OrganizationDTO) (*organization.Organization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	depot, err := kernel.NewLocation(dto.Depot.X, dto.Depot.Y)
	if err != nil {
		return nil, err
	}

	return organization.RestoreOrganization(id, ownerID, dto.Name, dto.About, depot, dto.Active)
}

func membershipFromDomain(m *organization.Membership) MembershipDTO {
	return MembershipDTO{
		ID:             m.ID().Bytes(),
		OrganizationID: m.OrganizationID().Bytes(),
		UserID:         m.UserID().Bytes(),
		JoinedAt:       m.JoinedAt(),
	}
}

func membershipToDomain(dto MembershipDTO) (*organization.Membership, error) {
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

	return organization.RestoreMembership(id, organizationID, userID, dto.JoinedAt)
}
