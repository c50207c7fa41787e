package orgrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/organization"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormOrganizationRepository implements OrganizationRepository using GORM.
type GormOrganizationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormOrganizationRepository creates a new GORM organization repository.
func NewGormOrganizationRepository(db *gorm.DB, tracker aggregateTracker) *GormOrganizationRepository {
	return &GormOrganizationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new organization to the database.
func (r *GormOrganizationRepository) Add(ctx context.Context, aggregate *organization.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := organizationFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing organization to the database.
func (r *GormOrganizationRepository) Update(ctx context.Context, aggregate *organization.Organization) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := organizationFromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrganizationDTO{}).
		Where("id = ?", dto.ID).
		Select("OwnerID", "Name", "About", "Active").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("organization", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an organization by ID.
func (r *GormOrganizationRepository) Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrganizationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("organization", id.String())
		}
		return nil, err
	}

	return organizationToDomain(dto)
}

// GetActiveByOwner retrieves the owner's active organization, if any.
func (r *GormOrganizationRepository) GetActiveByOwner(ctx context.Context, ownerID kernel.UUID) (*organization.Organization, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto OrganizationDTO
	err := r.db.WithContext(ctx).
		First(&dto, "owner_id = ? AND active = ?", ownerID.Bytes(), true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("organization", ownerID.String())
		}
		return nil, err
	}

	return organizationToDomain(dto)
}

// GormMembershipRepository implements MembershipRepository using GORM.
type GormMembershipRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormMembershipRepository creates a new GORM membership repository.
func NewGormMembershipRepository(db *gorm.DB, tracker aggregateTracker) *GormMembershipRepository {
	return &GormMembershipRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new membership to the database. The unique index on the user
// column turns a second concurrent membership into a ConflictError.
func (r *GormMembershipRepository) Add(ctx context.Context, aggregate *organization.Membership) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := membershipFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("membership",
				"user already belongs to an organization", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetActiveByUser retrieves the user's membership, if any.
func (r *GormMembershipRepository) GetActiveByUser(ctx context.Context, userID kernel.UUID) (*organization.Membership, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dto MembershipDTO
	if err := r.db.WithContext(ctx).First(&dto, "user_id = ?", userID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("membership", userID.String())
		}
		return nil, err
	}

	return membershipToDomain(dto)
}
