package hiringrepo

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/hiring"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormHiringRequestRepository implements HiringRequestRepository using GORM.
type GormHiringRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormHiringRequestRepository creates a new GORM hiring request repository.
func NewGormHiringRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormHiringRequestRepository {
	return &GormHiringRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new hiring request to the database. The partial unique index
// turns a concurrent duplicate pending request into a ConflictError, so the
// handlers' FindPending pre-check stays race-free.
func (r *GormHiringRequestRepository) Add(ctx context.Context, aggregate *hiring.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictErrorWithCause("hiringRequest",
				"pending request already exists between the parties", err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing hiring request to the database.
func (r *GormHiringRequestRepository) Update(ctx context.Context, aggregate *hiring.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&RequestDTO{}).
		Where("id = ?", dto.ID).
		Select("Status").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("hiringRequest", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a hiring request by ID.
func (r *GormHiringRequestRepository) Get(ctx context.Context, id kernel.UUID) (*hiring.Request, error) {
	return r.get(ctx, id, false)
}

// GetForUpdate retrieves a hiring request by ID, locking the row until the
// surrounding transaction ends.
func (r *GormHiringRequestRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*hiring.Request, error) {
	return r.get(ctx, id, true)
}

func (r *GormHiringRequestRepository) get(ctx context.Context, id kernel.UUID, forUpdate bool) (*hiring.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)
	if forUpdate {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var dto RequestDTO
	if err := tx.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hiringRequest", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// FindPending retrieves the pending request between an organization and a
// user in the given direction.
func (r *GormHiringRequestRepository) FindPending(ctx context.Context,
	organizationID kernel.UUID, userID kernel.UUID, direction hiring.Direction,
) (*hiring.Request, error) {
	if err := errors.Join(organizationID.Validate(), userID.Validate(), direction.Validate()); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).
		First(&dto, "organization_id = ? AND user_id = ? AND direction = ? AND status = ?",
			organizationID.Bytes(), userID.Bytes(), int(direction), int(hiring.Pending)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("hiringRequest", userID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllPendingByUser retrieves every pending request involving the user.
func (r *GormHiringRequestRepository) GetAllPendingByUser(ctx context.Context, userID kernel.UUID) ([]*hiring.Request, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	var dtos []RequestDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "user_id = ? AND status = ?", userID.Bytes(), int(hiring.Pending)).Error
	if err != nil {
		return nil, err
	}

	requests := make([]*hiring.Request, 0, len(dtos))
	for _, dto := range dtos {
		req, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}

	return requests, nil
}
