package orderstore

import (
	"context"
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderStore implements OrderStore using GORM.
type GormOrderStore struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderStore creates a new GORM order store.
func NewGormOrderStore(db *gorm.DB, tracker aggregateTracker) *GormOrderStore {
	return &GormOrderStore{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order read model with its lines.
func (s *GormOrderStore) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	s.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its lines by ID.
func (s *GormOrderStore) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := s.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// UpdateFulfillmentStatus writes the externally-visible fulfillment status
// of an order.
func (s *GormOrderStore) UpdateFulfillmentStatus(ctx context.Context, orderID kernel.UUID, status order.FulfillmentStatus) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if err := status.Validate(); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ?", orderID.Bytes()).
		Update("fulfillment_status", int(status))
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", orderID.String())
	}

	return nil
}
