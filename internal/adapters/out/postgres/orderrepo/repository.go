package orderrepo

import (
	"context"
	"errors"

	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
//
// Items and status history rows are inserted individually rather than through
// GORM association saves: the aggregate needs the assigned ids written back,
// and history rows must never be updated once written.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database along with any items and audit rows
// the aggregate has accumulated, writing all assigned ids back.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := orderFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	aggregate.SetID(dto.ID)

	if err := r.insertPendingChildren(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves changes to an existing order: the current status and updated
// timestamp on the order row, plus any items and audit rows not yet persisted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", aggregate.ID()).
		Updates(map[string]any{
			"status":     aggregate.Status().String(),
			"updated_at": aggregate.UpdatedAt(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}

	if err := r.insertPendingChildren(ctx, aggregate); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// insertPendingChildren persists items and audit rows that do not yet have an
// id, then writes the assigned ids back. Already-persisted children are
// immutable and are skipped.
func (r *GormOrderRepository) insertPendingChildren(ctx context.Context, aggregate *order.Order) error {
	for _, item := range aggregate.Items() {
		if item.ID() != 0 {
			continue
		}

		dto := itemFromDomain(aggregate.ID(), item)
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
		item.SetID(dto.ID)
	}

	for _, update := range aggregate.Updates() {
		if update.ID() != 0 {
			continue
		}

		dto := updateFromDomain(aggregate.ID(), update)
		if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
			return err
		}
		update.SetID(dto.ID)
	}

	return nil
}

// Get retrieves an order by id with its items and status history, both in
// insertion order.
func (r *GormOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", ascendingByID).
		Preload("Updates", ascendingByID).
		First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// RemoveItem deletes a line item by id. Deleting an absent id is a no-op.
func (r *GormOrderRepository) RemoveItem(ctx context.Context, itemID int64) error {
	return r.db.WithContext(ctx).Delete(&ItemDTO{}, itemID).Error
}

// GetAllInStatus retrieves all orders whose current status is one of the
// given values, oldest first, with their items and status history loaded.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	names := make([]string, 0, len(statuses))
	for _, s := range statuses {
		names = append(names, s.String())
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", ascendingByID).
		Preload("Updates", ascendingByID).
		Where("status IN ?", names).
		Order("id ASC").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// ascendingByID orders preloaded children by id so insertion order survives
// the round trip.
func ascendingByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}
