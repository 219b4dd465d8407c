package ports

import (
	"context"

	"pizzabot/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations must keep the paired writes atomic: an order row and its
// audit rows, or a new item and the order's updated timestamp, commit or roll
// back together.
type OrderRepository interface {
	// Add persists a new order aggregate: the order row plus any updates the
	// aggregate has accumulated (at least the creation audit row). The
	// assigned ids are written back into the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order: the current status and
	// updated timestamp on the order row, plus any not-yet-persisted items
	// and audit rows. Assigned ids are written back into the aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items and updates, both in insertion
	// order. A missing id yields an ObjectNotFoundError.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// RemoveItem deletes a line item by id. Removing an absent id is not an
	// error; the operation is idempotent.
	RemoveItem(ctx context.Context, itemID int64) error

	// GetAllInStatus retrieves all orders whose current status is one of the
	// given values, oldest first. Used by the kitchen progression job.
	GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)
}
