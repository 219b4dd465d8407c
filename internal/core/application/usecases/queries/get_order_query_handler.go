package queries

import (
	"context"
	"database/sql"
	"errors"

	"pizzabot/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderQueryHandler assembles the order snapshot read model with direct
// SQL for read performance. Items and updates come back in insertion order
// (ascending id), never reordered by any business key.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order snapshot queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. A missing order id yields an ObjectNotFoundError.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderSnapshot, error) {
	if err := query.Validate(); err != nil {
		return OrderSnapshot{}, err
	}

	var snapshot OrderSnapshot

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			delivery_type,
			address,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Row()

	err := row.Scan(
		&snapshot.Order.ID,
		&snapshot.Order.CustomerID,
		&snapshot.Order.Status,
		&snapshot.Order.DeliveryType,
		&snapshot.Order.Address,
		&snapshot.Order.Notes,
		&snapshot.Order.CreatedAt,
		&snapshot.Order.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows) {
			return OrderSnapshot{}, errs.NewObjectNotFoundError("order", query.OrderID())
		}
		return OrderSnapshot{}, err
	}

	snapshot.Items = make([]ItemView, 0)
	itemRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			item_type,
			item_id,
			item_name,
			size,
			qty,
			unit_price,
			created_at
		FROM order_items
		WHERE order_id = ?
		ORDER BY id ASC
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderSnapshot{}, err
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item ItemView
		if err = itemRows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ItemType,
			&item.ItemID,
			&item.ItemName,
			&item.Size,
			&item.Qty,
			&item.UnitPrice,
			&item.CreatedAt,
		); err != nil {
			return OrderSnapshot{}, err
		}
		snapshot.Items = append(snapshot.Items, item)
	}
	if err = itemRows.Err(); err != nil {
		return OrderSnapshot{}, err
	}

	snapshot.Updates = make([]UpdateView, 0)
	updateRows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			status,
			message,
			created_at
		FROM order_updates
		WHERE order_id = ?
		ORDER BY id ASC
	`, query.OrderID()).Rows()
	if err != nil {
		return OrderSnapshot{}, err
	}
	defer updateRows.Close()

	for updateRows.Next() {
		var update UpdateView
		if err = updateRows.Scan(
			&update.ID,
			&update.OrderID,
			&update.Status,
			&update.Message,
			&update.CreatedAt,
		); err != nil {
			return OrderSnapshot{}, err
		}
		snapshot.Updates = append(snapshot.Updates, update)
	}
	if err = updateRows.Err(); err != nil {
		return OrderSnapshot{}, err
	}

	return snapshot, nil
}
