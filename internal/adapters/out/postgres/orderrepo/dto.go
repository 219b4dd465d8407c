// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pizzabot/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Items and updates live in child tables keyed by OrderID; both are read back
// in ascending id order, which preserves insertion order.
type OrderDTO struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	CustomerID   *int64    `gorm:"index"`
	Status       string    `gorm:"type:varchar(32);not null;index"`
	DeliveryType string    `gorm:"type:varchar(16);not null"`
	Address      *string   `gorm:"type:text"`
	Notes        *string   `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime:false"`

	Items   []ItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Updates []UpdateDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents the database structure for persisting order line items.
// The catalog id, name and unit price are snapshots taken at add-time.
type ItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	ItemType  string    `gorm:"type:varchar(16);not null"`
	CatalogID string    `gorm:"type:varchar(64);not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Size      *string   `gorm:"type:varchar(16)"`
	Qty       int       `gorm:"not null"`
	UnitPrice int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the database table name for line item entities.
func (ItemDTO) TableName() string {
	return "order_items"
}

// UpdateDTO represents the database structure for persisting the append-only
// status history of an order.
type UpdateDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   int64     `gorm:"not null;index"`
	Status    string    `gorm:"type:varchar(32);not null"`
	Message   *string   `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false"`
}

// TableName specifies the database table name for status history rows.
func (UpdateDTO) TableName() string {
	return "order_updates"
}

// orderFromDomain converts the order row itself, without children. Items and
// updates are persisted individually so their assigned ids can be written
// back into the aggregate.
func orderFromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:           o.ID(),
		CustomerID:   o.CustomerID(),
		Status:       o.Status().String(),
		DeliveryType: string(o.DeliveryType()),
		Address:      nullable(o.Address()),
		Notes:        nullable(o.Notes()),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

// itemFromDomain converts a line item to its database representation.
func itemFromDomain(orderID int64, item *order.Item) ItemDTO {
	return ItemDTO{
		ID:        item.ID(),
		OrderID:   orderID,
		ItemType:  string(item.Type()),
		CatalogID: item.CatalogID(),
		Name:      item.Name(),
		Size:      nullable(item.Size()),
		Qty:       item.Qty(),
		UnitPrice: item.UnitPrice(),
		CreatedAt: item.CreatedAt(),
	}
}

// updateFromDomain converts a status history row to its database representation.
func updateFromDomain(orderID int64, update *order.Update) UpdateDTO {
	return UpdateDTO{
		ID:        update.ID(),
		OrderID:   orderID,
		Status:    update.Status().String(),
		Message:   nullable(update.Message()),
		CreatedAt: update.CreatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate. The caller
// must have loaded Items and Updates in ascending id order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		items = append(items, order.RestoreItem(
			itemDto.ID,
			order.ItemType(itemDto.ItemType),
			itemDto.CatalogID,
			itemDto.Name,
			deref(itemDto.Size),
			itemDto.Qty,
			itemDto.UnitPrice,
			itemDto.CreatedAt,
		))
	}

	updates := make([]*order.Update, 0, len(dto.Updates))
	for _, updateDto := range dto.Updates {
		updates = append(updates, order.RestoreUpdate(
			updateDto.ID,
			order.Status(updateDto.Status),
			deref(updateDto.Message),
			updateDto.CreatedAt,
		))
	}

	return order.RestoreOrder(
		dto.ID,
		dto.CustomerID,
		order.Status(dto.Status),
		order.DeliveryType(dto.DeliveryType),
		deref(dto.Address),
		deref(dto.Notes),
		dto.CreatedAt,
		dto.UpdatedAt,
		items,
		updates,
	)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
