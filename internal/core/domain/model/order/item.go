package order

import (
	"fmt"
	"strings"
	"time"

	"pizzabot/internal/pkg/errs"
)

// ItemType distinguishes the two kinds of catalog entries a line item can
// reference.
type ItemType string

const (
	ItemTypePizza ItemType = "pizza"
	ItemTypeExtra ItemType = "extra"
)

// maxItemQty bounds a single line item. The limit is an input sanity check,
// not a business rule.
const maxItemQty = 100

// Item is an order line item. Name and unit price are snapshotted from the
// catalog at add-time, so totals stay reproducible when the catalog changes
// later. Items are immutable once created; the only mutation path is removal
// followed by a fresh add.
type Item struct {
	id        int64
	itemType  ItemType
	catalogID string
	name      string
	size      string
	qty       int
	unitPrice int
	createdAt time.Time
}

// NewPizzaItem creates a pizza line item with its per-size unit price
// captured. The size must already be validated against the catalog's size
// names by the caller.
func NewPizzaItem(catalogID, name, size string, qty, unitPrice int) (*Item, error) {
	item, err := newItem(ItemTypePizza, catalogID, name, qty, unitPrice)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(size) == "" {
		return nil, errs.NewValueIsRequiredError("size")
	}
	item.size = size

	return item, nil
}

// NewExtraItem creates an extra line item. Extras have no size concept.
func NewExtraItem(catalogID, name string, qty, unitPrice int) (*Item, error) {
	return newItem(ItemTypeExtra, catalogID, name, qty, unitPrice)
}

func newItem(itemType ItemType, catalogID, name string, qty, unitPrice int) (*Item, error) {
	if strings.TrimSpace(catalogID) == "" {
		return nil, errs.NewValueIsRequiredError("catalogID")
	}

	if strings.TrimSpace(name) == "" {
		return nil, errs.NewValueIsRequiredError("itemName")
	}

	if qty < 1 || qty > maxItemQty {
		return nil, errs.NewValueIsOutOfRangeError("qty", qty, 1, maxItemQty)
	}

	if unitPrice <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%d is not a positive price", unitPrice))
	}

	return &Item{
		itemType:  itemType,
		catalogID: catalogID,
		name:      name,
		qty:       qty,
		unitPrice: unitPrice,
		createdAt: time.Now().UTC(),
	}, nil
}

// RestoreItem rehydrates a line item from persistence.
func RestoreItem(
	id int64, itemType ItemType, catalogID, name, size string,
	qty, unitPrice int, createdAt time.Time,
) *Item {
	return &Item{
		id:        id,
		itemType:  itemType,
		catalogID: catalogID,
		name:      name,
		size:      size,
		qty:       qty,
		unitPrice: unitPrice,
		createdAt: createdAt,
	}
}

// ID returns the item's surrogate key, or zero before the item is persisted.
func (i *Item) ID() int64 { return i.id }

// SetID records the key assigned by the persistence layer. A second call on
// an already-persisted item is ignored.
func (i *Item) SetID(id int64) {
	if i.id == 0 {
		i.id = id
	}
}

// Type returns whether the item references a pizza or an extra.
func (i *Item) Type() ItemType { return i.itemType }

// CatalogID returns the source catalog identifier.
func (i *Item) CatalogID() string { return i.catalogID }

// Name returns the catalog name captured at add-time.
func (i *Item) Name() string { return i.name }

// Size returns the pizza size, or the empty string for extras.
func (i *Item) Size() string { return i.size }

// Qty returns the ordered quantity (always >= 1).
func (i *Item) Qty() int { return i.qty }

// UnitPrice returns the unit price captured at add-time, in whole currency units.
func (i *Item) UnitPrice() int { return i.unitPrice }

// CreatedAt returns when the item was added to the order.
func (i *Item) CreatedAt() time.Time { return i.createdAt }
