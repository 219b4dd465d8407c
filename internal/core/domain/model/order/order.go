package order

import (
	"errors"
	"strings"
	"time"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// CreatedMessage is the message of the audit row appended at order creation.
const CreatedMessage = "Order created"

// Order is the aggregate root for a customer order. It owns the line items
// and the append-only status history.
//
// Invariants:
//   - the current status always equals the status of the latest Update
//   - delivery type is one of delivery/pickup
//   - line items are immutable once added (removal is the only change)
//   - orders are never deleted
type Order struct {
	id           int64
	customerID   *int64
	status       Status
	deliveryType DeliveryType
	address      string
	notes        string
	createdAt    time.Time
	updatedAt    time.Time

	items   []*Item
	updates []*Update

	isConstructed bool
}

// NewOrder creates a draft order together with its initial audit row. The
// address is not validated here even for delivery orders; requiring it at
// draft time would prevent the assistant from collecting it later in the
// conversation.
func NewOrder(customerID *int64, deliveryType DeliveryType, address, notes string) (*Order, error) {
	if err := deliveryType.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Order{
		customerID:    customerID,
		status:        StatusDraft,
		deliveryType:  deliveryType,
		address:       strings.TrimSpace(address),
		notes:         strings.TrimSpace(notes),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}
	o.updates = append(o.updates, newUpdate(StatusDraft, CreatedMessage))

	return o, nil
}

// RestoreOrder rehydrates an order from persistence, including its items and
// status history in insertion order.
func RestoreOrder(
	id int64, customerID *int64, status Status, deliveryType DeliveryType,
	address, notes string, createdAt, updatedAt time.Time,
	items []*Item, updates []*Update,
) (*Order, error) {
	if err := deliveryType.Validate(); err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		customerID:    customerID,
		status:        status,
		deliveryType:  deliveryType,
		address:       address,
		notes:         notes,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		items:         items,
		updates:       updates,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through a constructor and not as a
// zero value.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// AddItem appends a line item and bumps the order's updated timestamp.
func (o *Order) AddItem(item *Item) error {
	if item == nil {
		return ErrOrderIsNotConstructed
	}

	o.items = append(o.items, item)
	o.updatedAt = time.Now().UTC()
	return nil
}

// SetStatus changes the order's current status and appends the matching audit
// row in the same step. Any member of the closed status set is accepted from
// any state; transition edges are advisory (see package doc). Repeating a
// status appends another audit row rather than failing, which preserves the
// trail of repeated operator actions.
func (o *Order) SetStatus(status Status, message string) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	o.updatedAt = time.Now().UTC()
	o.updates = append(o.updates, newUpdate(status, message))
	return nil
}

// HasItems reports whether the order has at least one line item.
func (o *Order) HasItems() bool {
	return len(o.items) > 0
}

// ID returns the order's surrogate key, or zero before the order is persisted.
func (o *Order) ID() int64 { return o.id }

// SetID records the key assigned by the persistence layer. A second call on
// an already-persisted order is ignored.
func (o *Order) SetID(id int64) {
	if o.id == 0 {
		o.id = id
	}
}

// CustomerID returns the owning customer's id, or nil for anonymous orders.
func (o *Order) CustomerID() *int64 { return o.customerID }

// Status returns the current lifecycle status.
func (o *Order) Status() Status { return o.status }

// DeliveryType returns delivery or pickup.
func (o *Order) DeliveryType() DeliveryType { return o.deliveryType }

// Address returns the delivery address, possibly empty.
func (o *Order) Address() string { return o.address }

// Notes returns free-form customer notes, possibly empty.
func (o *Order) Notes() string { return o.notes }

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time { return o.createdAt }

// UpdatedAt returns when the order was last mutated.
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Items returns the line items in insertion order. The slice is a copy; the
// items themselves are shared.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// Updates returns the status history in insertion order. The slice is a copy.
func (o *Order) Updates() []*Update {
	updates := make([]*Update, len(o.updates))
	copy(updates, o.updates)
	return updates
}
