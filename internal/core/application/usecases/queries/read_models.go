package queries

import "time"

// OrderView is the read model for one order row. Optional columns are
// pointers so the JSON payload distinguishes absent from empty.
type OrderView struct {
	ID           int64     `json:"id"`
	CustomerID   *int64    `json:"customer_id"`
	Status       string    `json:"status"`
	DeliveryType string    `json:"delivery_type"`
	Address      *string   `json:"address"`
	Notes        *string   `json:"notes"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ItemView is the read model for one order line item.
type ItemView struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	ItemType  string    `json:"item_type"`
	ItemID    string    `json:"item_id"`
	ItemName  string    `json:"item_name"`
	Size      *string   `json:"size"`
	Qty       int       `json:"qty"`
	UnitPrice int       `json:"unit_price"`
	CreatedAt time.Time `json:"created_at"`
}

// UpdateView is the read model for one status history row.
type UpdateView struct {
	ID        int64     `json:"id"`
	OrderID   int64     `json:"order_id"`
	Status    string    `json:"status"`
	Message   *string   `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// OrderSnapshot is the consolidated payload the tool surface hands back to
// the assistant: the order plus items and updates in insertion order.
type OrderSnapshot struct {
	Order   OrderView    `json:"order"`
	Items   []ItemView   `json:"items"`
	Updates []UpdateView `json:"updates"`
}
