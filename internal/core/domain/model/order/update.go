package order

import "time"

// Update is one row of the order's append-only status history. Updates are
// never mutated or deleted; a new one is appended at order creation and on
// every status change.
type Update struct {
	id        int64
	status    Status
	message   string
	createdAt time.Time
}

// newUpdate creates an audit row for the given status. Only the aggregate
// appends updates, which keeps the history in lockstep with the order status.
func newUpdate(status Status, message string) *Update {
	return &Update{
		status:    status,
		message:   message,
		createdAt: time.Now().UTC(),
	}
}

// RestoreUpdate rehydrates an audit row from persistence.
func RestoreUpdate(id int64, status Status, message string, createdAt time.Time) *Update {
	return &Update{
		id:        id,
		status:    status,
		message:   message,
		createdAt: createdAt,
	}
}

// ID returns the update's surrogate key, or zero before it is persisted.
func (u *Update) ID() int64 { return u.id }

// SetID records the key assigned by the persistence layer. A second call on
// an already-persisted update is ignored.
func (u *Update) SetID(id int64) {
	if u.id == 0 {
		u.id = id
	}
}

// Status returns the status value this row recorded.
func (u *Update) Status() Status { return u.status }

// Message returns the optional operator or system message, possibly empty.
func (u *Update) Message() string { return u.message }

// CreatedAt returns when the status change was recorded.
func (u *Update) CreatedAt() time.Time { return u.createdAt }
