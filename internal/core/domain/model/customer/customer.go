// Package customer contains the customer entity. Customers are created on
// the first order that carries a name, are never mutated afterwards, and are
// never deleted.
package customer

import (
	"strings"
	"time"

	"pizzabot/internal/pkg/errs"
)

// Customer identifies a returning caller by name and optional phone number.
type Customer struct {
	id        int64
	name      string
	phone     string
	createdAt time.Time

	isConstructed bool
}

// NewCustomer creates a customer. The name is trimmed and must be non-empty;
// the phone is trimmed and an empty result is stored as absent.
func NewCustomer(name, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValueIsRequiredError("customerName")
	}

	return &Customer{
		name:          name,
		phone:         strings.TrimSpace(phone),
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}, nil
}

// RestoreCustomer rehydrates a customer from persistence.
func RestoreCustomer(id int64, name, phone string, createdAt time.Time) *Customer {
	return &Customer{
		id:            id,
		name:          name,
		phone:         phone,
		createdAt:     createdAt,
		isConstructed: true,
	}
}

// Validate ensures the Customer was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return errs.NewValueIsRequiredError("customer must be created via NewCustomer")
	}
	return nil
}

// ID returns the customer's surrogate key, or zero before persistence.
func (c *Customer) ID() int64 { return c.id }

// SetID records the key assigned by the persistence layer. A second call on
// an already-persisted customer is ignored.
func (c *Customer) SetID(id int64) {
	if c.id == 0 {
		c.id = id
	}
}

// Name returns the trimmed customer name.
func (c *Customer) Name() string { return c.name }

// Phone returns the trimmed phone number, or the empty string when absent.
func (c *Customer) Phone() string { return c.phone }

// CreatedAt returns when the customer was first recorded.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
