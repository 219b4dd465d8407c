package ports

import (
	"context"

	"pizzabot/internal/core/domain/model/customer"
)

// CustomerRepository defines the persistence contract for customers.
// Customers are insert-only: they are created on the first order that carries
// a name and never mutated or deleted afterwards.
type CustomerRepository interface {
	// Add persists a new customer and writes the assigned id back into the
	// entity.
	Add(ctx context.Context, aggregate *customer.Customer) error
}
