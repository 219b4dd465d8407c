// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS split.
// All commands follow a consistent shape: a constructor-validated command
// object, and a handler that runs the operation as one unit of work.
package commands

import (
	"context"

	"pizzabot/internal/core/domain/model/menu"
	"pizzabot/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Handlers depend on the narrowest interface that covers the repositories
// they touch.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// CustomerRepoFactory provides access to the customer repository within a transaction.
	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions that span customers and orders.
	UoW interface {
		TxManager
		CustomerRepoFactory
		OrderRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-entity operations.
	UoWFactory interface {
		Create() UoW
	}
)

// Catalog is the read-only menu surface the handlers resolve items and fees
// against. *menu.Menu satisfies it; tests substitute fixtures.
type Catalog interface {
	FindPizza(id string) (menu.Pizza, bool)
	FindExtra(id string) (menu.Extra, bool)
	DeliveryFee() int
	TaxPercent() float64
}
