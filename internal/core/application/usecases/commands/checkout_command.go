package commands

import (
	"errors"

	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrCheckoutCommandIsNotConstructed = errors.New(
	"CheckoutCommand must be created via NewCheckoutCommand constructor",
)

// CheckoutCommand represents a request to place an order: price it and move
// it to the placed status.
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates the command for the given order id.
func NewCheckoutCommand(orderID int64) (CheckoutCommand, error) {
	if orderID <= 0 {
		return CheckoutCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	return CheckoutCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// OrderID returns the id of the order to place.
func (c CheckoutCommand) OrderID() int64 { return c.orderID }
