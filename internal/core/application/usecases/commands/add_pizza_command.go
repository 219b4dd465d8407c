package commands

import (
	"errors"
	"fmt"
	"strings"

	"pizzabot/internal/core/domain/model/menu"
	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrAddPizzaCommandIsNotConstructed = errors.New(
	"AddPizzaCommand must be created via NewAddPizzaCommand constructor",
)

// AddPizzaCommand represents a request to add a pizza line item to a draft
// order. The unit price is resolved from the catalog by the handler, not
// carried by the command.
type AddPizzaCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	pizzaID string
	size    string
	qty     int

	guard guard.ConstructorGuard
}

// NewAddPizzaCommand creates the command. The size is normalized and must be
// small, medium or large; the quantity must be at least 1.
func NewAddPizzaCommand(orderID int64, pizzaID, size string, qty int) (AddPizzaCommand, error) {
	cmd := AddPizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setPizzaID(pizzaID),
		cmd.setSize(size),
		cmd.setQty(qty),
	); err != nil {
		return AddPizzaCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPizzaCommand) Validate() error {
	return c.guard.Validate(ErrAddPizzaCommandIsNotConstructed)
}

// OrderID returns the target order's id.
func (c AddPizzaCommand) OrderID() int64 { return c.orderID }

// PizzaID returns the catalog identifier of the pizza to add.
func (c AddPizzaCommand) PizzaID() string { return c.pizzaID }

// Size returns the normalized size name.
func (c AddPizzaCommand) Size() string { return c.size }

// Qty returns the requested quantity.
func (c AddPizzaCommand) Qty() int { return c.qty }

func (c *AddPizzaCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *AddPizzaCommand) setPizzaID(pizzaID string) error {
	pizzaID = strings.TrimSpace(pizzaID)
	if pizzaID == "" {
		return errs.NewValueIsRequiredError("pizzaId")
	}
	c.pizzaID = pizzaID
	return nil
}

func (c *AddPizzaCommand) setSize(size string) error {
	size = strings.ToLower(strings.TrimSpace(size))
	switch size {
	case menu.SizeSmall, menu.SizeMedium, menu.SizeLarge:
		c.size = size
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("size",
			fmt.Errorf("%q must be one of: small, medium, large", size))
	}
}

func (c *AddPizzaCommand) setQty(qty int) error {
	if qty < 1 {
		return errs.NewValueIsOutOfRangeError("qty", qty, 1, 100)
	}
	c.qty = qty
	return nil
}
