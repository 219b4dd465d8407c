package commands

import (
	"errors"
	"strings"

	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrAddExtraCommandIsNotConstructed = errors.New(
	"AddExtraCommand must be created via NewAddExtraCommand constructor",
)

// AddExtraCommand represents a request to add an extra (side, drink, dip) to
// a draft order. Extras have a single price and no size concept.
type AddExtraCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	extraID string
	qty     int

	guard guard.ConstructorGuard
}

// NewAddExtraCommand creates the command. The quantity must be at least 1.
func NewAddExtraCommand(orderID int64, extraID string, qty int) (AddExtraCommand, error) {
	cmd := AddExtraCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setExtraID(extraID),
		cmd.setQty(qty),
	); err != nil {
		return AddExtraCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddExtraCommand) Validate() error {
	return c.guard.Validate(ErrAddExtraCommandIsNotConstructed)
}

// OrderID returns the target order's id.
func (c AddExtraCommand) OrderID() int64 { return c.orderID }

// ExtraID returns the catalog identifier of the extra to add.
func (c AddExtraCommand) ExtraID() string { return c.extraID }

// Qty returns the requested quantity.
func (c AddExtraCommand) Qty() int { return c.qty }

func (c *AddExtraCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return errs.NewValueIsRequiredError("orderId")
	}
	c.orderID = orderID
	return nil
}

func (c *AddExtraCommand) setExtraID(extraID string) error {
	extraID = strings.TrimSpace(extraID)
	if extraID == "" {
		return errs.NewValueIsRequiredError("extraId")
	}
	c.extraID = extraID
	return nil
}

func (c *AddExtraCommand) setQty(qty int) error {
	if qty < 1 {
		return errs.NewValueIsOutOfRangeError("qty", qty, 1, 100)
	}
	c.qty = qty
	return nil
}
