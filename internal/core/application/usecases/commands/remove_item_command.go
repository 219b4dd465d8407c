package commands

import (
	"errors"

	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to delete one line item by id.
// Removal is the only way to change a line item: quantity edits are a remove
// followed by a fresh add.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderItemID int64

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates the command for the given line item id.
func NewRemoveItemCommand(orderItemID int64) (RemoveItemCommand, error) {
	if orderItemID <= 0 {
		return RemoveItemCommand{}, errs.NewValueIsRequiredError("orderItemId")
	}

	return RemoveItemCommand{
		orderItemID: orderItemID,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderItemID returns the id of the line item to remove.
func (c RemoveItemCommand) OrderItemID() int64 { return c.orderItemID }
