package commands

import (
	"errors"
	"strings"

	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"
	"pizzabot/internal/pkg/guard"
)

var ErrUpdateStatusCommandIsNotConstructed = errors.New(
	"UpdateStatusCommand must be created via NewUpdateStatusCommand constructor",
)

// UpdateStatusCommand represents an operator request to push an order to a
// new status with an optional message. The raw status is normalized and must
// be a member of the closed status set; transition edges are not checked, so
// operators can move orders between any member statuses.
type UpdateStatusCommand struct { //nolint:recvcheck //using for validation
	orderID int64
	status  order.Status
	message string

	guard guard.ConstructorGuard
}

// NewUpdateStatusCommand creates the command, normalizing and validating the
// status value.
func NewUpdateStatusCommand(orderID int64, status, message string) (UpdateStatusCommand, error) {
	if orderID <= 0 {
		return UpdateStatusCommand{}, errs.NewValueIsRequiredError("orderId")
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return UpdateStatusCommand{}, err
	}

	return UpdateStatusCommand{
		orderID: orderID,
		status:  parsed,
		message: strings.TrimSpace(message),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStatusCommandIsNotConstructed)
}

// OrderID returns the target order's id.
func (c UpdateStatusCommand) OrderID() int64 { return c.orderID }

// Status returns the normalized status value.
func (c UpdateStatusCommand) Status() order.Status { return c.status }

// Message returns the optional operator message, possibly empty.
func (c UpdateStatusCommand) Message() string { return c.message }
