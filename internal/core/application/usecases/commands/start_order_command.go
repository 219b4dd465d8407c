package commands

import (
	"errors"
	"strings"

	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/guard"
)

var ErrStartOrderCommandIsNotConstructed = errors.New(
	"StartOrderCommand must be created via NewStartOrderCommand constructor",
)

// StartOrderCommand represents a request to open a new draft order, with an
// optional customer identity.
//
// Example:
//
//	cmd, err := NewStartOrderCommand("Delivery", "Ayesha", "0300-1234567", "12 Mall Road", "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewStartOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type StartOrderCommand struct { //nolint:recvcheck //using for validation
	deliveryType order.DeliveryType
	customerName string
	phone        string
	address      string
	notes        string

	guard guard.ConstructorGuard
}

// NewStartOrderCommand creates a command to open a draft order. The delivery
// type is normalized and must be delivery or pickup; name, phone, address and
// notes are optional and trimmed.
func NewStartOrderCommand(deliveryType, customerName, phone, address, notes string) (StartOrderCommand, error) {
	cmd := StartOrderCommand{
		customerName: strings.TrimSpace(customerName),
		phone:        strings.TrimSpace(phone),
		address:      strings.TrimSpace(address),
		notes:        strings.TrimSpace(notes),
		guard:        guard.NewConstructorGuard(),
	}

	dt, err := order.ParseDeliveryType(deliveryType)
	if err != nil {
		return StartOrderCommand{}, err
	}
	cmd.deliveryType = dt

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartOrderCommand) Validate() error {
	return c.guard.Validate(ErrStartOrderCommandIsNotConstructed)
}

// DeliveryType returns the normalized delivery type.
func (c StartOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// CustomerName returns the trimmed customer name, possibly empty.
func (c StartOrderCommand) CustomerName() string {
	return c.customerName
}

// Phone returns the trimmed phone number, possibly empty.
func (c StartOrderCommand) Phone() string {
	return c.phone
}

// Address returns the trimmed delivery address, possibly empty.
func (c StartOrderCommand) Address() string {
	return c.address
}

// Notes returns the trimmed free-form notes, possibly empty.
func (c StartOrderCommand) Notes() string {
	return c.notes
}
