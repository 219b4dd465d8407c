package commands

import (
	"context"

	"pizzabot/internal/core/domain/model/customer"
	"pizzabot/internal/core/domain/model/order"
)

// StartOrderCommandHandler opens draft orders. When the command carries a
// customer name, the customer row and the order row are created in the same
// transaction; the order's creation audit row always is.
type StartOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewStartOrderCommandHandler creates a handler for order creation.
func NewStartOrderCommandHandler(uowFactory UoWFactory) StartOrderCommandHandler {
	return StartOrderCommandHandler{uowFactory: uowFactory}
}

// Handle processes the command and returns the new order's id.
func (h *StartOrderCommandHandler) Handle(ctx context.Context, cmd StartOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	var customerID *int64
	if cmd.CustomerName() != "" {
		cust, err := customer.NewCustomer(cmd.CustomerName(), cmd.Phone())
		if err != nil {
			return 0, err
		}

		if err = uow.CustomerRepository().Add(ctx, cust); err != nil {
			return 0, err
		}

		id := cust.ID()
		customerID = &id
	}

	newOrder, err := order.NewOrder(customerID, cmd.DeliveryType(), cmd.Address(), cmd.Notes())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return newOrder.ID(), nil
}
