package commands

import (
	"context"
	"fmt"

	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"
)

// AddPizzaCommandHandler adds pizza line items to orders. The pizza is
// resolved against the menu catalog and its per-size price is snapshotted
// into the item, so later catalog edits never change existing orders.
type AddPizzaCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    Catalog
}

// NewAddPizzaCommandHandler creates a handler for adding pizzas.
func NewAddPizzaCommandHandler(uowFactory OrderUoWFactory, catalog Catalog) AddPizzaCommandHandler {
	return AddPizzaCommandHandler{uowFactory: uowFactory, catalog: catalog}
}

// Handle processes the command and returns the new line item's id.
// An unknown pizza id is a validation error and leaves the order untouched.
func (h *AddPizzaCommandHandler) Handle(ctx context.Context, cmd AddPizzaCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	pizza, found := h.catalog.FindPizza(cmd.PizzaID())
	if !found {
		return 0, errs.NewValueIsInvalidErrorWithCause("pizzaId",
			fmt.Errorf("unknown pizza id %q", cmd.PizzaID()))
	}

	unitPrice, ok := pizza.PriceFor(cmd.Size())
	if !ok {
		return 0, errs.NewValueIsInvalidError("size")
	}

	item, err := order.NewPizzaItem(pizza.ID, pizza.Name, cmd.Size(), cmd.Qty(), unitPrice)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return 0, err
	}

	if err = target.AddItem(item); err != nil {
		return 0, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return item.ID(), nil
}
