package commands

import (
	"context"
	"fmt"

	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/pkg/errs"
)

// AddExtraCommandHandler adds extra line items to orders, with the catalog
// price snapshotted at add-time.
type AddExtraCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    Catalog
}

// NewAddExtraCommandHandler creates a handler for adding extras.
func NewAddExtraCommandHandler(uowFactory OrderUoWFactory, catalog Catalog) AddExtraCommandHandler {
	return AddExtraCommandHandler{uowFactory: uowFactory, catalog: catalog}
}

// Handle processes the command and returns the new line item's id.
func (h *AddExtraCommandHandler) Handle(ctx context.Context, cmd AddExtraCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	extra, found := h.catalog.FindExtra(cmd.ExtraID())
	if !found {
		return 0, errs.NewValueIsInvalidErrorWithCause("extraId",
			fmt.Errorf("unknown extra id %q", cmd.ExtraID()))
	}

	item, err := order.NewExtraItem(extra.ID, extra.Name, cmd.Qty(), extra.Price)
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
