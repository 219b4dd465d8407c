package commands

import (
	"context"

	"pizzabot/internal/core/domain/model/order"
)

// KitchenUpdateMessage is the audit message written by automatic kitchen
// progression, distinguishing it from operator-driven status pushes.
const KitchenUpdateMessage = "Kitchen update"

// AdvanceKitchenCommandHandler moves every in-kitchen order one stage forward:
// placed to preparing, preparing to baking, and baking to out_for_delivery or
// ready_for_pickup depending on the delivery type. All orders advance within a
// single transaction.
type AdvanceKitchenCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewAdvanceKitchenCommandHandler creates a handler for kitchen progression.
func NewAdvanceKitchenCommandHandler(uowFactory OrderUoWFactory) AdvanceKitchenCommandHandler {
	return AdvanceKitchenCommandHandler{uowFactory: uowFactory}
}

// Handle advances all orders currently in an active kitchen status. Returns
// the number of orders advanced.
func (h *AdvanceKitchenCommandHandler) Handle(ctx context.Context, cmd AdvanceKitchenCommand) (int, error) {
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

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllInStatus(ctx,
		order.StatusPlaced, order.StatusPreparing, order.StatusBaking)
	if err != nil {
		return 0, err
	}

	advanced := 0
	for _, o := range orders {
		next, ok := o.Status().NextStage(o.DeliveryType())
		if !ok {
			continue
		}

		if err = o.SetStatus(next, KitchenUpdateMessage); err != nil {
			return 0, err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		advanced++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return advanced, nil
}
