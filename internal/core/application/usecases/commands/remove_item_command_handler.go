package commands

import (
	"context"
)

// RemoveItemCommandHandler deletes line items. The operation is idempotent:
// removing an id that is already gone succeeds without effect.
type RemoveItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for item removal.
func NewRemoveItemCommandHandler(uowFactory OrderUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{uowFactory: uowFactory}
}

// Handle processes the removal command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderRepository().RemoveItem(ctx, cmd.OrderItemID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
