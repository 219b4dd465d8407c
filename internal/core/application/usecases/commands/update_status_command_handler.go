package commands

import (
	"context"
)

// UpdateStatusCommandHandler applies operator status pushes: the order row's
// status and the appended audit row commit together or not at all.
type UpdateStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewUpdateStatusCommandHandler creates a handler for operator status updates.
func NewUpdateStatusCommandHandler(uowFactory OrderUoWFactory) UpdateStatusCommandHandler {
	return UpdateStatusCommandHandler{uowFactory: uowFactory}
}

// Handle processes the status update command.
func (h *UpdateStatusCommandHandler) Handle(ctx context.Context, cmd UpdateStatusCommand) error {
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

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = target.SetStatus(cmd.Status(), cmd.Message()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
