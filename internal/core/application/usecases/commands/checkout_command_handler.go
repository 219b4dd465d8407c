package commands

import (
	"context"
	"errors"
	"fmt"

	"pizzabot/internal/core/domain/model/order"
	"pizzabot/internal/core/domain/services"
	"pizzabot/internal/pkg/errs"
)

// PlacedMessage is the audit message recorded when an order is checked out.
const PlacedMessage = "Order placed"

// CheckoutCommandHandler places orders. It selects the delivery fee by
// delivery type (zero for pickup), computes totals with the pricing engine,
// and transitions the order to placed with an audit row, all in one
// transaction.
//
// Checkout is deliberately not idempotent at the status layer: placing an
// already-placed order appends another placed audit row, preserving the
// trail of repeated actions.
type CheckoutCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    Catalog
	pricing    services.PricingEngine
}

// NewCheckoutCommandHandler creates a handler for checkout.
func NewCheckoutCommandHandler(
	uowFactory OrderUoWFactory,
	catalog Catalog,
	pricing services.PricingEngine,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{uowFactory: uowFactory, catalog: catalog, pricing: pricing}
}

// Handle processes the checkout command and returns the totals breakdown.
// A missing order or an order with no items is a validation error.
func (h *CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) (services.Totals, error) {
	if err := cmd.Validate(); err != nil {
		return services.Totals{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Totals{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	target, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return services.Totals{}, errs.NewValueIsInvalidErrorWithCause("orderId", err)
		}
		return services.Totals{}, err
	}

	if !target.HasItems() {
		return services.Totals{}, errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("order %d has no items", cmd.OrderID()))
	}

	deliveryFee := 0
	if target.DeliveryType() == order.DeliveryTypeDelivery {
		deliveryFee = h.catalog.DeliveryFee()
	}
	totals := h.pricing.ComputeTotals(target.Items(), deliveryFee, h.catalog.TaxPercent())

	if err = target.SetStatus(order.StatusPlaced, PlacedMessage); err != nil {
		return services.Totals{}, err
	}

	if err = orderRepo.Update(ctx, target); err != nil {
		return services.Totals{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Totals{}, err
	}

	return totals, nil
}
