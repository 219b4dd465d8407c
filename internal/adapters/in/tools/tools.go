package tools

import (
	"context"
	"errors"

	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/menu"
	"pizzabot/internal/core/domain/services"
	"pizzabot/internal/pkg/errs"
)

// ToolSet binds the assistant-facing operations to the command and query
// handlers behind them. Mutating tools hand back a fresh snapshot so the
// assistant always sees the post-operation state.
type ToolSet struct {
	catalog *menu.Menu

	startOrder   commands.StartOrderCommandHandler
	addPizza     commands.AddPizzaCommandHandler
	addExtra     commands.AddExtraCommandHandler
	removeItem   commands.RemoveItemCommandHandler
	checkout     commands.CheckoutCommandHandler
	updateStatus commands.UpdateStatusCommandHandler
	getOrder     queries.GetOrderQueryHandler
}

// NewToolSet creates a tool set over the given handlers.
func NewToolSet(
	catalog *menu.Menu,
	startOrder commands.StartOrderCommandHandler,
	addPizza commands.AddPizzaCommandHandler,
	addExtra commands.AddExtraCommandHandler,
	removeItem commands.RemoveItemCommandHandler,
	checkout commands.CheckoutCommandHandler,
	updateStatus commands.UpdateStatusCommandHandler,
	getOrder queries.GetOrderQueryHandler,
) *ToolSet {
	return &ToolSet{
		catalog:      catalog,
		startOrder:   startOrder,
		addPizza:     addPizza,
		addExtra:     addExtra,
		removeItem:   removeItem,
		checkout:     checkout,
		updateStatus: updateStatus,
		getOrder:     getOrder,
	}
}

// Result payloads. Everything is JSON-serializable so adapters can forward
// results to their frameworks unchanged.
type (
	// MenuResult is the get_menu payload: preformatted text for the chat
	// plus the raw catalog for the model to reason over.
	MenuResult struct {
		MenuText    string       `json:"menu_text"`
		Pizzas      []menu.Pizza `json:"pizzas"`
		Extras      []menu.Extra `json:"extras"`
		DeliveryFee int          `json:"delivery_fee"`
		TaxPercent  float64      `json:"tax_percent"`
	}

	// StartOrderResult is the start_order payload.
	StartOrderResult struct {
		OrderID int64  `json:"order_id"`
		Message string `json:"message"`
	}

	// ItemAddedResult is the add_pizza / add_extra payload.
	ItemAddedResult struct {
		OrderItemID int64 `json:"order_item_id"`
		queries.OrderSnapshot
	}

	// RemoveItemResult is the remove_item acknowledgement.
	RemoveItemResult struct {
		Removed     bool  `json:"removed"`
		OrderItemID int64 `json:"order_item_id"`
	}

	// CheckoutResult is the checkout payload: the placed order plus the
	// totals breakdown.
	CheckoutResult struct {
		Totals services.Totals `json:"totals"`
		queries.OrderSnapshot
	}
)

// BuildRegistry registers the eight assistant operations and returns the
// ready registry.
func BuildRegistry(ts *ToolSet) (*Registry, error) {
	r := NewRegistry()

	declarations := []Tool{
		{
			Name:        "get_menu",
			Description: "Get the full menu: pizzas with per-size prices, extras, delivery fee and tax rate.",
			Handler:     ts.handleGetMenu,
		},
		{
			Name:        "start_order",
			Description: "Start a new draft order. Customer details are optional and can be collected later.",
			Parameters: []Parameter{
				{Name: "delivery_type", Type: TypeString, Required: true,
					Description: "How the order will be fulfilled.", Enum: []string{"delivery", "pickup"}},
				{Name: "customer_name", Type: TypeString, Description: "Customer name, if given."},
				{Name: "phone", Type: TypeString, Description: "Customer phone number, if given."},
				{Name: "address", Type: TypeString, Description: "Delivery address, required before delivery."},
				{Name: "notes", Type: TypeString, Description: "Free-form notes for the kitchen or rider."},
			},
			Handler: ts.handleStartOrder,
		},
		{
			Name:        "add_pizza",
			Description: "Add a pizza to an order. The price for the chosen size is captured at add time.",
			Parameters: []Parameter{
				{Name: "order_id", Type: TypeInteger, Required: true, Description: "Target order id."},
				{Name: "pizza_id", Type: TypeString, Required: true, Description: "Menu id of the pizza."},
				{Name: "size", Type: TypeString, Required: true,
					Description: "Pizza size.", Enum: []string{"small", "medium", "large"}},
				{Name: "qty", Type: TypeInteger, Description: "Quantity, defaults to 1."},
			},
			Handler: ts.handleAddPizza,
		},
		{
			Name:        "add_extra",
			Description: "Add an extra (drink, dip, side) to an order.",
			Parameters: []Parameter{
				{Name: "order_id", Type: TypeInteger, Required: true, Description: "Target order id."},
				{Name: "extra_id", Type: TypeString, Required: true, Description: "Menu id of the extra."},
				{Name: "qty", Type: TypeInteger, Description: "Quantity, defaults to 1."},
			},
			Handler: ts.handleAddExtra,
		},
		{
			Name:        "remove_item",
			Description: "Remove one line item from an order by its item id. To change a quantity, remove and re-add.",
			Parameters: []Parameter{
				{Name: "order_item_id", Type: TypeInteger, Required: true, Description: "Id of the line item."},
			},
			Handler: ts.handleRemoveItem,
		},
		{
			Name:        "checkout",
			Description: "Place an order: compute totals (delivery fee applies to delivery orders only) and hand it to the kitchen.",
			Parameters: []Parameter{
				{Name: "order_id", Type: TypeInteger, Required: true, Description: "Order to place."},
			},
			Handler: ts.handleCheckout,
		},
		{
			Name:        "get_order_status",
			Description: "Get the current state of an order: status, items and the full status history.",
			Parameters: []Parameter{
				{Name: "order_id", Type: TypeInteger, Required: true, Description: "Order to look up."},
			},
			Handler: ts.handleGetOrderStatus,
		},
		{
			Name:        "admin_update_status",
			Description: "Operator action: push an order to a new status with an optional message.",
			Parameters: []Parameter{
				{Name: "order_id", Type: TypeInteger, Required: true, Description: "Order to update."},
				{Name: "status", Type: TypeString, Required: true, Description: "New status.",
					Enum: []string{
						"draft", "placed", "preparing", "baking",
						"out_for_delivery", "delivered", "ready_for_pickup", "cancelled",
					}},
				{Name: "message", Type: TypeString, Description: "Optional audit message."},
			},
			Handler: ts.handleAdminUpdateStatus,
		},
	}

	for _, tool := range declarations {
		if err := r.Register(tool); err != nil {
			return nil, err
		}
	}

	return r, nil
}

func (ts *ToolSet) handleGetMenu(_ context.Context, _ Args) (any, error) {
	return MenuResult{
		MenuText:    ts.catalog.ChatText(),
		Pizzas:      ts.catalog.Pizzas(),
		Extras:      ts.catalog.Extras(),
		DeliveryFee: ts.catalog.DeliveryFee(),
		TaxPercent:  ts.catalog.TaxPercent(),
	}, nil
}

func (ts *ToolSet) handleStartOrder(ctx context.Context, args Args) (any, error) {
	deliveryType, err := args.String("delivery_type")
	if err != nil {
		return nil, err
	}
	name, err := args.String("customer_name")
	if err != nil {
		return nil, err
	}
	phone, err := args.String("phone")
	if err != nil {
		return nil, err
	}
	address, err := args.String("address")
	if err != nil {
		return nil, err
	}
	notes, err := args.String("notes")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewStartOrderCommand(deliveryType, name, phone, address, notes)
	if err != nil {
		return nil, err
	}

	orderID, err := ts.startOrder.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	return StartOrderResult{OrderID: orderID, Message: "Order created"}, nil
}

func (ts *ToolSet) handleAddPizza(ctx context.Context, args Args) (any, error) {
	orderID, err := args.Int64("order_id")
	if err != nil {
		return nil, err
	}
	pizzaID, err := args.String("pizza_id")
	if err != nil {
		return nil, err
	}
	size, err := args.String("size")
	if err != nil {
		return nil, err
	}
	qty, err := args.IntOrDefault("qty", 1)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewAddPizzaCommand(orderID, pizzaID, size, qty)
	if err != nil {
		return nil, err
	}

	itemID, err := ts.addPizza.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	snapshot, err := ts.snapshot(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return ItemAddedResult{OrderItemID: itemID, OrderSnapshot: snapshot}, nil
}

func (ts *ToolSet) handleAddExtra(ctx context.Context, args Args) (any, error) {
	orderID, err := args.Int64("order_id")
	if err != nil {
		return nil, err
	}
	extraID, err := args.String("extra_id")
	if err != nil {
		return nil, err
	}
	qty, err := args.IntOrDefault("qty", 1)
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewAddExtraCommand(orderID, extraID, qty)
	if err != nil {
		return nil, err
	}

	itemID, err := ts.addExtra.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	snapshot, err := ts.snapshot(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return ItemAddedResult{OrderItemID: itemID, OrderSnapshot: snapshot}, nil
}

func (ts *ToolSet) handleRemoveItem(ctx context.Context, args Args) (any, error) {
	itemID, err := args.Int64("order_item_id")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewRemoveItemCommand(itemID)
	if err != nil {
		return nil, err
	}

	if err = ts.removeItem.Handle(ctx, cmd); err != nil {
		return nil, err
	}

	return RemoveItemResult{Removed: true, OrderItemID: itemID}, nil
}

func (ts *ToolSet) handleCheckout(ctx context.Context, args Args) (any, error) {
	orderID, err := args.Int64("order_id")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewCheckoutCommand(orderID)
	if err != nil {
		return nil, err
	}

	totals, err := ts.checkout.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}

	snapshot, err := ts.snapshot(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return CheckoutResult{Totals: totals, OrderSnapshot: snapshot}, nil
}

func (ts *ToolSet) handleGetOrderStatus(ctx context.Context, args Args) (any, error) {
	orderID, err := args.Int64("order_id")
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return nil, err
	}

	snapshot, err := ts.getOrder.Handle(ctx, query)
	if err != nil {
		// An unknown id is caller error at this surface.
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, errs.NewValueIsInvalidErrorWithCause("order_id", err)
		}
		return nil, err
	}

	return snapshot, nil
}

func (ts *ToolSet) handleAdminUpdateStatus(ctx context.Context, args Args) (any, error) {
	orderID, err := args.Int64("order_id")
	if err != nil {
		return nil, err
	}
	status, err := args.String("status")
	if err != nil {
		return nil, err
	}
	message, err := args.String("message")
	if err != nil {
		return nil, err
	}

	cmd, err := commands.NewUpdateStatusCommand(orderID, status, message)
	if err != nil {
		return nil, err
	}

	if err = ts.updateStatus.Handle(ctx, cmd); err != nil {
		return nil, err
	}

	return ts.snapshot(ctx, orderID)
}

func (ts *ToolSet) snapshot(ctx context.Context, orderID int64) (queries.OrderSnapshot, error) {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return queries.OrderSnapshot{}, err
	}
	return ts.getOrder.Handle(ctx, query)
}
