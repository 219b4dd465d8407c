// Package http exposes the operator-facing admin surface: menu and order
// lookups for the kitchen view plus the manual status push. Customer-facing
// ordering goes through the assistant, not this API.
package http

import (
	"errors"
	"net/http"

	"pizzabot/internal/core/application/usecases/commands"
	"pizzabot/internal/core/application/usecases/queries"
	"pizzabot/internal/core/domain/model/menu"
	"pizzabot/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	catalog *menu.Menu

	updateStatusHandler commands.UpdateStatusCommandHandler

	getOrderHandler   queries.GetOrderQueryHandler
	listOrdersHandler queries.ListOrdersQueryHandler
}

// NewServer creates the admin HTTP server over the given handlers.
func NewServer(
	catalog *menu.Menu,
	updateStatusHandler commands.UpdateStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listOrdersHandler queries.ListOrdersQueryHandler,
) *Server {
	return &Server{
		catalog:             catalog,
		updateStatusHandler: updateStatusHandler,
		getOrderHandler:     getOrderHandler,
		listOrdersHandler:   listOrdersHandler,
	}
}

// RegisterRoutes attaches the admin routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.GetHealth)
	e.GET("/api/v1/menu", s.GetMenu)
	e.GET("/api/v1/orders", s.ListOrders)
	e.GET("/api/v1/orders/:id", s.GetOrder)
	e.POST("/api/v1/orders/:id/status", s.UpdateOrderStatus)
}

// ErrorResponse is the JSON error payload of the admin API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// MenuResponse is the GET /api/v1/menu payload.
type MenuResponse struct {
	MenuText    string       `json:"menu_text"`
	Pizzas      []menu.Pizza `json:"pizzas"`
	Extras      []menu.Extra `json:"extras"`
	DeliveryFee int          `json:"delivery_fee"`
	TaxPercent  float64      `json:"tax_percent"`
}

// UpdateStatusRequest is the POST /api/v1/orders/:id/status body.
type UpdateStatusRequest struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetMenu handles GET /api/v1/menu - returns the full catalog.
func (s *Server) GetMenu(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, MenuResponse{
		MenuText:    s.catalog.ChatText(),
		Pizzas:      s.catalog.Pizzas(),
		Extras:      s.catalog.Extras(),
		DeliveryFee: s.catalog.DeliveryFee(),
		TaxPercent:  s.catalog.TaxPercent(),
	})
}

// ListOrders handles GET /api/v1/orders?limit= - newest orders first.
func (s *Server) ListOrders(ctx echo.Context) error {
	var params struct {
		Limit int `query:"limit"`
	}
	if err := ctx.Bind(&params); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("limit", err))
	}

	query, err := queries.NewListOrdersQuery(params.Limit)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/v1/orders/:id - the full order snapshot.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// UpdateOrderStatus handles POST /api/v1/orders/:id/status - the operator
// status push. Returns the refreshed snapshot.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := orderIDParam(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var body UpdateStatusRequest
	if err = ctx.Bind(&body); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("body", err))
	}

	cmd, err := commands.NewUpdateStatusCommand(orderID, body.Status, body.Message)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

func orderIDParam(ctx echo.Context) (int64, error) {
	var params struct {
		ID int64 `param:"id"`
	}
	if err := (&echo.DefaultBinder{}).BindPathParams(ctx, &params); err != nil || params.ID <= 0 {
		return 0, errs.NewValueIsRequiredError("id")
	}
	return params.ID, nil
}

// writeError maps domain errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{Code: code, Message: err.Error()})
}
