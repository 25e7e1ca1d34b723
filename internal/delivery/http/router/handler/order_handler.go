package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUseCase
	Logger  *slog.Logger
}

// OrderHandler serves order placement.
type OrderHandler struct {
	orderUC usecase.OrderUseCase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler.
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// PlaceOrderRequest carries the requested purchase lines.
type PlaceOrderRequest struct {
	Items []usecase.OrderLineInput `json:"items" validate:"required,min=1,dive"`
}

// Place records a new order, decrementing stock atomically.
func (h *OrderHandler) Place(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	order, err := h.orderUC.Place(c.Request().Context(), account.ID, req.Items)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Order placed",
		"order":   toOrderView(order),
	})
}
