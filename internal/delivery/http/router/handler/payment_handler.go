package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	CheckoutUC usecase.CheckoutUseCase
	Logger     *slog.Logger
}

// PaymentHandler serves payment-provider order creation for client-side
// checkout.
type PaymentHandler struct {
	checkoutUC usecase.CheckoutUseCase
	logger     *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		checkoutUC: params.CheckoutUC,
		logger:     params.Logger,
	}
}

// Checkout creates a provider order for the given amount.
func (h *PaymentHandler) Checkout(c echo.Context) error {
	var input usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	order, err := h.checkoutUC.CreateOrder(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"order":   order,
	})
}
