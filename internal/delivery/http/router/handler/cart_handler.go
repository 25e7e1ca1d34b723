package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUseCase
	Logger *slog.Logger
}

// CartHandler serves the caller's cart. Every mutation responds with the
// updated cart so clients never need a follow-up read.
type CartHandler struct {
	cartUC usecase.CartUseCase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler.
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddItemRequest carries the product and quantity to add.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int       `json:"qty"`
}

// UpdateItemRequest carries the new quantity for a cart line.
type UpdateItemRequest struct {
	Quantity int `json:"qty" validate:"required,gt=0"`
}

// Get returns the caller's cart, creating an empty one on first use.
func (h *CartHandler) Get(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	cart, err := h.cartUC.Get(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartView(cart))
}

// AddItem adds a product to the cart or increments its line.
func (h *CartHandler) AddItem(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	var req AddItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	cart, err := h.cartUC.AddItem(c.Request().Context(), account.ID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartView(cart))
}

// UpdateItem sets the quantity of one cart line.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	var req UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	cart, err := h.cartUC.UpdateItemQuantity(c.Request().Context(), account.ID, productID, req.Quantity)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartView(cart))
}

// RemoveItem deletes one line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	cart, err := h.cartUC.RemoveItem(c.Request().Context(), account.ID, productID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartView(cart))
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	cart, err := h.cartUC.Clear(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toCartView(cart))
}
