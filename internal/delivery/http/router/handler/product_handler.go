package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUseCase
	Logger    *slog.Logger
}

// ProductHandler serves the public catalog and farmer-owned listing
// management.
type ProductHandler struct {
	catalogUC usecase.CatalogUseCase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler.
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// List returns catalog listings narrowed by the query string.
func (h *ProductHandler) List(c echo.Context) error {
	filter := &repository.ProductFilter{
		Query: c.QueryParam("q"),
	}

	if raw := c.QueryParam("min"); raw != "" {
		if min, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &min
		}
	}
	if raw := c.QueryParam("max"); raw != "" {
		if max, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &max
		}
	}
	if raw := c.QueryParam("organic"); raw != "" {
		organic := raw == "true"
		filter.Organic = &organic
	}

	products, err := h.catalogUC.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductViews(products))
}

// Get returns a single listing.
func (h *ProductHandler) Get(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.catalogUC.Get(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductView(product))
}

// Create registers a new listing owned by the calling farmer.
func (h *ProductHandler) Create(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.catalogUC.Create(c.Request().Context(), account, &input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toProductView(product))
}

// Update applies a partial update to a listing the caller owns.
func (h *ProductHandler) Update(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	product, err := h.catalogUC.Update(c.Request().Context(), account, productID, &input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toProductView(product))
}

// Delete removes a listing the caller owns.
func (h *ProductHandler) Delete(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalogUC.Delete(c.Request().Context(), account, productID); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "Product deleted"})
}
