package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/domain/repository"
	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// statusFilterAll disables the status filter on the admin order listing.
const statusFilterAll = "all"

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUseCase
	Logger  *slog.Logger
}

// AdminHandler serves the back-office endpoints: user, catalog and order
// management plus the dashboard aggregates.
type AdminHandler struct {
	adminUC usecase.AdminUseCase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// UpdateRoleRequest carries the role to assign.
type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// UpdateStatusRequest carries the order status to set.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ListUsers returns accounts, optionally narrowed to one role.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	var roleFilter *entity.Role
	if raw := c.QueryParam("role"); raw != "" {
		role, ok := entity.ParseRole(strings.ToLower(raw))
		if !ok {
			return domainerrors.ErrInvalidInput.WithDetails("Invalid role value")
		}
		roleFilter = &role
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), roleFilter)
	if err != nil {
		return err
	}

	views := make([]*userView, 0, len(users))
	for _, user := range users {
		views = append(views, toUserView(user))
	}

	return c.JSON(http.StatusOK, views)
}

// UpdateUserRole assigns a new role to an account.
func (h *AdminHandler) UpdateUserRole(c echo.Context) error {
	userID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateRoleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	role, ok := entity.ParseRole(strings.ToLower(req.Role))
	if !ok {
		return domainerrors.ErrInvalidInput.WithDetails("Invalid role value")
	}

	user, err := h.adminUC.UpdateUserRole(c.Request().Context(), userID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "User updated",
		"user":    toUserView(user),
	})
}

// ListProducts returns one page of the full catalog.
func (h *AdminHandler) ListProducts(c echo.Context) error {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)

	paged, err := h.adminUC.ListProducts(c.Request().Context(), c.QueryParam("q"), page, limit)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total": paged.Total,
		"items": toProductViews(paged.Items),
	})
}

// DeleteProduct removes any listing.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	product, err := h.adminUC.DeleteProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Product deleted",
		"product": toProductView(product),
	})
}

// ListOrders returns one page of orders, optionally narrowed by free text
// and status.
func (h *AdminHandler) ListOrders(c echo.Context) error {
	filter := &repository.OrderListFilter{
		Query: c.QueryParam("q"),
		Page:  queryInt(c, "page", 1),
		Limit: queryInt(c, "limit", 10),
	}

	if raw := c.QueryParam("status"); raw != "" && !strings.EqualFold(raw, statusFilterAll) {
		status, ok := entity.ParseOrderStatus(strings.ToLower(raw))
		if !ok {
			return domainerrors.ErrInvalidInput.WithDetails("Invalid status value")
		}
		filter.Status = &status
	}

	paged, err := h.adminUC.ListOrders(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"total": paged.Total,
		"items": toOrderViews(paged.Items),
	})
}

// UpdateOrderStatus sets an order's lifecycle state.
func (h *AdminHandler) UpdateOrderStatus(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	status, ok := entity.ParseOrderStatus(strings.ToLower(req.Status))
	if !ok {
		return domainerrors.ErrInvalidInput.WithDetails("Invalid status value")
	}

	order, err := h.adminUC.UpdateOrderStatus(c.Request().Context(), orderID, status)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Order status updated",
		"order":   toOrderView(order),
	})
}

// DeleteOrder removes an order.
func (h *AdminHandler) DeleteOrder(c echo.Context) error {
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.adminUC.DeleteOrder(c.Request().Context(), orderID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Order deleted",
		"order":   toOrderView(order),
	})
}

// Stats returns the dashboard headline counters.
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUC.Stats(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}

// Analytics returns the dashboard chart data.
func (h *AdminHandler) Analytics(c echo.Context) error {
	analytics, err := h.adminUC.Analytics(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, analytics)
}

// queryInt parses an integer query parameter, falling back on absence or
// malformed input.
func queryInt(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
