package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUseCase
	Logger    *slog.Logger
}

// UserHandler serves the signed-in account's own profile and order history.
type UserHandler struct {
	profileUC usecase.ProfileUseCase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// Me returns the caller's profile.
func (h *UserHandler) Me(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	user, err := h.profileUC.Get(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserView(user))
}

// UpdateMe applies a partial update to the caller's profile.
func (h *UserHandler) UpdateMe(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	var input usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	user, err := h.profileUC.Update(c.Request().Context(), account.ID, &input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message": "Profile updated",
		"user":    toUserView(user),
	})
}

// Orders lists the caller's orders, newest first.
func (h *UserHandler) Orders(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	orders, err := h.profileUC.Orders(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toOrderViews(orders))
}
