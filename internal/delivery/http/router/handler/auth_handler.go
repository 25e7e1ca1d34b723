package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUseCase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for the signup and login endpoints.
type AuthHandler struct {
	authUC usecase.AuthUseCase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// TokenRequest carries the identity token for signup and login.
type TokenRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

type authResponse struct {
	Success bool      `json:"success"`
	User    *userView `json:"user"`
}

// Signup exchanges a verified identity token for a new account.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authUC.Signup(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, authResponse{Success: true, User: toUserView(user)})
}

// Login exchanges a verified identity token for the existing account.
func (h *AuthHandler) Login(c echo.Context) error {
	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.authUC.Login(c.Request().Context(), req.IDToken)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Success: true, User: toUserView(user)})
}
