// Package middleware contains the HTTP middlewares for authentication and
// error handling.
package middleware

import (
	"net/http"
	"strings"

	"farmkitchen/internal/delivery/http/response"
	"farmkitchen/internal/domain/entity"
	domainerrors "farmkitchen/internal/domain/errors"
	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const accountContextKey = "account"

// AuthMiddleware verifies the bearer token on every protected request and
// resolves it to an account, provisioning one on first contact.
type AuthMiddleware struct {
	authUC usecase.AuthUseCase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUseCase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate validates the Authorization header and stores the resolved
// account on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Error(c, http.StatusUnauthorized, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Error(c, http.StatusUnauthorized, "Invalid token format, must be Bearer token")
		}

		account, err := m.authUC.ResolveIdentity(c.Request().Context(), tokenString)
		if err != nil {
			var appErr domainerrors.AppError
			if errors.As(err, &appErr) {
				message := appErr.Details()
				if message == "" {
					message = appErr.Message()
				}

				return response.Error(c, appErr.HTTPCode(), message)
			}

			return response.Error(c, http.StatusUnauthorized, "Invalid or expired token")
		}

		c.Set(accountContextKey, account)

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the account holds a
// specific role. It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account := AccountFromContext(c)
			if account == nil {
				return response.Error(c, http.StatusForbidden, "Permission denied: account information missing")
			}

			if account.Role != requiredRole {
				return response.Error(c, http.StatusForbidden, "Permission denied: require '"+requiredRole.String()+"' role")
			}

			return next(c)
		}
	}
}

// AccountFromContext returns the account stored by Authenticate, or nil.
func AccountFromContext(c echo.Context) *entity.User {
	account, _ := c.Get(accountContextKey).(*entity.User)

	return account
}
