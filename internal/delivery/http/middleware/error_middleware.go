package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"farmkitchen/internal/delivery/http/response"
	domainerrors "farmkitchen/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Application errors carry their own status and message
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := appErr.Details()
		if message == "" {
			message = appErr.Message()
		}
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logger.Error("Request failed",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"method", c.Request().Method,
			)
		}
		_ = response.Error(c, appErr.HTTPCode(), message)

		return
	}

	// Echo's own routing errors (404, 405, ...)
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		_ = response.Error(c, httpErr.Code, fmt.Sprintf("%v", httpErr.Message))

		return
	}

	// Everything else is an internal error; log it and hide the detail.
	m.logger.Error("Unhandled error",
		"error", err.Error(),
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
	)

	_ = response.Error(c, http.StatusInternalServerError, "Internal server error")
}
