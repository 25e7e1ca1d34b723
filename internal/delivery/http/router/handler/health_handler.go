// Package handler contains the HTTP handlers, one per API surface.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthHandler serves the liveness probe.
type HealthHandler struct{}

// NewHealthHandler is the constructor for HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Check reports the service as alive.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
