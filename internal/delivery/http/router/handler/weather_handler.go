package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WeatherHandlerParams holds dependencies for WeatherHandler, injected by Fx.
type WeatherHandlerParams struct {
	fx.In

	WeatherUC usecase.WeatherUseCase
	Logger    *slog.Logger
}

// WeatherHandler serves current conditions at the caller's stored location.
type WeatherHandler struct {
	weatherUC usecase.WeatherUseCase
	logger    *slog.Logger
}

// NewWeatherHandler is the constructor for WeatherHandler.
func NewWeatherHandler(params WeatherHandlerParams) *WeatherHandler {
	return &WeatherHandler{
		weatherUC: params.WeatherUC,
		logger:    params.Logger,
	}
}

// Current returns conditions at the caller's coordinates.
func (h *WeatherHandler) Current(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	report, err := h.weatherUC.CurrentForUser(c.Request().Context(), account)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, report)
}
