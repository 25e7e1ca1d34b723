package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AIHandlerParams holds dependencies for AIHandler, injected by Fx.
type AIHandlerParams struct {
	fx.In

	AdvisoryUC usecase.AdvisoryUseCase
	Logger     *slog.Logger
}

// AIHandler serves the crop advisory chat endpoint.
type AIHandler struct {
	advisoryUC usecase.AdvisoryUseCase
	logger     *slog.Logger
}

// NewAIHandler is the constructor for AIHandler.
func NewAIHandler(params AIHandlerParams) *AIHandler {
	return &AIHandler{
		advisoryUC: params.AdvisoryUC,
		logger:     params.Logger,
	}
}

// Chat forwards a farming question with its context to the advisor.
func (h *AIHandler) Chat(c echo.Context) error {
	var input usecase.AdvisoryInput
	if err := c.Bind(&input); err != nil {
		return err
	}

	answer, err := h.advisoryUC.Ask(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]any{
		"success": true,
		"message": answer,
	})
}
