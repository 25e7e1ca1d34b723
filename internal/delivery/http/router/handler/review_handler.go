package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUseCase
	Logger   *slog.Logger
}

// ReviewHandler serves product review submission and listing.
type ReviewHandler struct {
	reviewUC usecase.ReviewUseCase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler.
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// Submit records or overwrites the caller's review of a product.
func (h *ReviewHandler) Submit(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	var input usecase.SubmitReviewInput
	if err := c.Bind(&input); err != nil {
		return err
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	review, created, err := h.reviewUC.Submit(c.Request().Context(), account, productID, &input)
	if err != nil {
		return err
	}

	statusCode := http.StatusOK
	message := "Review updated"
	if created {
		statusCode = http.StatusCreated
		message = "Review submitted"
	}

	return c.JSON(statusCode, map[string]any{
		"message": message,
		"review":  toReviewView(review),
	})
}

// ListByProduct returns a product's reviews, newest first.
func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	productID, err := pathUUID(c, "productId")
	if err != nil {
		return err
	}

	reviews, err := h.reviewUC.ListByProduct(c.Request().Context(), productID)
	if err != nil {
		return err
	}

	views := make([]*reviewView, 0, len(reviews))
	for _, review := range reviews {
		views = append(views, toReviewView(review))
	}

	return c.JSON(http.StatusOK, views)
}
