package handler

import (
	"log/slog"
	"net/http"

	"farmkitchen/internal/delivery/http/middleware"
	"farmkitchen/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	MessageUC usecase.MessageUseCase
	Logger    *slog.Logger
}

// ChatHandler serves the direct-message inbox, threads and sending.
type ChatHandler struct {
	messageUC usecase.MessageUseCase
	logger    *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler.
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		messageUC: params.MessageUC,
		logger:    params.Logger,
	}
}

// SendMessageRequest carries the message text.
type SendMessageRequest struct {
	Text string `json:"text" validate:"required"`
}

// Inbox returns one conversation per partner, most recent first.
func (h *ChatHandler) Inbox(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	conversations, err := h.messageUC.Inbox(c.Request().Context(), account.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toConversationViews(conversations))
}

// Thread returns the full exchange with one partner, oldest first.
func (h *ChatHandler) Thread(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	partnerID, err := pathUUID(c, "partnerId")
	if err != nil {
		return err
	}

	messages, err := h.messageUC.Thread(c.Request().Context(), account.ID, partnerID)
	if err != nil {
		return err
	}

	views := make([]*messageView, 0, len(messages))
	for _, message := range messages {
		views = append(views, toMessageView(message))
	}

	return c.JSON(http.StatusOK, views)
}

// Send records a message to the recipient.
func (h *ChatHandler) Send(c echo.Context) error {
	account := middleware.AccountFromContext(c)

	recipientID, err := pathUUID(c, "recipientId")
	if err != nil {
		return err
	}

	var req SendMessageRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.messageUC.Send(c.Request().Context(), account.ID, recipientID, req.Text)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{
		"message": "Message sent",
		"data":    toMessageView(message),
	})
}
