package handler

import (
	"log/slog"
	"net/http"

	"pharmadz/internal/delivery/http/response"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ChatHandlerParams holds dependencies for ChatHandler, injected by Fx.
type ChatHandlerParams struct {
	fx.In

	ChatUC usecase.ChatUsecase
	Logger *slog.Logger
}

// ChatHandler holds dependencies for the pharmacy assistant endpoint
type ChatHandler struct {
	chatUC usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler
func NewChatHandler(params ChatHandlerParams) *ChatHandler {
	return &ChatHandler{
		chatUC: params.ChatUC,
		logger: params.Logger,
	}
}

// ChatRequest represents the request body for a chat message
type ChatRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// ChatResponse is the wire shape of the assistant's reply
type ChatResponse struct {
	Response     string `json:"response"`
	PharmacyName string `json:"pharmacy_name"`
}

// Chat handles POST /api/chat/:pharmacy_id
func (h *ChatHandler) Chat(c echo.Context) error {
	pharmacyID, err := uuid.Parse(c.Param("pharmacy_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid pharmacy ID")
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid chat input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.chatUC.Chat(c.Request().Context(), usecase.ChatInput{
		PharmacyID: pharmacyID,
		UserID:     req.UserID,
		Message:    req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ChatResponse{
		Response:     output.Response,
		PharmacyName: output.PharmacyName,
	}, "Chat completed successfully")
}
