package handler

import (
	"context"
	"log/slog"
	"net/http"
	"testing"

	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatUsecaseStub implements usecase.ChatUsecase with an overridable function.
type chatUsecaseStub struct {
	chatFn func(ctx context.Context, input usecase.ChatInput) (*usecase.ChatOutput, error)
}

func (s *chatUsecaseStub) Chat(ctx context.Context, input usecase.ChatInput) (*usecase.ChatOutput, error) {
	return s.chatFn(ctx, input)
}

func TestChatHandler_Chat(t *testing.T) {
	pharmacyID := uuid.New()

	var captured usecase.ChatInput
	h := &ChatHandler{
		logger: slog.Default(),
		chatUC: &chatUsecaseStub{
			chatFn: func(_ context.Context, input usecase.ChatInput) (*usecase.ChatOutput, error) {
				captured = input

				return &usecase.ChatOutput{
					Response:     "Oui, nous avons du Paracétamol en stock.",
					PharmacyName: "Pharmacie Central Alger",
				}, nil
			},
		},
	}

	body := `{"user_id":"user-42","message":"Avez-vous du paracetamol ?"}`
	c, rec := newEchoContext(t, http.MethodPost, "/api/chat/"+pharmacyID.String(), body)
	c.SetParamNames("pharmacy_id")
	c.SetParamValues(pharmacyID.String())

	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, pharmacyID, captured.PharmacyID)
	assert.Equal(t, "user-42", captured.UserID)
	assert.Contains(t, rec.Body.String(), "Pharmacie Central Alger")
}

func TestChatHandler_Chat_InvalidPharmacyID(t *testing.T) {
	h := &ChatHandler{logger: slog.Default(), chatUC: &chatUsecaseStub{}}

	c, rec := newEchoContext(t, http.MethodPost, "/api/chat/nope", `{"user_id":"u","message":"m"}`)
	c.SetParamNames("pharmacy_id")
	c.SetParamValues("nope")

	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestChatHandler_Chat_MissingMessage(t *testing.T) {
	h := &ChatHandler{logger: slog.Default(), chatUC: &chatUsecaseStub{}}

	c, rec := newEchoContext(t, http.MethodPost, "/api/chat/"+uuid.NewString(), `{"user_id":"u"}`)
	c.SetParamNames("pharmacy_id")
	c.SetParamValues(uuid.NewString())

	require.NoError(t, h.Chat(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
