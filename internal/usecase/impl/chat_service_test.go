package impl

import (
	"context"
	"errors"
	"testing"

	"pharmadz/config"
	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	mockRepo "pharmadz/internal/mocks/repository"
	mockSvc "pharmadz/internal/mocks/service"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newChatService(t *testing.T, cfg *config.Config) (usecase.ChatUsecase, *mockRepo.MockPharmacyRepository, *mockRepo.MockChatRepository, *mockSvc.MockChatCompletionService) {
	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	chatRepo := mockRepo.NewMockChatRepository(t)
	completion := mockSvc.NewMockChatCompletionService(t)

	service := NewChatService(ChatServiceParams{
		PharmacyRepo: pharmacyRepo,
		ChatRepo:     chatRepo,
		Completion:   completion,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return service, pharmacyRepo, chatRepo, completion
}

func TestChatService_Chat_Success(t *testing.T) {
	service, pharmacyRepo, chatRepo, completion := newChatService(t, newTestConfig())

	ctx := context.Background()
	pharmacy := newTestPharmacy()

	pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacy.ID).
		Return(pharmacy, nil)

	completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), "Avez-vous du paracétamol ?").
		Return("Oui, le Paracétamol 500mg est disponible à 120.00 DA.", nil)

	chatRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.ChatExchange")).
		Return(nil)

	output, err := service.Chat(ctx, usecase.ChatInput{
		PharmacyID: pharmacy.ID,
		UserID:     "user-42",
		Message:    "Avez-vous du paracétamol ?",
	})
	require.NoError(t, err)
	assert.Equal(t, "Oui, le Paracétamol 500mg est disponible à 120.00 DA.", output.Response)
	assert.Equal(t, pharmacy.Name, output.PharmacyName)
}

func TestChatService_Chat_PromptCarriesStockAndIdentity(t *testing.T) {
	service, pharmacyRepo, chatRepo, completion := newChatService(t, newTestConfig())

	ctx := context.Background()
	pharmacy := newTestPharmacy()

	var capturedPrompt string

	pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacy.ID).
		Return(pharmacy, nil)

	completion.EXPECT().
		Complete(ctx, mock.AnythingOfType("string"), mock.AnythingOfType("string")).
		Run(func(_ context.Context, systemPrompt, _ string) {
			capturedPrompt = systemPrompt
		}).
		Return("ok", nil)

	chatRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil)

	_, err := service.Chat(ctx, usecase.ChatInput{
		PharmacyID: pharmacy.ID,
		UserID:     "user-42",
		Message:    "bonjour",
	})
	require.NoError(t, err)

	assert.Contains(t, capturedPrompt, "Tu es l'assistant IA de la pharmacie Pharmacie El Amel")
	assert.Contains(t, capturedPrompt, "12 Rue Didouche Mourad, Hydra")
	assert.Contains(t, capturedPrompt, "- Paracétamol 500mg: 50 unités, 120.00 DA (Disponible)")
	assert.Contains(t, capturedPrompt, "- Amoxicilline 250mg: 0 unités, 350.00 DA (Rupture de stock)")
	assert.Contains(t, capturedPrompt, "Réponds en français.")
}

func TestChatService_Chat_CompletionFailureReturnsFallback(t *testing.T) {
	service, pharmacyRepo, _, completion := newChatService(t, newTestConfig())

	ctx := context.Background()
	pharmacy := newTestPharmacy()

	pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacy.ID).
		Return(pharmacy, nil)

	completion.EXPECT().
		Complete(ctx, mock.Anything, mock.Anything).
		Return("", errors.New("provider timeout"))

	// persistFallback defaults to false: the degraded exchange is not logged.
	output, err := service.Chat(ctx, usecase.ChatInput{
		PharmacyID: pharmacy.ID,
		UserID:     "user-42",
		Message:    "Avez-vous de l'insuline ?",
	})
	require.NoError(t, err)
	assert.Equal(t, chatFallbackResponse, output.Response)
}

func TestChatService_Chat_FallbackPersistedWhenConfigured(t *testing.T) {
	cfg := newTestConfig()
	cfg.Chat.PersistFallback = true
	service, pharmacyRepo, chatRepo, completion := newChatService(t, cfg)

	ctx := context.Background()
	pharmacy := newTestPharmacy()

	pharmacyRepo.EXPECT().
		FindByID(ctx, pharmacy.ID).
		Return(pharmacy, nil)

	completion.EXPECT().
		Complete(ctx, mock.Anything, mock.Anything).
		Return("", errors.New("provider timeout"))

	chatRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(exchange *entity.ChatExchange) bool {
			return exchange.Response == chatFallbackResponse
		})).
		Return(nil)

	output, err := service.Chat(ctx, usecase.ChatInput{
		PharmacyID: pharmacy.ID,
		UserID:     "user-42",
		Message:    "bonjour",
	})
	require.NoError(t, err)
	assert.Equal(t, chatFallbackResponse, output.Response)
}

func TestChatService_Chat_UnknownPharmacy(t *testing.T) {
	service, pharmacyRepo, _, _ := newChatService(t, newTestConfig())

	ctx := context.Background()
	id := uuid.New()

	pharmacyRepo.EXPECT().
		FindByID(ctx, id).
		Return(nil, repository.ErrPharmacyNotFound)

	output, err := service.Chat(ctx, usecase.ChatInput{PharmacyID: id, UserID: "user-42", Message: "bonjour"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrPharmacyNotFound)
}
