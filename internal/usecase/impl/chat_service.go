package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"pharmadz/config"
	deliverycontext "pharmadz/internal/delivery/context"
	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/domain/service"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// chatFallbackResponse is returned when the model is unreachable or errors.
// Degrading to an apology keeps the endpoint usable during provider outages.
const chatFallbackResponse = "Désolé, je ne peux pas répondre pour le moment. " +
	"Veuillez réessayer plus tard ou contacter directement la pharmacie."

// chatService implements the ChatUsecase interface.
type chatService struct {
	pharmacyRepo    repository.PharmacyRepository
	chatRepo        repository.ChatRepository
	completion      service.ChatCompletionService
	persistFallback bool
	logger          *slog.Logger
}

// ChatServiceParams holds dependencies for ChatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	PharmacyRepo repository.PharmacyRepository
	ChatRepo     repository.ChatRepository
	Completion   service.ChatCompletionService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	persistFallback := false
	if params.Config != nil && params.Config.Chat != nil {
		persistFallback = params.Config.Chat.PersistFallback
	}

	return &chatService{
		pharmacyRepo:    params.PharmacyRepo,
		chatRepo:        params.ChatRepo,
		completion:      params.Completion,
		persistFallback: persistFallback,
		logger:          params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Chat answers a user question with the pharmacy's stock as model context and
// appends the exchange to the chat log.
func (srv *chatService) Chat(ctx context.Context, input usecase.ChatInput) (*usecase.ChatOutput, error) {
	pharmacy, err := srv.pharmacyRepo.FindByID(ctx, input.PharmacyID)
	if errors.Is(err, repository.ErrPharmacyNotFound) {
		return nil, domainerrors.ErrPharmacyNotFound.WrapMessage("chat target lookup failed")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find pharmacy")
	}

	systemPrompt := buildPharmacyPrompt(pharmacy)

	response, err := srv.completion.Complete(ctx, systemPrompt, input.Message)
	degraded := err != nil
	if degraded {
		srv.log(ctx).Warn("Chat completion failed, returning fallback response",
			slog.String("pharmacy_id", input.PharmacyID.String()),
			slog.Any("error", err),
		)
		response = chatFallbackResponse
	}

	if !degraded || srv.persistFallback {
		exchange := &entity.ChatExchange{
			ID:         uuid.New(),
			PharmacyID: input.PharmacyID,
			UserID:     input.UserID,
			Message:    input.Message,
			Response:   response,
			CreatedAt:  time.Now(),
		}
		if err := srv.chatRepo.Create(ctx, exchange); err != nil {
			return nil, errors.Wrap(err, "failed to persist chat exchange")
		}
	}

	return &usecase.ChatOutput{
		Response:     response,
		PharmacyName: pharmacy.Name,
	}, nil
}

// buildPharmacyPrompt renders the assistant's system prompt: the pharmacy's
// identity, its full stock list with availability, and the response rules.
func buildPharmacyPrompt(pharmacy *entity.Pharmacy) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Tu es l'assistant IA de la pharmacie %s située à %s.\n\n",
		pharmacy.Name, pharmacy.Location.Address)
	b.WriteString("Stock disponible:\n")

	for _, line := range pharmacy.Stock {
		status := "Rupture de stock"
		if line.Available {
			status = "Disponible"
		}
		fmt.Fprintf(&b, "- %s: %d unités, %.2f DA (%s)\n",
			line.MedicationName, line.Quantity, line.Price, status)
	}

	b.WriteString("\nRéponds en français. Tu peux:\n")
	b.WriteString("1. Confirmer la disponibilité des médicaments\n")
	b.WriteString("2. Proposer des alternatives si en rupture\n")
	b.WriteString("3. Donner les prix\n")
	b.WriteString("4. Orienter vers la livraison ou retrait en magasin\n\n")
	b.WriteString("Sois professionnel et utile.")

	return b.String()
}
