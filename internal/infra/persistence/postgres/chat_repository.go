package postgres

import (
	"context"

	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// chatRepository implements the repository.ChatRepository interface.
// The chat log is append-only, so Create is the whole surface.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{
		db: db,
	}
}

// Create appends one exchange to the chat log.
func (repo *chatRepository) Create(ctx context.Context, exchange *entity.ChatExchange) error {
	exchangeM := fromChatExchangeDomain(exchange)

	if err := repo.db.WithContext(ctx).Create(exchangeM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to persist chat exchange")
	}

	// Update the entity with generated values
	exchange.ID = exchangeM.ID
	exchange.CreatedAt = exchangeM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// fromChatExchangeDomain converts a domain ChatExchange to a GORM ChatMessageModel.
func fromChatExchangeDomain(data *entity.ChatExchange) *model.ChatMessageModel {
	if data == nil {
		return nil
	}

	return &model.ChatMessageModel{
		ID:         data.ID,
		PharmacyID: data.PharmacyID,
		UserID:     data.UserID,
		Message:    data.Message,
		Response:   data.Response,
		CreatedAt:  data.CreatedAt,
	}
}
