package repository

import (
	"context"

	"pharmadz/internal/domain/entity"
)

// ChatRepository persists the append-only chat exchange log.
type ChatRepository interface {
	// Create appends one question/answer exchange to the log.
	Create(ctx context.Context, exchange *entity.ChatExchange) error
}
