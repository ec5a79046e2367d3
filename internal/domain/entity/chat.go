package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatExchange is one question/answer pair between a user and a pharmacy's
// assistant. The log is append-only; nothing in the platform reads it back.
type ChatExchange struct {
	ID         uuid.UUID
	PharmacyID uuid.UUID
	UserID     string // Caller-supplied identifier; users are not accounts.
	Message    string
	Response   string
	CreatedAt  time.Time
}
