package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageModel mirrors the 'chat_messages' table, the append-only log of
// assistant exchanges.
type ChatMessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	PharmacyID uuid.UUID `gorm:"type:uuid;not null;index"`
	UserID     string    `gorm:"type:varchar(255);not null"`
	Message    string    `gorm:"type:text;not null"`
	Response   string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
