package model

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionModel mirrors the 'prescriptions' table. Medications are kept
// as a JSON array; they are opaque to queries.
type PrescriptionModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      string    `gorm:"type:varchar(255);not null;index"`
	PharmacyID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Medications []byte    `gorm:"type:jsonb"`
	ImageURL    *string   `gorm:"type:text"`
	Status      string    `gorm:"type:varchar(20);not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (PrescriptionModel) TableName() string {
	return "prescriptions"
}
