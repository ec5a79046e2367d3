// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// PharmacyModel mirrors the 'pharmacies' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type PharmacyModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string    `gorm:"type:varchar(255);not null"`
	Phone              string    `gorm:"type:varchar(32)"`
	Email              *string   `gorm:"type:varchar(255)"`
	Latitude           float64
	Longitude          float64
	Address            string  `gorm:"type:text"`
	Wilaya             string  `gorm:"type:varchar(100);not null;index"`
	Commune            string  `gorm:"type:varchar(100);not null;index"`
	Quartier           *string `gorm:"type:varchar(100)"`
	IsGuard            bool
	SubscriptionActive bool `gorm:"index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	Stock []StockLineModel `gorm:"foreignKey:PharmacyID"`
}

// TableName explicitly sets the table name for GORM.
func (PharmacyModel) TableName() string {
	return "pharmacies"
}

// StockLineModel mirrors the 'stock_lines' table. Lines are keyed by
// (pharmacy, position) so the stored order is the display order.
type StockLineModel struct {
	PharmacyID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position       int       `gorm:"primaryKey"`
	MedicationName string    `gorm:"type:varchar(255);not null"`
	Quantity       int
	Price          float64
	Available      bool
}

// TableName explicitly sets the table name for GORM.
func (StockLineModel) TableName() string {
	return "stock_lines"
}
