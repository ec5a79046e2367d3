package entity

import (
	"time"

	"github.com/google/uuid"
)

// PrescriptionStatus tracks a submitted prescription through its lifecycle.
type PrescriptionStatus string

const (
	PrescriptionPending   PrescriptionStatus = "pending"
	PrescriptionProcessed PrescriptionStatus = "processed"
	PrescriptionReady     PrescriptionStatus = "ready"
	PrescriptionDelivered PrescriptionStatus = "delivered"
)

// Prescription is a medication order submitted by a user to a pharmacy.
type Prescription struct {
	ID          uuid.UUID
	UserID      string
	PharmacyID  uuid.UUID
	Medications []string
	ImageURL    *string
	Status      PrescriptionStatus
	CreatedAt   time.Time
}
