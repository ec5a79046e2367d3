package usecase

import (
	"context"

	"pharmadz/internal/domain/entity"

	"github.com/google/uuid"
)

// SubmitPrescriptionInput defines the data required to submit a prescription.
type SubmitPrescriptionInput struct {
	UserID      string
	PharmacyID  uuid.UUID
	Medications []string
	ImageURL    *string
}

// PrescriptionUsecase defines the interface for prescription business operations.
type PrescriptionUsecase interface {
	// SubmitPrescription records a new prescription for a pharmacy.
	SubmitPrescription(ctx context.Context, input SubmitPrescriptionInput) (*entity.Prescription, error)

	// ListUserPrescriptions returns the prescriptions submitted by a user,
	// newest first.
	ListUserPrescriptions(ctx context.Context, userID string) ([]*entity.Prescription, error)
}
