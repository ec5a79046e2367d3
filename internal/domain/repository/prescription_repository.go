package repository

import (
	"context"
	"errors"

	"pharmadz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPrescriptionNotFound is returned when a prescription is not found.
var ErrPrescriptionNotFound = errors.New("prescription not found")

// PrescriptionRepository defines the standard operations for prescription persistence.
type PrescriptionRepository interface {
	// Create persists a new prescription entity to the storage.
	Create(ctx context.Context, prescription *entity.Prescription) error

	// FindByID retrieves a single prescription by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Prescription, error)

	// FindByUser retrieves all prescriptions submitted by a user, newest first.
	FindByUser(ctx context.Context, userID string) ([]*entity.Prescription, error)
}
