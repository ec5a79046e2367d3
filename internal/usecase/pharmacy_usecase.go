// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"pharmadz/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// ListPharmaciesInput narrows the pharmacy listing. All fields are optional;
// location fields are exact-match constraints and Medication keeps only
// pharmacies with at least one available stock line whose name contains it.
type ListPharmaciesInput struct {
	Wilaya     string
	Commune    string
	Quartier   string
	Medication string
}

// SearchMedicationInput defines the data required for a medication search.
type SearchMedicationInput struct {
	Medication string
	Wilaya     string
	Commune    string
	Quartier   string
}

// CreatePharmacyInput defines the data required to register a new pharmacy record.
type CreatePharmacyInput struct {
	Name               string
	Phone              string
	Email              *string
	Latitude           float64
	Longitude          float64
	Address            string
	Wilaya             string
	Commune            string
	Quartier           *string
	IsGuard            bool
	Stock              []entity.StockLine
	SubscriptionActive bool
}

// UpdatePharmacyInput defines a partial update of a pharmacy record.
// Nil fields are left untouched.
type UpdatePharmacyInput struct {
	Name               *string
	Phone              *string
	Email              *string
	Latitude           *float64
	Longitude          *float64
	Address            *string
	Wilaya             *string
	Commune            *string
	Quartier           *string
	IsGuard            *bool
	SubscriptionActive *bool
}

// --- Output DTOs ---

// SearchResult pairs a pharmacy with one of its stock lines matching the query.
type SearchResult struct {
	Pharmacy *entity.Pharmacy
	Stock    entity.StockLine
}

// SearchMedicationOutput returns every (pharmacy, stock line) pair matching
// the search, plus the pair count.
type SearchMedicationOutput struct {
	Results    []SearchResult
	TotalFound int
}

// PharmacyUsecase defines the interface for pharmacy-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type PharmacyUsecase interface {
	// ListPharmacies returns pharmacies matching the filters, stock included.
	ListPharmacies(ctx context.Context, input ListPharmaciesInput) ([]*entity.Pharmacy, error)

	// GetPharmacy returns a single pharmacy by ID.
	GetPharmacy(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error)

	// CreatePharmacy registers a new pharmacy record.
	CreatePharmacy(ctx context.Context, input CreatePharmacyInput) (*entity.Pharmacy, error)

	// UpdatePharmacy applies a partial update to a pharmacy record.
	UpdatePharmacy(ctx context.Context, id uuid.UUID, input UpdatePharmacyInput) (*entity.Pharmacy, error)

	// ReplaceStock replaces the whole stock list of a pharmacy.
	ReplaceStock(ctx context.Context, id uuid.UUID, stock []entity.StockLine) error

	// SearchMedication finds available stock lines matching the query across
	// subscribed pharmacies in the given area.
	SearchMedication(ctx context.Context, input SearchMedicationInput) (*SearchMedicationOutput, error)
}
