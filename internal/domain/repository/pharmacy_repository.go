// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"pharmadz/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrPharmacyNotFound is a domain-specific error returned when a pharmacy is not found.
var ErrPharmacyNotFound = errors.New("pharmacy not found")

// PharmacyFilter narrows pharmacy listings. Location fields are exact-match
// constraints; SubscribedOnly restricts results to pharmacies with an active
// subscription.
type PharmacyFilter struct {
	Location       entity.LocationFilter
	SubscribedOnly bool
}

// PharmacyRepository defines the standard operations for pharmacy persistence.
// The application layer will depend on this interface, not the concrete implementation.
type PharmacyRepository interface {
	// Find retrieves pharmacies matching the filter, with their stock lines in
	// stored order. A zero filter returns every pharmacy.
	Find(ctx context.Context, filter PharmacyFilter) ([]*entity.Pharmacy, error)

	// FindByID retrieves a single pharmacy by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Pharmacy, error)

	// Create persists a new pharmacy entity to the storage.
	Create(ctx context.Context, pharmacy *entity.Pharmacy) error

	// Update modifies an existing pharmacy entity in the storage.
	Update(ctx context.Context, pharmacy *entity.Pharmacy) error

	// ReplaceStock replaces the whole stock list of a pharmacy in one operation.
	// Returns ErrPharmacyNotFound when no pharmacy carries the given ID.
	ReplaceStock(ctx context.Context, id uuid.UUID, stock []entity.StockLine) error

	// Count returns the number of stored pharmacies. Used to decide seeding.
	Count(ctx context.Context) (int64, error)
}
