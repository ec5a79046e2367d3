// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Pharmacy is the central entity of the platform: a registered pharmacy with
// its geographic location and the stock it currently declares.
type Pharmacy struct {
	ID                 uuid.UUID   // The unique identifier, assigned at creation and immutable afterwards.
	Name               string      // Display name, e.g. "Pharmacie Central Alger".
	Phone              string      // Contact phone number.
	Email              *string     // Optional contact email.
	Location           Location    // Geographic position and administrative hierarchy.
	IsGuard            bool        // Pharmacie de garde (on-duty/emergency) flag, set by admins.
	Stock              []StockLine // Declared stock; insertion order is display order.
	SubscriptionActive bool        // Gates visibility in the dedicated medication search.
	CreatedAt          time.Time   // Timestamp of registration.
	UpdatedAt          time.Time   // Timestamp of the last modification.
}

// Location describes where a pharmacy sits inside the three-level
// administrative hierarchy (wilaya / commune / quartier).
type Location struct {
	Latitude  float64
	Longitude float64
	Address   string  // Free-text street address.
	Wilaya    string  // Top administrative level.
	Commune   string  // Second administrative level.
	Quartier  *string // Optional third level; not every address declares one.
}

// LocationFilter is a partial set of equality constraints over the
// administrative hierarchy. Empty fields impose no restriction.
type LocationFilter struct {
	Wilaya   string
	Commune  string
	Quartier string
}

// IsZero reports whether the filter carries no constraint at all.
func (f LocationFilter) IsZero() bool {
	return f.Wilaya == "" && f.Commune == "" && f.Quartier == ""
}

// Matches reports whether the location satisfies every constraint present in
// the filter. Comparison is exact: case-sensitive, no normalization, no
// partial match. A quartier constraint against a location without a quartier
// is a non-match, not an error.
func (l Location) Matches(f LocationFilter) bool {
	if f.Wilaya != "" && l.Wilaya != f.Wilaya {
		return false
	}
	if f.Commune != "" && l.Commune != f.Commune {
		return false
	}
	if f.Quartier != "" && (l.Quartier == nil || *l.Quartier != f.Quartier) {
		return false
	}

	return true
}
