package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role describes what an authenticated account is allowed to do.
type Role string

const (
	// RolePharmacy is a pharmacy operator account, bound to one pharmacy.
	RolePharmacy Role = "pharmacy"
	// RoleAdmin is a platform administrator, authenticated via Google OAuth.
	RoleAdmin Role = "admin"
)

// Account is an authenticated identity on the platform. Pharmacy accounts
// carry a password hash and a pharmacy binding; admin accounts are created on
// first OAuth login and have neither.
type Account struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string     // Empty for OAuth-only (admin) accounts.
	Role         Role
	PharmacyID   *uuid.UUID // Set for pharmacy accounts only.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
