package usecase

import (
	"context"

	"pharmadz/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterPharmacyAccountInput defines the data required to register a
// pharmacy operator account together with its pharmacy record.
type RegisterPharmacyAccountInput struct {
	Username string
	Email    string
	Password string
	Pharmacy CreatePharmacyInput
}

// LoginInput defines the data required for a pharmacy account to log in.
type LoginInput struct {
	Username string
	Password string
}

// --- Output DTOs ---

// AuthOutput returns the generated tokens after a successful authentication.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// AdminLoginURLOutput returns the provider redirect for the admin OAuth flow.
type AdminLoginURLOutput struct {
	AuthorizationURL string
	State            string
}

// AuthUsecase defines the interface for authentication business operations.
type AuthUsecase interface {
	// RegisterPharmacyAccount creates a pharmacy record and its operator
	// account in one transaction.
	RegisterPharmacyAccount(ctx context.Context, input RegisterPharmacyAccountInput) (*AuthOutput, error)

	// Login authenticates a pharmacy account with username and password.
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)

	// RefreshTokens exchanges a valid refresh token for a new token pair.
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthOutput, error)

	// AdminLoginURL starts the Google OAuth flow for platform administrators.
	AdminLoginURL(ctx context.Context) (*AdminLoginURLOutput, error)

	// AdminOAuthCallback completes the Google OAuth flow: validates state,
	// exchanges the code, checks the allowlist, and issues tokens for the
	// admin account (created on first login).
	AdminOAuthCallback(ctx context.Context, state, code string) (*AuthOutput, error)

	// AdminTokenLogin authenticates an administrator from a Google ID token,
	// for clients that run Google Sign-In themselves instead of the
	// server-side code flow.
	AdminTokenLogin(ctx context.Context, idToken string) (*AuthOutput, error)
}
