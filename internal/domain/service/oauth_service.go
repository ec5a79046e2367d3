package service

import (
	"context"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string // User's email address
	Name          string // User's display name
	AvatarURL     string // URL to user's profile picture
	EmailVerified bool   // Whether the email is verified by the provider
}

// OAuthService defines the interface for the authorization-code OAuth flow.
// Used by the admin login: redirect to the provider, then exchange the
// callback code for the user's identity.
type OAuthService interface {
	// BuildAuthorizationURL constructs the provider authorization URL,
	// registering the state parameter for later CSRF validation.
	BuildAuthorizationURL(state string) string

	// GenerateState returns a cryptographically random state parameter.
	GenerateState() string

	// ValidateState consumes a state parameter, returning false when it is
	// unknown, expired, or already used.
	ValidateState(state string) bool

	// ExchangeCodeForToken exchanges an authorization code for an access token.
	ExchangeCodeForToken(ctx context.Context, code string) (string, error)

	// GetUserInfo retrieves user information using an access token.
	GetUserInfo(ctx context.Context, accessToken string) (*OAuthUser, error)
}

// OAuthAuthService defines the interface for OAuth authentication operations
// This is specifically for ID token verification (like Google ID tokens)
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	// This is primarily used for Google Sign-In where the client sends an ID token directly
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
