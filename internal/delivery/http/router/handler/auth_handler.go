package handler

import (
	"log/slog"
	"net/http"

	"pharmadz/internal/delivery/http/response"
	"pharmadz/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for authentication handlers
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// RegisterPharmacyRequest represents the request body for a pharmacy account registration
type RegisterPharmacyRequest struct {
	Username string                `json:"username" validate:"required,min=3"`
	Email    string                `json:"email" validate:"required,email"`
	Password string                `json:"password" validate:"required,min=8"`
	Pharmacy CreatePharmacyRequest `json:"pharmacy" validate:"required"`
}

// LoginRequest represents the request body for a login
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest represents the request body for a token refresh
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AdminTokenLoginRequest represents the request body for an ID-token admin login
type AdminTokenLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// RegisterPharmacy handles POST /auth/register/pharmacy
func (h *AuthHandler) RegisterPharmacy(c echo.Context) error {
	var req RegisterPharmacyRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.RegisterPharmacyAccount(c.Request().Context(), usecase.RegisterPharmacyAccountInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Pharmacy: toCreatePharmacyInput(req.Pharmacy),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAuthResponse(output), "Pharmacy account registered successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Login successful")
}

// Refresh handles POST /auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.RefreshTokens(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Token refreshed successfully")
}

// AdminLogin handles GET /auth/admin/login, initiating the Google OAuth flow.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	output, err := h.authUC.AdminLoginURL(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	// Redirect directly when asked, otherwise hand the URL to the frontend.
	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, output.AuthorizationURL)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"oauth_url": output.AuthorizationURL,
		"state":     output.State,
	}, "Google OAuth URL generated successfully")
}

// AdminTokenLogin handles POST /auth/admin/token for clients that completed
// Google Sign-In themselves and forward the ID token.
func (h *AuthHandler) AdminTokenLogin(c echo.Context) error {
	var req AdminTokenLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid token login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.AdminTokenLogin(c.Request().Context(), req.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Admin authentication successful")
}

// AdminCallback handles GET /auth/admin/callback, completing the OAuth flow.
func (h *AuthHandler) AdminCallback(c echo.Context) error {
	state := c.QueryParam("state")
	code := c.QueryParam("code")
	if state == "" || code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Both state and code are required")
	}

	output, err := h.authUC.AdminOAuthCallback(c.Request().Context(), state, code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAuthResponse(output), "Admin authentication successful")
}
