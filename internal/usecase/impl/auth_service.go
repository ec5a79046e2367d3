package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"pharmadz/config"
	deliverycontext "pharmadz/internal/delivery/context"
	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/domain/service"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	oauthService service.OAuthService
	oauthAuth    service.OAuthAuthService
	adminEmails  []string
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	OAuthService service.OAuthService
	OAuthAuth    service.OAuthAuthService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var adminEmails []string
	if params.Config != nil && params.Config.GoogleOAuth != nil {
		adminEmails = params.Config.GoogleOAuth.AdminEmails
	}

	return &authService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		oauthService: params.OAuthService,
		oauthAuth:    params.OAuthAuth,
		adminEmails:  adminEmails,
		logger:       params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterPharmacyAccount creates the pharmacy record and its operator account
// atomically: both rows commit or neither does.
func (srv *authService) RegisterPharmacyAccount(ctx context.Context, input usecase.RegisterPharmacyAccountInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting pharmacy registration",
		slog.String("username", input.Username),
		slog.String("pharmacy_name", input.Pharmacy.Name),
	)

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	now := time.Now()
	pharmacy := &entity.Pharmacy{
		ID:    uuid.New(),
		Name:  input.Pharmacy.Name,
		Phone: input.Pharmacy.Phone,
		Email: input.Pharmacy.Email,
		Location: entity.Location{
			Latitude:  input.Pharmacy.Latitude,
			Longitude: input.Pharmacy.Longitude,
			Address:   input.Pharmacy.Address,
			Wilaya:    input.Pharmacy.Wilaya,
			Commune:   input.Pharmacy.Commune,
			Quartier:  input.Pharmacy.Quartier,
		},
		IsGuard:            input.Pharmacy.IsGuard,
		Stock:              input.Pharmacy.Stock,
		SubscriptionActive: input.Pharmacy.SubscriptionActive,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	account := &entity.Account{
		ID:           uuid.New(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         entity.RolePharmacy,
		PharmacyID:   &pharmacy.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPharmacyRepository().Create(ctx, pharmacy); err != nil {
			return errors.Wrap(err, "failed to create pharmacy")
		}

		if err := repoFactory.NewAccountRepository().Create(ctx, account); err != nil {
			if errors.Is(err, repository.ErrDuplicateAccount) {
				return domainerrors.ErrAccountAlreadyExists.WrapMessage("account registration failed")
			}

			return errors.Wrap(err, "failed to create account")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return srv.issueTokens(account)
}

// Login authenticates a pharmacy operator with username and password.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.AuthOutput, error) {
	account, err := srv.accountRepo.FindByUsername(ctx, input.Username)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown username")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	srv.log(ctx).Info("Account logged in",
		slog.String("account_id", account.ID.String()),
		slog.String("role", string(account.Role)),
	)

	return srv.issueTokens(account)
}

// RefreshTokens exchanges a valid refresh token for a new token pair.
func (srv *authService) RefreshTokens(ctx context.Context, refreshToken string) (*usecase.AuthOutput, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != "refresh" {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token validation failed")
	}

	account, err := srv.accountRepo.FindByID(ctx, claims.AccountID)
	if errors.Is(err, repository.ErrAccountNotFound) {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage("account no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find account")
	}

	return srv.issueTokens(account)
}

// AdminLoginURL starts the Google OAuth flow for platform administrators.
func (srv *authService) AdminLoginURL(_ context.Context) (*usecase.AdminLoginURLOutput, error) {
	state := srv.oauthService.GenerateState()

	return &usecase.AdminLoginURLOutput{
		AuthorizationURL: srv.oauthService.BuildAuthorizationURL(state),
		State:            state,
	}, nil
}

// AdminOAuthCallback completes the admin OAuth flow. The admin account is
// created on first login; subsequent logins reuse it.
func (srv *authService) AdminOAuthCallback(ctx context.Context, state, code string) (*usecase.AuthOutput, error) {
	if !srv.oauthService.ValidateState(state) {
		return nil, domainerrors.ErrOAuthStateInvalid.WrapMessage("state validation failed")
	}

	accessToken, err := srv.oauthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		return nil, domainerrors.ErrOAuthCodeInvalid.WrapMessage("code exchange failed")
	}

	oauthUser, err := srv.oauthService.GetUserInfo(ctx, accessToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("user info retrieval failed")
	}

	if !srv.isAdminEmail(oauthUser.Email) {
		srv.log(ctx).Warn("OAuth login rejected, email not in admin allowlist",
			slog.String("email", oauthUser.Email),
		)

		return nil, domainerrors.ErrAdminEmailNotAllowed.WrapMessage("email not allowlisted")
	}

	account, err := srv.findOrCreateAdminAccount(ctx, oauthUser)
	if err != nil {
		return nil, err
	}

	return srv.issueTokens(account)
}

// AdminTokenLogin authenticates an admin from a Google ID token forwarded by
// a client that completed Google Sign-In on its own.
func (srv *authService) AdminTokenLogin(ctx context.Context, idToken string) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.oauthAuth.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrOAuthFailed.WrapMessage("ID token verification failed")
	}

	if !srv.isAdminEmail(oauthUser.Email) {
		srv.log(ctx).Warn("OAuth login rejected, email not in admin allowlist",
			slog.String("email", oauthUser.Email),
		)

		return nil, domainerrors.ErrAdminEmailNotAllowed.WrapMessage("email not allowlisted")
	}

	account, err := srv.findOrCreateAdminAccount(ctx, oauthUser)
	if err != nil {
		return nil, err
	}

	return srv.issueTokens(account)
}

func (srv *authService) isAdminEmail(email string) bool {
	for _, allowed := range srv.adminEmails {
		if strings.EqualFold(allowed, email) {
			return true
		}
	}

	return false
}

func (srv *authService) findOrCreateAdminAccount(ctx context.Context, oauthUser *service.OAuthUser) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, oauthUser.Email)
	if err == nil {
		return account, nil
	}
	if !errors.Is(err, repository.ErrAccountNotFound) {
		return nil, errors.Wrap(err, "failed to find account")
	}

	now := time.Now()
	account = &entity.Account{
		ID:        uuid.New(),
		Username:  oauthUser.Email,
		Email:     oauthUser.Email,
		Role:      entity.RoleAdmin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.accountRepo.Create(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to create admin account")
	}

	srv.log(ctx).Info("Admin account created on first OAuth login",
		slog.String("account_id", account.ID.String()),
	)

	return account, nil
}

func (srv *authService) issueTokens(account *entity.Account) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}
