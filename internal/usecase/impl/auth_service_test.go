package impl

import (
	"context"
	"testing"

	"pharmadz/internal/domain/entity"
	domainerrors "pharmadz/internal/domain/errors"
	"pharmadz/internal/domain/repository"
	"pharmadz/internal/domain/service"
	mockRepo "pharmadz/internal/mocks/repository"
	mockSvc "pharmadz/internal/mocks/service"
	"pharmadz/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceMocks struct {
	txManager    *mockRepo.MockTransactionManager
	accountRepo  *mockRepo.MockAccountRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	oauthService *mockSvc.MockOAuthService
	oauthAuth    *mockSvc.MockOAuthAuthService
}

func newAuthService(t *testing.T) (usecase.AuthUsecase, *authServiceMocks) {
	m := &authServiceMocks{
		txManager:    mockRepo.NewMockTransactionManager(t),
		accountRepo:  mockRepo.NewMockAccountRepository(t),
		hasher:       mockSvc.NewMockPasswordHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		oauthService: mockSvc.NewMockOAuthService(t),
		oauthAuth:    mockSvc.NewMockOAuthAuthService(t),
	}

	svc := NewAuthService(AuthServiceParams{
		TxManager:    m.txManager,
		AccountRepo:  m.accountRepo,
		Hasher:       m.hasher,
		TokenService: m.tokenService,
		OAuthService: m.oauthService,
		OAuthAuth:    m.oauthAuth,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return svc, m
}

func newPharmacyAccount() *entity.Account {
	pharmacyID := uuid.New()

	return &entity.Account{
		ID:           uuid.New(),
		Username:     "pharmacie-el-amel",
		Email:        "contact@el-amel.dz",
		PasswordHash: "$2a$10$hash",
		Role:         entity.RolePharmacy,
		PharmacyID:   &pharmacyID,
	}
}

func TestAuthService_RegisterPharmacyAccount_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	input := usecase.RegisterPharmacyAccountInput{
		Username: "pharmacie-el-amel",
		Email:    "contact@el-amel.dz",
		Password: "s3cret-passw0rd",
		Pharmacy: usecase.CreatePharmacyInput{
			Name:    "Pharmacie El Amel",
			Phone:   "+213 21 00 00 00",
			Wilaya:  "Alger",
			Commune: "Hydra",
		},
	}

	m.hasher.EXPECT().
		Hash("s3cret-passw0rd").
		Return("$2a$10$hash", nil)

	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPharmacyRepository().Return(pharmacyRepo)
	factory.EXPECT().NewAccountRepository().Return(accountRepo)

	var createdAccount *entity.Account
	pharmacyRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Pharmacy")).
		Return(nil)
	accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			createdAccount = account
		}).
		Return(nil)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	m.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.Account")).
		Return("access-token", "refresh-token", nil)

	output, err := svc.RegisterPharmacyAccount(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)

	require.NotNil(t, createdAccount)
	assert.Equal(t, entity.RolePharmacy, createdAccount.Role)
	assert.Equal(t, "$2a$10$hash", createdAccount.PasswordHash)
	require.NotNil(t, createdAccount.PharmacyID)
}

func TestAuthService_RegisterPharmacyAccount_DuplicateAccount(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.hasher.EXPECT().
		Hash(mock.AnythingOfType("string")).
		Return("$2a$10$hash", nil)

	pharmacyRepo := mockRepo.NewMockPharmacyRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewPharmacyRepository().Return(pharmacyRepo)
	factory.EXPECT().NewAccountRepository().Return(accountRepo)

	pharmacyRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(nil)
	accountRepo.EXPECT().
		Create(ctx, mock.Anything).
		Return(repository.ErrDuplicateAccount)

	m.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := svc.RegisterPharmacyAccount(ctx, usecase.RegisterPharmacyAccountInput{
		Username: "taken",
		Email:    "taken@el-amel.dz",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	account := newPharmacyAccount()

	m.accountRepo.EXPECT().
		FindByUsername(ctx, account.Username).
		Return(account, nil)

	m.hasher.EXPECT().
		Check("s3cret-passw0rd", account.PasswordHash).
		Return(true)

	m.tokenService.EXPECT().
		GenerateTokens(account).
		Return("access-token", "refresh-token", nil)

	output, err := svc.Login(ctx, usecase.LoginInput{
		Username: account.Username,
		Password: "s3cret-passw0rd",
	})
	require.NoError(t, err)
	assert.Equal(t, account, output.Account)
	assert.Equal(t, "access-token", output.AccessToken)
}

func TestAuthService_Login_UnknownUsername(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.accountRepo.EXPECT().
		FindByUsername(ctx, "ghost").
		Return(nil, repository.ErrAccountNotFound)

	output, err := svc.Login(ctx, usecase.LoginInput{Username: "ghost", Password: "x"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	account := newPharmacyAccount()

	m.accountRepo.EXPECT().
		FindByUsername(ctx, account.Username).
		Return(account, nil)

	m.hasher.EXPECT().
		Check("wrong", account.PasswordHash).
		Return(false)

	output, err := svc.Login(ctx, usecase.LoginInput{Username: account.Username, Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_RefreshTokens_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	account := newPharmacyAccount()

	m.tokenService.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{AccountID: account.ID, Type: "refresh"}, nil)

	m.accountRepo.EXPECT().
		FindByID(ctx, account.ID).
		Return(account, nil)

	m.tokenService.EXPECT().
		GenerateTokens(account).
		Return("new-access", "new-refresh", nil)

	output, err := svc.RefreshTokens(ctx, "refresh-token")
	require.NoError(t, err)
	assert.Equal(t, "new-access", output.AccessToken)
}

func TestAuthService_RefreshTokens_AccessTokenRejected(t *testing.T) {
	svc, m := newAuthService(t)

	m.tokenService.EXPECT().
		ValidateToken("access-token").
		Return(&service.Claims{AccountID: uuid.New(), Type: "access"}, nil)

	output, err := svc.RefreshTokens(context.Background(), "access-token")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestAuthService_AdminLoginURL(t *testing.T) {
	svc, m := newAuthService(t)

	m.oauthService.EXPECT().
		GenerateState().
		Return("random-state")

	m.oauthService.EXPECT().
		BuildAuthorizationURL("random-state").
		Return("https://accounts.google.com/o/oauth2/v2/auth?state=random-state")

	output, err := svc.AdminLoginURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "random-state", output.State)
	assert.Contains(t, output.AuthorizationURL, "state=random-state")
}

func TestAuthService_AdminOAuthCallback_FirstLoginCreatesAccount(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.oauthService.EXPECT().ValidateState("state").Return(true)
	m.oauthService.EXPECT().ExchangeCodeForToken(ctx, "code").Return("provider-token", nil)
	m.oauthService.EXPECT().GetUserInfo(ctx, "provider-token").Return(&service.OAuthUser{
		ID:            "google-sub",
		Email:         "admin@pharmadz.dz",
		Name:          "Platform Admin",
		EmailVerified: true,
	}, nil)

	m.accountRepo.EXPECT().
		FindByEmail(ctx, "admin@pharmadz.dz").
		Return(nil, repository.ErrAccountNotFound)

	var createdAccount *entity.Account
	m.accountRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			createdAccount = account
		}).
		Return(nil)

	m.tokenService.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.Account")).
		Return("access-token", "refresh-token", nil)

	output, err := svc.AdminOAuthCallback(ctx, "state", "code")
	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)

	require.NotNil(t, createdAccount)
	assert.Equal(t, entity.RoleAdmin, createdAccount.Role)
	assert.Empty(t, createdAccount.PasswordHash)
	assert.Nil(t, createdAccount.PharmacyID)
}

func TestAuthService_AdminOAuthCallback_EmailNotAllowlisted(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.oauthService.EXPECT().ValidateState("state").Return(true)
	m.oauthService.EXPECT().ExchangeCodeForToken(ctx, "code").Return("provider-token", nil)
	m.oauthService.EXPECT().GetUserInfo(ctx, "provider-token").Return(&service.OAuthUser{
		Email: "intruder@example.com",
	}, nil)

	output, err := svc.AdminOAuthCallback(ctx, "state", "code")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAdminEmailNotAllowed)
}

func TestAuthService_AdminTokenLogin_Success(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()
	account := &entity.Account{
		ID:       uuid.New(),
		Username: "admin@pharmadz.dz",
		Email:    "admin@pharmadz.dz",
		Role:     entity.RoleAdmin,
	}

	m.oauthAuth.EXPECT().
		VerifyIDToken(ctx, "google-id-token").
		Return(&service.OAuthUser{
			ID:            "google-sub",
			Email:         "admin@pharmadz.dz",
			EmailVerified: true,
		}, nil)

	m.accountRepo.EXPECT().
		FindByEmail(ctx, "admin@pharmadz.dz").
		Return(account, nil)

	m.tokenService.EXPECT().
		GenerateTokens(account).
		Return("access-token", "refresh-token", nil)

	output, err := svc.AdminTokenLogin(ctx, "google-id-token")
	require.NoError(t, err)
	assert.Equal(t, account, output.Account)
}

func TestAuthService_AdminTokenLogin_InvalidToken(t *testing.T) {
	svc, m := newAuthService(t)

	ctx := context.Background()

	m.oauthAuth.EXPECT().
		VerifyIDToken(ctx, "garbage").
		Return(nil, errors.New("invalid ID token"))

	output, err := svc.AdminTokenLogin(ctx, "garbage")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
}

func TestAuthService_AdminOAuthCallback_InvalidState(t *testing.T) {
	svc, m := newAuthService(t)

	m.oauthService.EXPECT().ValidateState("forged").Return(false)

	output, err := svc.AdminOAuthCallback(context.Background(), "forged", "code")
	require.Error(t, err)
	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}
