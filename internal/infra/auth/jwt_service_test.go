package auth

import (
	"testing"

	"pharmadz/config"
	"pharmadz/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test-access-secret"
	cfg.SecretKey.Refresh = "test-refresh-secret"

	return cfg
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	require.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	pharmacyID := uuid.New()
	account := &entity.Account{
		ID:         uuid.New(),
		Role:       entity.RolePharmacy,
		PharmacyID: &pharmacyID,
	}

	accessToken, refreshToken, err := svc.GenerateTokens(account)
	require.NoError(t, err)
	require.NotEmpty(t, accessToken)
	require.NotEmpty(t, refreshToken)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := svc.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, accessClaims.AccountID)
	assert.Equal(t, entity.RolePharmacy, accessClaims.Role)
	require.NotNil(t, accessClaims.PharmacyID)
	assert.Equal(t, pharmacyID, *accessClaims.PharmacyID)
	assert.Equal(t, "access", accessClaims.Type)

	refreshClaims, err := svc.ValidateToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_ValidateToken_Garbage(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	_, err = svc.ValidateToken("not-a-jwt")
	require.Error(t, err)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	other := newTestJWTConfig()
	other.SecretKey.Access = "different-secret"
	other.SecretKey.Refresh = "different-refresh"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	account := &entity.Account{ID: uuid.New(), Role: entity.RoleAdmin}
	accessToken, _, err := otherSvc.GenerateTokens(account)
	require.NoError(t, err)

	_, err = svc.ValidateToken(accessToken)
	require.Error(t, err)
}
