package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pharmadz/internal/domain/entity"
	"pharmadz/internal/domain/service"
	mockSvc "pharmadz/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate_Success(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	pharmacyID := uuid.New()
	accountID := uuid.New()

	tokenSvc.EXPECT().
		ValidateToken("valid-token").
		Return(&service.Claims{
			AccountID:  accountID,
			Role:       entity.RolePharmacy,
			PharmacyID: &pharmacyID,
			Type:       "access",
		}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer valid-token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, accountID, c.Get(ContextKeyAccountID))
	assert.Equal(t, entity.RolePharmacy, c.Get(ContextKeyRole))
	assert.Equal(t, &pharmacyID, c.Get(ContextKeyPharmacyID))
}

func TestAuthMiddleware_Authenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAuthContext("")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	c, rec := newAuthContext("Basic dXNlcjpwYXNz")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("garbage").
		Return(nil, errors.New("token is malformed"))

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer garbage")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_Authenticate_RefreshTokenRejected(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("refresh-token").
		Return(&service.Claims{AccountID: uuid.New(), Type: "refresh"}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer refresh-token")

	require.NoError(t, m.Authenticate(okHandler)(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	t.Run("matching role passes", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(ContextKeyRole, entity.RoleAdmin)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		c, rec := newAuthContext("")
		c.Set(ContextKeyRole, entity.RolePharmacy)

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is forbidden", func(t *testing.T) {
		c, rec := newAuthContext("")

		require.NoError(t, m.RequireRole(entity.RoleAdmin)(okHandler)(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
