package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func protectedEcho(t *testing.T) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(AdminFromContext(r.Context())))
	})
}

func TestAdminAuth_MissingHeader(t *testing.T) {
	handler := AdminAuth(testSecret)(protectedEcho(t))

	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_ValidTokenCarriesUsername(t *testing.T) {
	token, err := SignAdminToken(testSecret, "admin", time.Hour)
	require.NoError(t, err)

	handler := AdminAuth(testSecret)(protectedEcho(t))
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "admin", rec.Body.String())
}

func TestAdminAuth_WrongSecret(t *testing.T) {
	token, err := SignAdminToken("other-secret", "admin", time.Hour)
	require.NoError(t, err)

	handler := AdminAuth(testSecret)(protectedEcho(t))
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminAuth_ExpiredToken(t *testing.T) {
	token, err := SignAdminToken(testSecret, "admin", -time.Minute)
	require.NoError(t, err)

	handler := AdminAuth(testSecret)(protectedEcho(t))
	req := httptest.NewRequest(http.MethodGet, "/v1/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestVerifyAdminToken_RejectsNonAdminRole(t *testing.T) {
	_, err := VerifyAdminToken(testSecret, "not-a-token")
	assert.Error(t, err)
}
