package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dangerclosesec/goodworks/internal/audit"
	"github.com/dangerclosesec/goodworks/internal/auth"
)

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("test-secret", time.Hour)

	var seen *auth.Identity
	h := AuthMiddleware(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	t.Run("anonymous", func(t *testing.T) {
		seen = nil
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/causes", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.False(t, seen.Authenticated())
	})

	t.Run("valid token", func(t *testing.T) {
		uid := uuid.New()
		token, err := tm.Generate(uid.String(), "asha@example.org")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/me/profile", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		require.True(t, seen.Authenticated())
		assert.Equal(t, uid, seen.ID)
		assert.Equal(t, "asha@example.org", seen.Email)
	})

	t.Run("invalid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/me/profile", nil)
		req.Header.Set("Authorization", "Bearer not-a-token")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic abc")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthzAuditMiddleware(t *testing.T) {
	var info audit.RequestInfo
	var ok bool
	h := AuthzAuditMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info, ok = audit.RequestInfoFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("User-Agent", "gwctl/1.0")
	h.ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, ok)
	assert.Equal(t, "gwctl/1.0", info.UserAgent)
	assert.Equal(t, req.RemoteAddr, info.ClientIP)
}
