package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"railpay-service/internal/app/config"
	"railpay-service/internal/pkg/constvars"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func newTestMiddlewares() *Middlewares {
	cfg := &config.InternalConfig{}
	cfg.JWT.Secret = testSecret
	return NewMiddlewares(zap.NewNop(), cfg)
}

func signedToken(t *testing.T, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	m := newTestMiddlewares()

	var gotUserID string
	handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(constvars.CONTEXT_MERCHANT_USER_ID_KEY).(string)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("valid token passes user ID through context", func(t *testing.T) {
		gotUserID = ""
		req := httptest.NewRequest(http.MethodPost, "/merchants", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signedToken(t, "user-1", time.Hour))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", gotUserID)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/merchants", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/merchants", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+signedToken(t, "user-1", -time.Hour))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret is unauthorized", func(t *testing.T) {
		claims := jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodPost, "/merchants", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	var gotRequestID string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequestID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	}))

	t.Run("generates an ID when the client sends none", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.NotEmpty(t, gotRequestID)
		assert.Equal(t, gotRequestID, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("keeps the client-provided ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-id-1", gotRequestID)
		assert.Equal(t, "client-id-1", rec.Header().Get(constvars.HeaderXRequestID))
	})
}
