package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/BarberBookingService/internal/service/auth"
)

type stubParser struct {
	claims *auth.Claims
	err    error
}

func (s *stubParser) ParseToken(token string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.claims, nil
}

type nopLogger struct{}

func (nopLogger) Warn(format string, v ...interface{}) {}

func okHandler(t *testing.T, wantClaims bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := ClaimsFromContext(r.Context())
		assert.Equal(t, wantClaims, ok)
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(handler http.Handler, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestRequireCustomer(t *testing.T) {
	customer := &stubParser{claims: &auth.Claims{UserID: 7, Role: auth.RoleCustomer}}
	admin := &stubParser{claims: &auth.Claims{Role: auth.RoleAdmin}}
	invalid := &stubParser{err: auth.ErrInvalidToken}

	tests := []struct {
		name       string
		parser     TokenParser
		authHeader string
		wantStatus int
	}{
		{"valid customer token", customer, "Bearer token", http.StatusOK},
		{"missing token", customer, "", http.StatusUnauthorized},
		{"malformed header", customer, "token-without-scheme", http.StatusUnauthorized},
		{"invalid token", invalid, "Bearer bad", http.StatusUnauthorized},
		{"admin token rejected", admin, "Bearer token", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(tt.parser, nopLogger{})
			handler := m.RequireCustomer(okHandler(t, tt.wantStatus == http.StatusOK))

			rec := doRequest(handler, tt.authHeader)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	admin := &stubParser{claims: &auth.Claims{Role: auth.RoleAdmin}}
	customer := &stubParser{claims: &auth.Claims{UserID: 7, Role: auth.RoleCustomer}}

	m := NewAuthMiddleware(admin, nopLogger{})
	rec := doRequest(m.RequireAdmin(okHandler(t, true)), "Bearer token")
	assert.Equal(t, http.StatusOK, rec.Code)

	m = NewAuthMiddleware(customer, nopLogger{})
	rec = doRequest(m.RequireAdmin(okHandler(t, false)), "Bearer token")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = doRequest(m.RequireAdmin(okHandler(t, false)), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptional(t *testing.T) {
	customer := &stubParser{claims: &auth.Claims{UserID: 7, Role: auth.RoleCustomer}}
	invalid := &stubParser{err: auth.ErrInvalidToken}

	// С валидным токеном claims попадают в контекст
	m := NewAuthMiddleware(customer, nopLogger{})
	rec := doRequest(m.Optional(okHandler(t, true)), "Bearer token")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Без токена запрос проходит как гостевой
	rec = doRequest(m.Optional(okHandler(t, false)), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Невалидный токен на необязательном маршруте не блокирует запрос
	m = NewAuthMiddleware(invalid, nopLogger{})
	rec = doRequest(m.Optional(okHandler(t, false)), "Bearer bad")
	assert.Equal(t, http.StatusOK, rec.Code)
}
