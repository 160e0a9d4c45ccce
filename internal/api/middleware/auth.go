package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/BarberBookingService/internal/api/handlers"
	"github.com/m04kA/BarberBookingService/internal/service/auth"
)

const (
	msgMissingToken = "требуется токен авторизации"
	msgInvalidToken = "невалидный или просроченный токен"
	msgAdminOnly    = "операция доступна только администратору"
)

// TokenParser интерфейс проверки JWT токенов
type TokenParser interface {
	ParseToken(token string) (*auth.Claims, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

type claimsContextKey struct{}

// AuthMiddleware проверяет Bearer токены и кладет claims в контекст запроса
type AuthMiddleware struct {
	parser TokenParser
	logger Logger
}

// NewAuthMiddleware создает новый экземпляр middleware авторизации
func NewAuthMiddleware(parser TokenParser, logger Logger) *AuthMiddleware {
	return &AuthMiddleware{
		parser: parser,
		logger: logger,
	}
}

// RequireCustomer пропускает только запросы с валидным клиентским токеном
func (m *AuthMiddleware) RequireCustomer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.parse(w, r)
		if !ok {
			return
		}

		if claims.Role != auth.RoleCustomer {
			m.logger.Warn("%s %s - non-customer token role=%s", r.Method, r.URL.Path, claims.Role)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// RequireAdmin пропускает только запросы с валидным токеном администратора
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := m.parse(w, r)
		if !ok {
			return
		}

		if claims.Role != auth.RoleAdmin {
			m.logger.Warn("%s %s - non-admin token role=%s", r.Method, r.URL.Path, claims.Role)
			handlers.RespondForbidden(w, msgAdminOnly)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

// Optional прикладывает claims, если валидный токен передан, но не требует его
// Используется для гостевых бронирований
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		claims, err := m.parser.ParseToken(token)
		if err != nil {
			// Невалидный токен на необязательном маршруте игнорируем
			m.logger.Warn("%s %s - ignoring invalid optional token: %v", r.Method, r.URL.Path, err)
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(withClaims(r.Context(), claims)))
	})
}

func (m *AuthMiddleware) parse(w http.ResponseWriter, r *http.Request) (*auth.Claims, bool) {
	token, ok := bearerToken(r)
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingToken)
		return nil, false
	}

	claims, err := m.parser.ParseToken(token)
	if err != nil {
		m.logger.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
		handlers.RespondUnauthorized(w, msgInvalidToken)
		return nil, false
	}

	return claims, true
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}

	return parts[1], true
}

func withClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsContextKey{}, claims)
}

// ClaimsFromContext извлекает claims токена из контекста запроса
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsContextKey{}).(*auth.Claims)
	return claims, ok
}
