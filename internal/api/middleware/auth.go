package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-FrontDeskService/internal/api/handlers"
	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
)

const (
	msgMissingToken = "token de sessão ausente"
	msgInvalidToken = "sessão inválida ou expirada"
)

type contextKey string

const (
	sessionKey contextKey = "session"
	tokenKey   contextKey = "token"
)

// SessionVerifier проверяет сессионный токен
type SessionVerifier interface {
	Authenticate(ctx context.Context, token string) (*domain.UserSession, error)
}

// Auth требует заголовок Authorization: Bearer <token> и кладёт сессию в контекст
func Auth(verifier SessionVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := BearerToken(r)
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			session, err := verifier.Authenticate(r.Context(), token)
			if err != nil {
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session, token)))
		})
	}
}

// BearerToken извлекает токен из заголовка Authorization
func BearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// GetSession возвращает сессию текущего пользователя
func GetSession(ctx context.Context) (*domain.UserSession, bool) {
	session, ok := ctx.Value(sessionKey).(*domain.UserSession)
	return session, ok && session != nil
}

// GetUserID возвращает ID текущего пользователя
func GetUserID(ctx context.Context) (string, bool) {
	session, ok := GetSession(ctx)
	if !ok {
		return "", false
	}
	return session.UserID, true
}

// GetToken возвращает токен текущего запроса
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// WithSession кладёт сессию и токен в контекст
func WithSession(ctx context.Context, session *domain.UserSession, token string) context.Context {
	ctx = context.WithValue(ctx, sessionKey, session)
	return context.WithValue(ctx, tokenKey, token)
}
