package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/dcommercial-report-api/internal/domain"
	"github.com/vfg2006/dcommercial-report-api/internal/usecases/authenticating"
	"github.com/vfg2006/dcommercial-report-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeySession guarda as claims da sessão autenticada no contexto.
	ContextKeySession contextKey = "session"
)

// SessionFromContext extrai a sessão do back-office injetada pelo
// AuthMiddleware.
func SessionFromContext(ctx context.Context) (domain.Session, bool) {
	claims, ok := ctx.Value(ContextKeySession).(*domain.Claims)
	if !ok {
		return domain.Session{}, false
	}
	return claims.Session(), true
}

// AuthMiddleware valida o JWT emitido no login e injeta a sessão do
// back-office no contexto da requisição. Login e healthcheck ficam fora.
func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/v1/login" || r.URL.Path == "/healthcheck" {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				if err == authenticating.ErrExpiredToken {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Token expirado, faça login novamente", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
