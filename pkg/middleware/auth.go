package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/adtracker-api/internal/domain"
	"github.com/vfg2006/adtracker-api/internal/usecases/authenticating"
	"github.com/vfg2006/adtracker-api/pkg/apiErrors"
)

type contextKey string

const (
	// ContextKeyMember guarda os claims do membro autenticado na requisição
	ContextKeyMember contextKey = "member"
)

// publicPaths não exigem token
var publicPaths = map[string]bool{
	"/v1/login":    true,
	"/healthcheck": true,
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Cabeçalho Authorization é obrigatório", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token Bearer é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido ou expirado", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyMember, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// MemberFromContext recupera os claims do membro autenticado, se houver
func MemberFromContext(ctx context.Context) *domain.Claims {
	claims, _ := ctx.Value(ContextKeyMember).(*domain.Claims)
	return claims
}
