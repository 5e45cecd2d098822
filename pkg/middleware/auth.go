package middleware

import (
	"net/http"
	"strings"

	"letterhead-service/pkg/utils"

	"go.uber.org/zap"
)

// AuthToken verifies the token in "Authorization: Bearer <token>" and stores
// its claims on the request context. The scheme word itself is not checked:
// the token is the second space-separated segment.
func AuthToken(tokens utils.TokenVerifier, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			parts := strings.Split(r.Header.Get("Authorization"), " ")
			if len(parts) < 2 || parts[1] == "" {
				utils.ResponseUnauthorized(w, "No token provided")
				return
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				logger.Warn("Token rejected",
					zap.Error(err),
					zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Token is invalid")
				return
			}

			ctx := utils.SetClaimsContext(r.Context(), claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
