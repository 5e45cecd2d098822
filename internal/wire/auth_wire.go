package wire

import (
	"letterhead-service/internal/adaptor"
	"letterhead-service/pkg/middleware"
	"letterhead-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	tokens utils.TokenVerifier,
	log *zap.Logger,
) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		// bearer token required
		r.With(middleware.AuthToken(tokens, log)).Get("/verify-token", authHandler.VerifyToken)
	})
}
