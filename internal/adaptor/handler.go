package adaptor

import (
	"letterhead-service/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Letterhead *LetterheadHandler
}

func NewHandler(service *usecase.Service, maxUploadBytes int64, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Letterhead: NewLetterheadHandler(service.Letterhead, maxUploadBytes, log),
	}
}
