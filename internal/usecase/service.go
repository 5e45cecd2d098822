package usecase

import (
	"letterhead-service/internal/data/repository"
	"letterhead-service/pkg/storage"
	"letterhead-service/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Letterhead LetterheadService
}

func NewService(
	repo *repository.Repository,
	tokens utils.TokenIssuer,
	files storage.FileStorage,
	log *zap.Logger,
) *Service {
	return &Service{
		Auth:       NewAuthService(repo.User, tokens, log),
		Letterhead: NewLetterheadService(repo.Letterhead, files, log),
	}
}
