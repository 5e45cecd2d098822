package repository

import (
	"letterhead-service/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Letterhead LetterheadRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Letterhead: NewLetterheadRepository(db, log),
	}
}
