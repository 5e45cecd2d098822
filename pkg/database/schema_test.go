package database

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
)

func TestMigrate(t *testing.T) {
	t.Run("applies every statement in order", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool: %v", err)
		}
		defer mock.Close()

		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS letterheads`).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
		mock.ExpectExec(`CREATE INDEX IF NOT EXISTS idx_letterheads_user_email`).WillReturnResult(pgxmock.NewResult("CREATE INDEX", 0))

		if err := Migrate(context.Background(), mock); err != nil {
			t.Fatalf("Migrate: %v", err)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("stops at the first failure", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatalf("pgxmock.NewPool: %v", err)
		}
		defer mock.Close()

		denied := errors.New("permission denied for schema public")
		mock.ExpectExec(`CREATE TABLE IF NOT EXISTS users`).WillReturnError(denied)

		if err := Migrate(context.Background(), mock); !errors.Is(err, denied) {
			t.Fatalf("err = %v, want wrapped %v", err, denied)
		}
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})
}
