package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id           SERIAL PRIMARY KEY,
		name         TEXT,
		email        TEXT NOT NULL UNIQUE,
		password     TEXT NOT NULL,
		mobile       TEXT,
		company_name TEXT,
		address      TEXT,
		status       INTEGER NOT NULL DEFAULT 1,
		created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS letterheads (
		id                   SERIAL PRIMARY KEY,
		user_email           TEXT,
		company_name_arabic  TEXT,
		company_name_english TEXT,
		address_en           TEXT,
		address_ar           TEXT,
		cr_number_en         TEXT,
		cr_number_ar         TEXT,
		website              TEXT,
		email                TEXT,
		logo_url             TEXT,
		primary_color        TEXT,
		secondary_color      TEXT,
		font_size            TEXT,
		footer_font_size     TEXT,
		title_align          TEXT,
		description_align    TEXT,
		created_at           TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at           TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_letterheads_user_email ON letterheads (user_email)`,
}

// Migrate creates the tables the service reads and writes if they are missing.
func Migrate(ctx context.Context, db PgxIface) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}
	return nil
}
