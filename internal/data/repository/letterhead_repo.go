package repository

import (
	"context"
	"errors"
	"fmt"

	"letterhead-service/internal/data/entity"
	"letterhead-service/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const letterheadColumns = `
	id, user_email, company_name_arabic, company_name_english,
	address_en, address_ar, cr_number_en, cr_number_ar, website, email,
	logo_url, primary_color, secondary_color, font_size, footer_font_size,
	title_align, description_align, created_at, updated_at`

type LetterheadRepository interface {
	Create(ctx context.Context, letterhead *entity.Letterhead) error
	FindByID(ctx context.Context, id int64) (*entity.Letterhead, error)
	FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Letterhead, error)
	// UpsertByOwner updates the owner's rows (keeping logo_url when logoURL is nil)
	// or inserts one when none exist. created reports which path ran.
	UpsertByOwner(ctx context.Context, ownerEmail string, fields entity.LetterheadFields, logoURL *string) (letterhead *entity.Letterhead, created bool, err error)
	Delete(ctx context.Context, id int64) error
}

type letterheadRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLetterheadRepository(db database.PgxIface, log *zap.Logger) LetterheadRepository {
	return &letterheadRepository{
		db:  db,
		log: log.With(zap.String("repository", "letterhead")),
	}
}

func scanLetterhead(row pgx.Row) (*entity.Letterhead, error) {
	var lh entity.Letterhead
	err := row.Scan(
		&lh.ID,
		&lh.UserEmail,
		&lh.CompanyNameArabic,
		&lh.CompanyNameEnglish,
		&lh.AddressEn,
		&lh.AddressAr,
		&lh.CRNumberEn,
		&lh.CRNumberAr,
		&lh.Website,
		&lh.Email,
		&lh.LogoURL,
		&lh.PrimaryColor,
		&lh.SecondaryColor,
		&lh.FontSize,
		&lh.FooterFontSize,
		&lh.TitleAlign,
		&lh.DescriptionAlign,
		&lh.CreatedAt,
		&lh.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lh, nil
}

// Create inserts letterhead and overwrites it with the stored row.
func (r *letterheadRepository) Create(ctx context.Context, letterhead *entity.Letterhead) error {
	query := `
		INSERT INTO letterheads (
			user_email, company_name_arabic, company_name_english,
			address_en, address_ar, cr_number_en, cr_number_ar,
			website, email, logo_url, primary_color, secondary_color,
			font_size, footer_font_size, title_align, description_align
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8,
			$9, $10, $11, $12, $13, $14, $15, $16
		)
		RETURNING` + letterheadColumns

	stored, err := scanLetterhead(r.db.QueryRow(ctx, query,
		letterhead.UserEmail,
		letterhead.CompanyNameArabic,
		letterhead.CompanyNameEnglish,
		letterhead.AddressEn,
		letterhead.AddressAr,
		letterhead.CRNumberEn,
		letterhead.CRNumberAr,
		letterhead.Website,
		letterhead.Email,
		letterhead.LogoURL,
		letterhead.PrimaryColor,
		letterhead.SecondaryColor,
		letterhead.FontSize,
		letterhead.FooterFontSize,
		letterhead.TitleAlign,
		letterhead.DescriptionAlign,
	))
	if err != nil {
		r.log.Error("Failed to create letterhead",
			zap.Error(err),
			zap.Stringp("user_email", letterhead.UserEmail),
		)
		return fmt.Errorf("create letterhead: %w", err)
	}

	*letterhead = *stored
	return nil
}

// FindByID returns nil, nil when the id does not exist.
func (r *letterheadRepository) FindByID(ctx context.Context, id int64) (*entity.Letterhead, error) {
	query := `SELECT` + letterheadColumns + `
		FROM letterheads
		WHERE id = $1
	`

	letterhead, err := scanLetterhead(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find letterhead by ID",
			zap.Error(err),
			zap.Int64("letterhead_id", id),
		)
		return nil, fmt.Errorf("find letterhead by ID %d: %w", id, err)
	}

	return letterhead, nil
}

// FindByOwner lists the owner's letterheads, newest first.
func (r *letterheadRepository) FindByOwner(ctx context.Context, ownerEmail string) ([]*entity.Letterhead, error) {
	query := `SELECT` + letterheadColumns + `
		FROM letterheads
		WHERE user_email = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, ownerEmail)
	if err != nil {
		r.log.Error("Failed to find letterheads by owner",
			zap.Error(err),
			zap.String("user_email", ownerEmail),
		)
		return nil, fmt.Errorf("find letterheads by owner %s: %w", ownerEmail, err)
	}
	defer rows.Close()

	letterheads := make([]*entity.Letterhead, 0)
	for rows.Next() {
		letterhead, err := scanLetterhead(rows)
		if err != nil {
			r.log.Error("Failed to scan letterhead row", zap.Error(err))
			return nil, fmt.Errorf("scan letterhead row: %w", err)
		}
		letterheads = append(letterheads, letterhead)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate letterhead rows: %w", err)
	}

	return letterheads, nil
}

// UpsertByOwner runs update-then-insert in one transaction holding an advisory
// lock on the owner email, so concurrent calls for one owner cannot both insert.
func (r *letterheadRepository) UpsertByOwner(
	ctx context.Context,
	ownerEmail string,
	fields entity.LetterheadFields,
	logoURL *string,
) (*entity.Letterhead, bool, error) {
	letterhead, created, err := r.upsertInTx(ctx, ownerEmail, fields, logoURL)
	if err != nil {
		r.log.Error("Failed to upsert letterhead",
			zap.Error(err),
			zap.String("user_email", ownerEmail),
		)
		return nil, false, fmt.Errorf("upsert letterhead for %s: %w", ownerEmail, err)
	}

	return letterhead, created, nil
}

func (r *letterheadRepository) upsertInTx(
	ctx context.Context,
	ownerEmail string,
	fields entity.LetterheadFields,
	logoURL *string,
) (letterhead *entity.Letterhead, created bool, err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			r.log.Warn("Rollback failed", zap.Error(rbErr))
		}
	}()

	if _, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, ownerEmail); err != nil {
		return nil, false, fmt.Errorf("lock owner: %w", err)
	}

	updateQuery := `
		UPDATE letterheads SET
			company_name_arabic = $1,
			company_name_english = $2,
			address_en = $3,
			address_ar = $4,
			cr_number_en = $5,
			cr_number_ar = $6,
			website = $7,
			logo_url = COALESCE($8, logo_url),
			primary_color = $9,
			secondary_color = $10,
			font_size = $11,
			footer_font_size = $12,
			title_align = $13,
			description_align = $14,
			updated_at = CURRENT_TIMESTAMP
		WHERE user_email = $15
		RETURNING` + letterheadColumns

	updated, err := scanLetterhead(tx.QueryRow(ctx, updateQuery,
		fields.CompanyNameArabic,
		fields.CompanyNameEnglish,
		fields.AddressEn,
		fields.AddressAr,
		fields.CRNumberEn,
		fields.CRNumberAr,
		fields.Website,
		logoURL,
		fields.PrimaryColor,
		fields.SecondaryColor,
		fields.FontSize,
		fields.FooterFontSize,
		fields.TitleAlign,
		fields.DescriptionAlign,
		ownerEmail,
	))
	if err == nil {
		return updated, false, r.commit(ctx, tx)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("update letterhead: %w", err)
	}

	insertQuery := `
		INSERT INTO letterheads (
			user_email, company_name_arabic, company_name_english,
			address_en, address_ar, cr_number_en, cr_number_ar,
			website, logo_url, primary_color, secondary_color,
			font_size, footer_font_size, title_align, description_align,
			created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP
		)
		RETURNING` + letterheadColumns

	inserted, err := scanLetterhead(tx.QueryRow(ctx, insertQuery,
		ownerEmail,
		fields.CompanyNameArabic,
		fields.CompanyNameEnglish,
		fields.AddressEn,
		fields.AddressAr,
		fields.CRNumberEn,
		fields.CRNumberAr,
		fields.Website,
		logoURL,
		fields.PrimaryColor,
		fields.SecondaryColor,
		fields.FontSize,
		fields.FooterFontSize,
		fields.TitleAlign,
		fields.DescriptionAlign,
	))
	if err != nil {
		return nil, false, fmt.Errorf("insert letterhead: %w", err)
	}

	return inserted, true, r.commit(ctx, tx)
}

func (r *letterheadRepository) commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// Delete removes the row if present; a missing id is not an error.
func (r *letterheadRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM letterheads WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete letterhead",
			zap.Error(err),
			zap.Int64("letterhead_id", id),
		)
		return fmt.Errorf("delete letterhead %d: %w", id, err)
	}

	r.log.Info("Letterhead deleted",
		zap.Int64("letterhead_id", id),
		zap.Int64("rows_affected", result.RowsAffected()),
	)
	return nil
}
