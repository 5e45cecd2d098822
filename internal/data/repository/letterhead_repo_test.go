package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"letterhead-service/internal/data/entity"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"go.uber.org/zap"
)

var (
	lockSQL   = regexp.QuoteMeta(`SELECT pg_advisory_xact_lock(hashtext($1))`)
	updateSQL = `UPDATE letterheads SET`
	insertSQL = `INSERT INTO letterheads`

	columnNames = []string{
		"id", "user_email", "company_name_arabic", "company_name_english",
		"address_en", "address_ar", "cr_number_en", "cr_number_ar", "website", "email",
		"logo_url", "primary_color", "secondary_color", "font_size", "footer_font_size",
		"title_align", "description_align", "created_at", "updated_at",
	}
	storedAt = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
)

func sp(s string) *string { return &s }

func newMockPool(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func assertExpectations(t *testing.T, mock pgxmock.PgxPoolIface) {
	t.Helper()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func sampleFields() entity.LetterheadFields {
	return entity.LetterheadFields{
		CompanyNameArabic:  sp("شركة"),
		CompanyNameEnglish: sp("Acme"),
		CRNumberEn:         sp("1010123456"),
		PrimaryColor:       sp("#112233"),
		TitleAlign:         sp("center"),
	}
}

// letterheadRow returns a stored row for owner with the fields above.
func letterheadRow(mock pgxmock.PgxPoolIface, id int64, owner string, logo any) *pgxmock.Rows {
	f := sampleFields()
	return mock.NewRows(columnNames).AddRow(
		id, sp(owner), f.CompanyNameArabic, f.CompanyNameEnglish,
		nil, nil, f.CRNumberEn, nil, nil, nil,
		logo, f.PrimaryColor, nil, nil, nil,
		f.TitleAlign, nil, storedAt, storedAt,
	)
}

func anyArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}

// updateArgs is the UPDATE argument order: seven fields, logo, six fields, owner.
func updateArgs(f entity.LetterheadFields, logo *string, owner string) []any {
	return []any{
		f.CompanyNameArabic, f.CompanyNameEnglish, f.AddressEn, f.AddressAr,
		f.CRNumberEn, f.CRNumberAr, f.Website,
		logo,
		f.PrimaryColor, f.SecondaryColor, f.FontSize, f.FooterFontSize,
		f.TitleAlign, f.DescriptionAlign,
		owner,
	}
}

// insertArgs is the INSERT argument order: owner, seven fields, logo, six fields.
func insertArgs(f entity.LetterheadFields, logo *string, owner string) []any {
	return []any{
		owner,
		f.CompanyNameArabic, f.CompanyNameEnglish, f.AddressEn, f.AddressAr,
		f.CRNumberEn, f.CRNumberAr, f.Website,
		logo,
		f.PrimaryColor, f.SecondaryColor, f.FontSize, f.FooterFontSize,
		f.TitleAlign, f.DescriptionAlign,
	}
}

// =============================================================================
// UpsertByOwner
// =============================================================================

func TestLetterheadRepository_UpsertByOwner_UpdatesExisting(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLetterheadRepository(mock, zap.NewNop())
	owner := "owner@example.com"
	logo := sp("http://localhost:8080/uploads/1700000000000-logo.png")

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs(owner).WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(updateSQL).
		WithArgs(updateArgs(sampleFields(), logo, owner)...).
		WillReturnRows(letterheadRow(mock, 7, owner, logo))
	mock.ExpectCommit()

	lh, created, err := repo.UpsertByOwner(context.Background(), owner, sampleFields(), logo)
	if err != nil {
		t.Fatalf("UpsertByOwner: %v", err)
	}
	if created {
		t.Error("created = true, want false on the update path")
	}
	if lh.ID != 7 {
		t.Errorf("ID = %d, want 7", lh.ID)
	}
	if lh.LogoURL == nil || *lh.LogoURL != *logo {
		t.Errorf("LogoURL = %v, want %s", lh.LogoURL, *logo)
	}
	if lh.CRNumberEn == nil || *lh.CRNumberEn != "1010123456" {
		t.Errorf("CRNumberEn = %v", lh.CRNumberEn)
	}
	assertExpectations(t, mock)
}

func TestLetterheadRepository_UpsertByOwner_InsertsWhenMissing(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLetterheadRepository(mock, zap.NewNop())
	owner := "new@example.com"

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs(owner).WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(updateSQL).
		WithArgs(updateArgs(sampleFields(), nil, owner)...).
		WillReturnRows(mock.NewRows(columnNames))
	mock.ExpectQuery(insertSQL).
		WithArgs(insertArgs(sampleFields(), nil, owner)...).
		WillReturnRows(letterheadRow(mock, 8, owner, nil))
	mock.ExpectCommit()

	lh, created, err := repo.UpsertByOwner(context.Background(), owner, sampleFields(), nil)
	if err != nil {
		t.Fatalf("UpsertByOwner: %v", err)
	}
	if !created {
		t.Error("created = false, want true on the insert path")
	}
	if lh.ID != 8 {
		t.Errorf("ID = %d, want 8", lh.ID)
	}
	if lh.UserEmail == nil || *lh.UserEmail != owner {
		t.Errorf("UserEmail = %v, want %s", lh.UserEmail, owner)
	}
	if lh.LogoURL != nil {
		t.Errorf("LogoURL = %q, want nil", *lh.LogoURL)
	}
	assertExpectations(t, mock)
}

func TestLetterheadRepository_UpsertByOwner_NilLogoBoundAsNull(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLetterheadRepository(mock, zap.NewNop())
	owner := "owner@example.com"
	kept := sp("http://localhost:8080/uploads/old.png")

	// A typed nil *string is sent to pgx as NULL, so COALESCE keeps the stored logo.
	args := updateArgs(sampleFields(), nil, owner)
	args[7] = (*string)(nil)

	mock.ExpectBegin()
	mock.ExpectExec(lockSQL).WithArgs(owner).WillReturnResult(pgxmock.NewResult("SELECT", 1))
	mock.ExpectQuery(regexp.QuoteMeta(`logo_url = COALESCE($8, logo_url)`)).
		WithArgs(args...).
		WillReturnRows(letterheadRow(mock, 7, owner, kept))
	mock.ExpectCommit()

	lh, created, err := repo.UpsertByOwner(context.Background(), owner, sampleFields(), nil)
	if err != nil {
		t.Fatalf("UpsertByOwner: %v", err)
	}
	if created {
		t.Error("created = true, want false")
	}
	if lh.LogoURL == nil || *lh.LogoURL != *kept {
		t.Errorf("LogoURL = %v, want stored %s", lh.LogoURL, *kept)
	}
	assertExpectations(t, mock)
}

func TestLetterheadRepository_UpsertByOwner_RollsBackOnError(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name   string
		expect func(mock pgxmock.PgxPoolIface, owner string)
	}{
		{
			name: "lock fails",
			expect: func(mock pgxmock.PgxPoolIface, owner string) {
				mock.ExpectExec(lockSQL).WithArgs(owner).WillReturnError(boom)
			},
		},
		{
			name: "update fails",
			expect: func(mock pgxmock.PgxPoolIface, owner string) {
				mock.ExpectExec(lockSQL).WithArgs(owner).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(updateSQL).WithArgs(anyArgs(15)...).WillReturnError(boom)
			},
		},
		{
			name: "insert fails",
			expect: func(mock pgxmock.PgxPoolIface, owner string) {
				mock.ExpectExec(lockSQL).WithArgs(owner).WillReturnResult(pgxmock.NewResult("SELECT", 1))
				mock.ExpectQuery(updateSQL).WithArgs(anyArgs(15)...).WillReturnRows(mock.NewRows(columnNames))
				mock.ExpectQuery(insertSQL).WithArgs(anyArgs(15)...).WillReturnError(boom)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := newMockPool(t)
			repo := NewLetterheadRepository(mock, zap.NewNop())
			owner := "owner@example.com"

			mock.ExpectBegin()
			tt.expect(mock, owner)
			mock.ExpectRollback()

			lh, created, err := repo.UpsertByOwner(context.Background(), owner, sampleFields(), nil)
			if !errors.Is(err, boom) {
				t.Fatalf("err = %v, want wrapped %v", err, boom)
			}
			if lh != nil || created {
				t.Errorf("got (%v, %v), want (nil, false)", lh, created)
			}
			assertExpectations(t, mock)
		})
	}
}

func TestLetterheadRepository_UpsertByOwner_BeginFails(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLetterheadRepository(mock, zap.NewNop())
	boom := errors.New("pool closed")

	mock.ExpectBegin().WillReturnError(boom)

	if _, _, err := repo.UpsertByOwner(context.Background(), "owner@example.com", sampleFields(), nil); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped %v", err, boom)
	}
	assertExpectations(t, mock)
}

// =============================================================================
// Create / FindByID / FindByOwner / Delete
// =============================================================================

func TestLetterheadRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLetterheadRepository(mock, zap.NewNop())
	owner := "owner@example.com"
	f := sampleFields()

	mock.ExpectQuery(insertSQL).
		WithArgs(
			sp(owner), f.CompanyNameArabic, f.CompanyNameEnglish, f.AddressEn, f.AddressAr,
			f.CRNumberEn, f.CRNumberAr, f.Website, (*string)(nil), (*string)(nil),
			f.PrimaryColor, f.SecondaryColor, f.FontSize, f.FooterFontSize,
			f.TitleAlign, f.DescriptionAlign,
		).
		WillReturnRows(letterheadRow(mock, 3, owner, nil))

	lh := &entity.Letterhead{UserEmail: sp(owner), LetterheadFields: f}
	if err := repo.Create(context.Background(), lh); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if lh.ID != 3 {
		t.Errorf("ID = %d, want 3", lh.ID)
	}
	if !lh.CreatedAt.Equal(storedAt) {
		t.Errorf("CreatedAt = %v, want %v", lh.CreatedAt, storedAt)
	}
	assertExpectations(t, mock)
}

func TestLetterheadRepository_FindByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewLetterheadRepository(mock, zap.NewNop())

		mock.ExpectQuery(`FROM letterheads WHERE id = \$1`).
			WithArgs(int64(7)).
			WillReturnRows(letterheadRow(mock, 7, "owner@example.com", nil))

		lh, err := repo.FindByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if lh == nil || lh.ID != 7 {
			t.Fatalf("got %+v, want id 7", lh)
		}
		assertExpectations(t, mock)
	})

	t.Run("not found", func(t *testing.T) {
		mock := newMockPool(t)
		repo := NewLetterheadRepository(mock, zap.NewNop())

		mock.ExpectQuery(`FROM letterheads WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnError(pgx.ErrNoRows)

		lh, err := repo.FindByID(context.Background(), 99)
		if err != nil || lh != nil {
			t.Fatalf("got (%v, %v), want (nil, nil)", lh, err)
		}
		assertExpectations(t, mock)
	})
}

func TestLetterheadRepository_FindByOwner(t *testing.T) {
	mock := newMockPool(t)
	repo := NewLetterheadRepository(mock, zap.NewNop())
	owner := "owner@example.com"

	rows := letterheadRow(mock, 2, owner, nil)
	f := sampleFields()
	rows.AddRow(
		int64(1), sp(owner), f.CompanyNameArabic, f.CompanyNameEnglish,
		nil, nil, nil, nil, nil, nil,
		nil, nil, nil, nil, nil,
		nil, nil, storedAt, storedAt,
	)
	mock.ExpectQuery(`ORDER BY created_at DESC`).WithArgs(owner).WillReturnRows(rows)

	list, err := repo.FindByOwner(context.Background(), owner)
	if err != nil {
		t.Fatalf("FindByOwner: %v", err)
	}
	if len(list) != 2 || list[0].ID != 2 || list[1].ID != 1 {
		t.Fatalf("got %d rows, want ids [2 1]", len(list))
	}
	assertExpectations(t, mock)
}

func TestLetterheadRepository_Delete(t *testing.T) {
	for _, affected := range []int64{1, 0} {
		mock := newMockPool(t)
		repo := NewLetterheadRepository(mock, zap.NewNop())

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM letterheads WHERE id = $1`)).
			WithArgs(int64(5)).
			WillReturnResult(pgxmock.NewResult("DELETE", affected))

		if err := repo.Delete(context.Background(), 5); err != nil {
			t.Errorf("Delete with %d affected rows: %v", affected, err)
		}
		assertExpectations(t, mock)
	}
}
