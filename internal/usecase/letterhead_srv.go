package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/url"
	"strings"
	"time"

	"letterhead-service/internal/data/entity"
	"letterhead-service/internal/data/repository"
	"letterhead-service/internal/dto/request"
	"letterhead-service/internal/dto/response"
	"letterhead-service/pkg/storage"
	"letterhead-service/pkg/utils"

	"go.uber.org/zap"
)

// UploadsPath is the URL prefix uploaded logos are served under.
const UploadsPath = "/uploads/"

// logoNameRetries bounds how often a colliding logo name is re-drawn.
const logoNameRetries = 3

// LogoUpload is a logo file received with an upsert.
type LogoUpload struct {
	Filename string
	Content  io.Reader
	// BaseURL is scheme://host of the incoming request.
	BaseURL string
}

type LetterheadService interface {
	Create(ctx context.Context, req *request.CreateLetterheadRequest) (*response.LetterheadResponse, error)
	ListByOwner(ctx context.Context, ownerEmail string) ([]response.LetterheadResponse, error)
	GetByID(ctx context.Context, id int64) (*response.LetterheadResponse, error)
	UpsertByOwner(ctx context.Context, ownerEmail string, req *request.UpsertLetterheadRequest, logo *LogoUpload) (*response.LetterheadResponse, bool, error)
	Delete(ctx context.Context, id int64) error
}

type letterheadService struct {
	letterheads repository.LetterheadRepository
	files       storage.FileStorage
	log         *zap.Logger
	now         func() time.Time
}

func NewLetterheadService(
	letterheads repository.LetterheadRepository,
	files storage.FileStorage,
	log *zap.Logger,
) LetterheadService {
	return &letterheadService{
		letterheads: letterheads,
		files:       files,
		log:         log.With(zap.String("service", "letterhead")),
		now:         time.Now,
	}
}

// Create always inserts; an owner may end up with several rows this way.
func (s *letterheadService) Create(ctx context.Context, req *request.CreateLetterheadRequest) (*response.LetterheadResponse, error) {
	letterhead := &entity.Letterhead{
		UserEmail: req.UserEmail.Ptr(),
		Email:     req.Email.Ptr(),
		LogoURL:   req.LogoURL.Ptr(),
		LetterheadFields: entity.LetterheadFields{
			CompanyNameArabic:  req.CompanyNameArabic.Ptr(),
			CompanyNameEnglish: req.CompanyNameEnglish.Ptr(),
			AddressEn:          req.Address.Ptr(),
			AddressAr:          req.AddressAr.Ptr(),
			CRNumberEn:         req.CRNumber.Ptr(),
			CRNumberAr:         req.CRNumberArabic.Ptr(),
			Website:            req.Website.Ptr(),
			PrimaryColor:       req.PrimaryColor.Ptr(),
			SecondaryColor:     req.SecondaryColor.Ptr(),
			FontSize:           req.FontSize.Ptr(),
			FooterFontSize:     req.FooterFontSize.Ptr(),
			TitleAlign:         req.TitleAlign.Ptr(),
			DescriptionAlign:   req.DescriptionAlign.Ptr(),
		},
	}

	if err := s.letterheads.Create(ctx, letterhead); err != nil {
		return nil, fmt.Errorf("create letterhead: %w", err)
	}

	s.log.Info("Letterhead created",
		zap.Int64("letterhead_id", letterhead.ID),
		zap.Stringp("user_email", letterhead.UserEmail))

	resp := response.LetterheadToResponse(letterhead)
	return &resp, nil
}

func (s *letterheadService) ListByOwner(ctx context.Context, ownerEmail string) ([]response.LetterheadResponse, error) {
	letterheads, err := s.letterheads.FindByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("list letterheads: %w", err)
	}
	return response.LetterheadsToResponse(letterheads), nil
}

func (s *letterheadService) GetByID(ctx context.Context, id int64) (*response.LetterheadResponse, error) {
	letterhead, err := s.letterheads.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get letterhead: %w", err)
	}
	if letterhead == nil {
		return nil, ErrLetterheadNotFound
	}

	resp := response.LetterheadToResponse(letterhead)
	return &resp, nil
}

// UpsertByOwner stores the logo first (if any) so its URL can be written with
// the row. The bool result is true when a new row was inserted.
func (s *letterheadService) UpsertByOwner(
	ctx context.Context,
	ownerEmail string,
	req *request.UpsertLetterheadRequest,
	logo *LogoUpload,
) (*response.LetterheadResponse, bool, error) {
	var logoURL *string
	if logo != nil {
		stored, err := s.storeLogo(ctx, logo)
		if err != nil {
			return nil, false, err
		}
		logoURL = &stored
	}

	fields := entity.LetterheadFields{
		CompanyNameArabic:  req.CompanyNameArabic.Ptr(),
		CompanyNameEnglish: req.CompanyNameEnglish.Ptr(),
		AddressEn:          req.AddressEn.Ptr(),
		AddressAr:          req.AddressAr.Ptr(),
		CRNumberEn:         req.CRNumberEn.Ptr(),
		CRNumberAr:         req.CRNumberAr.Ptr(),
		Website:            req.Website.Ptr(),
		PrimaryColor:       req.PrimaryColor.Ptr(),
		SecondaryColor:     req.SecondaryColor.Ptr(),
		FontSize:           req.FontSize.Ptr(),
		FooterFontSize:     req.FooterFontSize.Ptr(),
		TitleAlign:         req.TitleAlign.Ptr(),
		DescriptionAlign:   req.DescriptionAlign.Ptr(),
	}

	letterhead, created, err := s.letterheads.UpsertByOwner(ctx, ownerEmail, fields, logoURL)
	if err != nil {
		return nil, false, fmt.Errorf("save letterhead: %w", err)
	}

	s.log.Info("Letterhead saved",
		zap.Int64("letterhead_id", letterhead.ID),
		zap.String("user_email", ownerEmail),
		zap.Bool("created", created),
		zap.Bool("logo_replaced", logoURL != nil))

	resp := response.LetterheadToResponse(letterhead)
	return &resp, created, nil
}

func (s *letterheadService) Delete(ctx context.Context, id int64) error {
	if err := s.letterheads.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete letterhead: %w", err)
	}
	return nil
}

// storeLogo saves the upload under a timestamped name, adding a random suffix
// when another upload already took that name.
func (s *letterheadService) storeLogo(ctx context.Context, logo *LogoUpload) (string, error) {
	name := utils.GenerateUploadName(logo.Filename, s.now())

	err := s.files.Save(ctx, name, logo.Content)
	for attempt := 1; errors.Is(err, fs.ErrExist) && attempt <= logoNameRetries; attempt++ {
		s.log.Debug("Logo name taken, retrying", zap.String("file", name), zap.Int("attempt", attempt))
		name = utils.WithUniqueSuffix(utils.GenerateUploadName(logo.Filename, s.now()))
		err = s.files.Save(ctx, name, logo.Content)
	}
	if err != nil {
		return "", fmt.Errorf("store logo: %w", err)
	}

	return strings.TrimSuffix(logo.BaseURL, "/") + UploadsPath + url.PathEscape(name), nil
}
