package response

import (
	"time"

	"letterhead-service/internal/data/entity"
)

// LetterheadResponse mirrors the letterheads row, column for column.
type LetterheadResponse struct {
	ID                 int64     `json:"id"`
	UserEmail          *string   `json:"user_email"`
	CompanyNameArabic  *string   `json:"company_name_arabic"`
	CompanyNameEnglish *string   `json:"company_name_english"`
	AddressEn          *string   `json:"address_en"`
	AddressAr          *string   `json:"address_ar"`
	CRNumberEn         *string   `json:"cr_number_en"`
	CRNumberAr         *string   `json:"cr_number_ar"`
	Website            *string   `json:"website"`
	Email              *string   `json:"email"`
	LogoURL            *string   `json:"logo_url"`
	PrimaryColor       *string   `json:"primary_color"`
	SecondaryColor     *string   `json:"secondary_color"`
	FontSize           *string   `json:"font_size"`
	FooterFontSize     *string   `json:"footer_font_size"`
	TitleAlign         *string   `json:"title_align"`
	DescriptionAlign   *string   `json:"description_align"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func LetterheadToResponse(lh *entity.Letterhead) LetterheadResponse {
	return LetterheadResponse{
		ID:                 lh.ID,
		UserEmail:          lh.UserEmail,
		CompanyNameArabic:  lh.CompanyNameArabic,
		CompanyNameEnglish: lh.CompanyNameEnglish,
		AddressEn:          lh.AddressEn,
		AddressAr:          lh.AddressAr,
		CRNumberEn:         lh.CRNumberEn,
		CRNumberAr:         lh.CRNumberAr,
		Website:            lh.Website,
		Email:              lh.Email,
		LogoURL:            lh.LogoURL,
		PrimaryColor:       lh.PrimaryColor,
		SecondaryColor:     lh.SecondaryColor,
		FontSize:           lh.FontSize,
		FooterFontSize:     lh.FooterFontSize,
		TitleAlign:         lh.TitleAlign,
		DescriptionAlign:   lh.DescriptionAlign,
		CreatedAt:          lh.CreatedAt,
		UpdatedAt:          lh.UpdatedAt,
	}
}

// LetterheadsToResponse never returns nil, so an empty list encodes as [].
func LetterheadsToResponse(list []*entity.Letterhead) []LetterheadResponse {
	out := make([]LetterheadResponse, 0, len(list))
	for _, lh := range list {
		out = append(out, LetterheadToResponse(lh))
	}
	return out
}
