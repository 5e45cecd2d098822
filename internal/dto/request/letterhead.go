package request

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/url"
)

// FlexString accepts a JSON string or a bare scalar such as 14 or true.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*s = FlexString(v)
		return nil
	}
	if len(data) == 0 || data[0] == '{' || data[0] == '[' {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = FlexString(data)
	return nil
}

// Ptr returns the value as *string, nil for a nil receiver.
func (s *FlexString) Ptr() *string {
	if s == nil {
		return nil
	}
	v := string(*s)
	return &v
}

// CreateLetterheadRequest is the POST /api/letterheads body. Every field is a
// FlexString so numeric values such as CR numbers are stored as their text.
type CreateLetterheadRequest struct {
	UserEmail          *FlexString `json:"user_email"`
	CompanyNameArabic  *FlexString `json:"companyNameArabic"`
	CompanyNameEnglish *FlexString `json:"companyNameEnglish"`
	Address            *FlexString `json:"address"`
	AddressAr          *FlexString `json:"addressAr"`
	CRNumber           *FlexString `json:"crNumber"`
	CRNumberArabic     *FlexString `json:"crNumberArabic"`
	Website            *FlexString `json:"website"`
	Email              *FlexString `json:"email"`
	LogoURL            *FlexString `json:"logoUrl"`
	PrimaryColor       *FlexString `json:"primaryColor"`
	SecondaryColor     *FlexString `json:"secondaryColor"`
	FontSize           *FlexString `json:"fontSize"`
	FooterFontSize     *FlexString `json:"footerFontSize"`
	TitleAlign         *FlexString `json:"titleAlign"`
	DescriptionAlign   *FlexString `json:"descriptionAlign"`
}

// UpsertLetterheadRequest is the PUT /api/letterheads/email/{email} body,
// sent either as JSON or as multipart form fields with the same names.
type UpsertLetterheadRequest struct {
	CompanyNameArabic  *FlexString `json:"company_name_arabic"`
	CompanyNameEnglish *FlexString `json:"company_name_english"`
	AddressEn          *FlexString `json:"address_en"`
	AddressAr          *FlexString `json:"address_ar"`
	CRNumberEn         *FlexString `json:"cr_number_en"`
	CRNumberAr         *FlexString `json:"cr_number_ar"`
	Website            *FlexString `json:"website"`
	PrimaryColor       *FlexString `json:"primary_color"`
	SecondaryColor     *FlexString `json:"secondary_color"`
	FontSize           *FlexString `json:"font_size"`
	FooterFontSize     *FlexString `json:"footer_font_size"`
	TitleAlign         *FlexString `json:"title_align"`
	DescriptionAlign   *FlexString `json:"description_align"`
}

// UpsertLetterheadFromForm reads multipart fields. Absent fields stay nil.
func UpsertLetterheadFromForm(values url.Values) UpsertLetterheadRequest {
	field := func(key string) *FlexString {
		v, ok := values[key]
		if !ok || len(v) == 0 {
			return nil
		}
		f := FlexString(v[0])
		return &f
	}

	return UpsertLetterheadRequest{
		CompanyNameArabic:  field("company_name_arabic"),
		CompanyNameEnglish: field("company_name_english"),
		AddressEn:          field("address_en"),
		AddressAr:          field("address_ar"),
		CRNumberEn:         field("cr_number_en"),
		CRNumberAr:         field("cr_number_ar"),
		Website:            field("website"),
		PrimaryColor:       field("primary_color"),
		SecondaryColor:     field("secondary_color"),
		FontSize:           field("font_size"),
		FooterFontSize:     field("footer_font_size"),
		TitleAlign:         field("title_align"),
		DescriptionAlign:   field("description_align"),
	}
}
