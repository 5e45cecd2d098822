package entity

// LetterheadFields are the columns rewritten by an upsert.
type LetterheadFields struct {
	CompanyNameArabic  *string `db:"company_name_arabic"`
	CompanyNameEnglish *string `db:"company_name_english"`
	AddressEn          *string `db:"address_en"`
	AddressAr          *string `db:"address_ar"`
	CRNumberEn         *string `db:"cr_number_en"`
	CRNumberAr         *string `db:"cr_number_ar"`
	Website            *string `db:"website"`
	PrimaryColor       *string `db:"primary_color"`
	SecondaryColor     *string `db:"secondary_color"`
	FontSize           *string `db:"font_size"`
	FooterFontSize     *string `db:"footer_font_size"`
	TitleAlign         *string `db:"title_align"`
	DescriptionAlign   *string `db:"description_align"`
}

type Letterhead struct {
	Base
	UserEmail *string `db:"user_email"`
	Email     *string `db:"email"`
	LogoURL   *string `db:"logo_url"`
	LetterheadFields
}
