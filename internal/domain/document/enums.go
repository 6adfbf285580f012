package document

import "golang.org/x/text/language"

// DocKind represents the kind of business document that can be generated
type DocKind string

const (
	DocKindReceipt         DocKind = "RECEIPT"          // POS/counter receipt
	DocKindSalesInvoice    DocKind = "SALES_INVOICE"    // invoice issued to a customer
	DocKindPurchaseInvoice DocKind = "PURCHASE_INVOICE" // invoice recorded from a supplier
	DocKindQuote           DocKind = "QUOTE"            // price quotation
)

// IsValid checks if the DocKind is a valid value
func (k DocKind) IsValid() bool {
	switch k {
	case DocKindReceipt, DocKindSalesInvoice, DocKindPurchaseInvoice, DocKindQuote:
		return true
	}
	return false
}

// String returns the string representation of DocKind
func (k DocKind) String() string {
	return string(k)
}

// DisplayName returns the localized display name for DocKind
func (k DocKind) DisplayName(locale Locale) string {
	if locale == LocaleArabic {
		switch k {
		case DocKindReceipt:
			return "إيصال"
		case DocKindSalesInvoice:
			return "فاتورة مبيعات"
		case DocKindPurchaseInvoice:
			return "فاتورة مشتريات"
		case DocKindQuote:
			return "عرض سعر"
		default:
			return string(k)
		}
	}
	switch k {
	case DocKindReceipt:
		return "Receipt"
	case DocKindSalesInvoice:
		return "Sales Invoice"
	case DocKindPurchaseInvoice:
		return "Purchase Invoice"
	case DocKindQuote:
		return "Quote"
	default:
		return string(k)
	}
}

// DefaultPaperProfile returns the paper profile used when the caller
// does not request one. Receipts go to thermal paper, everything else to A4.
func (k DocKind) DefaultPaperProfile() PaperProfile {
	if k == DocKindReceipt {
		return PaperProfileThermal80MM
	}
	return PaperProfileA4
}

// AllDocKinds returns all valid DocKind values
func AllDocKinds() []DocKind {
	return []DocKind{
		DocKindReceipt, DocKindSalesInvoice, DocKindPurchaseInvoice, DocKindQuote,
	}
}

// TextDirection is the script direction of a locale
type TextDirection string

const (
	DirectionLTR TextDirection = "ltr"
	DirectionRTL TextDirection = "rtl"
)

// Locale selects the display language, script direction and default
// template variant for a document.
type Locale string

const (
	LocaleEnglish Locale = "en"
	LocaleArabic  Locale = "ar"
)

// IsValid checks if the Locale is a valid value
func (l Locale) IsValid() bool {
	switch l {
	case LocaleEnglish, LocaleArabic:
		return true
	}
	return false
}

// String returns the string representation of Locale
func (l Locale) String() string {
	return string(l)
}

// Direction returns the script direction for the locale
func (l Locale) Direction() TextDirection {
	if l == LocaleArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// Tag returns the BCP 47 language tag for the locale
func (l Locale) Tag() language.Tag {
	if l == LocaleArabic {
		return language.Arabic
	}
	return language.English
}

// DateLayout returns the fixed date pattern used for this locale
func (l Locale) DateLayout() string {
	if l == LocaleArabic {
		return "2006/01/02"
	}
	return "02 Jan 2006"
}

// DateTimeLayout returns the fixed date-time pattern used for this locale
func (l Locale) DateTimeLayout() string {
	if l == LocaleArabic {
		return "2006/01/02 15:04"
	}
	return "02 Jan 2006 15:04"
}

// AllLocales returns all valid Locale values
func AllLocales() []Locale {
	return []Locale{LocaleEnglish, LocaleArabic}
}

// PaperProfile represents the physical paper class a document is produced for
type PaperProfile string

const (
	PaperProfileThermal58MM PaperProfile = "THERMAL_58MM" // 58mm thermal receipt
	PaperProfileThermal80MM PaperProfile = "THERMAL_80MM" // 80mm thermal receipt
	PaperProfileA4          PaperProfile = "A4"           // 210mm x 297mm
)

// IsValid checks if the PaperProfile is a valid value
func (p PaperProfile) IsValid() bool {
	switch p {
	case PaperProfileThermal58MM, PaperProfileThermal80MM, PaperProfileA4:
		return true
	}
	return false
}

// String returns the string representation of PaperProfile
func (p PaperProfile) String() string {
	return string(p)
}

// WidthMM returns the paper width in millimeters.
// Height is variable for thermal paper and 297 for A4.
func (p PaperProfile) WidthMM() int {
	switch p {
	case PaperProfileThermal58MM:
		return 58
	case PaperProfileThermal80MM:
		return 80
	default:
		return 210
	}
}

// HeightMM returns the nominal paper height in millimeters. Thermal
// paper is continuous; callers should treat its height as unbounded.
func (p PaperProfile) HeightMM() int {
	switch p {
	case PaperProfileThermal58MM, PaperProfileThermal80MM:
		return 0
	default:
		return 297
	}
}

// IsThermal returns true for receipt-class thermal paper
func (p PaperProfile) IsThermal() bool {
	return p == PaperProfileThermal58MM || p == PaperProfileThermal80MM
}

// AllPaperProfiles returns all valid PaperProfile values
func AllPaperProfiles() []PaperProfile {
	return []PaperProfile{PaperProfileThermal58MM, PaperProfileThermal80MM, PaperProfileA4}
}

// OutputTarget is where a generated document is delivered
type OutputTarget string

const (
	OutputTargetText  OutputTarget = "TEXT"  // return the rendered document only
	OutputTargetPrint OutputTarget = "PRINT" // open a print surface
	OutputTargetEmail OutputTarget = "EMAIL" // hand off to the mail collaborator
)

// IsValid checks if the OutputTarget is a valid value
func (t OutputTarget) IsValid() bool {
	switch t {
	case OutputTargetText, OutputTargetPrint, OutputTargetEmail:
		return true
	}
	return false
}

// String returns the string representation of OutputTarget
func (t OutputTarget) String() string {
	return string(t)
}
