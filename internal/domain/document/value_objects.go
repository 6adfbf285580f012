package document

import "github.com/erp/docgen/internal/domain/shared"

// Margins represents the page margins in millimeters
type Margins struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// NewMargins creates a new Margins value object
func NewMargins(top, right, bottom, left int) (Margins, error) {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot be negative")
	}
	if top > 100 || right > 100 || bottom > 100 || left > 100 {
		return Margins{}, shared.NewDomainError("INVALID_MARGINS", "Margins cannot exceed 100mm")
	}
	return Margins{Top: top, Right: right, Bottom: bottom, Left: left}, nil
}

// Equals checks if two Margins are equal
func (m Margins) Equals(other Margins) bool {
	return m == other
}

// Padding represents the inner padding of the printed area in millimeters
type Padding struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// NewPadding creates a new Padding value object
func NewPadding(top, right, bottom, left int) (Padding, error) {
	if top < 0 || right < 0 || bottom < 0 || left < 0 {
		return Padding{}, shared.NewDomainError("INVALID_PADDING", "Padding cannot be negative")
	}
	return Padding{Top: top, Right: right, Bottom: bottom, Left: left}, nil
}

// PageLayout bundles the presentation settings consumed by the
// presentation wrapper. The template engine never sees these.
type PageLayout struct {
	Margins     Margins `json:"margins"`
	Padding     Padding `json:"padding"`
	LineSpacing float64 `json:"lineSpacing"` // line-height multiplier
}

// DefaultLayout returns the layout used for full-page paper
func DefaultLayout() PageLayout {
	return PageLayout{
		Margins:     Margins{Top: 10, Right: 10, Bottom: 10, Left: 10},
		Padding:     Padding{},
		LineSpacing: 1.4,
	}
}

// ThermalLayout returns minimal margins suitable for thermal receipt paper
func ThermalLayout() PageLayout {
	return PageLayout{
		Margins:     Margins{Top: 2, Right: 2, Bottom: 2, Left: 2},
		Padding:     Padding{},
		LineSpacing: 1.2,
	}
}

// LayoutForProfile returns the default layout for a paper profile
func LayoutForProfile(profile PaperProfile) PageLayout {
	if profile.IsThermal() {
		return ThermalLayout()
	}
	return DefaultLayout()
}
