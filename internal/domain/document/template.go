package document

import (
	"strings"

	"github.com/erp/docgen/internal/domain/shared"
)

// LineItemBlockMarker is the iteration marker every usable document
// template must contain. A custom template missing it is discarded in
// favor of the built-in default.
const LineItemBlockMarker = "{{#each items}}"

// Template is an immutable literal text containing marker syntax,
// selected per document kind and locale and never mutated.
type Template struct {
	Kind         DocKind
	Locale       Locale
	Name         string
	Content      string
	PaperProfile PaperProfile
	Layout       PageLayout
}

// NewTemplate creates a validated template
func NewTemplate(kind DocKind, locale Locale, name, content string, profile PaperProfile) (*Template, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_DOC_KIND", "Invalid document kind")
	}
	if !locale.IsValid() {
		return nil, shared.NewDomainError("INVALID_LOCALE", "Invalid locale")
	}
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Template name cannot be empty")
	}
	if strings.TrimSpace(content) == "" {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Template content cannot be empty")
	}
	if len(content) > 1024*1024 {
		return nil, shared.NewDomainError("INVALID_CONTENT", "Template content cannot exceed 1MB")
	}
	if !profile.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAPER_PROFILE", "Invalid paper profile")
	}

	return &Template{
		Kind:         kind,
		Locale:       locale,
		Name:         strings.TrimSpace(name),
		Content:      content,
		PaperProfile: profile,
		Layout:       LayoutForProfile(profile),
	}, nil
}

// HasLineItemBlock reports whether the template contains the required
// line-item iteration block.
func (t *Template) HasLineItemBlock() bool {
	return strings.Contains(t.Content, LineItemBlockMarker)
}
