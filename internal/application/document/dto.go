package document

import (
	"github.com/google/uuid"

	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/domain/partner"
	"github.com/erp/docgen/internal/domain/shared"
	"github.com/erp/docgen/internal/domain/trade"
	"github.com/erp/docgen/internal/infrastructure/render"
	"github.com/erp/docgen/internal/infrastructure/templates"
)

// GenerateRequest describes one document generation job
type GenerateRequest struct {
	Entity       *trade.Document
	Counterparty *partner.Counterparty
	Organization *partner.Organization

	Kind   document.DocKind
	Locale document.Locale
	Target document.OutputTarget

	// Overrides supplies custom template texts; usually empty
	Overrides templates.Overrides
	// PaperProfile overrides the template's paper; zero keeps it
	PaperProfile document.PaperProfile
	// Layout overrides the presentation layout; nil keeps the default
	// for the effective paper profile
	Layout *document.PageLayout

	// Recipient is required for EMAIL dispatch
	Recipient string

	IncludeComplianceImage bool
}

// Validate checks the request before any work is done
func (r *GenerateRequest) Validate() error {
	if r.Entity == nil {
		return shared.NewDomainError("INVALID_INPUT", "Document entity is required")
	}
	if r.Organization == nil {
		return shared.NewDomainError("INVALID_INPUT", "Organization is required")
	}
	if !r.Kind.IsValid() {
		return shared.NewDomainError("INVALID_DOC_KIND", "Invalid document kind")
	}
	if !r.Locale.IsValid() {
		return shared.NewDomainError("INVALID_LOCALE", "Invalid locale")
	}
	if !r.Target.IsValid() {
		return shared.NewDomainError("INVALID_TARGET", "Invalid output target")
	}
	if r.PaperProfile != "" && !r.PaperProfile.IsValid() {
		return shared.NewDomainError("INVALID_PAPER_PROFILE", "Invalid paper profile")
	}
	if r.Target == document.OutputTargetEmail && r.Recipient == "" {
		return shared.NewDomainError("INVALID_RECIPIENT", "Email dispatch requires a recipient")
	}
	return nil
}

// GenerateResult is the outcome of one generation job
type GenerateResult struct {
	JobID uuid.UUID

	// Body is the rendered template text before presentation wrapping
	Body string
	// HTML is the complete presented page
	HTML string
	// PDF is set for PRINT and EMAIL targets
	PDF []byte

	// Problems reports malformed marker structure found during
	// rendering. Rendering always completes; problems never abort.
	Problems []render.Problem

	TemplateSource    templates.Source
	OverrideDiscarded bool
	PaperProfile      document.PaperProfile
}
