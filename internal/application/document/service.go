package document

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/infrastructure/printing"
	"github.com/erp/docgen/internal/infrastructure/render"
	"github.com/erp/docgen/internal/infrastructure/templates"
)

// Service orchestrates the full generation pipeline: assemble the
// record, resolve the template, render, wrap in the presentation
// shell, and dispatch to the requested output target.
type Service struct {
	store     *templates.Store
	engine    *render.Engine
	assembler *Assembler
	surface   printing.Surface
	mailer    Mailer
	logger    *zap.Logger

	defaultProfile document.PaperProfile
	defaultLayout  *document.PageLayout
}

// ServiceOption configures the service
type ServiceOption func(*Service)

// WithDefaultPaperProfile sets a deployment-wide paper profile applied
// when neither the request nor the caller picks one explicitly.
func WithDefaultPaperProfile(profile document.PaperProfile) ServiceOption {
	return func(s *Service) {
		s.defaultProfile = profile
	}
}

// WithDefaultLayout sets a deployment-wide page layout for full-page
// paper. Thermal paper keeps its compact layout.
func WithDefaultLayout(layout document.PageLayout) ServiceOption {
	return func(s *Service) {
		s.defaultLayout = &layout
	}
}

// NewService creates the document generation service
func NewService(
	store *templates.Store,
	engine *render.Engine,
	assembler *Assembler,
	surface printing.Surface,
	mailer Mailer,
	logger *zap.Logger,
	opts ...ServiceOption,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Service{
		store:     store,
		engine:    engine,
		assembler: assembler,
		surface:   surface,
		mailer:    mailer,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate runs one generation job end to end
func (s *Service) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResult, error) {
	if req == nil {
		return nil, fmt.Errorf("generate request is nil")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	jobID := uuid.New()
	logger := s.logger.With(
		zap.String("job_id", jobID.String()),
		zap.String("document_number", req.Entity.Number),
		zap.String("kind", req.Kind.String()),
		zap.String("locale", req.Locale.String()),
		zap.String("target", req.Target.String()))

	rec, err := s.assembler.Assemble(ctx, AssembleInput{
		Entity:                 req.Entity,
		Counterparty:           req.Counterparty,
		Organization:           req.Organization,
		Kind:                   req.Kind,
		Locale:                 req.Locale,
		IncludeComplianceImage: req.IncludeComplianceImage,
	})
	if err != nil {
		return nil, err
	}

	selection, err := s.store.Resolve(req.Kind, req.Locale, req.Overrides)
	if err != nil {
		return nil, err
	}
	if selection.OverrideDiscarded {
		logger.Warn("custom template discarded, using built-in default",
			zap.String("template", selection.Template.Name))
	}

	body, problems := s.engine.Render(selection.Template.Content, rec)
	for _, p := range problems {
		logger.Warn("template structure problem",
			zap.String("code", p.Code),
			zap.String("field", p.Field))
	}

	profile := selection.Template.PaperProfile
	if s.defaultProfile != "" {
		profile = s.defaultProfile
	}
	if req.PaperProfile != "" {
		profile = req.PaperProfile
	}
	layout := document.LayoutForProfile(profile)
	if s.defaultLayout != nil && !profile.IsThermal() {
		layout = *s.defaultLayout
	}
	if req.Layout != nil {
		layout = *req.Layout
	}

	title := fmt.Sprintf("%s %s", req.Kind.DisplayName(req.Locale), req.Entity.Number)
	html := printing.WrapShell(body, printing.ShellParams{
		Title:     title,
		Direction: req.Locale.Direction(),
		Profile:   profile,
		Layout:    layout,
	})

	result := &GenerateResult{
		JobID:             jobID,
		Body:              body,
		HTML:              html,
		Problems:          problems,
		TemplateSource:    selection.Source,
		OverrideDiscarded: selection.OverrideDiscarded,
		PaperProfile:      profile,
	}

	switch req.Target {
	case document.OutputTargetText:
		// Nothing further; rendered output is the deliverable

	case document.OutputTargetPrint:
		pdf, err := s.print(ctx, html, title, profile, layout)
		if err != nil {
			return nil, err
		}
		result.PDF = pdf

	case document.OutputTargetEmail:
		pdf, err := s.print(ctx, html, title, profile, layout)
		if err != nil {
			return nil, err
		}
		result.PDF = pdf

		msg := &MailMessage{
			To:             req.Recipient,
			Subject:        title,
			Body:           fmt.Sprintf("Please find attached: %s", title),
			Attachment:     pdf,
			AttachmentName: fmt.Sprintf("%s-%s.pdf", req.Kind.String(), req.Entity.Number),
		}
		if err := s.mailer.Send(ctx, msg); err != nil {
			return nil, fmt.Errorf("mail dispatch: %w", err)
		}
	}

	logger.Info("document generated",
		zap.String("template_source", string(selection.Source)),
		zap.String("paper_profile", profile.String()),
		zap.Int("problems", len(problems)),
		zap.Int("pdf_bytes", len(result.PDF)))

	return result, nil
}

func (s *Service) print(ctx context.Context, html, title string, profile document.PaperProfile, layout document.PageLayout) ([]byte, error) {
	if s.surface == nil {
		return nil, fmt.Errorf("no print surface configured")
	}
	res, err := s.surface.Print(ctx, &printing.PrintRequest{
		HTML:    html,
		Profile: profile,
		Layout:  layout,
		Title:   title,
	})
	if err != nil {
		return nil, fmt.Errorf("print surface: %w", err)
	}
	return res.PDFData, nil
}
