package document

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/domain/partner"
	"github.com/erp/docgen/internal/infrastructure/printing"
	"github.com/erp/docgen/internal/infrastructure/templates"
)

type fakeSurface struct {
	pdf      []byte
	err      error
	requests []*printing.PrintRequest
}

func (f *fakeSurface) Print(_ context.Context, req *printing.PrintRequest) (*printing.PrintResult, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return &printing.PrintResult{PDFData: f.pdf}, nil
}

func (f *fakeSurface) Close() error { return nil }

type fakeMailer struct {
	err  error
	sent []*MailMessage
}

func (f *fakeMailer) Send(_ context.Context, msg *MailMessage) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestCounterparty(t *testing.T) *partner.Counterparty {
	t.Helper()
	cp, err := partner.NewCounterparty(partner.RoleCustomer, "Blue Cafe")
	require.NoError(t, err)
	return cp
}

func newTestService(t *testing.T, surface printing.Surface, mailer Mailer) *Service {
	t.Helper()
	store, err := templates.NewStore()
	require.NoError(t, err)
	return NewService(store, NewRenderEngine(), NewAssembler(nil, nil), surface, mailer, nil)
}

func TestService_GenerateText(t *testing.T) {
	svc := newTestService(t, nil, nil)

	res, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Counterparty: newTestCounterparty(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetText,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "", res.JobID.String())
	assert.Contains(t, res.Body, "INV-2025-001")
	assert.Contains(t, res.Body, "Tea")
	assert.Contains(t, res.Body, "25.88")
	assert.NotContains(t, res.Body, "{{", "fully supplied record must leave no markers")
	assert.Contains(t, res.HTML, `dir="ltr"`)
	assert.Nil(t, res.PDF)
	assert.Equal(t, templates.SourceBuiltin, res.TemplateSource)
	assert.Equal(t, document.PaperProfileA4, res.PaperProfile)
	assert.Empty(t, res.Problems)
}

func TestService_GeneratePrint(t *testing.T) {
	surface := &fakeSurface{pdf: []byte("%PDF-1.7 fake")}
	svc := newTestService(t, surface, nil)

	res, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindReceipt,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetPrint,
	})
	require.NoError(t, err)

	assert.Equal(t, []byte("%PDF-1.7 fake"), res.PDF)
	require.Len(t, surface.requests, 1)
	// Receipts print on thermal paper by default
	assert.Equal(t, document.PaperProfileThermal80MM, surface.requests[0].Profile)
	assert.Contains(t, surface.requests[0].HTML, "<html")
}

func TestService_GenerateEmail(t *testing.T) {
	surface := &fakeSurface{pdf: []byte("pdf-bytes")}
	mailer := &fakeMailer{}
	svc := newTestService(t, surface, mailer)

	res, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetEmail,
		Recipient:    "billing@example.com",
	})
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "billing@example.com", msg.To)
	assert.Contains(t, msg.Subject, "INV-2025-001")
	assert.Equal(t, []byte("pdf-bytes"), msg.Attachment)
	assert.True(t, strings.HasSuffix(msg.AttachmentName, ".pdf"))
	assert.Equal(t, res.PDF, msg.Attachment)
}

func TestService_EmailRequiresRecipient(t *testing.T) {
	svc := newTestService(t, &fakeSurface{}, &fakeMailer{})

	_, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetEmail,
	})
	assert.Error(t, err)
}

func TestService_SurfaceFailurePropagates(t *testing.T) {
	surface := &fakeSurface{err: errors.New("chrome unavailable")}
	svc := newTestService(t, surface, nil)

	_, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindReceipt,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetPrint,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "print surface")
}

func TestService_MailerFailurePropagates(t *testing.T) {
	svc := newTestService(t, &fakeSurface{pdf: []byte("x")}, &fakeMailer{err: errors.New("smtp refused")})

	_, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetEmail,
		Recipient:    "a@b.c",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mail dispatch")
}

func TestService_ArabicDocumentIsRTL(t *testing.T) {
	svc := newTestService(t, nil, nil)

	res, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleArabic,
		Target:       document.OutputTargetText,
	})
	require.NoError(t, err)

	assert.Contains(t, res.HTML, `dir="rtl"`)
	assert.Contains(t, res.Body, "فاتورة")
}

func TestService_PaperProfileOverride(t *testing.T) {
	surface := &fakeSurface{pdf: []byte("x")}
	svc := newTestService(t, surface, nil)

	res, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindReceipt,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetPrint,
		PaperProfile: document.PaperProfileThermal58MM,
	})
	require.NoError(t, err)

	assert.Equal(t, document.PaperProfileThermal58MM, res.PaperProfile)
	require.Len(t, surface.requests, 1)
	assert.Equal(t, document.PaperProfileThermal58MM, surface.requests[0].Profile)
}

func TestService_CustomOverrideTemplate(t *testing.T) {
	svc := newTestService(t, nil, nil)

	custom := "CUSTOM {{documentNumber}}\n{{#each items}}{{name}}\n{{/each}}"
	res, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindQuote,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetText,
		Overrides: templates.Overrides{
			{Kind: document.DocKindQuote, Locale: document.LocaleEnglish}: custom,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, templates.SourceOverride, res.TemplateSource)
	assert.Contains(t, res.Body, "CUSTOM INV-2025-001")
	assert.Contains(t, res.Body, "Tea")
}

func TestService_OverrideWithoutLineItemBlockFallsBack(t *testing.T) {
	svc := newTestService(t, nil, nil)

	res, err := svc.Generate(context.Background(), &GenerateRequest{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         document.DocKindQuote,
		Locale:       document.LocaleEnglish,
		Target:       document.OutputTargetText,
		Overrides: templates.Overrides{
			{Kind: document.DocKindQuote, Locale: document.LocaleEnglish}: "no items here {{documentNumber}}",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, templates.SourceBuiltin, res.TemplateSource)
	assert.True(t, res.OverrideDiscarded)
}
