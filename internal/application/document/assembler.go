package document

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/domain/partner"
	"github.com/erp/docgen/internal/domain/shared"
	"github.com/erp/docgen/internal/domain/trade"
)

// ComplianceImageGenerator produces the tax-compliance image (QR)
// embedded in receipts and invoices, returned as a data URI.
type ComplianceImageGenerator interface {
	Generate(ctx context.Context, doc *trade.Document, org *partner.Organization) (string, error)
}

// AssembleInput carries everything the assembler maps into a record
type AssembleInput struct {
	Entity       *trade.Document
	Counterparty *partner.Counterparty
	Organization *partner.Organization
	Kind         document.DocKind
	Locale       document.Locale
	// IncludeComplianceImage requests QR generation and embedding
	IncludeComplianceImage bool
}

// Assembler maps domain entities into the flat field records the
// template engine consumes. All formatting decisions (money precision,
// date layout per locale) are made here, never in templates.
type Assembler struct {
	qr     ComplianceImageGenerator
	logger *zap.Logger
	now    func() time.Time
}

// NewAssembler creates an assembler. qr may be nil when compliance
// images are not configured.
func NewAssembler(qr ComplianceImageGenerator, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{qr: qr, logger: logger, now: time.Now}
}

// Assemble builds the record for one document. Optional fields that
// are empty on the entity are omitted so conditional sections treat
// them as absent.
func (a *Assembler) Assemble(ctx context.Context, input AssembleInput) (document.Record, error) {
	if input.Entity == nil {
		return document.Record{}, shared.NewDomainError("INVALID_INPUT", "Document entity is required")
	}
	if input.Organization == nil {
		return document.Record{}, shared.NewDomainError("INVALID_INPUT", "Organization is required")
	}
	if !input.Kind.IsValid() {
		return document.Record{}, shared.NewDomainError("INVALID_DOC_KIND", "Invalid document kind")
	}
	if !input.Locale.IsValid() {
		return document.Record{}, shared.NewDomainError("INVALID_LOCALE", "Invalid locale")
	}

	doc := input.Entity
	rec := document.NewRecord()

	rec.SetString("documentNumber", doc.Number)
	rec.SetString("issueDate", doc.IssueDate.Format(input.Locale.DateLayout()))
	if doc.DueDate != nil {
		rec.SetString("dueDate", doc.DueDate.Format(input.Locale.DateLayout()))
	}
	rec.SetString("printedAt", a.now().Format(input.Locale.DateTimeLayout()))

	setIfPresent := func(name, value string) {
		if strings.TrimSpace(value) != "" {
			rec.SetString(name, value)
		}
	}

	org := input.Organization
	rec.SetString("organizationName", org.Name)
	setIfPresent("organizationAddress", org.Address)
	setIfPresent("organizationPhone", org.Phone)
	setIfPresent("organizationEmail", org.Email)
	setIfPresent("organizationTaxNumber", org.TaxNumber)

	if cp := input.Counterparty; cp != nil {
		rec.SetString("counterpartyName", cp.Name)
		setIfPresent("counterpartyAddress", cp.Address)
		setIfPresent("counterpartyTaxNumber", cp.TaxNumber)
	}

	rec.SetString("currency", doc.Currency)
	rec.SetString("subtotal", doc.Subtotal().StringFixed(2))
	rec.SetString("taxRate", doc.TaxRate.StringFixed(2))
	rec.SetString("taxAmount", doc.TaxAmount().StringFixed(2))
	rec.SetString("total", doc.Total().StringFixed(2))
	rec.SetString("paidTotal", doc.PaidTotal().StringFixed(2))
	rec.SetString("balanceDue", doc.BalanceDue().StringFixed(2))
	setIfPresent("notes", doc.Notes)

	items := make([]document.Record, 0, len(doc.Lines))
	for i := range doc.Lines {
		line := &doc.Lines[i]
		item := document.NewRecord()
		item.SetString("name", line.Name)
		if strings.TrimSpace(line.Description) != "" {
			item.SetString("description", line.Description)
		}
		item.SetString("quantity", line.Quantity.String())
		item.SetString("unitPrice", line.UnitPrice.StringFixed(2))
		item.SetString("lineTotal", line.Total().StringFixed(2))
		items = append(items, item)
	}
	rec.SetList("items", items)

	if len(doc.Payments) > 0 {
		titler := cases.Title(input.Locale.Tag())
		payments := make([]document.Record, 0, len(doc.Payments))
		for i := range doc.Payments {
			p := &doc.Payments[i]
			payment := document.NewRecord()
			payment.SetString("method", methodLabel(titler, p.Method))
			payment.SetString("amount", p.Amount.StringFixed(2))
			payments = append(payments, payment)
		}
		rec.SetList("payments", payments)
	}

	rec.SetBool("includeQrImage", input.IncludeComplianceImage)
	if input.IncludeComplianceImage && a.qr != nil {
		image, err := a.qr.Generate(ctx, doc, org)
		if err != nil {
			return document.Record{}, fmt.Errorf("compliance image generation: %w", err)
		}
		rec.SetString("qrImage", image)
	}

	if err := rec.Validate(); err != nil {
		return document.Record{}, err
	}

	a.logger.Debug("document record assembled",
		zap.String("document_number", doc.Number),
		zap.String("kind", input.Kind.String()),
		zap.String("locale", input.Locale.String()),
		zap.Int("items", len(items)))

	return rec, nil
}

// methodLabel turns a payment method constant such as BANK_TRANSFER
// into a reader-facing label like "Bank Transfer".
func methodLabel(titler cases.Caser, method trade.PaymentMethod) string {
	s := strings.ReplaceAll(string(method), "_", " ")
	return titler.String(strings.ToLower(s))
}
