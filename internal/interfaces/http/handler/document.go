package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	appdoc "github.com/erp/docgen/internal/application/document"
	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/domain/partner"
	"github.com/erp/docgen/internal/domain/trade"
	"github.com/erp/docgen/internal/infrastructure/render"
	"github.com/erp/docgen/internal/infrastructure/templates"
)

// DocumentHandler handles document generation API endpoints
type DocumentHandler struct {
	BaseHandler
	service *appdoc.Service
}

// NewDocumentHandler creates a new DocumentHandler
func NewDocumentHandler(service *appdoc.Service) *DocumentHandler {
	return &DocumentHandler{service: service}
}

// =============================================================================
// Request/Response Types
// =============================================================================

// LinePayload is one billed line in the request
type LinePayload struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// PaymentPayload is one recorded payment in the request
type PaymentPayload struct {
	Method string          `json:"method" binding:"required,oneof=CASH CARD BANK_TRANSFER OTHER"`
	Amount decimal.Decimal `json:"amount" binding:"required"`
	PaidAt *time.Time      `json:"paid_at"`
}

// DocumentPayload is the financial document carried in the request
type DocumentPayload struct {
	Number    string           `json:"number" binding:"required"`
	Currency  string           `json:"currency" binding:"required,len=3"`
	IssueDate time.Time        `json:"issue_date" binding:"required"`
	DueDate   *time.Time       `json:"due_date"`
	TaxRate   decimal.Decimal  `json:"tax_rate"`
	Notes     string           `json:"notes"`
	Lines     []LinePayload    `json:"lines" binding:"required,min=1,dive"`
	Payments  []PaymentPayload `json:"payments" binding:"omitempty,dive"`
}

// PartyPayload carries counterparty or organization details
type PartyPayload struct {
	Name      string `json:"name" binding:"required"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	TaxNumber string `json:"tax_number"`
}

// GenerateDocumentRequest is the request body shared by the preview,
// print and email endpoints.
type GenerateDocumentRequest struct {
	Kind         string `json:"kind" binding:"required,dockind"`
	Locale       string `json:"locale" binding:"required,doclocale"`
	PaperProfile string `json:"paper_profile" binding:"omitempty,paperprofile"`

	// CustomTemplate replaces the built-in template for this request.
	// It is discarded when it lacks the line-item block.
	CustomTemplate string `json:"custom_template"`

	IncludeQRImage bool `json:"include_qr_image"`

	// Recipient is required by the email endpoint
	Recipient string `json:"recipient" binding:"omitempty,email"`

	Document     DocumentPayload `json:"document" binding:"required"`
	Counterparty *PartyPayload   `json:"counterparty"`
	Organization PartyPayload    `json:"organization" binding:"required"`
}

// ProblemResponse reports one malformed marker found during rendering
type ProblemResponse struct {
	Code  string `json:"code"`
	Field string `json:"field"`
}

// PreviewResponse is the preview endpoint's payload
type PreviewResponse struct {
	JobID             string            `json:"job_id"`
	Body              string            `json:"body"`
	HTML              string            `json:"html"`
	Problems          []ProblemResponse `json:"problems,omitempty"`
	TemplateSource    string            `json:"template_source"`
	OverrideDiscarded bool              `json:"override_discarded,omitempty"`
	PaperProfile      string            `json:"paper_profile"`
}

// EmailResponse is the email endpoint's payload
type EmailResponse struct {
	JobID    string `json:"job_id"`
	SentTo   string `json:"sent_to"`
	PDFBytes int    `json:"pdf_bytes"`
}

// KindResponse describes one supported document kind
type KindResponse struct {
	Kind                string `json:"kind"`
	DisplayName         string `json:"display_name"`
	DefaultPaperProfile string `json:"default_paper_profile"`
}

// PaperProfileResponse describes one supported paper profile
type PaperProfileResponse struct {
	Profile string `json:"profile"`
	WidthMM int    `json:"width_mm"`
	Thermal bool   `json:"thermal"`
}

// =============================================================================
// Endpoints
// =============================================================================

// Preview renders a document and returns the text and HTML without
// touching a print surface.
//
// POST /api/v1/documents/preview
func (h *DocumentHandler) Preview(c *gin.Context) {
	_, genReq, ok := h.bindGenerate(c, document.OutputTargetText)
	if !ok {
		return
	}

	res, err := h.service.Generate(c.Request.Context(), genReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, PreviewResponse{
		JobID:             res.JobID.String(),
		Body:              res.Body,
		HTML:              res.HTML,
		Problems:          toProblemResponses(res.Problems),
		TemplateSource:    string(res.TemplateSource),
		OverrideDiscarded: res.OverrideDiscarded,
		PaperProfile:      res.PaperProfile.String(),
	})
}

// Print renders a document to PDF and returns the file
//
// POST /api/v1/documents/print
func (h *DocumentHandler) Print(c *gin.Context) {
	req, genReq, ok := h.bindGenerate(c, document.OutputTargetPrint)
	if !ok {
		return
	}

	res, err := h.service.Generate(c.Request.Context(), genReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.pdf", req.Kind, req.Document.Number)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("X-Job-ID", res.JobID.String())
	c.Data(http.StatusOK, "application/pdf", res.PDF)
}

// Email renders a document to PDF and dispatches it to the recipient
//
// POST /api/v1/documents/email
func (h *DocumentHandler) Email(c *gin.Context) {
	req, genReq, ok := h.bindGenerate(c, document.OutputTargetEmail)
	if !ok {
		return
	}
	if req.Recipient == "" {
		h.BadRequest(c, "recipient is required for email dispatch")
		return
	}

	res, err := h.service.Generate(c.Request.Context(), genReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, EmailResponse{
		JobID:    res.JobID.String(),
		SentTo:   req.Recipient,
		PDFBytes: len(res.PDF),
	})
}

// Kinds lists the supported document kinds
//
// GET /api/v1/documents/kinds
func (h *DocumentHandler) Kinds(c *gin.Context) {
	locale := document.Locale(c.DefaultQuery("locale", document.LocaleEnglish.String()))
	if !locale.IsValid() {
		h.BadRequest(c, "invalid locale")
		return
	}

	kinds := make([]KindResponse, 0, len(document.AllDocKinds()))
	for _, kind := range document.AllDocKinds() {
		kinds = append(kinds, KindResponse{
			Kind:                kind.String(),
			DisplayName:         kind.DisplayName(locale),
			DefaultPaperProfile: kind.DefaultPaperProfile().String(),
		})
	}
	h.Success(c, kinds)
}

// PaperProfiles lists the supported paper profiles
//
// GET /api/v1/documents/paper-profiles
func (h *DocumentHandler) PaperProfiles(c *gin.Context) {
	profiles := make([]PaperProfileResponse, 0, len(document.AllPaperProfiles()))
	for _, profile := range document.AllPaperProfiles() {
		profiles = append(profiles, PaperProfileResponse{
			Profile: profile.String(),
			WidthMM: profile.WidthMM(),
			Thermal: profile.IsThermal(),
		})
	}
	h.Success(c, profiles)
}

// =============================================================================
// Mapping
// =============================================================================

// bindGenerate parses and validates the request body and maps it to an
// application-layer generate request. On failure it writes the error
// response and returns ok=false.
func (h *DocumentHandler) bindGenerate(c *gin.Context, target document.OutputTarget) (*GenerateDocumentRequest, *appdoc.GenerateRequest, bool) {
	var req GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return nil, nil, false
	}

	entity, err := toTradeDocument(&req.Document)
	if err != nil {
		h.HandleError(c, err)
		return nil, nil, false
	}

	org, err := toOrganization(&req.Organization)
	if err != nil {
		h.HandleError(c, err)
		return nil, nil, false
	}

	kind := document.DocKind(req.Kind)
	locale := document.Locale(req.Locale)

	var counterparty *partner.Counterparty
	if req.Counterparty != nil {
		role := partner.RoleCustomer
		if kind == document.DocKindPurchaseInvoice {
			role = partner.RoleSupplier
		}
		counterparty, err = toCounterparty(req.Counterparty, role)
		if err != nil {
			h.HandleError(c, err)
			return nil, nil, false
		}
	}

	genReq := &appdoc.GenerateRequest{
		Entity:                 entity,
		Counterparty:           counterparty,
		Organization:           org,
		Kind:                   kind,
		Locale:                 locale,
		Target:                 target,
		PaperProfile:           document.PaperProfile(req.PaperProfile),
		Recipient:              req.Recipient,
		IncludeComplianceImage: req.IncludeQRImage,
	}
	if req.CustomTemplate != "" {
		genReq.Overrides = templates.Overrides{
			{Kind: kind, Locale: locale}: req.CustomTemplate,
		}
	}
	return &req, genReq, true
}

func toTradeDocument(payload *DocumentPayload) (*trade.Document, error) {
	doc, err := trade.NewDocument(payload.Number, payload.Currency, payload.IssueDate, payload.TaxRate)
	if err != nil {
		return nil, err
	}
	doc.DueDate = payload.DueDate
	doc.Notes = payload.Notes

	for i := range payload.Lines {
		lp := &payload.Lines[i]
		line, err := trade.NewLine(lp.Name, lp.Description, lp.Quantity, lp.UnitPrice)
		if err != nil {
			return nil, err
		}
		doc.AddLine(line)
	}

	for i := range payload.Payments {
		pp := &payload.Payments[i]
		paidAt := time.Now()
		if pp.PaidAt != nil {
			paidAt = *pp.PaidAt
		}
		payment, err := trade.NewPayment(trade.PaymentMethod(pp.Method), pp.Amount, paidAt)
		if err != nil {
			return nil, err
		}
		if err := doc.AddPayment(payment); err != nil {
			return nil, err
		}
	}

	return doc, nil
}

func toOrganization(payload *PartyPayload) (*partner.Organization, error) {
	org, err := partner.NewOrganization(payload.Name)
	if err != nil {
		return nil, err
	}
	org.Address = payload.Address
	org.Phone = payload.Phone
	org.Email = payload.Email
	org.TaxNumber = payload.TaxNumber
	return org, nil
}

func toCounterparty(payload *PartyPayload, role partner.Role) (*partner.Counterparty, error) {
	cp, err := partner.NewCounterparty(role, payload.Name)
	if err != nil {
		return nil, err
	}
	cp.Address = payload.Address
	cp.Phone = payload.Phone
	cp.Email = payload.Email
	cp.TaxNumber = payload.TaxNumber
	return cp, nil
}

func toProblemResponses(problems []render.Problem) []ProblemResponse {
	if len(problems) == 0 {
		return nil
	}
	out := make([]ProblemResponse, 0, len(problems))
	for _, p := range problems {
		out = append(out, ProblemResponse{Code: p.Code, Field: p.Field})
	}
	return out
}
