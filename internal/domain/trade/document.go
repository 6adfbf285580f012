package trade

import (
	"time"

	"github.com/erp/docgen/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DocumentStatus represents the lifecycle status of a financial document
type DocumentStatus string

const (
	DocumentStatusDraft     DocumentStatus = "DRAFT"
	DocumentStatusIssued    DocumentStatus = "ISSUED"
	DocumentStatusPaid      DocumentStatus = "PAID"
	DocumentStatusCancelled DocumentStatus = "CANCELLED"
)

// IsValid checks if the status is a valid DocumentStatus
func (s DocumentStatus) IsValid() bool {
	switch s {
	case DocumentStatusDraft, DocumentStatusIssued, DocumentStatusPaid, DocumentStatusCancelled:
		return true
	}
	return false
}

// String returns the string representation of DocumentStatus
func (s DocumentStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s DocumentStatus) CanTransitionTo(target DocumentStatus) bool {
	switch s {
	case DocumentStatusDraft:
		return target == DocumentStatusIssued || target == DocumentStatusCancelled
	case DocumentStatusIssued:
		return target == DocumentStatusPaid || target == DocumentStatusCancelled
	case DocumentStatusPaid, DocumentStatusCancelled:
		return false // Terminal states
	}
	return false
}

// PaymentMethod is how a payment against a document was made
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodOther        PaymentMethod = "OTHER"
)

// IsValid checks if the PaymentMethod is a valid value
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer, PaymentMethodOther:
		return true
	}
	return false
}

// Line represents a billed line item
type Line struct {
	ID          uuid.UUID
	Name        string
	Description string
	Quantity    decimal.Decimal
	UnitPrice   decimal.Decimal
}

// NewLine creates a validated line item
func NewLine(name, description string, quantity, unitPrice decimal.Decimal) (*Line, error) {
	if name == "" {
		return nil, shared.NewDomainError("INVALID_LINE_NAME", "Line name cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}
	return &Line{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
	}, nil
}

// Total returns quantity * unit price rounded once to two decimals
func (l *Line) Total() decimal.Decimal {
	return l.Quantity.Mul(l.UnitPrice).Round(2)
}

// Payment represents a payment recorded against a document
type Payment struct {
	ID     uuid.UUID
	Method PaymentMethod
	Amount decimal.Decimal
	PaidAt time.Time
}

// NewPayment creates a validated payment
func NewPayment(method PaymentMethod, amount decimal.Decimal, paidAt time.Time) (*Payment, error) {
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Invalid payment method")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	return &Payment{ID: uuid.New(), Method: method, Amount: amount, PaidAt: paidAt}, nil
}

// Document is the financial document aggregate (order, invoice or
// quote) consumed by the document assembler. Amounts are derived from
// the lines, never stored redundantly.
type Document struct {
	ID        uuid.UUID
	Number    string
	IssueDate time.Time
	DueDate   *time.Time
	Currency  string          // ISO 4217 code
	TaxRate   decimal.Decimal // percentage, e.g. 15 for 15%
	Lines     []Line
	Payments  []Payment
	Notes     string
	Status    DocumentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDocument creates a validated document in draft status
func NewDocument(number, currency string, issueDate time.Time, taxRate decimal.Decimal) (*Document, error) {
	if number == "" {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Document number cannot be empty")
	}
	if currency == "" {
		return nil, shared.NewDomainError("INVALID_CURRENCY", "Currency cannot be empty")
	}
	if taxRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TAX_RATE", "Tax rate cannot be negative")
	}

	now := time.Now()
	return &Document{
		ID:        uuid.New(),
		Number:    number,
		IssueDate: issueDate,
		Currency:  currency,
		TaxRate:   taxRate,
		Status:    DocumentStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// AddLine appends a line item
func (d *Document) AddLine(line *Line) {
	d.Lines = append(d.Lines, *line)
	d.UpdatedAt = time.Now()
}

// AddPayment records a payment against the document
func (d *Document) AddPayment(payment *Payment) error {
	if d.Status == DocumentStatusCancelled {
		return shared.NewDomainError("INVALID_STATE", "Cannot record payment on a cancelled document")
	}
	d.Payments = append(d.Payments, *payment)
	d.UpdatedAt = time.Now()
	return nil
}

// Issue transitions the document from draft to issued
func (d *Document) Issue() error {
	if !d.Status.CanTransitionTo(DocumentStatusIssued) {
		return shared.NewDomainError("INVALID_STATE", "Document cannot be issued in its current status")
	}
	d.Status = DocumentStatusIssued
	d.UpdatedAt = time.Now()
	return nil
}

// Subtotal returns the sum of line totals
func (d *Document) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for i := range d.Lines {
		total = total.Add(d.Lines[i].Total())
	}
	return total
}

// TaxAmount returns the tax on the subtotal, rounded once
func (d *Document) TaxAmount() decimal.Decimal {
	return d.Subtotal().Mul(d.TaxRate).Div(decimal.NewFromInt(100)).Round(2)
}

// Total returns subtotal plus tax
func (d *Document) Total() decimal.Decimal {
	return d.Subtotal().Add(d.TaxAmount())
}

// PaidTotal returns the sum of recorded payments
func (d *Document) PaidTotal() decimal.Decimal {
	total := decimal.Zero
	for i := range d.Payments {
		total = total.Add(d.Payments[i].Amount)
	}
	return total
}

// BalanceDue returns the outstanding amount
func (d *Document) BalanceDue() decimal.Decimal {
	return d.Total().Sub(d.PaidTotal())
}
