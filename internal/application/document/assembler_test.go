package document

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"

	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/domain/partner"
	"github.com/erp/docgen/internal/domain/trade"
)

type fakeQRGenerator struct {
	image string
	err   error
	calls int
}

func (f *fakeQRGenerator) Generate(_ context.Context, _ *trade.Document, _ *partner.Organization) (string, error) {
	f.calls++
	return f.image, f.err
}

func newTestDocument(t *testing.T) *trade.Document {
	t.Helper()

	doc, err := trade.NewDocument("INV-2025-001", "SAR",
		time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(15))
	require.NoError(t, err)

	line1, err := trade.NewLine("Tea", "Loose leaf", decimal.NewFromInt(2), decimal.RequireFromString("6.25"))
	require.NoError(t, err)
	doc.AddLine(line1)

	line2, err := trade.NewLine("Coffee", "", decimal.NewFromInt(1), decimal.RequireFromString("10.00"))
	require.NoError(t, err)
	doc.AddLine(line2)

	return doc
}

func newTestOrganization(t *testing.T) *partner.Organization {
	t.Helper()
	org, err := partner.NewOrganization("Acme Trading")
	require.NoError(t, err)
	org.Address = "12 Market St"
	org.TaxNumber = "300000000000003"
	return org
}

func mustGet(t *testing.T, rec document.Record, name string) string {
	t.Helper()
	v, ok := rec.Get(name)
	require.True(t, ok, "field %s should be present", name)
	return v.String()
}

func TestAssembler_MoneyAndDateFormatting(t *testing.T) {
	doc := newTestDocument(t)
	org := newTestOrganization(t)

	asm := NewAssembler(nil, nil)
	asm.now = func() time.Time { return time.Date(2025, 3, 16, 9, 30, 0, 0, time.UTC) }

	rec, err := asm.Assemble(context.Background(), AssembleInput{
		Entity:       doc,
		Organization: org,
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, "INV-2025-001", mustGet(t, rec, "documentNumber"))
	assert.Equal(t, "15 Mar 2025", mustGet(t, rec, "issueDate"))
	assert.Equal(t, "16 Mar 2025 09:30", mustGet(t, rec, "printedAt"))

	// 2 * 6.25 + 1 * 10.00 = 22.50; 15% tax = 3.38 rounded once
	assert.Equal(t, "22.50", mustGet(t, rec, "subtotal"))
	assert.Equal(t, "15.00", mustGet(t, rec, "taxRate"))
	assert.Equal(t, "3.38", mustGet(t, rec, "taxAmount"))
	assert.Equal(t, "25.88", mustGet(t, rec, "total"))
	assert.Equal(t, "0.00", mustGet(t, rec, "paidTotal"))
	assert.Equal(t, "25.88", mustGet(t, rec, "balanceDue"))
	assert.Equal(t, "SAR", mustGet(t, rec, "currency"))
}

func TestAssembler_ArabicDateLayout(t *testing.T) {
	doc := newTestDocument(t)
	org := newTestOrganization(t)

	asm := NewAssembler(nil, nil)
	rec, err := asm.Assemble(context.Background(), AssembleInput{
		Entity:       doc,
		Organization: org,
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleArabic,
	})
	require.NoError(t, err)

	assert.Equal(t, "2025/03/15", mustGet(t, rec, "issueDate"))
}

func TestAssembler_ItemsList(t *testing.T) {
	doc := newTestDocument(t)
	org := newTestOrganization(t)

	asm := NewAssembler(nil, nil)
	rec, err := asm.Assemble(context.Background(), AssembleInput{
		Entity:       doc,
		Organization: org,
		Kind:         document.DocKindReceipt,
		Locale:       document.LocaleEnglish,
	})
	require.NoError(t, err)

	items, ok := rec.Get("items")
	require.True(t, ok)
	require.True(t, items.IsList())
	require.Len(t, items.List(), 2)

	first := items.List()[0]
	assert.Equal(t, "Tea", mustGet(t, first, "name"))
	assert.Equal(t, "Loose leaf", mustGet(t, first, "description"))
	assert.Equal(t, "2", mustGet(t, first, "quantity"))
	assert.Equal(t, "6.25", mustGet(t, first, "unitPrice"))
	assert.Equal(t, "12.50", mustGet(t, first, "lineTotal"))

	// Empty description is omitted so conditionals treat it as absent
	second := items.List()[1]
	assert.False(t, second.Has("description"))
}

func TestAssembler_OptionalFieldsOmitted(t *testing.T) {
	doc := newTestDocument(t)
	org, err := partner.NewOrganization("Bare Org")
	require.NoError(t, err)

	asm := NewAssembler(nil, nil)
	rec, err := asm.Assemble(context.Background(), AssembleInput{
		Entity:       doc,
		Organization: org,
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleEnglish,
	})
	require.NoError(t, err)

	assert.False(t, rec.Has("dueDate"))
	assert.False(t, rec.Has("notes"))
	assert.False(t, rec.Has("organizationAddress"))
	assert.False(t, rec.Has("counterpartyName"))
	assert.False(t, rec.Has("payments"))
}

func TestAssembler_DueDateAndPayments(t *testing.T) {
	doc := newTestDocument(t)
	due := time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC)
	doc.DueDate = &due
	payment, err := trade.NewPayment(trade.PaymentMethodCash, decimal.RequireFromString("10.00"), time.Now())
	require.NoError(t, err)
	require.NoError(t, doc.AddPayment(payment))

	asm := NewAssembler(nil, nil)
	rec, err := asm.Assemble(context.Background(), AssembleInput{
		Entity:       doc,
		Organization: newTestOrganization(t),
		Kind:         document.DocKindSalesInvoice,
		Locale:       document.LocaleEnglish,
	})
	require.NoError(t, err)

	assert.Equal(t, "15 Apr 2025", mustGet(t, rec, "dueDate"))
	assert.Equal(t, "15.88", mustGet(t, rec, "balanceDue"))

	payments, ok := rec.Get("payments")
	require.True(t, ok)
	require.Len(t, payments.List(), 1)
	assert.Equal(t, "Cash", mustGet(t, payments.List()[0], "method"))
	assert.Equal(t, "10.00", mustGet(t, payments.List()[0], "amount"))
}

func TestMethodLabel(t *testing.T) {
	titler := cases.Title(document.LocaleEnglish.Tag())
	assert.Equal(t, "Cash", methodLabel(titler, trade.PaymentMethodCash))
	assert.Equal(t, "Bank Transfer", methodLabel(titler, trade.PaymentMethodBankTransfer))
}

func TestAssembler_ComplianceImage(t *testing.T) {
	t.Run("requested and generated", func(t *testing.T) {
		qr := &fakeQRGenerator{image: "data:image/png;base64,AAAA"}
		asm := NewAssembler(qr, nil)

		rec, err := asm.Assemble(context.Background(), AssembleInput{
			Entity:                 newTestDocument(t),
			Organization:           newTestOrganization(t),
			Kind:                   document.DocKindReceipt,
			Locale:                 document.LocaleEnglish,
			IncludeComplianceImage: true,
		})
		require.NoError(t, err)

		flag, ok := rec.Get("includeQrImage")
		require.True(t, ok)
		assert.True(t, flag.Truthy())
		assert.Equal(t, "data:image/png;base64,AAAA", mustGet(t, rec, "qrImage"))
		assert.Equal(t, 1, qr.calls)
	})

	t.Run("not requested skips generation", func(t *testing.T) {
		qr := &fakeQRGenerator{image: "unused"}
		asm := NewAssembler(qr, nil)

		rec, err := asm.Assemble(context.Background(), AssembleInput{
			Entity:       newTestDocument(t),
			Organization: newTestOrganization(t),
			Kind:         document.DocKindReceipt,
			Locale:       document.LocaleEnglish,
		})
		require.NoError(t, err)

		assert.False(t, rec.Has("qrImage"))
		assert.Equal(t, 0, qr.calls)
	})

	t.Run("generation failure propagates", func(t *testing.T) {
		qr := &fakeQRGenerator{err: errors.New("signing service down")}
		asm := NewAssembler(qr, nil)

		_, err := asm.Assemble(context.Background(), AssembleInput{
			Entity:                 newTestDocument(t),
			Organization:           newTestOrganization(t),
			Kind:                   document.DocKindReceipt,
			Locale:                 document.LocaleEnglish,
			IncludeComplianceImage: true,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "compliance image")
	})
}

func TestAssembler_InputValidation(t *testing.T) {
	asm := NewAssembler(nil, nil)

	_, err := asm.Assemble(context.Background(), AssembleInput{
		Organization: newTestOrganization(t),
		Kind:         document.DocKindReceipt,
		Locale:       document.LocaleEnglish,
	})
	assert.Error(t, err, "missing entity must be rejected")

	_, err = asm.Assemble(context.Background(), AssembleInput{
		Entity: newTestDocument(t),
		Kind:   document.DocKindReceipt,
		Locale: document.LocaleEnglish,
	})
	assert.Error(t, err, "missing organization must be rejected")

	_, err = asm.Assemble(context.Background(), AssembleInput{
		Entity:       newTestDocument(t),
		Organization: newTestOrganization(t),
		Kind:         "LETTER",
		Locale:       document.LocaleEnglish,
	})
	assert.Error(t, err, "unknown kind must be rejected")
}
