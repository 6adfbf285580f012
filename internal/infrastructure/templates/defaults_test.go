package templates

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/infrastructure/render"
)

// fullRecord supplies every field the built-in templates reference
func fullRecord() document.Record {
	item := document.NewRecord()
	item.SetString("name", "Tea")
	item.SetString("description", "Loose leaf")
	item.SetString("quantity", "2")
	item.SetString("unitPrice", "6.25")
	item.SetString("lineTotal", "12.50")

	payment := document.NewRecord()
	payment.SetString("method", "CASH")
	payment.SetString("amount", "12.50")

	rec := document.NewRecord()
	rec.SetString("documentNumber", "INV-1")
	rec.SetString("issueDate", "15 Mar 2025")
	rec.SetString("dueDate", "15 Apr 2025")
	rec.SetString("printedAt", "15 Mar 2025 12:00")
	rec.SetString("organizationName", "Acme Trading")
	rec.SetString("organizationAddress", "12 Market St")
	rec.SetString("organizationPhone", "+966 11 000 0000")
	rec.SetString("organizationEmail", "hello@acme.example")
	rec.SetString("organizationTaxNumber", "300000000000003")
	rec.SetString("counterpartyName", "Blue Cafe")
	rec.SetString("counterpartyAddress", "9 Corniche Rd")
	rec.SetString("counterpartyTaxNumber", "310000000000003")
	rec.SetString("currency", "SAR")
	rec.SetString("subtotal", "12.50")
	rec.SetString("taxRate", "15.00")
	rec.SetString("taxAmount", "1.88")
	rec.SetString("total", "14.38")
	rec.SetString("paidTotal", "12.50")
	rec.SetString("balanceDue", "1.88")
	rec.SetString("notes", "Thank you")
	rec.SetBool("includeQrImage", true)
	rec.SetString("qrImage", "data:image/png;base64,AAAA")
	rec.SetList("items", []document.Record{item})
	rec.SetList("payments", []document.Record{payment})
	return rec
}

func TestBuiltinTemplates_AllSlotsPresent(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for _, kind := range document.AllDocKinds() {
		for _, locale := range document.AllLocales() {
			tmpl, err := store.Builtin(kind, locale)
			require.NoError(t, err, "%s/%s", kind, locale)
			assert.Equal(t, kind, tmpl.Kind)
			assert.Equal(t, locale, tmpl.Locale)
			assert.True(t, tmpl.HasLineItemBlock(), "%s/%s", kind, locale)
		}
	}
}

func TestBuiltinTemplates_RenderCleanWithFullRecord(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	engine := render.NewEngine()
	rec := fullRecord()

	for _, kind := range document.AllDocKinds() {
		for _, locale := range document.AllLocales() {
			tmpl, err := store.Builtin(kind, locale)
			require.NoError(t, err)

			out, problems := engine.Render(tmpl.Content, rec)
			assert.Empty(t, problems, "%s/%s must be structurally sound", kind, locale)
			assert.False(t, strings.Contains(out, "{{"),
				"%s/%s left unresolved markers:\n%s", kind, locale, out)
			assert.Contains(t, out, "INV-1")
			assert.Contains(t, out, "Tea")
		}
	}
}

func TestBuiltinTemplates_ReceiptIsThermal(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	for _, locale := range document.AllLocales() {
		tmpl, err := store.Builtin(document.DocKindReceipt, locale)
		require.NoError(t, err)
		assert.Equal(t, document.PaperProfileThermal80MM, tmpl.PaperProfile)
	}
}
