package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erp/docgen/internal/domain/document"
)

func TestStore_Resolve_BuiltinWhenNoOverride(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	sel, err := store.Resolve(document.DocKindReceipt, document.LocaleEnglish, nil)
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, sel.Source)
	assert.False(t, sel.OverrideDiscarded)
	assert.Equal(t, "receipt-en-80mm", sel.Template.Name)
}

func TestStore_Resolve_OverrideWins(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	custom := "CUSTOM\n{{#each items}}{{name}}{{/each}}"
	sel, err := store.Resolve(document.DocKindQuote, document.LocaleArabic, Overrides{
		{Kind: document.DocKindQuote, Locale: document.LocaleArabic}: custom,
	})
	require.NoError(t, err)
	assert.Equal(t, SourceOverride, sel.Source)
	assert.Equal(t, custom, sel.Template.Content)
	// Override inherits the built-in's paper profile
	assert.Equal(t, document.PaperProfileA4, sel.Template.PaperProfile)
}

func TestStore_Resolve_OverrideForOtherSlotIgnored(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	sel, err := store.Resolve(document.DocKindQuote, document.LocaleEnglish, Overrides{
		{Kind: document.DocKindQuote, Locale: document.LocaleArabic}: "CUSTOM {{#each items}}{{/each}}",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, sel.Source)
	assert.False(t, sel.OverrideDiscarded)
}

func TestStore_Resolve_OverrideWithoutLineItemBlockDiscarded(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	sel, err := store.Resolve(document.DocKindSalesInvoice, document.LocaleEnglish, Overrides{
		{Kind: document.DocKindSalesInvoice, Locale: document.LocaleEnglish}: "no line items {{total}}",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, sel.Source)
	assert.True(t, sel.OverrideDiscarded)
}

func TestStore_Resolve_EmptyOverrideDiscarded(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	sel, err := store.Resolve(document.DocKindSalesInvoice, document.LocaleEnglish, Overrides{
		{Kind: document.DocKindSalesInvoice, Locale: document.LocaleEnglish}: "   ",
	})
	require.NoError(t, err)
	assert.Equal(t, SourceBuiltin, sel.Source)
	assert.True(t, sel.OverrideDiscarded)
}

func TestStore_Resolve_InvalidInputs(t *testing.T) {
	store, err := NewStore()
	require.NoError(t, err)

	_, err = store.Resolve("LETTER", document.LocaleEnglish, nil)
	assert.Error(t, err)

	_, err = store.Resolve(document.DocKindReceipt, "fr", nil)
	assert.Error(t, err)
}
