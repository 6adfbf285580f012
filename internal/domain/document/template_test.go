package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTemplate(t *testing.T) {
	content := "Receipt {{documentNumber}}\n{{#each items}}{{name}}\n{{/each}}"

	tmpl, err := NewTemplate(DocKindReceipt, LocaleEnglish, "receipt-test", content, PaperProfileThermal80MM)
	require.NoError(t, err)
	assert.Equal(t, DocKindReceipt, tmpl.Kind)
	assert.Equal(t, content, tmpl.Content)
	assert.True(t, tmpl.HasLineItemBlock())
	// Thermal paper gets the compact layout
	assert.Equal(t, ThermalLayout(), tmpl.Layout)
}

func TestNewTemplate_Validation(t *testing.T) {
	valid := "x {{#each items}}{{name}}{{/each}}"

	tests := []struct {
		name    string
		kind    DocKind
		locale  Locale
		tName   string
		content string
		profile PaperProfile
	}{
		{"invalid kind", "LETTER", LocaleEnglish, "t", valid, PaperProfileA4},
		{"invalid locale", DocKindReceipt, "fr", "t", valid, PaperProfileA4},
		{"empty name", DocKindReceipt, LocaleEnglish, "  ", valid, PaperProfileA4},
		{"empty content", DocKindReceipt, LocaleEnglish, "t", "   ", PaperProfileA4},
		{"oversized content", DocKindReceipt, LocaleEnglish, "t", strings.Repeat("a", 1024*1024+1), PaperProfileA4},
		{"invalid profile", DocKindReceipt, LocaleEnglish, "t", valid, "LEGAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTemplate(tt.kind, tt.locale, tt.tName, tt.content, tt.profile)
			assert.Error(t, err)
		})
	}
}

func TestTemplate_HasLineItemBlock(t *testing.T) {
	tmpl, err := NewTemplate(DocKindQuote, LocaleEnglish, "no-items", "just text {{total}}", PaperProfileA4)
	require.NoError(t, err)
	assert.False(t, tmpl.HasLineItemBlock())
}

func TestMargins_Validation(t *testing.T) {
	_, err := NewMargins(-1, 0, 0, 0)
	assert.Error(t, err)

	_, err = NewMargins(0, 101, 0, 0)
	assert.Error(t, err)

	m, err := NewMargins(10, 10, 10, 10)
	require.NoError(t, err)
	assert.True(t, m.Equals(Margins{Top: 10, Right: 10, Bottom: 10, Left: 10}))
}

func TestPadding_Validation(t *testing.T) {
	_, err := NewPadding(0, 0, -2, 0)
	assert.Error(t, err)

	p, err := NewPadding(1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, Padding{Top: 1, Right: 2, Bottom: 3, Left: 4}, p)
}

func TestLayoutForProfile(t *testing.T) {
	assert.Equal(t, ThermalLayout(), LayoutForProfile(PaperProfileThermal58MM))
	assert.Equal(t, ThermalLayout(), LayoutForProfile(PaperProfileThermal80MM))
	assert.Equal(t, DefaultLayout(), LayoutForProfile(PaperProfileA4))
}
