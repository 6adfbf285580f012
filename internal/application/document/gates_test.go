package document

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erp/docgen/internal/domain/document"
)

func TestRenderEngine_QrImageGate(t *testing.T) {
	engine := NewRenderEngine()
	tmpl := "{{#includeQrImage}}<img src=\"{{qrImage}}\"/>{{/includeQrImage}}done"

	t.Run("flag set with payload", func(t *testing.T) {
		rec := document.NewRecord()
		rec.SetBool("includeQrImage", true)
		rec.SetString("qrImage", "data:image/png;base64,AAAA")

		out, problems := engine.Render(tmpl, rec)
		assert.Empty(t, problems)
		assert.Contains(t, out, "data:image/png;base64,AAAA")
	})

	t.Run("flag set but payload missing", func(t *testing.T) {
		rec := document.NewRecord()
		rec.SetBool("includeQrImage", true)

		out, problems := engine.Render(tmpl, rec)
		assert.Empty(t, problems)
		assert.Equal(t, "done", out)
	})

	t.Run("flag unset", func(t *testing.T) {
		rec := document.NewRecord()
		rec.SetBool("includeQrImage", false)
		rec.SetString("qrImage", "data:image/png;base64,AAAA")

		out, _ := engine.Render(tmpl, rec)
		assert.Equal(t, "done", out)
	})
}

func TestRenderEngine_TaxRateGate(t *testing.T) {
	engine := NewRenderEngine()
	tmpl := "{{#taxRate}}VAT {{taxRate}}%{{/taxRate}}end"

	t.Run("formatted zero rate omits the block", func(t *testing.T) {
		rec := document.NewRecord()
		rec.SetString("taxRate", "0.00")

		out, _ := engine.Render(tmpl, rec)
		assert.Equal(t, "end", out)
	})

	t.Run("non-zero rate shows the block", func(t *testing.T) {
		rec := document.NewRecord()
		rec.SetString("taxRate", "15.00")

		out, _ := engine.Render(tmpl, rec)
		assert.Equal(t, "VAT 15.00%end", out)
	})

	t.Run("absent rate omits the block", func(t *testing.T) {
		out, _ := engine.Render(tmpl, document.NewRecord())
		assert.Equal(t, "end", out)
	})
}
