package document

import (
	"github.com/shopspring/decimal"

	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/infrastructure/render"
)

// NewRenderEngine builds the template engine with the section gates
// documents need. Gates replace the generic truthiness rule for their
// field; they are the single decision point for the section.
func NewRenderEngine() *render.Engine {
	return render.NewEngine(
		// The compliance image section opens only when the flag is set
		// and an image payload was actually produced.
		render.WithSectionGate("includeQrImage", func(rec document.Record) bool {
			flag, ok := rec.Get("includeQrImage")
			if !ok || !flag.Truthy() {
				return false
			}
			image, ok := rec.Get("qrImage")
			return ok && image.Truthy()
		}),
		// Tax blocks show only for a non-zero rate. The formatted rate
		// is a string like "15.00"; "0.00" must read as zero.
		render.WithSectionGate("taxRate", func(rec document.Record) bool {
			rate, ok := rec.Get("taxRate")
			if !ok {
				return false
			}
			d, err := decimal.NewFromString(rate.String())
			if err != nil {
				return rate.Truthy()
			}
			return !d.IsZero()
		}),
	)
}
