package compliance

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/erp/docgen/internal/domain/partner"
	"github.com/erp/docgen/internal/domain/trade"
)

const qrImageSize = 256

// QRGenerator produces the tax-compliance QR image embedded in
// receipts and invoices. The payload follows the TLV scheme used by
// e-invoicing mandates: seller name, tax number, timestamp, total and
// tax amount, each as tag-length-value, base64 encoded.
type QRGenerator struct {
	logger *zap.Logger
}

// NewQRGenerator creates a compliance QR generator
func NewQRGenerator(logger *zap.Logger) *QRGenerator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QRGenerator{logger: logger}
}

// Generate returns a PNG data URI encoding the compliance payload
func (g *QRGenerator) Generate(_ context.Context, doc *trade.Document, org *partner.Organization) (string, error) {
	if doc == nil || org == nil {
		return "", fmt.Errorf("document and organization are required")
	}

	payload := tlvPayload(doc, org)
	png, err := qrcode.Encode(payload, qrcode.Medium, qrImageSize)
	if err != nil {
		return "", fmt.Errorf("qr encoding: %w", err)
	}

	g.logger.Debug("compliance image generated",
		zap.String("document_number", doc.Number),
		zap.Int("png_bytes", len(png)))

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// tlvPayload builds the base64 TLV string carried inside the QR
func tlvPayload(doc *trade.Document, org *partner.Organization) string {
	var buf bytes.Buffer
	writeTLV(&buf, 1, org.Name)
	writeTLV(&buf, 2, org.TaxNumber)
	writeTLV(&buf, 3, doc.IssueDate.UTC().Format("2006-01-02T15:04:05Z"))
	writeTLV(&buf, 4, doc.Total().StringFixed(2))
	writeTLV(&buf, 5, doc.TaxAmount().StringFixed(2))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func writeTLV(buf *bytes.Buffer, tag byte, value string) {
	b := []byte(value)
	buf.WriteByte(tag)
	buf.WriteByte(byte(len(b)))
	buf.Write(b)
}
