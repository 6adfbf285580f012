package document

import (
	"context"

	"go.uber.org/zap"

	"github.com/erp/docgen/internal/domain/shared"
)

// MailMessage is an outbound email carrying a generated document
type MailMessage struct {
	To             string
	Subject        string
	Body           string
	Attachment     []byte
	AttachmentName string
}

// Mailer delivers generated documents by email. The production wiring
// plugs in an SMTP or provider-backed implementation; the default is
// log-only so email dispatch degrades gracefully when unconfigured.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}

// LogMailer records outbound mail without delivering it
type LogMailer struct {
	logger *zap.Logger
}

// NewLogMailer creates a log-only mailer
func NewLogMailer(logger *zap.Logger) *LogMailer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LogMailer{logger: logger}
}

// Send logs the message instead of delivering it
func (m *LogMailer) Send(_ context.Context, msg *MailMessage) error {
	if msg == nil || msg.To == "" {
		return shared.NewDomainError("INVALID_RECIPIENT", "Mail recipient is required")
	}
	m.logger.Info("mail dispatch (log-only)",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.Int("attachment_bytes", len(msg.Attachment)),
		zap.String("attachment_name", msg.AttachmentName))
	return nil
}
