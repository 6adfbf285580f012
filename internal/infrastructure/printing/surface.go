package printing

import (
	"context"
	"time"

	"github.com/erp/docgen/internal/domain/document"
)

// PrintRequest contains the parameters for sending a presented
// document to a print surface.
type PrintRequest struct {
	// HTML is the fully presented document (shell included)
	HTML string
	// Profile defines the output paper dimensions
	Profile document.PaperProfile
	// Layout carries the page margins applied at print time
	Layout document.PageLayout
	// Title for the output document metadata
	Title string
	// Timeout overrides the surface's default timeout
	Timeout time.Duration
}

// PrintResult contains the output from a print surface.
type PrintResult struct {
	// PDFData is the raw PDF file content
	PDFData []byte
	// Duration is how long the rendering took
	Duration time.Duration
}

// Surface converts presented HTML into a printable artifact. The
// production implementation drives headless Chrome; tests substitute
// an in-memory fake.
type Surface interface {
	// Print converts HTML content to a PDF document
	Print(ctx context.Context, req *PrintRequest) (*PrintResult, error)
	// Close releases any resources held by the surface
	Close() error
}

// SurfaceError represents an error during printing
type SurfaceError struct {
	Code    string
	Message string
	Cause   error
}

func (e *SurfaceError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *SurfaceError) Unwrap() error {
	return e.Cause
}

// Error codes for print failures
const (
	ErrCodePrintTimeout   = "PRINT_TIMEOUT"
	ErrCodePrintFailed    = "PRINT_FAILED"
	ErrCodeInvalidHTML    = "INVALID_HTML"
	ErrCodeInvalidProfile = "INVALID_PAPER_PROFILE"
)

// NewSurfaceError creates a new SurfaceError
func NewSurfaceError(code, message string, cause error) *SurfaceError {
	return &SurfaceError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
