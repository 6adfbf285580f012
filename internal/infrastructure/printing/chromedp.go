package printing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const (
	defaultChromeTimeout = 30 * time.Second
	defaultScale         = 1.0
	// Continuous thermal paper renders onto one very tall page so
	// Chrome never paginates a receipt.
	continuousHeightMM = 3000
)

// ChromedpConfig contains configuration for the chromedp print surface
type ChromedpConfig struct {
	// DefaultTimeout for print operations
	DefaultTimeout time.Duration
	// RemoteURL is the URL of a remote Chrome/Chromium instance (optional)
	// If empty, chromedp will launch a new browser instance
	RemoteURL string
	// NoSandbox runs Chrome without sandbox (required for Docker/root)
	NoSandbox bool
	// Scale for rendering (default: 1.0)
	Scale float64
	// Logger for debug output
	Logger *zap.Logger
}

// ChromedpSurface prints HTML to PDF using Chrome DevTools Protocol
type ChromedpSurface struct {
	config      *ChromedpConfig
	logger      *zap.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

// NewChromedpSurface creates a new chromedp-based print surface
func NewChromedpSurface(config *ChromedpConfig) (*ChromedpSurface, error) {
	if config == nil {
		config = &ChromedpConfig{}
	}
	if config.DefaultTimeout == 0 {
		config.DefaultTimeout = defaultChromeTimeout
	}
	if config.Scale == 0 {
		config.Scale = defaultScale
	}

	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	surface := &ChromedpSurface{
		config: config,
		logger: logger,
	}
	surface.initAllocator()
	return surface, nil
}

func (s *ChromedpSurface) initAllocator() {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-first-run", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true), // Important for Docker
		chromedp.Flag("disable-background-networking", true),
		chromedp.Flag("disable-sync", true),
		chromedp.Flag("font-render-hinting", "none"),
	)

	if s.config.NoSandbox {
		opts = append(opts, chromedp.Flag("no-sandbox", true))
	}

	if s.config.RemoteURL != "" {
		s.allocCtx, s.allocCancel = chromedp.NewRemoteAllocator(context.Background(), s.config.RemoteURL)
	} else {
		s.allocCtx, s.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	}
}

// Print converts HTML content to PDF
func (s *ChromedpSurface) Print(ctx context.Context, req *PrintRequest) (*PrintResult, error) {
	if req == nil {
		return nil, NewSurfaceError(ErrCodeInvalidHTML, "print request is nil", nil)
	}
	if strings.TrimSpace(req.HTML) == "" {
		return nil, NewSurfaceError(ErrCodeInvalidHTML, "HTML content is empty", nil)
	}
	if !req.Profile.IsValid() {
		return nil, NewSurfaceError(ErrCodeInvalidProfile, "invalid paper profile: "+req.Profile.String(), nil)
	}

	startTime := time.Now()

	timeout := req.Timeout
	if timeout == 0 {
		timeout = s.config.DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	browserCtx, browserCancel := chromedp.NewContext(s.allocCtx,
		chromedp.WithLogf(func(format string, args ...interface{}) {
			s.logger.Debug(fmt.Sprintf(format, args...))
		}),
	)
	defer browserCancel()

	params := s.buildPrintParams(req)

	var pdfData []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, req.HTML).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(params.paperWidth).
				WithPaperHeight(params.paperHeight).
				WithMarginTop(params.marginTop).
				WithMarginRight(params.marginRight).
				WithMarginBottom(params.marginBottom).
				WithMarginLeft(params.marginLeft).
				WithScale(params.scale).
				Do(ctx)
			if err != nil {
				return err
			}
			pdfData = data
			return nil
		}),
	)

	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, NewSurfaceError(ErrCodePrintTimeout,
				fmt.Sprintf("PDF rendering timed out after %v", timeout), err)
		}
		if ctx.Err() == context.Canceled {
			return nil, NewSurfaceError(ErrCodePrintTimeout, "PDF rendering was cancelled", err)
		}
		s.logger.Error("chromedp printing failed", zap.Error(err))
		return nil, NewSurfaceError(ErrCodePrintFailed, "chromedp execution failed: "+err.Error(), err)
	}

	if len(pdfData) == 0 {
		return nil, NewSurfaceError(ErrCodePrintFailed, "generated PDF is empty", nil)
	}

	duration := time.Since(startTime)
	s.logger.Info("PDF printed",
		zap.String("title", req.Title),
		zap.String("paper_profile", req.Profile.String()),
		zap.Int("bytes", len(pdfData)),
		zap.Duration("duration", duration))

	return &PrintResult{
		PDFData:  pdfData,
		Duration: duration,
	}, nil
}

// Close releases the Chrome allocator
func (s *ChromedpSurface) Close() error {
	if s.allocCancel != nil {
		s.allocCancel()
	}
	return nil
}

type printParams struct {
	paperWidth   float64
	paperHeight  float64
	marginTop    float64
	marginRight  float64
	marginBottom float64
	marginLeft   float64
	scale        float64
}

func (s *ChromedpSurface) buildPrintParams(req *PrintRequest) *printParams {
	params := &printParams{scale: s.config.Scale}

	// Chrome takes paper dimensions in inches
	params.paperWidth = mmToInches(float64(req.Profile.WidthMM()))
	if req.Profile.IsThermal() {
		params.paperHeight = mmToInches(continuousHeightMM)
	} else {
		params.paperHeight = mmToInches(float64(req.Profile.HeightMM()))
	}

	m := req.Layout.Margins
	params.marginTop = mmToInches(float64(m.Top))
	params.marginRight = mmToInches(float64(m.Right))
	params.marginBottom = mmToInches(float64(m.Bottom))
	params.marginLeft = mmToInches(float64(m.Left))

	return params
}

func mmToInches(mm float64) float64 {
	return mm / 25.4
}
