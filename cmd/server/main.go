package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	appdoc "github.com/erp/docgen/internal/application/document"
	"github.com/erp/docgen/internal/domain/document"
	"github.com/erp/docgen/internal/infrastructure/compliance"
	"github.com/erp/docgen/internal/infrastructure/config"
	"github.com/erp/docgen/internal/infrastructure/logger"
	"github.com/erp/docgen/internal/infrastructure/printing"
	"github.com/erp/docgen/internal/infrastructure/templates"
	"github.com/erp/docgen/internal/interfaces/http/handler"
	"github.com/erp/docgen/internal/interfaces/http/router"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting document generation service",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Template store with built-in defaults
	store, err := templates.NewStore()
	if err != nil {
		log.Fatal("Failed to load built-in templates", zap.Error(err))
	}

	// Print surface backed by headless Chrome
	surface, err := printing.NewChromedpSurface(&printing.ChromedpConfig{
		DefaultTimeout: cfg.Chrome.Timeout,
		RemoteURL:      cfg.Chrome.RemoteURL,
		NoSandbox:      cfg.Chrome.NoSandbox,
		Logger:         log,
	})
	if err != nil {
		log.Fatal("Failed to initialize print surface", zap.Error(err))
	}
	defer func() {
		if err := surface.Close(); err != nil {
			log.Error("Error closing print surface", zap.Error(err))
		}
	}()

	// Application service wiring
	qr := compliance.NewQRGenerator(log)
	assembler := appdoc.NewAssembler(qr, log)
	mailer := appdoc.NewLogMailer(log)

	serviceOpts := []appdoc.ServiceOption{
		appdoc.WithDefaultLayout(presentationLayout(&cfg.Presentation)),
	}
	if cfg.Presentation.PaperProfile != "" {
		profile := document.PaperProfile(cfg.Presentation.PaperProfile)
		if !profile.IsValid() {
			log.Fatal("Invalid presentation paper profile", zap.String("profile", cfg.Presentation.PaperProfile))
		}
		serviceOpts = append(serviceOpts, appdoc.WithDefaultPaperProfile(profile))
	}

	service := appdoc.NewService(store, appdoc.NewRenderEngine(), assembler, surface, mailer, log, serviceOpts...)

	// HTTP server
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := handler.RegisterValidators(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	engine.Use(logger.GinMiddleware(log))
	engine.Use(logger.Recovery(log))

	router.NewRouter(engine).
		Register(handler.NewDocumentHandler(service)).
		Setup()

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      engine,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// presentationLayout builds the configured page layout for full-page paper
func presentationLayout(cfg *config.PresentationConfig) document.PageLayout {
	return document.PageLayout{
		Margins: document.Margins{
			Top:    cfg.MarginTop,
			Right:  cfg.MarginRight,
			Bottom: cfg.MarginBottom,
			Left:   cfg.MarginLeft,
		},
		Padding: document.Padding{
			Top:    cfg.PaddingTop,
			Right:  cfg.PaddingRight,
			Bottom: cfg.PaddingBottom,
			Left:   cfg.PaddingLeft,
		},
		LineSpacing: cfg.LineSpacing,
	}
}
