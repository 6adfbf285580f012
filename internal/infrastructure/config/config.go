package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App          AppConfig
	Log          LogConfig
	HTTP         HTTPConfig
	Presentation PresentationConfig
	Chrome       ChromeConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// PresentationConfig holds the default presentation settings applied
// by the pipeline orchestrator. Values are millimeters except
// LineSpacing, a line-height multiplier.
type PresentationConfig struct {
	PaperProfile  string
	MarginTop     int
	MarginRight   int
	MarginBottom  int
	MarginLeft    int
	PaddingTop    int
	PaddingRight  int
	PaddingBottom int
	PaddingLeft   int
	LineSpacing   float64
}

// ChromeConfig holds the print-surface (headless Chrome) settings
type ChromeConfig struct {
	Timeout   time.Duration
	RemoteURL string
	NoSandbox bool
}

// Load reads configuration from config.toml (optional) and DOCGEN_*
// environment variables, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("DOCGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:  v.GetDuration("http.read_timeout"),
			WriteTimeout: v.GetDuration("http.write_timeout"),
			IdleTimeout:  v.GetDuration("http.idle_timeout"),
		},
		Presentation: PresentationConfig{
			PaperProfile:  v.GetString("presentation.paper_profile"),
			MarginTop:     v.GetInt("presentation.margin_top"),
			MarginRight:   v.GetInt("presentation.margin_right"),
			MarginBottom:  v.GetInt("presentation.margin_bottom"),
			MarginLeft:    v.GetInt("presentation.margin_left"),
			PaddingTop:    v.GetInt("presentation.padding_top"),
			PaddingRight:  v.GetInt("presentation.padding_right"),
			PaddingBottom: v.GetInt("presentation.padding_bottom"),
			PaddingLeft:   v.GetInt("presentation.padding_left"),
			LineSpacing:   v.GetFloat64("presentation.line_spacing"),
		},
		Chrome: ChromeConfig{
			Timeout:   v.GetDuration("chrome.timeout"),
			RemoteURL: v.GetString("chrome.remote_url"),
			NoSandbox: v.GetBool("chrome.no_sandbox"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "docgen")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")

	v.SetDefault("http.read_timeout", "15s")
	v.SetDefault("http.write_timeout", "30s")
	v.SetDefault("http.idle_timeout", "60s")

	v.SetDefault("presentation.paper_profile", "")
	v.SetDefault("presentation.margin_top", 10)
	v.SetDefault("presentation.margin_right", 10)
	v.SetDefault("presentation.margin_bottom", 10)
	v.SetDefault("presentation.margin_left", 10)
	v.SetDefault("presentation.line_spacing", 1.4)

	v.SetDefault("chrome.timeout", "30s")
	v.SetDefault("chrome.no_sandbox", false)
}
