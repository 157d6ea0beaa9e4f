package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var Module = fx.Module("config",
	fx.Provide(NewConfig),
)

// Config holds all application configuration
type Config struct {
	// Server settings
	ServerPort    int    `env:"SERVER_PORT" envDefault:"4002"`
	ServerAddress string `env:"SERVER_ADDRESS" envDefault:"0.0.0.0"`
	Environment   string `env:"ENVIRONMENT" envDefault:"local"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`

	Site         SiteConfig
	Animation    AnimationConfig
	Registration RegistrationConfig

	// Server timeouts
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// SiteConfig holds page metadata
type SiteConfig struct {
	Title       string `env:"SITE_TITLE" envDefault:"Art Finity"`
	Description string `env:"SITE_DESCRIPTION" envDefault:"Art Finity Event - Image & Video Generation"`
}

// AnimationConfig holds the scroll animation settings shipped to the browser
type AnimationConfig struct {
	// Fraction of an element that must be visible before it animates
	Threshold float64 `env:"ANIMATION_THRESHOLD" envDefault:"0.1"`

	// Class applied once when the visitor prefers reduced motion
	FadeClass string `env:"ANIMATION_FADE_CLASS" envDefault:"animate-fade-in"`
}

// RegistrationConfig holds the registration count widget settings
type RegistrationConfig struct {
	// The widget is off on the live page
	Enabled bool   `env:"REGISTRATION_WIDGET_ENABLED" envDefault:"false"`
	SheetID string `env:"REGISTRATION_SHEET_ID" envDefault:"1M1JsujO8yRzH66eVWPquFDlSePCST9IM-THuATbMmVw"`
	GID     string `env:"REGISTRATION_SHEET_GID" envDefault:"782485396"`

	// Overridable for tests and mirrors
	BaseURL string        `env:"REGISTRATION_BASE_URL" envDefault:"https://docs.google.com"`
	Timeout time.Duration `env:"REGISTRATION_TIMEOUT" envDefault:"15s"`

	// Zero disables the periodic refetch
	RefreshInterval time.Duration `env:"REGISTRATION_REFRESH_INTERVAL" envDefault:"0s"`

	// Outbound request budget towards the spreadsheet host
	RatePerMinute int `env:"REGISTRATION_RATE_PER_MINUTE" envDefault:"30"`
}

// IsConfigured returns true if the widget is enabled and has a sheet to read
func (r *RegistrationConfig) IsConfigured() bool {
	return r.Enabled && r.SheetID != ""
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerAddress, c.ServerPort)
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	var errs []error
	if c.ServerPort <= 0 || c.ServerPort > 65535 {
		errs = append(errs, fmt.Errorf("SERVER_PORT out of range: %d", c.ServerPort))
	}
	if c.Animation.Threshold <= 0 || c.Animation.Threshold > 1 {
		errs = append(errs, fmt.Errorf("ANIMATION_THRESHOLD must be in (0, 1]: %v", c.Animation.Threshold))
	}
	if c.Animation.FadeClass == "" {
		errs = append(errs, errors.New("ANIMATION_FADE_CLASS must not be empty"))
	}
	if c.Registration.RefreshInterval < 0 {
		errs = append(errs, fmt.Errorf("REGISTRATION_REFRESH_INTERVAL must not be negative: %s", c.Registration.RefreshInterval))
	}
	if c.Registration.RatePerMinute <= 0 {
		errs = append(errs, fmt.Errorf("REGISTRATION_RATE_PER_MINUTE must be positive: %d", c.Registration.RatePerMinute))
	}
	return errors.Join(errs...)
}

// LoadDotEnv loads .env files if present (for local development).
// .env never overwrites the process environment; .env.local always does.
func LoadDotEnv() {
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")
}

// Parse reads the configuration from the environment without logging
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// NewConfig creates a new Config from environment variables
func NewConfig(log *slog.Logger) (*Config, error) {
	cfg, err := Parse()
	if err != nil {
		return nil, err
	}

	log.Info("configuration loaded",
		slog.String("environment", cfg.Environment),
		slog.Int("port", cfg.ServerPort),
		slog.Float64("animation_threshold", cfg.Animation.Threshold),
		slog.Bool("registration_widget", cfg.Registration.Enabled),
	)

	return cfg, nil
}
