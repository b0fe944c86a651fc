package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

type Config struct {
	Env  string `env:"ENV" envDefault:"local" validate:"required,oneof=local staging production"`
	Port string `env:"PORT" envDefault:"8080" validate:"required"`

	DatabaseURL string `env:"DATABASE_URL,required" validate:"required"`
	MetricsPort string `env:"METRICS_PORT" envDefault:"9090"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`

	JWTSecret string        `env:"JWT_SECRET,required" validate:"required,min=32"`
	JWTTTL    time.Duration `env:"JWT_TTL" envDefault:"24h" validate:"min=1m"`

	ResendAPIKey string `env:"RESEND_API_KEY" validate:"required_if=Env production,required_if=Env staging"`
	ResendFrom   string `env:"RESEND_FROM"    validate:"required_if=Env production,required_if=Env staging"`

	OrderSweepCron  string        `env:"ORDER_SWEEP_CRON" envDefault:"*/15 * * * *" validate:"required,cron"`
	PendingOrderTTL time.Duration `env:"PENDING_ORDER_TTL" envDefault:"48h" validate:"min=1m"`
}

func (c *Config) SlogLevel() slog.Level {
	return parseLevel(c.LogLevel)
}

func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ClientConfig configures the storefront command-line client.
type ClientConfig struct {
	APIURL      string        `env:"STOREFRONT_API_URL" envDefault:"http://localhost:8080" validate:"required,url"`
	Timeout     time.Duration `env:"STOREFRONT_TIMEOUT" envDefault:"30s" validate:"min=1s"`
	SessionFile string        `env:"STOREFRONT_SESSION_FILE"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"warn" validate:"oneof=debug info warn error"`
}

func (c *ClientConfig) SlogLevel() slog.Level {
	return parseLevel(c.LogLevel)
}

func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("locate config dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(dir, "bookstore", "session.json")
	}

	if err := newValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func newValidator() *validator.Validate {
	v := validator.New()
	// The builtin "cron" tag accepts seconds and descriptors; the sweeper
	// parses standard five-field specs.
	_ = v.RegisterValidation("cron", func(fl validator.FieldLevel) bool {
		_, err := cron.ParseStandard(fl.Field().String())
		return err == nil
	})
	return v
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
