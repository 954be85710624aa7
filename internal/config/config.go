package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, populated from environment variables.
type Config struct {
	Port          string        `env:"PORT" envDefault:"5000"`
	Env           string        `env:"ENV" envDefault:"development"`
	DatabaseDSN   string        `env:"DATABASE_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/jobdeck?parseTime=true"`
	JWTSecret     string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry     time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`
	UploadDir     string        `env:"UPLOAD_DIR" envDefault:"uploads"`
	MaxUploadSize int64         `env:"MAX_UPLOAD_SIZE" envDefault:"5242880"` // 5MB
	FrontendURL   string        `env:"FRONTEND_URL" envDefault:"*"`
}

// Load parses configuration from the environment. It exits the process on
// invalid values rather than running with a half-parsed config.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to parse environment configuration", "error", err)
		os.Exit(1)
	}

	if cfg.Env == "production" && cfg.JWTSecret == "dev-secret-change-in-production" {
		slog.Error("JWT_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}
