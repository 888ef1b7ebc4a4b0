// Package config reads service configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store modes supported by the data layer.
const (
	ModePostgres = "postgres"
	ModeLocal    = "local"
)

// Config holds the service configuration.
type Config struct {
	Addr          string `env:"APP_ADDR" envDefault:":8080"`
	StoreMode     string `env:"STORE_MODE" envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`
	DataDir       string `env:"DATA_DIR" envDefault:"data"`
	UploadsDir    string `env:"UPLOADS_DIR" envDefault:"uploads"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:8080"`
	JWTSecret     string `env:"JWT_SECRET" envDefault:"cabra-curado-secret"`
}

// Load reads .env (if present) and parses the environment.
func Load() (*Config, error) {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.StoreMode != ModePostgres && cfg.StoreMode != ModeLocal {
		return nil, fmt.Errorf("unknown STORE_MODE %q", cfg.StoreMode)
	}
	if cfg.StoreMode == ModePostgres && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required in postgres mode")
	}

	return cfg, nil
}
