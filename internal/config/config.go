package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	// Database
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"napoli_user"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"napoli_password"`
	DBName     string `env:"DB_NAME" envDefault:"napoli_club_db"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// HTTP server
	Port string `env:"PORT" envDefault:"8080"`

	// CORS
	CORSAllowedOrigins string `env:"CORS_ALLOWED_ORIGINS"`

	// Uploaded document files live under MediaRoot and are served at /media.
	MediaRoot string `env:"MEDIA_ROOT" envDefault:"media"`

	// MigrationsPath points at the golang-migrate SQL files.
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`
}

// Load parses environment variables into a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// AllowedOrigins returns the configured CORS origins, falling back to the
// local development frontends.
func (c *Config) AllowedOrigins() []string {
	if c.CORSAllowedOrigins == "" {
		return []string{"http://localhost:3000", "http://localhost:3001"}
	}
	return strings.Split(c.CORSAllowedOrigins, ",")
}
