// Package config loads runtime configuration from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is everything the server needs to start.
type Config struct {
	HTTPAddr    string
	DBDSN       string
	RedisAddr   string
	RedisPass   string
	RedisDB     int
	JWTSecret   string
	TemplateDir string
	CacheTTL    time.Duration
}

// Load reads the environment, falling back to a .env file when present.
// Missing optional values get development defaults; Validate catches the
// rest.
func Load() (*Config, error) {
	// A missing .env is fine in production.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8080"),
		DBDSN:       os.Getenv("DB_DSN"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		RedisDB:     0,
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TemplateDir: getEnv("TEMPLATE_DIR", "web/templates"),
		CacheTTL:    5 * time.Minute,
	}

	if raw := os.Getenv("REDIS_DB"); raw != "" {
		var n int
		if _, err := fmt.Sscanf(raw, "%d", &n); err != nil {
			return nil, fmt.Errorf("config: REDIS_DB must be an integer, got %q", raw)
		}
		cfg.RedisDB = n
	}
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: CACHE_TTL must be a duration like 5m, got %q", raw)
		}
		cfg.CacheTTL = ttl
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the server cannot run with.
func (c *Config) Validate() error {
	if c.DBDSN == "" {
		return fmt.Errorf("config: DB_DSN is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("config: JWT_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
