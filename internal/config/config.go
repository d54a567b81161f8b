// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath        string `env:"SAFARI_DB_PATH" envDefault:"./data/safari.db"`
	SessionSecret string `env:"SAFARI_SESSION_SECRET,required"`
	ServerHost    string `env:"SAFARI_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"SAFARI_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"SAFARI_ENV" envDefault:"development"`
	SiteURL       string `env:"SAFARI_SITE_URL" envDefault:"http://localhost:8080"` // Public base URL for sitemap links

	LogLevel   string `env:"SAFARI_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"SAFARI_UPLOADS_DIR" envDefault:"./uploads"`

	// Cache configuration
	RedisURL     string `env:"SAFARI_REDIS_URL"`                         // Optional Redis URL for distributed caching
	CachePrefix  string `env:"SAFARI_CACHE_PREFIX" envDefault:"safari:"` // Redis key prefix
	CacheTTL     int    `env:"SAFARI_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"SAFARI_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// GeoIP configuration
	GeoIPDBPath string `env:"SAFARI_GEOIP_DB_PATH"` // Path to GeoLite2-Country.mmdb file

	// Seeding configuration
	DoSeed bool `env:"SAFARI_DO_SEED" envDefault:"false"` // Enable database seeding
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// GeoIPEnabled returns true if GeoIP database is configured.
func (c Config) GeoIPEnabled() bool {
	return c.GeoIPDBPath != ""
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("SAFARI_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	return cfg, nil
}
