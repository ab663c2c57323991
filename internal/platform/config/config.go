// Package config loads and validates process-wide configuration.
// The resulting Config value is immutable and is passed into constructors
// explicitly; nothing in this codebase reads configuration at request time.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// MinJWTSecretLength is the minimum accepted signing-secret length in bytes.
	// A shorter secret is rejected at startup rather than silently used.
	MinJWTSecretLength = 32

	defaultAccessTokenTTL  = 7 * 24 * time.Hour
	defaultRefreshTokenTTL = 30 * 24 * time.Hour
	defaultAddr            = ":8080"
)

// JWT holds the credential-signer configuration.
type JWT struct {
	Secret          string
	Issuer          string
	Audience        string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
}

// DB holds the relational store connection settings.
type DB struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Redis holds the refresh-session store settings. Addr may be empty,
// in which case the server falls back to the relational session store.
type Redis struct {
	Addr     string
	Password string
}

// Config is the full process configuration.
type Config struct {
	Addr  string
	DB    DB
	Redis Redis
	JWT   JWT
}

// DSN returns the postgres connection string for the configured database.
func (d DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Load reads configuration from the environment. A .env file is loaded first
// when present (development convenience; absent in deployed environments).
// It returns an error when the signing secret is missing or too short, or when
// the token issuer/audience are not set.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Addr: envOr("ADDR", defaultAddr),
		DB: DB{
			Host:     envOr("DB_HOST", "localhost"),
			Port:     envOr("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
		},
		JWT: JWT{
			Secret:          os.Getenv("JWT_SECRET"),
			Issuer:          os.Getenv("JWT_ISSUER"),
			Audience:        os.Getenv("JWT_AUDIENCE"),
			AccessTokenTTL:  durationOr("JWT_ACCESS_TTL", defaultAccessTokenTTL),
			RefreshTokenTTL: durationOr("JWT_REFRESH_TTL", defaultRefreshTokenTTL),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if len(cfg.JWT.Secret) < MinJWTSecretLength {
		return nil, fmt.Errorf("JWT_SECRET must be at least %d bytes, got %d",
			MinJWTSecretLength, len(cfg.JWT.Secret))
	}
	if cfg.JWT.Issuer == "" {
		return nil, fmt.Errorf("JWT_ISSUER is not set")
	}
	if cfg.JWT.Audience == "" {
		return nil, fmt.Errorf("JWT_AUDIENCE is not set")
	}

	return cfg, nil
}

// envOr returns the value of the environment variable key, or fallback when unset.
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// durationOr parses the environment variable key as a time.Duration,
// returning fallback when unset or unparsable.
func durationOr(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
