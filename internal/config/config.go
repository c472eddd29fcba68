// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

// Package config loads and validates the server configuration from layered
// sources: built-in defaults, an optional YAML file, then environment
// variables with the REALCONNECT_ prefix.
package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Config is the root configuration for the server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Security  SecurityConfig  `koanf:"security"`
	Recommend RecommendConfig `koanf:"recommend"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host        string        `koanf:"host" validate:"required"`
	Port        int           `koanf:"port" validate:"required,min=1,max=65535"`
	Timeout     time.Duration `koanf:"timeout" validate:"required"`
	Environment string        `koanf:"environment" validate:"oneof=development production"`
}

// DatabaseConfig holds DuckDB settings.
type DatabaseConfig struct {
	// Path is the database file, or ":memory:" for an ephemeral store.
	Path string `koanf:"path" validate:"required"`

	MaxMemory string `koanf:"max_memory"`

	// Threads caps DuckDB's worker threads; 0 uses runtime.NumCPU().
	Threads int `koanf:"threads" validate:"min=0"`

	MaxOpenConns    int           `koanf:"max_open_conns" validate:"min=0"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"min=0"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
}

// SecurityConfig holds auth and HTTP hardening settings.
type SecurityConfig struct {
	// JWTSecret signs session tokens. Required in production.
	JWTSecret string `koanf:"jwt_secret"`

	// TokenTTL bounds how long an issued token stays valid.
	TokenTTL time.Duration `koanf:"token_ttl" validate:"required"`

	// LegacyAdminEmail is the grandfathered super-admin account. The user
	// with this email (or user id 1) is a system admin without a row in
	// admin_privileges.
	LegacyAdminEmail string `koanf:"legacy_admin_email" validate:"omitempty,email"`

	// BcryptCost controls password hashing work factor.
	BcryptCost int `koanf:"bcrypt_cost" validate:"min=4,max=31"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window" validate:"required"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// RecommendConfig bounds recommendation output sizes.
type RecommendConfig struct {
	EventLimit  int `koanf:"event_limit" validate:"min=1,max=100"`
	PeopleLimit int `koanf:"people_limit" validate:"min=1,max=100"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// Validate checks struct tags plus the semantic rules tags cannot express.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if c.Server.Environment == "production" {
		if len(c.Security.JWTSecret) < 32 {
			return fmt.Errorf("security.jwt_secret must be at least 32 characters in production")
		}
	}

	return nil
}
