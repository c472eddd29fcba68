// RealConnect - Event Networking and People Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/realconnect

package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default configuration must validate: %v", err)
	}
}

func TestLoadAppliesDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Recommend.EventLimit != 5 || cfg.Recommend.PeopleLimit != 10 {
		t.Errorf("recommend limits = %d/%d, want 5/10", cfg.Recommend.EventLimit, cfg.Recommend.PeopleLimit)
	}
	if cfg.Security.TokenTTL != 24*time.Hour {
		t.Errorf("Security.TokenTTL = %v, want 24h", cfg.Security.TokenTTL)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("REALCONNECT_SERVER_PORT", "9999")
	t.Setenv("REALCONNECT_LOGGING_LEVEL", "debug")
	t.Setenv("REALCONNECT_SECURITY_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"REALCONNECT_SERVER_PORT", "server.port"},
		{"REALCONNECT_DATABASE_MAX_OPEN_CONNS", "database.max_open_conns"},
		{"REALCONNECT_SECURITY_JWT_SECRET", "security.jwt_secret"},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.in); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateRejectsWeakProductionSecret(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Environment = "production"
	cfg.Security.JWTSecret = "short"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error for short production JWT secret")
	}
	if !strings.Contains(err.Error(), "jwt_secret") {
		t.Errorf("error should mention jwt_secret, got %v", err)
	}
}

func TestValidateRejectsBadPort(t *testing.T) {
	cfg := defaultConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for port 0")
	}
}
