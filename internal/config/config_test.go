package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "HTTP_PORT", "DATABASE_URL", "JWT_SIGNING_KEY", "TOKEN_TTL", "PUBLIC_BASE_URL"} {
		t.Setenv(key, "")
	}
	cfg := Load()
	if cfg.Env != "dev" {
		t.Errorf("Env = %q", cfg.Env)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("HTTPPort = %q", cfg.HTTPPort)
	}
	if cfg.TokenTTL != 1440*time.Minute {
		t.Errorf("TokenTTL = %v, want 1440m", cfg.TokenTTL)
	}
	if cfg.PublicBaseURL != "http://127.0.0.1:8080" {
		t.Errorf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("JWT_SIGNING_KEY", "prod-secret")
	t.Setenv("PUBLIC_BASE_URL", "https://portal.example.edu")
	cfg := Load()
	if cfg.HTTPPort != "9000" || cfg.TokenTTL != 30*time.Minute || cfg.JWTSigningKey != "prod-secret" {
		t.Errorf("unexpected cfg: %+v", cfg)
	}
	if cfg.PublicBaseURL != "https://portal.example.edu" {
		t.Errorf("PublicBaseURL = %q", cfg.PublicBaseURL)
	}
}

func TestLoadBadDuration(t *testing.T) {
	t.Setenv("TOKEN_TTL", "not-a-duration")
	if cfg := Load(); cfg.TokenTTL != 1440*time.Minute {
		t.Errorf("TokenTTL = %v, want fallback", cfg.TokenTTL)
	}
}
