package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ADDR", "")
	t.Setenv("SESSION_TTL_MINUTES", "")
	t.Setenv("CHAT_TYPING_MAX_MS", "not-a-number")

	cfg := Load()
	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.SessionTTL != 120*time.Minute {
		t.Fatalf("expected default session ttl, got %v", cfg.SessionTTL)
	}
	if cfg.TypingMax != 1500*time.Millisecond {
		t.Fatalf("malformed int should fall back to default, got %v", cfg.TypingMax)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("GO_ENV", "production")
	t.Setenv("CHAT_TYPING_MIN_MS", "10")

	cfg := Load()
	if cfg.Addr != ":9090" {
		t.Fatalf("expected :9090, got %q", cfg.Addr)
	}
	if !cfg.IsProduction() {
		t.Fatalf("expected production environment")
	}
	if cfg.TypingMin != 10*time.Millisecond {
		t.Fatalf("expected 10ms, got %v", cfg.TypingMin)
	}
}

func TestValidate_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("GO_ENV", "production")
	t.Setenv("JWT_SECRET", "")

	cfg := Load()
	if cfg.JWTSecret != DevJWTSecret {
		t.Fatalf("expected dev secret fallback, got %q", cfg.JWTSecret)
	}
	if err := cfg.Validate(); err != ErrMissingJWTSecret {
		t.Fatalf("expected ErrMissingJWTSecret, got %v", err)
	}

	t.Setenv("JWT_SECRET", "s3cr3t")
	if err := Load().Validate(); err != nil {
		t.Fatalf("expected valid production config, got %v", err)
	}
}

func TestValidate_DevelopmentAllowsDevSecret(t *testing.T) {
	t.Setenv("GO_ENV", "development")
	t.Setenv("JWT_SECRET", "")

	if err := Load().Validate(); err != nil {
		t.Fatalf("expected dev config to validate, got %v", err)
	}
}
