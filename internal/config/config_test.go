package config_test

import (
	"testing"
	"time"

	"guess-the-number/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "REDIS_URL", "REDIS_DB", "JWT_SECRET", "SESSION_TTL", "RATE_LIMIT_PER_SECOND", "RATE_LIMIT_BURST"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Expected port 8080, got %s", cfg.Port)
	}
	if cfg.RedisURL != "" {
		t.Errorf("Expected empty redis url, got %s", cfg.RedisURL)
	}
	if cfg.SessionTTL != 24*time.Hour {
		t.Errorf("Expected 24h session ttl, got %s", cfg.SessionTTL)
	}
	if cfg.JWTSecret == "" {
		t.Error("Development config should fall back to a jwt secret")
	}
}

func TestLoadRequiresSecretInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Error("Expected error without JWT_SECRET in production")
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("ENV", "")
	t.Setenv("SESSION_TTL", "forever")

	if _, err := config.Load(); err == nil {
		t.Error("Expected error for invalid SESSION_TTL")
	}
}
