package services_test

import (
	"testing"
	"time"

	"guess-the-number/internal/config"
	"guess-the-number/internal/services"
)

func TestJWTService(t *testing.T) {
	jwtService := services.NewJWTService(&config.Config{JWTSecret: "test-secret", SessionTTL: time.Hour})

	token, expiresAt, err := jwtService.GenerateToken("session-123")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if time.Until(expiresAt) < 59*time.Minute {
		t.Errorf("Unexpected expiry %v", expiresAt)
	}

	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}
	if claims.SessionID != "session-123" {
		t.Errorf("Expected session-123, got %s", claims.SessionID)
	}

	other := services.NewJWTService(&config.Config{JWTSecret: "other-secret"})
	if _, err := other.ValidateToken(token); err == nil {
		t.Error("Token signed with another secret should be rejected")
	}

	if _, err := jwtService.ValidateToken("garbage"); err == nil {
		t.Error("Malformed token should be rejected")
	}
}

func TestJWTServiceDefaultTTL(t *testing.T) {
	jwtService := services.NewJWTService(&config.Config{JWTSecret: "test-secret", SessionTTL: -time.Hour})

	token, _, err := jwtService.GenerateToken("s")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}
	if _, err := jwtService.ValidateToken(token); err != nil {
		t.Errorf("Token with default ttl should validate: %v", err)
	}
}
