package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"guess-the-number/internal/config"
	"guess-the-number/internal/game"
	"guess-the-number/internal/models"
	"guess-the-number/internal/services"
)

func TestRedisService(t *testing.T) {
	cfg := &config.Config{
		RedisURL:   "localhost:6379",
		RedisPass:  "",
		RedisDB:    0,
		SessionTTL: time.Minute,
	}

	redisService, err := services.NewRedisService(cfg)
	if err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	defer redisService.Close()

	ctx := context.Background()
	c := game.NewController(game.WithTargetSource(fixedTarget(17)))
	c.Start()
	c.SubmitGuess("50")

	session := &models.PlayerSession{
		ID:        models.GenerateSessionID(),
		State:     c.Snapshot(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := redisService.Save(ctx, session); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}
	defer redisService.Delete(ctx, session.ID)

	retrieved, err := redisService.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("Failed to get session: %v", err)
	}
	if retrieved.State.Target != 17 || retrieved.State.AttemptsRemaining != 9 {
		t.Errorf("Session state mismatch: %+v", retrieved.State)
	}
	if retrieved.State.Status != game.StatusInProgress {
		t.Errorf("Expected in_progress, got %s", retrieved.State.Status)
	}

	sessions, err := redisService.List(ctx)
	if err != nil {
		t.Fatalf("Failed to list sessions: %v", err)
	}
	found := false
	for _, s := range sessions {
		if s.ID == session.ID {
			found = true
		}
	}
	if !found {
		t.Error("Saved session missing from list")
	}

	deleted, err := redisService.Delete(ctx, session.ID)
	if err != nil || !deleted {
		t.Errorf("Expected session deleted, got %v (%v)", deleted, err)
	}
	if _, err := redisService.Get(ctx, session.ID); !errors.Is(err, services.ErrSessionNotFound) {
		t.Errorf("Expected ErrSessionNotFound after delete, got %v", err)
	}
}
