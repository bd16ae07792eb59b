package services

import (
	"context"
	"errors"
	"time"

	"guess-the-number/internal/models"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore persists player sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.PlayerSession) error
	// Get returns ErrSessionNotFound for unknown or expired sessions.
	Get(ctx context.Context, id string) (*models.PlayerSession, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*models.PlayerSession, error)
	// CleanupStale drops sessions not updated within maxAge and reports
	// how many were removed.
	CleanupStale(ctx context.Context, maxAge time.Duration) (int, error)
	Close() error
}
