package services

import (
	"guess-the-number/internal/game"
	"guess-the-number/internal/models"
)

// Broadcaster pushes round updates to live connections of a session.
type Broadcaster interface {
	BroadcastRoundUpdate(sessionID string, result game.Result, status models.SessionStatus)
	BroadcastSessionEnded(sessionID string)
}

type nopBroadcaster struct{}

func (nopBroadcaster) BroadcastRoundUpdate(string, game.Result, models.SessionStatus) {}

func (nopBroadcaster) BroadcastSessionEnded(string) {}
