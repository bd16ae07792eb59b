package models

import (
	"time"

	"guess-the-number/internal/game"
)

// PlayerSession is one player's live round as held by a session store.
type PlayerSession struct {
	ID        string        `json:"id" redis:"id"`
	State     game.Snapshot `json:"state" redis:"state"`
	CreatedAt time.Time     `json:"created_at" redis:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" redis:"updated_at"`
}

// SessionStatus is the player-facing view of a session.
type SessionStatus struct {
	SessionID string `json:"session_id"`
	game.PublicSnapshot
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *PlayerSession) Status() SessionStatus {
	return SessionStatus{
		SessionID:      s.ID,
		PublicSnapshot: s.State.Public(),
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
	}
}
