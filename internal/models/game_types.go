package models

import (
	"encoding/json"
	"errors"
	"strings"

	"guess-the-number/internal/game"
)

type StartRequest struct {
	Difficulty string `json:"difficulty"`
}

// GuessInput accepts both JSON strings and numbers so that clients can
// forward raw text-field contents.
type GuessInput string

func (g *GuessInput) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*g = GuessInput(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return errors.New("guess must be a string or number")
	}
	*g = GuessInput(n.String())
	return nil
}

type GuessRequest struct {
	Guess GuessInput `json:"guess" binding:"required"`
}

type ChatbotRequest struct {
	Message    string `json:"message" binding:"required"`
	Difficulty string `json:"difficulty"`
}

type ChatbotResponse struct {
	Success   bool         `json:"success"`
	SessionID string       `json:"session_id"`
	Response  string       `json:"response"`
	Result    *game.Result `json:"result,omitempty"`
}

// ActionResponse is returned by every game action endpoint.
type ActionResponse struct {
	Success   bool          `json:"success"`
	SessionID string        `json:"session_id"`
	Result    game.Result   `json:"result"`
	Session   SessionStatus `json:"session"`
}

func (r StartRequest) ParseDifficulty() (*game.Difficulty, error) {
	if strings.TrimSpace(r.Difficulty) == "" {
		return nil, nil
	}
	d, err := game.ParseDifficulty(r.Difficulty)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
