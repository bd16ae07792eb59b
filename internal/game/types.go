package game

import (
	"fmt"
	"strings"
)

const (
	// TargetRange is the exclusive upper bound of the target number.
	TargetRange = 100

	EasyAttempts = 10
	HardAttempts = 7
)

type Difficulty int

const (
	Easy Difficulty = iota
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// Attempts returns the attempts budget a round gets at this difficulty.
func (d Difficulty) Attempts() int {
	if d == Hard {
		return HardAttempts
	}
	return EasyAttempts
}

func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	parsed, err := ParseDifficulty(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDifficulty accepts "easy" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	default:
		return Easy, fmt.Errorf("invalid difficulty: %q", s)
	}
}

type Status int

const (
	StatusNotStarted Status = iota
	StatusInProgress
	StatusWon
	StatusLost
)

var statusNames = map[Status]string{
	StatusNotStarted: "not_started",
	StatusInProgress: "in_progress",
	StatusWon:        "won",
	StatusLost:       "lost",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Over reports whether the round reached a terminal state.
func (s Status) Over() bool {
	return s == StatusWon || s == StatusLost
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	for status, name := range statusNames {
		if name == string(b) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("invalid status: %q", string(b))
}

type Outcome string

const (
	OutcomeNone         Outcome = ""
	OutcomeStarted      Outcome = "started"
	OutcomeInvalid      Outcome = "invalid"
	OutcomeHigher       Outcome = "higher"
	OutcomeLower        Outcome = "lower"
	OutcomeWon          Outcome = "won"
	OutcomeGameOver     Outcome = "game_over"
	OutcomeDifficulty   Outcome = "difficulty"
	OutcomeAcknowledged Outcome = "acknowledged"
)

// Result is what a controller action reports back to the shell.
// Target is only set once the round is over.
type Result struct {
	Outcome           Outcome    `json:"outcome"`
	Message           string     `json:"message"`
	Guess             *int       `json:"guess,omitempty"`
	AttemptsRemaining int        `json:"attempts_remaining"`
	Difficulty        Difficulty `json:"difficulty"`
	Status            Status     `json:"status"`
	Target            *int       `json:"target,omitempty"`
}

// Controls is the enablement of each shell control for a status.
type Controls struct {
	Start      bool `json:"start"`
	Difficulty bool `json:"difficulty"`
	Guess      bool `json:"guess"`
	Continue   bool `json:"continue"`
}

func ControlsFor(s Status) Controls {
	switch s {
	case StatusNotStarted:
		return Controls{Start: true, Difficulty: true}
	case StatusInProgress:
		return Controls{Guess: true}
	default:
		return Controls{Continue: true}
	}
}
