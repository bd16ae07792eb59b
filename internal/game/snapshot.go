package game

import "fmt"

// Snapshot is the serialisable state of a Controller, used by session
// stores. Target is stored even mid-round; callers exposing a snapshot to
// players must use Public.
type Snapshot struct {
	Difficulty        Difficulty `json:"difficulty"`
	Status            Status     `json:"status"`
	Target            int        `json:"target"`
	AttemptsRemaining int        `json:"attempts_remaining"`
	MaxAttempts       int        `json:"max_attempts"`
	Guesses           []int      `json:"guesses,omitempty"`
	LastResult        Result     `json:"last_result"`
}

// PublicSnapshot hides the target until the round is over.
type PublicSnapshot struct {
	Difficulty        Difficulty `json:"difficulty"`
	Status            Status     `json:"status"`
	AttemptsRemaining int        `json:"attempts_remaining"`
	MaxAttempts       int        `json:"max_attempts"`
	Guesses           []int      `json:"guesses"`
	Controls          Controls   `json:"controls"`
	Message           string     `json:"message"`
	Target            *int       `json:"target,omitempty"`
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Difficulty:        c.difficulty,
		Status:            c.status,
		Target:            c.target,
		AttemptsRemaining: c.attemptsRemaining,
		MaxAttempts:       c.difficulty.Attempts(),
		Guesses:           c.Guesses(),
		LastResult:        c.last,
	}
}

// Restore rebuilds a controller from a snapshot taken by Snapshot.
func Restore(s Snapshot, opts ...Option) (*Controller, error) {
	if s.Difficulty != Easy && s.Difficulty != Hard {
		return nil, fmt.Errorf("restore: invalid difficulty %d", int(s.Difficulty))
	}
	if s.AttemptsRemaining < 0 || s.AttemptsRemaining > s.Difficulty.Attempts() {
		return nil, fmt.Errorf("restore: attempts remaining %d out of range", s.AttemptsRemaining)
	}
	if s.Target < 0 || s.Target >= TargetRange {
		return nil, fmt.Errorf("restore: target %d out of range", s.Target)
	}

	c := NewController(opts...)
	c.difficulty = s.Difficulty
	c.status = s.Status
	c.target = s.Target
	c.attemptsRemaining = s.AttemptsRemaining
	c.guesses = append([]int(nil), s.Guesses...)
	c.last = s.LastResult
	return c, nil
}

func (s Snapshot) Public() PublicSnapshot {
	p := PublicSnapshot{
		Difficulty:        s.Difficulty,
		Status:            s.Status,
		AttemptsRemaining: s.AttemptsRemaining,
		MaxAttempts:       s.MaxAttempts,
		Guesses:           s.Guesses,
		Controls:          ControlsFor(s.Status),
		Message:           s.LastResult.Message,
	}
	if p.Guesses == nil {
		p.Guesses = []int{}
	}
	if s.Status.Over() {
		target := s.Target
		p.Target = &target
	}
	return p
}
