// Package game holds the number-guessing state machine. It knows nothing
// about how it is presented; shells call the controller and render the
// Result it returns.
package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ErrIllegalAction is returned when an action is not valid in the
// controller's current status.
var ErrIllegalAction = errors.New("action not allowed in current state")

// TargetSource draws the target number. *rand.Rand from math/rand/v2
// satisfies it.
type TargetSource interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.Intn(n) }

// Controller drives one player's rounds. It is not safe for concurrent use.
type Controller struct {
	source     TargetSource
	difficulty Difficulty
	status     Status

	target            int
	attemptsRemaining int
	guesses           []int
	last              Result
}

type Option func(*Controller)

func WithTargetSource(src TargetSource) Option {
	return func(c *Controller) {
		c.source = src
	}
}

func WithDifficulty(d Difficulty) Option {
	return func(c *Controller) {
		c.difficulty = d
	}
}

func NewController(opts ...Option) *Controller {
	c := &Controller{source: globalSource{}}
	for _, opt := range opts {
		opt(c)
	}
	c.attemptsRemaining = c.difficulty.Attempts()
	return c
}

func (c *Controller) Status() Status { return c.status }

func (c *Controller) Difficulty() Difficulty { return c.difficulty }

func (c *Controller) AttemptsRemaining() int { return c.attemptsRemaining }

func (c *Controller) MaxAttempts() int { return c.difficulty.Attempts() }

func (c *Controller) Controls() Controls { return ControlsFor(c.status) }

// LastResult is the result of the most recent action, for shells that
// redraw from state.
func (c *Controller) LastResult() Result { return c.last }

func (c *Controller) Guesses() []int { return append([]int(nil), c.guesses...) }

func (c *Controller) illegal(action string) error {
	return fmt.Errorf("%s while %s: %w", action, c.status, ErrIllegalAction)
}

// Start begins a round with a fresh target and the attempts budget of the
// current difficulty.
func (c *Controller) Start() (Result, error) {
	if c.status != StatusNotStarted {
		return Result{}, c.illegal("start")
	}

	c.target = c.source.IntN(TargetRange)
	c.attemptsRemaining = c.difficulty.Attempts()
	c.guesses = nil
	c.status = StatusInProgress

	return c.report(OutcomeStarted, fmt.Sprintf(
		"I've picked a number between 0 and %d. You have %d attempts.",
		TargetRange-1, c.attemptsRemaining), nil), nil
}

func (c *Controller) ToggleDifficulty() (Difficulty, error) {
	if c.status != StatusNotStarted {
		return c.difficulty, c.illegal("toggle difficulty")
	}

	if c.difficulty == Easy {
		c.difficulty = Hard
	} else {
		c.difficulty = Easy
	}
	c.attemptsRemaining = c.difficulty.Attempts()
	c.report(OutcomeDifficulty, fmt.Sprintf("Difficulty set to %s (%d attempts).",
		c.difficulty, c.attemptsRemaining), nil)

	return c.difficulty, nil
}

// SubmitGuess evaluates raw player input. Unparseable input yields an
// OutcomeInvalid result without consuming an attempt; it is not an error.
func (c *Controller) SubmitGuess(raw string) (Result, error) {
	if c.status != StatusInProgress {
		return Result{}, c.illegal("guess")
	}

	guess, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return c.report(OutcomeInvalid, "Please provide a whole number.", nil), nil
	}

	c.attemptsRemaining--
	c.guesses = append(c.guesses, guess)

	switch {
	case guess == c.target:
		c.status = StatusWon
		return c.report(OutcomeWon, fmt.Sprintf(
			"Yay! You guessed the number %d in %d attempts.", c.target, len(c.guesses)), &guess), nil
	case c.attemptsRemaining <= 0:
		c.attemptsRemaining = 0
		c.status = StatusLost
		return c.report(OutcomeGameOver, fmt.Sprintf(
			"Game Over! The number was %d.", c.target), &guess), nil
	case guess > c.target:
		return c.report(OutcomeLower, fmt.Sprintf(
			"The number is lower than %d. %d attempts remaining.", guess, c.attemptsRemaining), &guess), nil
	default:
		return c.report(OutcomeHigher, fmt.Sprintf(
			"The number is higher than %d. %d attempts remaining.", guess, c.attemptsRemaining), &guess), nil
	}
}

// AcknowledgeRoundEnd discards a finished round and returns to NotStarted.
func (c *Controller) AcknowledgeRoundEnd() error {
	if !c.status.Over() {
		return c.illegal("continue")
	}

	c.status = StatusNotStarted
	c.target = 0
	c.guesses = nil
	c.attemptsRemaining = c.difficulty.Attempts()
	c.report(OutcomeAcknowledged, "", nil)
	return nil
}

func (c *Controller) report(outcome Outcome, msg string, guess *int) Result {
	res := Result{
		Outcome:           outcome,
		Message:           msg,
		Guess:             guess,
		AttemptsRemaining: c.attemptsRemaining,
		Difficulty:        c.difficulty,
		Status:            c.status,
	}
	if c.status.Over() {
		target := c.target
		res.Target = &target
	}
	c.last = res
	return res
}
