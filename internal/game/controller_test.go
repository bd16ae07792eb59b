package game_test

import (
	"encoding/json"
	"errors"
	"testing"

	"guess-the-number/internal/game"
)

type fixedTarget int

func (f fixedTarget) IntN(n int) int { return int(f) }

func startedController(t *testing.T, d game.Difficulty, target int) *game.Controller {
	t.Helper()
	c := game.NewController(game.WithDifficulty(d), game.WithTargetSource(fixedTarget(target)))
	if _, err := c.Start(); err != nil {
		t.Fatalf("Failed to start round: %v", err)
	}
	return c
}

func TestStartSetsAttemptsFromDifficulty(t *testing.T) {
	tests := []struct {
		difficulty game.Difficulty
		want       int
	}{
		{game.Easy, 10},
		{game.Hard, 7},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			c := startedController(t, tt.difficulty, 50)

			if c.AttemptsRemaining() != tt.want {
				t.Errorf("Expected %d attempts, got %d", tt.want, c.AttemptsRemaining())
			}
			if c.Status() != game.StatusInProgress {
				t.Errorf("Expected in_progress, got %s", c.Status())
			}
			want := game.Controls{Guess: true}
			if c.Controls() != want {
				t.Errorf("Expected controls %+v, got %+v", want, c.Controls())
			}
		})
	}
}

func TestStartDrawsTargetInRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		c := game.NewController()
		if _, err := c.Start(); err != nil {
			t.Fatalf("Failed to start round: %v", err)
		}
		target := c.Snapshot().Target
		if target < 0 || target >= game.TargetRange {
			t.Fatalf("Target %d outside [0, %d)", target, game.TargetRange)
		}
	}
}

func TestStartTwiceIsIllegal(t *testing.T) {
	c := startedController(t, game.Easy, 1)

	if _, err := c.Start(); !errors.Is(err, game.ErrIllegalAction) {
		t.Errorf("Expected ErrIllegalAction, got %v", err)
	}
}

func TestLowGuessReportsHigher(t *testing.T) {
	for target := 1; target < game.TargetRange; target += 7 {
		c := startedController(t, game.Easy, target)

		res, err := c.SubmitGuess("0")
		if err != nil {
			t.Fatalf("Failed to submit guess: %v", err)
		}
		if res.Outcome != game.OutcomeHigher {
			t.Errorf("target %d: expected higher, got %s", target, res.Outcome)
		}
		if c.AttemptsRemaining() != game.EasyAttempts-1 {
			t.Errorf("target %d: expected %d attempts, got %d", target, game.EasyAttempts-1, c.AttemptsRemaining())
		}
		if c.Status() != game.StatusInProgress {
			t.Errorf("target %d: expected in_progress, got %s", target, c.Status())
		}
	}
}

func TestHighGuessReportsLower(t *testing.T) {
	c := startedController(t, game.Hard, 20)

	res, err := c.SubmitGuess("21")
	if err != nil {
		t.Fatalf("Failed to submit guess: %v", err)
	}
	if res.Outcome != game.OutcomeLower {
		t.Errorf("Expected lower, got %s", res.Outcome)
	}
	if res.Guess == nil || *res.Guess != 21 {
		t.Errorf("Expected guess 21 in result, got %v", res.Guess)
	}
	if res.Target != nil {
		t.Error("Target must stay hidden while the round is in progress")
	}
}

func TestCorrectGuessOnLastAttemptWins(t *testing.T) {
	c := startedController(t, game.Hard, 33)
	for i := 0; i < game.HardAttempts-1; i++ {
		if _, err := c.SubmitGuess("1"); err != nil {
			t.Fatalf("Failed to submit guess %d: %v", i, err)
		}
	}
	if c.AttemptsRemaining() != 1 {
		t.Fatalf("Expected 1 attempt left, got %d", c.AttemptsRemaining())
	}

	res, err := c.SubmitGuess("33")
	if err != nil {
		t.Fatalf("Failed to submit guess: %v", err)
	}
	if res.Outcome != game.OutcomeWon || c.Status() != game.StatusWon {
		t.Errorf("Expected win, got outcome %s status %s", res.Outcome, c.Status())
	}
	if res.Target == nil || *res.Target != 33 {
		t.Errorf("Expected target 33 revealed, got %v", res.Target)
	}
	if c.AttemptsRemaining() != 0 {
		t.Errorf("Expected 0 attempts, got %d", c.AttemptsRemaining())
	}
}

func TestInvalidInputChangesNothing(t *testing.T) {
	inputs := []string{"", "abc", "4.5", "12x", "--3", " "}

	for _, raw := range inputs {
		c := startedController(t, game.Easy, 10)

		res, err := c.SubmitGuess(raw)
		if err != nil {
			t.Fatalf("%q: invalid input must not be an error, got %v", raw, err)
		}
		if res.Outcome != game.OutcomeInvalid {
			t.Errorf("%q: expected invalid, got %s", raw, res.Outcome)
		}
		if c.AttemptsRemaining() != game.EasyAttempts {
			t.Errorf("%q: attempts changed to %d", raw, c.AttemptsRemaining())
		}
		if c.Status() != game.StatusInProgress {
			t.Errorf("%q: status changed to %s", raw, c.Status())
		}
		if len(c.Guesses()) != 0 {
			t.Errorf("%q: guess was recorded", raw)
		}
	}
}

func TestGuessTrimsWhitespace(t *testing.T) {
	c := startedController(t, game.Easy, 7)

	res, err := c.SubmitGuess("  7\n")
	if err != nil {
		t.Fatalf("Failed to submit guess: %v", err)
	}
	if res.Outcome != game.OutcomeWon {
		t.Errorf("Expected won, got %s", res.Outcome)
	}
}

func TestEasyScenario(t *testing.T) {
	c := startedController(t, game.Easy, 42)

	steps := []struct {
		guess    string
		outcome  game.Outcome
		attempts int
	}{
		{"10", game.OutcomeHigher, 9},
		{"99", game.OutcomeLower, 8},
		{"50", game.OutcomeLower, 7},
		{"42", game.OutcomeWon, 6},
	}

	for i, step := range steps {
		res, err := c.SubmitGuess(step.guess)
		if err != nil {
			t.Fatalf("guess %d: %v", i+1, err)
		}
		if res.Outcome != step.outcome {
			t.Errorf("guess %d: expected %s, got %s", i+1, step.outcome, res.Outcome)
		}
		if res.AttemptsRemaining != step.attempts {
			t.Errorf("guess %d: expected %d attempts, got %d", i+1, step.attempts, res.AttemptsRemaining)
		}
	}

	if c.Status() != game.StatusWon {
		t.Errorf("Expected won, got %s", c.Status())
	}
}

func TestHardScenarioRunsOutOfAttempts(t *testing.T) {
	c := startedController(t, game.Hard, 5)

	var res game.Result
	var err error
	for i := 1; i <= game.HardAttempts; i++ {
		res, err = c.SubmitGuess("90")
		if err != nil {
			t.Fatalf("guess %d: %v", i, err)
		}
		if i < game.HardAttempts && res.Outcome != game.OutcomeLower {
			t.Errorf("guess %d: expected lower, got %s", i, res.Outcome)
		}
	}

	if res.Outcome != game.OutcomeGameOver {
		t.Errorf("Expected game_over on guess %d, got %s", game.HardAttempts, res.Outcome)
	}
	if c.Status() != game.StatusLost {
		t.Errorf("Expected lost, got %s", c.Status())
	}
	if c.AttemptsRemaining() != 0 {
		t.Errorf("Expected 0 attempts, got %d", c.AttemptsRemaining())
	}
	if res.Target == nil || *res.Target != 5 {
		t.Errorf("Expected target 5 revealed, got %v", res.Target)
	}
	if !c.Controls().Continue {
		t.Error("Continue should be enabled after a loss")
	}

	if _, err := c.SubmitGuess("5"); !errors.Is(err, game.ErrIllegalAction) {
		t.Errorf("Guessing after a loss should be illegal, got %v", err)
	}
}

func TestAcknowledgeRoundEnd(t *testing.T) {
	c := startedController(t, game.Easy, 3)

	if err := c.AcknowledgeRoundEnd(); !errors.Is(err, game.ErrIllegalAction) {
		t.Errorf("Expected ErrIllegalAction while in progress, got %v", err)
	}
	if c.Status() != game.StatusInProgress {
		t.Errorf("Illegal acknowledge changed status to %s", c.Status())
	}

	if _, err := c.SubmitGuess("3"); err != nil {
		t.Fatalf("Failed to submit guess: %v", err)
	}
	if err := c.AcknowledgeRoundEnd(); err != nil {
		t.Fatalf("Failed to acknowledge round end: %v", err)
	}

	if c.Status() != game.StatusNotStarted {
		t.Errorf("Expected not_started, got %s", c.Status())
	}
	if c.LastResult().Message != "" {
		t.Errorf("Expected cleared message, got %q", c.LastResult().Message)
	}
	want := game.Controls{Start: true, Difficulty: true}
	if c.Controls() != want {
		t.Errorf("Expected controls %+v, got %+v", want, c.Controls())
	}

	if _, err := c.Start(); err != nil {
		t.Errorf("Failed to start a new round: %v", err)
	}
}

func TestToggleDifficulty(t *testing.T) {
	c := game.NewController()

	d, err := c.ToggleDifficulty()
	if err != nil {
		t.Fatalf("Failed to toggle difficulty: %v", err)
	}
	if d != game.Hard || c.AttemptsRemaining() != game.HardAttempts {
		t.Errorf("Expected hard with %d attempts, got %s with %d", game.HardAttempts, d, c.AttemptsRemaining())
	}

	d, err = c.ToggleDifficulty()
	if err != nil {
		t.Fatalf("Failed to toggle difficulty: %v", err)
	}
	if d != game.Easy {
		t.Errorf("Toggling twice should restore easy, got %s", d)
	}
}

func TestToggleDifficultyDuringRoundIsIllegal(t *testing.T) {
	c := startedController(t, game.Easy, 3)

	d, err := c.ToggleDifficulty()
	if !errors.Is(err, game.ErrIllegalAction) {
		t.Errorf("Expected ErrIllegalAction, got %v", err)
	}
	if d != game.Easy || c.Difficulty() != game.Easy {
		t.Errorf("Difficulty changed during round to %s", c.Difficulty())
	}
}

func TestGuessBeforeStartIsIllegal(t *testing.T) {
	c := game.NewController()

	if _, err := c.SubmitGuess("10"); !errors.Is(err, game.ErrIllegalAction) {
		t.Errorf("Expected ErrIllegalAction, got %v", err)
	}
}

func TestSnapshotRestore(t *testing.T) {
	c := startedController(t, game.Hard, 61)
	c.SubmitGuess("30")
	c.SubmitGuess("80")

	data, err := json.Marshal(c.Snapshot())
	if err != nil {
		t.Fatalf("Failed to marshal snapshot: %v", err)
	}

	var snap game.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		t.Fatalf("Failed to unmarshal snapshot: %v", err)
	}

	restored, err := game.Restore(snap)
	if err != nil {
		t.Fatalf("Failed to restore: %v", err)
	}
	if restored.Difficulty() != game.Hard || restored.AttemptsRemaining() != 5 {
		t.Errorf("Restored %s with %d attempts", restored.Difficulty(), restored.AttemptsRemaining())
	}
	if len(restored.Guesses()) != 2 {
		t.Errorf("Expected 2 guesses, got %v", restored.Guesses())
	}

	res, err := restored.SubmitGuess("61")
	if err != nil {
		t.Fatalf("Failed to submit guess: %v", err)
	}
	if res.Outcome != game.OutcomeWon {
		t.Errorf("Restored controller lost its target, got %s", res.Outcome)
	}
}

func TestRestoreRejectsCorruptSnapshot(t *testing.T) {
	bad := []game.Snapshot{
		{Difficulty: game.Difficulty(9)},
		{Difficulty: game.Easy, AttemptsRemaining: -1},
		{Difficulty: game.Hard, AttemptsRemaining: 8},
		{Difficulty: game.Easy, Target: 100},
	}
	for i, snap := range bad {
		if _, err := game.Restore(snap); err == nil {
			t.Errorf("snapshot %d: expected error", i)
		}
	}
}

func TestPublicSnapshotHidesTarget(t *testing.T) {
	c := startedController(t, game.Easy, 12)

	if c.Snapshot().Public().Target != nil {
		t.Error("Target visible mid-round")
	}

	c.SubmitGuess("12")
	pub := c.Snapshot().Public()
	if pub.Target == nil || *pub.Target != 12 {
		t.Errorf("Expected target 12 after win, got %v", pub.Target)
	}
	if !pub.Controls.Continue {
		t.Error("Continue should be enabled after a win")
	}
}

func TestParseDifficulty(t *testing.T) {
	if d, err := game.ParseDifficulty(" HARD "); err != nil || d != game.Hard {
		t.Errorf("Expected hard, got %s (%v)", d, err)
	}
	if _, err := game.ParseDifficulty("nightmare"); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
}
