// Package tui is the terminal shell for the game. It forwards key presses
// to a Controller and renders the controller's state; it holds no game
// state of its own beyond the text being typed.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"guess-the-number/internal/game"
)

const maxInputLen = 6

type Controller interface {
	Start() (game.Result, error)
	SubmitGuess(raw string) (game.Result, error)
	ToggleDifficulty() (game.Difficulty, error)
	AcknowledgeRoundEnd() error
	Status() game.Status
	Difficulty() game.Difficulty
	AttemptsRemaining() int
	Controls() game.Controls
	LastResult() game.Result
}

type Model struct {
	ctrl     Controller
	input    string
	showHelp bool
	err      string
}

func New(ctrl Controller) Model {
	return Model{ctrl: ctrl}
}

func Run(ctrl Controller) error {
	_, err := tea.NewProgram(New(ctrl), tea.WithAltScreen()).Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Input() string { return m.input }

func (m Model) ShowingHelp() bool { return m.showHelp }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.showHelp {
		if key.Type == tea.KeyEsc {
			m.showHelp = false
		}
		return m, nil
	}

	controls := m.ctrl.Controls()
	m.err = ""

	switch key.String() {
	case "s":
		if controls.Start {
			_, err := m.ctrl.Start()
			m.setErr(err)
			m.input = ""
		}
	case "d":
		if controls.Difficulty {
			_, err := m.ctrl.ToggleDifficulty()
			m.setErr(err)
		}
	case "c":
		if controls.Continue {
			m.setErr(m.ctrl.AcknowledgeRoundEnd())
			m.input = ""
		}
	case "enter":
		if controls.Guess {
			res, err := m.ctrl.SubmitGuess(m.input)
			m.setErr(err)
			if err == nil && res.Outcome != game.OutcomeInvalid {
				m.input = ""
			}
		}
	case "backspace":
		if controls.Guess && len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	default:
		if controls.Guess && key.Type == tea.KeyRunes {
			m.appendInput(key.Runes)
		}
	}

	return m, nil
}

func (m *Model) appendInput(runes []rune) {
	for _, r := range runes {
		if len(m.input) >= maxInputLen {
			return
		}
		if (r >= '0' && r <= '9') || (r == '-' && m.input == "") {
			m.input += string(r)
		}
	}
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.err = err.Error()
	}
}

func (m Model) View() string {
	if m.showHelp {
		return lipgloss.JoinVertical(lipgloss.Left,
			helpStyle.Render(game.HelpText),
			hintStyle.Render("esc or ? to close"),
		)
	}

	controls := m.ctrl.Controls()
	difficulty := "Easy"
	if m.ctrl.Difficulty() == game.Hard {
		difficulty = "Hard"
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("(s) Start", controls.Start),
		"  ",
		button("(d) "+difficulty, controls.Difficulty),
		"  ",
		button("(?) Help", true),
	)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Guess The Number"))
	b.WriteString("\n\n")
	b.WriteString(buttons)
	b.WriteString("\n\n")
	b.WriteString("Type a number and press Enter\n")
	if m.ctrl.Status() != game.StatusNotStarted {
		b.WriteString(attemptsStyle.Render(fmt.Sprintf("Attempts Remaining : %d", m.ctrl.AttemptsRemaining())))
		b.WriteString("\n")
	}

	cursor := ""
	if controls.Guess {
		cursor = "_"
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		inputStyle.Render(m.input+cursor),
		"  ",
		button("(enter) Guess!", controls.Guess),
		"  ",
		button("(c) Continue", controls.Continue),
	))
	b.WriteString("\n")

	if res := m.ctrl.LastResult(); res.Message != "" && res.Outcome != game.OutcomeDifficulty {
		b.WriteString(renderResult(res))
		b.WriteString("\n")
	}
	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(hintStyle.Render("q to quit"))
	return b.String()
}

func button(label string, enabled bool) string {
	if enabled {
		return buttonStyle.Render(label)
	}
	return disabledButtonStyle.Render(label)
}

func renderResult(res game.Result) string {
	switch res.Outcome {
	case game.OutcomeWon:
		return wonStyle.Render(res.Message)
	case game.OutcomeGameOver:
		return lostStyle.Render(res.Message)
	default:
		return resultStyle.Render(res.Message)
	}
}
