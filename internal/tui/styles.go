package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7469B6")).
			Background(lipgloss.Color("#E5DDC5")).
			Padding(0, 2)

	buttonStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("8"))

	disabledButtonStyle = buttonStyle.
				Foreground(lipgloss.Color("240")).
				BorderForeground(lipgloss.Color("236"))

	inputStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Background(lipgloss.Color("0")).
			Width(8).
			Padding(0, 1)

	attemptsStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#451952")).Bold(true)
	resultStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1).Border(lipgloss.RoundedBorder())
	wonStyle      = resultStyle.Foreground(lipgloss.Color("2")).BorderForeground(lipgloss.Color("2"))
	lostStyle     = resultStyle.Foreground(lipgloss.Color("1")).BorderForeground(lipgloss.Color("1"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Background(lipgloss.Color("0")).
			Padding(1, 2).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("2"))
)
