package quiz

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	promptColor  = lipgloss.Color("#2196F3")
	successColor = lipgloss.Color("#8BC34A")
	errorColor   = lipgloss.Color("#e53935")
)

// styles are bound to the renderer of one writer, so output to a pipe or a
// buffer is left uncolored.
type styles struct {
	Prompt   lipgloss.Style
	Question lipgloss.Style
	Option   lipgloss.Style
	Warning  lipgloss.Style
	Score    lipgloss.Style
}

func newStyles(out io.Writer) styles {
	r := lipgloss.NewRenderer(out)
	return styles{
		Prompt:   r.NewStyle().Foreground(promptColor),
		Question: r.NewStyle().Bold(true),
		Option:   r.NewStyle().Faint(true),
		Warning:  r.NewStyle().Foreground(errorColor),
		Score:    r.NewStyle().Bold(true).Foreground(successColor),
	}
}
