package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles the interactive view is built from.
type Styles struct {
	Title   lipgloss.Style
	Panel   lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Key     lipgloss.Style
	KeyHint lipgloss.Style
}

// Styles derives the view styles from the theme colors.
func (t Theme) Styles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),

		// rounded border around the plot
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),

		Status: lipgloss.NewStyle().Foreground(t.Muted),
		Error: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Error),

		Key: lipgloss.NewStyle().
			Bold(true).
			Foreground(t.Accent),
		KeyHint: lipgloss.NewStyle().
			Foreground(t.Muted).
			Italic(true),
	}
}

// HelpLine renders key/description pairs on one line.
func (s Styles) HelpLine(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Key.Render(pairs[i]))
		b.WriteString(s.KeyHint.Render(" " + pairs[i+1]))
	}
	return b.String()
}
