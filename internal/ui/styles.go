package ui

import "github.com/charmbracelet/lipgloss"

// Styles for help output, errors and the boot splash, which are drawn
// outside the themed console.
var (
	TitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	DimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	ErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5"))
)

// Styles are the console styles derived from a Theme.
type Styles struct {
	Screen lipgloss.Style
	Text   lipgloss.Style
	Cursor lipgloss.Style
	Status lipgloss.Style
}

// NewStyles builds console styles from a palette.
func NewStyles(t Theme) Styles {
	return Styles{
		Screen: lipgloss.NewStyle().Background(t.Background),
		Text:   lipgloss.NewStyle().Foreground(t.Foreground).Background(t.Background),
		Cursor: lipgloss.NewStyle().Foreground(t.CursorAccent).Background(t.Cursor),
		Status: lipgloss.NewStyle().Foreground(t.Foreground).Bold(true),
	}
}
