package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme is the terminal palette.
type Theme struct {
	Name         string
	Background   lipgloss.Color
	Foreground   lipgloss.Color
	Cursor       lipgloss.Color
	CursorAccent lipgloss.Color
}

var (
	DarkTheme = Theme{
		Name:         "dark",
		Background:   lipgloss.Color("#1a1a1a"),
		Foreground:   lipgloss.Color("#ff00ff"),
		Cursor:       lipgloss.Color("#ff00ff"),
		CursorAccent: lipgloss.Color("#00ffff"),
	}
	LightTheme = Theme{
		Name:         "light",
		Background:   lipgloss.Color("#0a0a0a"),
		Foreground:   lipgloss.Color("#00ffff"),
		Cursor:       lipgloss.Color("#00ffff"),
		CursorAccent: lipgloss.Color("#ff00ff"),
	}
)

// ThemeNames lists the accepted values for ThemeByName.
var ThemeNames = []string{"auto", "dark", "light"}

// ThemeByName resolves a palette. "auto" picks dark or light from the
// terminal background.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "dark":
		return DarkTheme, nil
	case "light":
		return LightTheme, nil
	case "auto", "":
		if lipgloss.HasDarkBackground() {
			return DarkTheme, nil
		}
		return LightTheme, nil
	}
	return Theme{}, fmt.Errorf("unknown theme %q", name)
}
