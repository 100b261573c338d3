package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/argonaut/console/internal/console"
)

// keyEvents translates a Bubble Tea key message into console key events.
// Pasted or buffered runes arrive together and are split one per event.
func keyEvents(msg tea.KeyMsg) []console.KeyEvent {
	switch msg.Type {
	case tea.KeyEnter:
		return []console.KeyEvent{{Key: console.KeyEnter, Alt: msg.Alt}}
	case tea.KeyBackspace, tea.KeyCtrlH:
		return []console.KeyEvent{{Key: console.KeyBackspace, Alt: msg.Alt}}
	case tea.KeyUp:
		return []console.KeyEvent{{Key: console.KeyArrowUp, Alt: msg.Alt}}
	case tea.KeyDown:
		return []console.KeyEvent{{Key: console.KeyArrowDown, Alt: msg.Alt}}
	case tea.KeySpace:
		return []console.KeyEvent{{Key: " ", Alt: msg.Alt}}
	case tea.KeyRunes:
		evs := make([]console.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			evs = append(evs, console.KeyEvent{Key: string(r), Alt: msg.Alt})
		}
		return evs
	}

	// Remaining non-negative key types are control characters.
	return []console.KeyEvent{{Key: msg.String(), Alt: msg.Alt, Ctrl: msg.Type >= 0}}
}
