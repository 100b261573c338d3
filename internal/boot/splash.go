// Package boot drives the loading screen shown before the console.
package boot

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Messages cycle on the status line while loading.
var Messages = []string{
	"Establishing secure connection...",
	"Verifying encryption protocols...",
	"Scanning for vulnerabilities...",
	"Initializing firewall...",
	"Syncing quantum entanglement...",
	"Bypassing security measures...",
	"Accessing ArgøNaut mainframe...",
}

// Granted replaces the cycling messages once loading is over.
const Granted = "Access granted. Welcome to ArgøNaut!"

// Default pacing.
const (
	RotateInterval = 2 * time.Second
	LoadDuration   = 5 * time.Second
	FadeDuration   = 1 * time.Second
)

type phase int

const (
	phaseLoading phase = iota
	phaseGranted
	phaseDone
)

type rotateMsg struct{}

type grantedMsg struct{}

type fadedMsg struct{}

// DoneMsg is sent once the splash has finished or was skipped.
type DoneMsg struct{}

// Splash is the loading screen state.
type Splash struct {
	rotate, load, fade time.Duration
	index              int
	phase              phase
}

// New returns a splash using the default pacing.
func New() Splash {
	return NewWithTiming(RotateInterval, LoadDuration, FadeDuration)
}

// NewWithTiming returns a splash with custom pacing.
func NewWithTiming(rotate, load, fade time.Duration) Splash {
	return Splash{rotate: rotate, load: load, fade: fade}
}

// Init starts the rotation and the loading timer.
func (s Splash) Init() tea.Cmd {
	return tea.Batch(
		tea.Tick(s.rotate, func(time.Time) tea.Msg { return rotateMsg{} }),
		tea.Tick(s.load, func(time.Time) tea.Msg { return grantedMsg{} }),
	)
}

// Update advances the splash. Messages that do not belong to the splash
// are ignored.
func (s Splash) Update(msg tea.Msg) (Splash, tea.Cmd) {
	switch msg.(type) {
	case rotateMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		s.index = (s.index + 1) % len(Messages)
		return s, tea.Tick(s.rotate, func(time.Time) tea.Msg { return rotateMsg{} })
	case grantedMsg:
		if s.phase != phaseLoading {
			return s, nil
		}
		s.phase = phaseGranted
		return s, tea.Tick(s.fade, func(time.Time) tea.Msg { return fadedMsg{} })
	case fadedMsg:
		if s.phase == phaseDone {
			return s, nil
		}
		s.phase = phaseDone
		return s, done
	}
	return s, nil
}

// Skip ends the splash immediately.
func (s Splash) Skip() (Splash, tea.Cmd) {
	if s.phase == phaseDone {
		return s, nil
	}
	s.phase = phaseDone
	return s, done
}

// Status is the line to show under the title.
func (s Splash) Status() string {
	if s.phase == phaseLoading {
		return Messages[s.index]
	}
	return Granted
}

// Done reports whether the console should be shown.
func (s Splash) Done() bool {
	return s.phase == phaseDone
}

func done() tea.Msg {
	return DoneMsg{}
}
