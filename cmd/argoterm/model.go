package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/argonaut/console/internal/boot"
	"github.com/argonaut/console/internal/config"
	"github.com/argonaut/console/internal/console"
	"github.com/argonaut/console/internal/logging"
	"github.com/argonaut/console/internal/typing"
	"github.com/argonaut/console/internal/ui"
)

// states
type state int

const (
	stateSplash state = iota
	stateConsole
)

type model struct {
	log      *logging.Logger
	state    state
	splash   boot.Splash
	screen   *ui.Screen
	console  *console.Session
	typer    typing.Renderer
	styles   ui.Styles
	width    int
	height   int
	quitting bool
}

func initialModel(cfg config.Config, theme ui.Theme, log *logging.Logger) model {
	screen := ui.NewScreen(cfg.Scrollback)
	m := model{
		log:    log,
		state:  stateConsole,
		splash: boot.New(),
		screen: screen,
		console: console.Mount(screen,
			console.WithPrompt(cfg.Prompt),
			console.WithLogger(log),
		),
		typer:  typing.New(cfg.TypingDelay),
		styles: ui.NewStyles(theme),
	}
	if cfg.Splash {
		m.state = stateSplash
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.state == stateSplash {
		return m.splash.Init()
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case typing.Tick:
		out, cmd := m.typer.Update(msg)
		if out == "" {
			return m, cmd
		}
		m.console.Perform(console.Effect{Kind: console.EffectWrite, Text: out})
		if !m.typer.Active() {
			// Keys pressed while output was typing belong after the new prompt.
			m.apply(m.console.Resume())
		}
		return m, cmd
	case boot.DoneMsg:
		m.state = stateConsole
		return m, nil
	}

	if m.state == stateSplash {
		var cmd tea.Cmd
		m.splash, cmd = m.splash.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		m.typer.Cancel()
		m.console.Unmount()
		return m, tea.Quit
	}

	if m.state == stateSplash {
		var cmd tea.Cmd
		m.splash, cmd = m.splash.Skip()
		return m, cmd
	}

	var cmds []tea.Cmd
	for _, k := range keyEvents(msg) {
		cmds = append(cmds, m.apply(m.console.HandleKey(k)))
	}
	return m, tea.Batch(cmds...)
}

// apply carries out reducer effects. Surface writes go straight to the
// session; typing is owned here.
func (m *model) apply(effs []console.Effect) tea.Cmd {
	var cmd tea.Cmd
	for _, eff := range effs {
		switch eff.Kind {
		case console.EffectCancelTyping:
			if m.typer.Cancel() {
				m.log.Log("event=typing-superseded")
			}
		case console.EffectType:
			cmd = m.typer.Start(eff.Text, eff.Then)
		default:
			m.console.Perform(eff)
		}
	}
	return cmd
}

// --- Views ---

func (m model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateSplash:
		return m.viewSplash()
	case stateConsole:
		return m.viewConsole()
	}
	return ""
}

func (m model) viewSplash() string {
	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render("ArgøNaut"))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Status.Render(m.splash.Status()))
	b.WriteString(ui.DimStyle.Render("\n\nany key skip • ctrl+c quit"))
	b.WriteString("\n")
	return b.String()
}

func (m model) viewConsole() string {
	lines := m.screen.Visible(m.height)
	row, _ := m.screen.Cursor()
	row -= m.screen.Len() - len(lines)

	rendered := make([]string, len(lines))
	for i, line := range lines {
		if i == row {
			before, under, after := m.screen.CursorLine()
			rendered[i] = m.styles.Text.Render(before) +
				m.styles.Cursor.Render(under) +
				m.styles.Text.Render(after)
			continue
		}
		rendered[i] = m.styles.Text.Render(line)
	}

	view := strings.Join(rendered, "\n")
	if m.width > 0 {
		return m.styles.Screen.Width(m.width).Render(view)
	}
	return view
}
