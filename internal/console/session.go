// Package console implements the simulated ArgøNaut shell: key presses go
// in, output effects come out.
package console

import (
	"strings"

	"github.com/argonaut/console/internal/command"
	"github.com/argonaut/console/internal/logging"
	"github.com/argonaut/console/internal/session"
)

// DefaultPrompt is printed in front of every input line.
const DefaultPrompt = "$ "

// Banner is written once when the console is mounted.
var Banner = []string{
	"Welcome to the ArgøNaut Interactive CLI!",
	`Type "help" for a list of commands.`,
}

// Dispatcher turns a submitted line into the text to show.
type Dispatcher interface {
	Dispatch(line string) command.Result
}

// Option configures a Session at mount time.
type Option func(*Session)

// WithPrompt replaces DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// WithDispatcher replaces the built-in command set.
func WithDispatcher(d Dispatcher) Option {
	return func(s *Session) {
		s.dispatcher = d
	}
}

// WithLogger sets where session activity is logged.
func WithLogger(l *logging.Logger) Option {
	return func(s *Session) {
		s.log = l
	}
}

// Session owns the state of one mounted console: the line being edited,
// the command history, and the surface it draws on.
type Session struct {
	line       session.LineBuffer
	history    session.History
	surface    Surface
	dispatcher Dispatcher
	prompt     string
	log        *logging.Logger
}

// Mount binds a new session to surface and prints the banner and first
// prompt. A nil surface means there is nothing to mount on; Mount then
// returns nil and the console stays uninitialized.
func Mount(surface Surface, opts ...Option) *Session {
	if surface == nil {
		return nil
	}
	s := &Session{
		surface:    surface,
		dispatcher: command.Default(),
		prompt:     DefaultPrompt,
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, line := range Banner {
		surface.WriteLine(line)
	}
	surface.Write(s.freshPrompt())
	s.log.Logf("event=mount prompt=%q", s.prompt)
	return s
}

// Unmount detaches the surface. Effects performed afterwards are dropped.
func (s *Session) Unmount() {
	if s.surface == nil {
		return
	}
	s.surface = nil
	s.log.Logf("event=unmount history=%d", s.history.Len())
}

// Mounted reports whether the session still has a surface.
func (s *Session) Mounted() bool {
	return s.surface != nil
}

// Line returns the text currently being edited.
func (s *Session) Line() string {
	return s.line.String()
}

// Cursor returns the history cursor, -1 when editing live input.
func (s *Session) Cursor() int {
	return s.history.Cursor()
}

// History returns submitted commands, oldest first.
func (s *Session) History() []string {
	return s.history.Entries()
}

// HandleKey classifies a key press and reduces it.
func (s *Session) HandleKey(k KeyEvent) []Effect {
	return s.Reduce(Classify(k))
}

// Reduce applies one event to the line and history and returns the output
// it calls for. It never touches the surface.
func (s *Session) Reduce(ev Event) []Effect {
	switch ev.Kind {
	case EventSubmit:
		return s.submit()
	case EventErase:
		return s.erase()
	case EventHistoryPrev:
		entry, ok := s.history.Prev()
		if !ok {
			return nil
		}
		return s.redraw(entry)
	case EventHistoryNext:
		entry, ok := s.history.Next()
		if !ok {
			return nil
		}
		return s.redraw(entry)
	case EventPrintable:
		s.line.Append(ev.Char)
		return []Effect{write(string(ev.Char))}
	}
	return nil
}

// Perform applies a surface effect. Typing effects belong to the host and
// are ignored here.
func (s *Session) Perform(eff Effect) {
	if s.surface == nil {
		return
	}
	switch eff.Kind {
	case EffectWrite:
		s.surface.Write(eff.Text)
	case EffectWriteLine:
		s.surface.WriteLine(eff.Text)
	case EffectClear:
		s.surface.Clear()
	}
}

// Resume redraws input typed while output was still being typed, so the
// line under the new prompt matches the buffer.
func (s *Session) Resume() []Effect {
	if s.line.Len() == 0 {
		return nil
	}
	return []Effect{write(s.line.String())}
}

func (s *Session) submit() []Effect {
	line := strings.TrimSpace(s.line.String())
	res := s.dispatcher.Dispatch(line)
	s.history.Append(line)
	s.line.Clear()

	s.log.Logf("event=submit command=%q known=%t line=%q clear=%t", res.Command, res.Known(), line, res.Clear)

	effs := []Effect{
		{Kind: EffectCancelTyping},
		write("\r\n"),
	}
	if res.Clear {
		return append(effs, Effect{Kind: EffectClear}, write(s.freshPrompt()))
	}
	return append(effs, Effect{Kind: EffectType, Text: res.Text, Then: s.freshPrompt()})
}

func (s *Session) erase() []Effect {
	before := s.line.Width()
	if !s.line.Backspace() {
		return nil
	}
	cells := before - s.line.Width()
	if cells < 1 {
		cells = 1
	}
	back := strings.Repeat("\b", cells)
	return []Effect{write(back + strings.Repeat(" ", cells) + back)}
}

// redraw replaces the visible input line, blanking the old one first so no
// trailing characters survive.
func (s *Session) redraw(entry string) []Effect {
	old := s.line.Width()
	s.line.Set(entry)
	return []Effect{write("\r" + s.prompt + strings.Repeat(" ", old) + "\r" + s.prompt + entry)}
}

func (s *Session) freshPrompt() string {
	return "\r\n" + s.prompt
}
