// Package typing prints text one character per tick to simulate someone
// typing it.
package typing

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDelay is the pause between two typed characters.
const DefaultDelay = 50 * time.Millisecond

// Tick asks the renderer for its next character. Ticks from a superseded or
// cancelled sequence are ignored.
type Tick struct {
	seq uint64
}

// Renderer is a cooperative producer of typed output. Only one sequence is
// live at a time: Start supersedes whatever was in flight.
type Renderer struct {
	delay  time.Duration
	seq    uint64
	text   []rune
	then   string
	pos    int
	active bool
}

// New returns a renderer pacing characters at delay. A non-positive delay
// falls back to DefaultDelay.
func New(delay time.Duration) Renderer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return Renderer{delay: delay}
}

// Start begins typing text. Once the last character is out, then is emitted
// in one piece. Any earlier sequence is abandoned.
func (r *Renderer) Start(text, then string) tea.Cmd {
	r.seq++
	r.text = []rune(text)
	r.then = then
	r.pos = 0
	r.active = true
	return r.tick()
}

// Cancel abandons the running sequence. Its remaining characters and its
// trailing text are never emitted.
func (r *Renderer) Cancel() bool {
	if !r.active {
		return false
	}
	r.seq++
	r.active = false
	r.text = nil
	r.then = ""
	return true
}

// Active reports whether a sequence is still typing.
func (r *Renderer) Active() bool {
	return r.active
}

// Update consumes a tick and returns the output it produced along with the
// command scheduling the next tick.
func (r *Renderer) Update(msg Tick) (string, tea.Cmd) {
	if !r.active || msg.seq != r.seq {
		return "", nil
	}
	if r.pos >= len(r.text) {
		return r.finish(), nil
	}

	out := string(r.text[r.pos])
	r.pos++
	if r.pos == len(r.text) {
		return out + r.finish(), nil
	}
	return out, r.tick()
}

func (r *Renderer) finish() string {
	then := r.then
	r.active = false
	r.text = nil
	r.then = ""
	return then
}

func (r *Renderer) tick() tea.Cmd {
	seq := r.seq
	return tea.Tick(r.delay, func(time.Time) tea.Msg {
		return Tick{seq: seq}
	})
}
