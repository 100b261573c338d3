package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultScrollback is how many lines a Screen keeps.
const DefaultScrollback = 1000

// wide marks the second cell of a double-width character.
const wide rune = -1

// Screen is a minimal terminal surface addressed in display cells. Carriage
// return moves to column 0, newline starts a fresh line, backspace moves one
// cell left without erasing, and every other character overwrites the cells
// under the cursor. Double-width characters take two cells.
type Screen struct {
	lines    [][]rune
	row, col int
	max      int
}

// NewScreen returns an empty screen keeping at most scrollback lines.
func NewScreen(scrollback int) *Screen {
	if scrollback <= 0 {
		scrollback = DefaultScrollback
	}
	return &Screen{lines: [][]rune{nil}, max: scrollback}
}

// Write draws text at the cursor.
func (s *Screen) Write(text string) {
	for _, r := range text {
		switch r {
		case '\r':
			s.col = 0
		case '\n':
			s.newline()
		case '\b':
			if s.col > 0 {
				s.col--
			}
		default:
			s.put(r)
		}
	}
}

// WriteLine draws text and moves to the start of the next line.
func (s *Screen) WriteLine(text string) {
	s.Write(text)
	s.Write("\r\n")
}

// Clear wipes every line and homes the cursor.
func (s *Screen) Clear() {
	s.lines = [][]rune{nil}
	s.row, s.col = 0, 0
}

// Len returns the number of lines held.
func (s *Screen) Len() int {
	return len(s.lines)
}

// Lines returns the scrollback with trailing blanks removed.
func (s *Screen) Lines() []string {
	out := make([]string, len(s.lines))
	for i, line := range s.lines {
		out[i] = strings.TrimRight(text(line), " ")
	}
	return out
}

// Visible returns the last height lines. A non-positive height returns
// everything.
func (s *Screen) Visible(height int) []string {
	lines := s.Lines()
	if height <= 0 || height >= len(lines) {
		return lines
	}
	return lines[len(lines)-height:]
}

// Cursor returns the cursor row and display column.
func (s *Screen) Cursor() (row, col int) {
	return s.row, s.col
}

// CursorLine splits the cursor row around the cursor. under is the
// character at the cursor, or a blank past the end of the line.
func (s *Screen) CursorLine() (before, under, after string) {
	line := s.lines[s.row]
	if s.col >= len(line) {
		return text(line), " ", ""
	}
	end := s.col + 1
	if end < len(line) && line[end] == wide {
		end++
	}
	if line[s.col] == wide {
		return text(line[:s.col]), " ", strings.TrimRight(text(line[end:]), " ")
	}
	return text(line[:s.col]), string(line[s.col]), strings.TrimRight(text(line[end:]), " ")
}

func (s *Screen) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}

	line := s.lines[s.row]
	for len(line) < s.col+w {
		line = append(line, ' ')
	}
	for c := s.col; c < s.col+w; c++ {
		split(line, c)
	}
	line[s.col] = r
	if w == 2 {
		line[s.col+1] = wide
	}
	s.lines[s.row] = line
	s.col += w
}

// split blanks whatever double-width character overlaps cell c so a partial
// overwrite never leaves half a glyph behind.
func split(line []rune, c int) {
	switch {
	case line[c] == wide:
		line[c-1] = ' '
		line[c] = ' '
	case c+1 < len(line) && line[c+1] == wide:
		line[c+1] = ' '
	}
}

func (s *Screen) newline() {
	s.row++
	s.col = 0
	if s.row == len(s.lines) {
		s.lines = append(s.lines, nil)
	}
	if over := len(s.lines) - s.max; over > 0 {
		s.lines = append(s.lines[:0:0], s.lines[over:]...)
		s.row -= over
	}
}

func text(cells []rune) string {
	var b strings.Builder
	for _, r := range cells {
		if r != wide {
			b.WriteRune(r)
		}
	}
	return b.String()
}
