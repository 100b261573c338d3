package session

import "github.com/mattn/go-runewidth"

// LineBuffer holds the command text being typed. Edits happen only at the
// tail; there is no mid-line cursor.
type LineBuffer struct {
	runes []rune
}

// Append adds runes to the end of the line.
func (b *LineBuffer) Append(runes ...rune) {
	if len(runes) > 0 {
		b.runes = append(b.runes, runes...)
	}
}

// Backspace removes the last rune. It reports false when the line was
// already empty.
func (b *LineBuffer) Backspace() bool {
	if len(b.runes) == 0 {
		return false
	}
	b.runes = b.runes[:len(b.runes)-1]
	return true
}

// Set replaces the whole line.
func (b *LineBuffer) Set(s string) {
	b.runes = append(b.runes[:0], []rune(s)...)
}

// Clear resets the buffer.
func (b *LineBuffer) Clear() {
	b.runes = b.runes[:0]
}

func (b *LineBuffer) String() string {
	return string(b.runes)
}

// Len returns the number of runes in the line.
func (b *LineBuffer) Len() int {
	return len(b.runes)
}

// Width returns the number of terminal cells the line occupies.
func (b *LineBuffer) Width() int {
	return runewidth.StringWidth(string(b.runes))
}
