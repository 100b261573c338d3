package session

// History is the append-only log of submitted commands with a navigation
// cursor. The zero value is an empty history that is not navigating.
type History struct {
	entries []string
	// nav is the cursor plus one, so that zero means "not navigating".
	nav int
}

// Append records a submitted command and stops navigation.
func (h *History) Append(entry string) {
	h.entries = append(h.entries, entry)
	h.nav = 0
}

// Prev steps one entry older and returns it. Cursor 0 is the most recent
// entry. At the oldest entry it does nothing and reports false.
func (h *History) Prev() (string, bool) {
	if h.nav >= len(h.entries) {
		return "", false
	}
	h.nav++
	return h.at(h.nav - 1), true
}

// Next steps one entry newer. Leaving the most recent entry returns to live
// editing with an empty line. When not navigating it reports false.
func (h *History) Next() (string, bool) {
	switch {
	case h.nav == 0:
		return "", false
	case h.nav == 1:
		h.nav = 0
		return "", true
	default:
		h.nav--
		return h.at(h.nav - 1), true
	}
}

// Cursor returns the offset from the most recent entry, or -1 when not
// navigating.
func (h *History) Cursor() int {
	return h.nav - 1
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of the recorded commands, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}

func (h *History) at(cursor int) string {
	return h.entries[len(h.entries)-1-cursor]
}
