package console

import (
	"unicode"
	"unicode/utf8"
)

// Logical key names understood by Classify.
const (
	KeyEnter     = "Enter"
	KeyBackspace = "Backspace"
	KeyArrowUp   = "ArrowUp"
	KeyArrowDown = "ArrowDown"
)

// KeyEvent is one raw key press as delivered by the host.
type KeyEvent struct {
	Key  string
	Alt  bool
	Ctrl bool
	Meta bool
}

func (k KeyEvent) modified() bool {
	return k.Alt || k.Ctrl || k.Meta
}

// EventKind is the class a key press falls into.
type EventKind int

const (
	EventIgnore EventKind = iota
	EventSubmit
	EventErase
	EventHistoryPrev
	EventHistoryNext
	EventPrintable
)

func (k EventKind) String() string {
	switch k {
	case EventSubmit:
		return "submit"
	case EventErase:
		return "erase"
	case EventHistoryPrev:
		return "history-prev"
	case EventHistoryNext:
		return "history-next"
	case EventPrintable:
		return "printable"
	}
	return "ignore"
}

// Event is a classified key press. Char is set only for EventPrintable.
type Event struct {
	Kind EventKind
	Char rune
}

// Classify maps a key press to a console event. Keys held with Alt, Ctrl or
// Meta are left to the host.
func Classify(k KeyEvent) Event {
	switch k.Key {
	case KeyEnter:
		return Event{Kind: EventSubmit}
	case KeyBackspace:
		return Event{Kind: EventErase}
	case KeyArrowUp:
		return Event{Kind: EventHistoryPrev}
	case KeyArrowDown:
		return Event{Kind: EventHistoryNext}
	}

	if k.modified() || utf8.RuneCountInString(k.Key) != 1 {
		return Event{Kind: EventIgnore}
	}
	r, _ := utf8.DecodeRuneInString(k.Key)
	if !unicode.IsPrint(r) {
		return Event{Kind: EventIgnore}
	}
	return Event{Kind: EventPrintable, Char: r}
}
