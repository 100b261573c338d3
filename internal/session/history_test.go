package session

import "testing"

func historyOf(entries ...string) *History {
	h := &History{}
	for _, e := range entries {
		h.Append(e)
	}
	return h
}

func TestHistoryZeroValue(t *testing.T) {
	var h History
	if h.Cursor() != -1 {
		t.Fatalf("expected cursor -1, got %d", h.Cursor())
	}
	if _, ok := h.Prev(); ok {
		t.Fatal("expected Prev on empty history to be a no-op")
	}
	if _, ok := h.Next(); ok {
		t.Fatal("expected Next on empty history to be a no-op")
	}
}

func TestHistoryPrevWalksMostRecentFirst(t *testing.T) {
	h := historyOf("a", "b", "c")

	for i, want := range []string{"c", "b", "a"} {
		got, ok := h.Prev()
		if !ok {
			t.Fatalf("step %d: expected Prev to move", i)
		}
		if got != want {
			t.Fatalf("step %d: expected %q, got %q", i, want, got)
		}
		if h.Cursor() != i {
			t.Fatalf("step %d: expected cursor %d, got %d", i, i, h.Cursor())
		}
	}

	if _, ok := h.Prev(); ok {
		t.Fatal("expected Prev past the oldest entry to be a no-op")
	}
	if h.Cursor() != 2 {
		t.Fatalf("expected cursor to stay at 2, got %d", h.Cursor())
	}
}

func TestHistoryNextWalksBackToLive(t *testing.T) {
	h := historyOf("a", "b", "c")
	h.Prev()
	h.Prev()
	h.Prev()

	for i, want := range []string{"b", "c", ""} {
		got, ok := h.Next()
		if !ok {
			t.Fatalf("step %d: expected Next to move", i)
		}
		if got != want {
			t.Fatalf("step %d: expected %q, got %q", i, want, got)
		}
	}
	if h.Cursor() != -1 {
		t.Fatalf("expected cursor -1, got %d", h.Cursor())
	}
	if _, ok := h.Next(); ok {
		t.Fatal("expected Next while not navigating to be a no-op")
	}
}

func TestHistoryAppendResetsCursor(t *testing.T) {
	h := historyOf("a", "b")
	h.Prev()
	h.Append("c")
	if h.Cursor() != -1 {
		t.Fatalf("expected cursor -1 after append, got %d", h.Cursor())
	}
	if got, _ := h.Prev(); got != "c" {
		t.Fatalf("expected most recent entry 'c', got %q", got)
	}
}

func TestHistoryKeepsEmptyEntries(t *testing.T) {
	h := historyOf("help", "")
	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}
	got, ok := h.Prev()
	if !ok || got != "" {
		t.Fatalf("expected empty most recent entry, got %q (ok=%v)", got, ok)
	}
}

func TestHistoryEntriesIsCopy(t *testing.T) {
	h := historyOf("a")
	entries := h.Entries()
	entries[0] = "mutated"
	if got, _ := h.Prev(); got != "a" {
		t.Fatalf("expected stored entry to be unchanged, got %q", got)
	}
}
