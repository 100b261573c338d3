package ui

import (
	"reflect"
	"strings"
	"testing"
)

func TestScreenWritesLines(t *testing.T) {
	s := NewScreen(0)
	s.WriteLine("Welcome")
	s.Write("$ help")

	want := []string{"Welcome", "$ help"}
	if got := s.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if row, col := s.Cursor(); row != 1 || col != 6 {
		t.Fatalf("expected cursor (1,6), got (%d,%d)", row, col)
	}
}

func TestScreenBackspaceErase(t *testing.T) {
	s := NewScreen(0)
	s.Write("$ add")
	s.Write("\b \b")
	s.Write("x")

	if got := s.Lines()[0]; got != "$ adx" {
		t.Fatalf("expected '$ adx', got %q", got)
	}
}

func TestScreenCarriageReturnOverwrites(t *testing.T) {
	s := NewScreen(0)
	s.Write("$ something long")
	s.Write("\r$ " + strings.Repeat(" ", 14) + "\r$ add")

	if got := s.Lines()[0]; got != "$ add" {
		t.Fatalf("expected '$ add', got %q", got)
	}
	if _, col := s.Cursor(); col != 5 {
		t.Fatalf("expected cursor column 5, got %d", col)
	}
}

func TestScreenNewlineResetsColumn(t *testing.T) {
	s := NewScreen(0)
	s.Write("abc\ndef")
	want := []string{"abc", "def"}
	if got := s.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(0)
	s.WriteLine("one")
	s.WriteLine("two")
	s.Clear()

	if got := s.Lines(); !reflect.DeepEqual(got, []string{""}) {
		t.Fatalf("expected a single empty line, got %q", got)
	}
	if row, col := s.Cursor(); row != 0 || col != 0 {
		t.Fatalf("expected cursor home, got (%d,%d)", row, col)
	}
}

func TestScreenScrollbackLimit(t *testing.T) {
	s := NewScreen(3)
	for _, l := range []string{"1", "2", "3", "4"} {
		s.WriteLine(l)
	}

	want := []string{"3", "4", ""}
	if got := s.Lines(); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if row, _ := s.Cursor(); row != 2 {
		t.Fatalf("expected cursor row 2, got %d", row)
	}
}

func TestScreenVisible(t *testing.T) {
	s := NewScreen(0)
	s.Write("a\nb\nc")
	if got := s.Visible(2); !reflect.DeepEqual(got, []string{"b", "c"}) {
		t.Fatalf("unexpected visible lines %q", got)
	}
	if got := s.Visible(10); len(got) != 3 {
		t.Fatalf("expected all 3 lines, got %q", got)
	}
}

func TestScreenCursorCountsWideRunes(t *testing.T) {
	s := NewScreen(0)
	s.Write("$ 日本")
	if _, col := s.Cursor(); col != 6 {
		t.Fatalf("expected cell 6, got %d", col)
	}
}

func TestScreenBackspaceOverWideRune(t *testing.T) {
	s := NewScreen(0)
	s.Write("$ a日")
	s.Write("\b\b  \b\b")
	s.Write("b")

	if got := s.Lines()[0]; got != "$ ab" {
		t.Fatalf("expected '$ ab', got %q", got)
	}
	if _, col := s.Cursor(); col != 4 {
		t.Fatalf("expected cursor column 4, got %d", col)
	}
}

func TestScreenOverwriteHalfOfWideRune(t *testing.T) {
	s := NewScreen(0)
	s.Write("日本")
	s.Write("\r\bx")
	if got := s.Lines()[0]; got != "x 本" {
		t.Fatalf("expected 'x 本', got %q", got)
	}

	s = NewScreen(0)
	s.Write("日本\bz")
	if got := s.Lines()[0]; got != "日 z" {
		t.Fatalf("expected '日 z', got %q", got)
	}
}

func TestScreenCursorLine(t *testing.T) {
	s := NewScreen(0)
	s.Write("$ 日本")

	before, under, after := s.CursorLine()
	if before != "$ 日本" || under != " " || after != "" {
		t.Fatalf("unexpected split %q %q %q", before, under, after)
	}

	s.Write("\b\b\b\b")
	before, under, after = s.CursorLine()
	if before != "$ " || under != "日" || after != "本" {
		t.Fatalf("unexpected split %q %q %q", before, under, after)
	}
}

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name    string
		want    Theme
		wantErr bool
	}{
		{"dark", DarkTheme, false},
		{"light", LightTheme, false},
		{"neon", Theme{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ThemeByName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ThemeByName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("ThemeByName(%q) = %+v, want %+v", tt.name, got, tt.want)
			}
		})
	}
}

func TestRenderTablePadsByCells(t *testing.T) {
	out := RenderTable(
		[]Column{{Header: "Command", Width: 8}, {Header: "Description", Width: 12}},
		[][]string{{"help", "Show this help message"}, {"argø", "x"}},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected header, separator and 2 rows, got %d lines", len(lines))
	}
	if lines[2] != "help      Show this he" {
		t.Fatalf("unexpected row %q", lines[2])
	}
	if lines[3] != "argø      x           " {
		t.Fatalf("unexpected row %q", lines[3])
	}
}

func TestRenderTableBlanksMissingCells(t *testing.T) {
	out := RenderTable([]Column{{Header: "A", Width: 3}, {Header: "B", Width: 2}}, [][]string{{"x"}})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if got := lines[len(lines)-1]; got != "x      " {
		t.Fatalf("unexpected row %q", got)
	}
}
