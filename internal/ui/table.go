package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Column defines a table column with a header label and width in cells.
type Column struct {
	Header string
	Width  int
}

// RenderTable lays rows out under a header and a rule, each cell padded or
// cut to its column width. Missing trailing cells render blank.
func RenderTable(columns []Column, rows [][]string) string {
	headers := make([]string, len(columns))
	rules := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = HeaderStyle.Render(pad(col.Header, col.Width))
		rules[i] = DimStyle.Render(strings.Repeat("─", col.Width))
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, strings.Join(headers, "  "), strings.Join(rules, "  "))
	for _, row := range rows {
		cells := make([]string, len(columns))
		for i, col := range columns {
			var v string
			if i < len(row) {
				v = row[i]
			}
			cells[i] = pad(v, col.Width)
		}
		lines = append(lines, strings.Join(cells, "  "))
	}
	return strings.Join(lines, "\n") + "\n"
}

// pad fits s into exactly width cells.
func pad(s string, width int) string {
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}
