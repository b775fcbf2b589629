package cli

import (
	"strings"
	"unicode/utf8"
)

// Table lays out rows of text in aligned columns.
type Table struct {
	headers []string
	rows    [][]string
	padding int
}

// NewTable creates a new table with the given headers.
func NewTable(headers []string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		padding: 2, // 2 spaces between columns
	}
}

// AddRow adds a row, padding or truncating it to the header count.
func (t *Table) AddRow(row []string) {
	cells := make([]string, len(t.headers))
	copy(cells, row)
	t.rows = append(t.rows, cells)
}

// Render formats and returns the table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	colWidths := make([]int, len(t.headers))
	for i, h := range t.headers {
		colWidths[i] = width(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			colWidths[i] = max(colWidths[i], width(cell))
		}
	}

	gap := strings.Repeat(" ", t.padding)
	var result strings.Builder

	writeLine := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padRight(cell, colWidths[i])
		}
		result.WriteString(strings.TrimRight(strings.Join(parts, gap), " "))
		result.WriteString("\n")
	}

	writeLine(t.headers)

	sep := make([]string, len(colWidths))
	for i, w := range colWidths {
		sep[i] = strings.Repeat("-", w)
	}
	writeLine(sep)

	for _, row := range t.rows {
		writeLine(row)
	}

	return result.String()
}

// padRight pads s with spaces on the right to reach width display columns.
func padRight(s string, w int) string {
	if n := width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

// width counts runes, so the swatch-free text of any row aligns.
func width(s string) int {
	return utf8.RuneCountInString(s)
}
