// Package models defines data structures for timetable extraction.
package models

// Grid is one sheet flattened to string cells.
// Row 0 is the header row: column 0 holds the day, column 1 the time and
// every following column one group. Blank cells are empty strings.
type Grid [][]string

// Header returns row 0, or nil for an empty grid.
func (g Grid) Header() []string {
	if len(g) == 0 {
		return nil
	}
	return g[0]
}

// Body returns every row after the header.
func (g Grid) Body() [][]string {
	if len(g) < 2 {
		return nil
	}
	return g[1:]
}

// Cell returns the value at (row, col), or "" when the position is outside
// the grid. Rows may be ragged.
func (g Grid) Cell(row, col int) string {
	if row < 0 || row >= len(g) {
		return ""
	}
	return CellAt(g[row], col)
}

// Usable reports whether the header carries day, time and at least one group column.
func (g Grid) Usable() bool {
	return len(g.Header()) >= 3
}

// CellAt returns row[col], or "" when col is out of range.
func CellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}
