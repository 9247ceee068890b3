package parser

// Bounds is the bounding box of non-empty cells in a sheet (0-based, inclusive).
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Empty reports whether the sheet has no non-empty cell.
func (b Bounds) Empty() bool {
	return b.MaxRow < 0
}

// Height is the number of rows spanned by the box.
func (b Bounds) Height() int {
	if b.Empty() {
		return 0
	}
	return b.MaxRow - b.MinRow + 1
}

// Width is the number of columns spanned by the box.
func (b Bounds) Width() int {
	if b.Empty() {
		return 0
	}
	return b.MaxCol - b.MinCol + 1
}

// DataBounds finds the bounding box of non-empty cells.
func DataBounds(rows [][]string) Bounds {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	return b
}
