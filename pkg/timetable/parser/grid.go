// Package parser turns spreadsheet sheets into grids and grids into schedules.
package parser

import (
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/unicode/norm"
)

// ReadGrid flattens a sheet into a grid of string cells.
// The grid starts at the top-left cell of the used range, so a table placed at
// B2 still has its header in row 0 and its day labels in column 0. Blank cells
// are materialized as "" and every row is padded to the data width.
func ReadGrid(f *excelize.File, sheetName string) (models.Grid, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return Materialize(rows), nil
}

// Materialize crops rows to their data bounds, pads ragged rows to a rectangle
// and NFC-normalizes every cell.
func Materialize(rows [][]string) models.Grid {
	bounds := DataBounds(rows)
	if bounds.Empty() {
		return models.Grid{}
	}

	width := bounds.Width()
	grid := make(models.Grid, bounds.Height())
	for rowIdx := range grid {
		row := make([]string, width)
		src := rows[bounds.MinRow+rowIdx]
		for colIdx := range row {
			row[colIdx] = normalizeCell(models.CellAt(src, bounds.MinCol+colIdx))
		}
		grid[rowIdx] = row
	}

	return grid
}

// normalizeCell composes decomposed characters (e.g. "и" + U+0306) so that
// header and body spellings of the same group compare equal.
func normalizeCell(s string) string {
	if s == "" || norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
