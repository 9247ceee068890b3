package parser

import (
	"encoding/csv"
	"io"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// ReadCSVGrid reads a comma (or semicolon) separated file into a single grid.
func ReadCSVGrid(r io.Reader, comma rune) (models.Grid, error) {
	reader := csv.NewReader(r)
	reader.Comma = comma
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return Materialize(rows), nil
}
