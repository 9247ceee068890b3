package timetable

import (
	"errors"
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file cannot be decoded as a spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the selected sheet is not part of the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrEmptySelection indicates a sheet or group has not been chosen yet.
var ErrEmptySelection = errors.New("selection is empty")

// ErrGroupNotFound indicates the selected group is not a header cell of the sheet.
var ErrGroupNotFound = parser.ErrGroupNotFound

// ImportError represents a failure to decode an input file.
type ImportError struct {
	Source string
	Format Format
	Err    error
}

func (e *ImportError) Error() string {
	return fmt.Sprintf("import error in %q (%s): %v", e.Source, e.Format, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// NewImportError creates a new ImportError wrapping ErrInvalidFormat.
func NewImportError(source string, format Format, err error) *ImportError {
	return &ImportError{
		Source: source,
		Format: format,
		Err:    fmt.Errorf("%w: %w", ErrInvalidFormat, err),
	}
}
