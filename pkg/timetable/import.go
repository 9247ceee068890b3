package timetable

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// Import reads a schedule spreadsheet from disk.
func Import(path string, opts Options) (*models.Workbook, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return ImportBytes(data, filepath.Base(path), opts)
}

// ImportReader reads a schedule spreadsheet from r. name is used for format
// detection and as the workbook name.
func ImportReader(r io.Reader, name string, opts Options) (*models.Workbook, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ImportBytes(data, name, opts)
}

// ImportBytes decodes an in-memory file into a workbook of grids.
func ImportBytes(data []byte, name string, opts Options) (*models.Workbook, error) {
	switch format := opts.ResolveFormat(name); format {
	case FormatCSV:
		return importCSV(data, name, opts)
	case FormatXLSX:
		return importXLSX(data, name, opts)
	default:
		return nil, NewImportError(name, format, fmt.Errorf("unsupported format %q", format))
	}
}

func importXLSX(data []byte, name string, opts Options) (*models.Workbook, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, NewImportError(name, FormatXLSX, err)
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make(map[string]models.Grid, len(sheetList))

	for _, sheetName := range sheetList {
		grid, err := parser.ReadGrid(f, sheetName)
		if err != nil {
			// Keep the sheet selectable; it just has no rows.
			opts.logger().Warn("failed to read sheet",
				zap.String("book", name),
				zap.String("sheet", sheetName),
				zap.Error(err))
			grid = models.Grid{}
		}
		sheets[sheetName] = grid
	}

	return &models.Workbook{
		BookName:   name,
		SheetNames: sheetList,
		Sheets:     sheets,
	}, nil
}

func importCSV(data []byte, name string, opts Options) (*models.Workbook, error) {
	grid, err := parser.ReadCSVGrid(bytes.NewReader(data), opts.Separator(data))
	if err != nil {
		return nil, NewImportError(name, FormatCSV, err)
	}

	sheetName := strings.TrimSuffix(name, filepath.Ext(name))
	return &models.Workbook{
		BookName:   name,
		SheetNames: []string{sheetName},
		Sheets:     map[string]models.Grid{sheetName: grid},
	}, nil
}
