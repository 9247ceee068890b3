// Package timetable imports class schedule spreadsheets and builds per-group timetables.
package timetable

import (
	"bytes"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Format represents the input file format.
type Format string

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = ""
	// FormatXLSX is an Office Open XML workbook.
	FormatXLSX Format = "xlsx"
	// FormatCSV is a single-sheet delimited text file.
	FormatCSV Format = "csv"
)

// Options configures import behavior.
type Options struct {
	// Format forces the decoder. FormatAuto detects it from the file name.
	Format Format
	// Comma is the CSV field separator. Zero detects ',' or ';' from the first line.
	Comma rune
	// Logger receives warnings about sheets that could not be read.
	// If nil, nothing is logged.
	Logger *zap.Logger
}

// DefaultOptions returns default import options.
func DefaultOptions() Options {
	return Options{
		Format: FormatAuto,
	}
}

// ResolveFormat returns the decoder to use for the named file.
func (o Options) ResolveFormat(name string) Format {
	if o.Format != FormatAuto {
		return o.Format
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".csv", ".txt":
		return FormatCSV
	default:
		return FormatXLSX
	}
}

// Separator returns the CSV separator for the given file content.
func (o Options) Separator(data []byte) rune {
	if o.Comma != 0 {
		return o.Comma
	}
	firstLine := data
	if idx := bytes.IndexByte(data, '\n'); idx >= 0 {
		firstLine = data[:idx]
	}
	if bytes.Count(firstLine, []byte{';'}) > bytes.Count(firstLine, []byte{','}) {
		return ';'
	}
	return ','
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
