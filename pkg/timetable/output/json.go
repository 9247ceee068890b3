// Package output serializes schedule views.
package output

import (
	"encoding/json"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// ToJSON serializes a schedule view.
func ToJSON(view *models.ScheduleView, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(view, "", "  ")
	}
	return json.Marshal(view)
}

// SheetsToJSON serializes a sheet -> groups listing.
func SheetsToJSON(sheets []SheetSummary, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(sheets, "", "  ")
	}
	return json.Marshal(sheets)
}

// SheetSummary describes one sheet of an imported workbook.
type SheetSummary struct {
	Name   string   `json:"name"`
	Groups []string `json:"groups"`
}
