package timetable

import (
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
)

// Grid returns the grid of the selected sheet.
func Grid(wb *models.Workbook, sheet string) (models.Grid, error) {
	if sheet == "" {
		return nil, fmt.Errorf("%w: no sheet chosen", ErrEmptySelection)
	}
	grid, ok := wb.Sheet(sheet)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheet)
	}
	return grid, nil
}

// Groups lists the group columns of a sheet.
func Groups(wb *models.Workbook, sheet string) ([]string, error) {
	grid, err := Grid(wb, sheet)
	if err != nil {
		return nil, err
	}
	return parser.ResolveGroups(grid.Header()), nil
}

// Build builds the schedule of the selected sheet and group.
func Build(wb *models.Workbook, sel models.Selection) (models.Schedule, error) {
	grid, err := Grid(wb, sel.Sheet)
	if err != nil {
		return nil, err
	}
	if sel.Group == "" {
		return nil, fmt.Errorf("%w: no group chosen", ErrEmptySelection)
	}
	return parser.BuildSchedule(grid, sel.Group)
}

// View builds the schedule of sel and applies the day filter.
func View(wb *models.Workbook, sel models.Selection, day string) (*models.ScheduleView, error) {
	days, err := Build(wb, sel)
	if err != nil {
		return nil, err
	}
	return &models.ScheduleView{
		BookName: wb.BookName,
		Sheet:    sel.Sheet,
		Group:    sel.Group,
		Day:      day,
		Days:     parser.FilterByDay(days, day),
	}, nil
}
