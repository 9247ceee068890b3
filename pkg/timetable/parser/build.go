package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

const (
	dayColumn  = 0
	timeColumn = 1
)

// ErrGroupNotFound indicates the requested group is not a header cell of the sheet.
var ErrGroupNotFound = errors.New("group not found")

var lineBreaks = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// BuildSchedule builds the per-day lesson list of one group column.
//
// Day and time labels are written only on the first row of their block and are
// carried forward. A row without its own time label whose text is not blank
// continues the previous lesson of the same day.
func BuildSchedule(grid models.Grid, group string) (models.Schedule, error) {
	groupIdx := GroupIndex(grid.Header(), group)
	if groupIdx < 0 {
		return models.Schedule{}, fmt.Errorf("%w: %q", ErrGroupNotFound, group)
	}

	var acc scheduleAcc
	for _, row := range grid.Body() {
		if isRepeatedHeader(row, groupIdx, group) {
			continue
		}
		acc = acc.step(row, groupIdx)
	}

	if acc.days == nil {
		return models.Schedule{}, nil
	}
	return acc.days, nil
}

// isRepeatedHeader matches header rows copied into the body of the sheet.
func isRepeatedHeader(row []string, groupIdx int, group string) bool {
	return strings.TrimSpace(models.CellAt(row, groupIdx)) == group
}

// scheduleAcc is the state threaded through the row scan.
type scheduleAcc struct {
	currentDay  string
	currentTime string
	days        models.Schedule
	dayIndex    map[string]int
}

func (a scheduleAcc) step(row []string, groupIdx int) scheduleAcc {
	day := strings.TrimSpace(models.CellAt(row, dayColumn))
	timeLabel := strings.TrimSpace(models.CellAt(row, timeColumn))
	text := strings.TrimSpace(lineBreaks.Replace(models.CellAt(row, groupIdx)))

	if day != "" {
		a.currentDay = day
	}
	if timeLabel != "" {
		a.currentTime = timeLabel
	}

	// Spacer row.
	if text == "" && timeLabel == "" {
		return a
	}
	block := a.block(a.currentDay)
	lessons := a.days[block].Lessons
	if timeLabel == "" && text != "" && len(lessons) > 0 {
		last := &lessons[len(lessons)-1]
		last.Text += "\n" + text
		return a
	}

	a.days[block].Lessons = append(lessons, models.Lesson{Time: a.currentTime, Text: text})
	return a
}

// block returns the index of the day block, appending it on first sight.
func (a *scheduleAcc) block(day string) int {
	if idx, ok := a.dayIndex[day]; ok {
		return idx
	}
	if a.dayIndex == nil {
		a.dayIndex = make(map[string]int)
	}
	a.days = append(a.days, models.DayBlock{Day: day, Lessons: []models.Lesson{}})
	a.dayIndex[day] = len(a.days) - 1
	return len(a.days) - 1
}
