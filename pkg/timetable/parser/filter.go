package parser

import "github.com/ukaji3/timetable-go/pkg/timetable/models"

// FilterByDay returns the day blocks matching day exactly.
// models.AllDays returns the schedule unchanged.
func FilterByDay(days models.Schedule, day string) models.Schedule {
	if day == models.AllDays {
		return days
	}

	filtered := models.Schedule{}
	for _, block := range days {
		if block.Day == day {
			filtered = append(filtered, block)
		}
	}
	return filtered
}

// DayNames returns the day filter options: models.AllDays followed by every day of the schedule.
func DayNames(days models.Schedule) []string {
	names := make([]string, 0, len(days)+1)
	names = append(names, models.AllDays)
	for _, block := range days {
		names = append(names, block.Day)
	}
	return names
}
