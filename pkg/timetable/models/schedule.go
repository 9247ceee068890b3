package models

// AllDays is the day filter value that selects every day block.
const AllDays = "Все дни"

// Lesson is a time-stamped entry, possibly assembled from several source rows.
type Lesson struct {
	// Time is the display label of the time slot (e.g. "9:00").
	Time string `json:"time"`
	// Text is the lesson description. Continuation lines are joined with "\n".
	Text string `json:"text"`
}

// DayBlock holds the lessons of one day in source order.
type DayBlock struct {
	// Day is the day label as written in column 0 of the sheet.
	Day string `json:"day"`
	// Lessons are ordered as they appear in the sheet.
	Lessons []Lesson `json:"lessons"`
}

// Schedule is the structured schedule of one group: day blocks in first-seen order.
type Schedule []DayBlock

// ScheduleView is a schedule restricted by the day filter, ready for rendering.
type ScheduleView struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name,omitempty"`
	// Sheet is the selected course sheet.
	Sheet string `json:"sheet"`
	// Group is the selected group column.
	Group string `json:"group"`
	// Day is the active day filter (AllDays for no filtering).
	Day string `json:"day"`
	// Days contains the day blocks passing the filter.
	Days Schedule `json:"days"`
}
