package output

import (
	"bufio"
	"io"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

const (
	dayMark     = "📅 "
	timeMark    = "⏰ "
	lessonMark  = "📘 "
	lineDivider = "───"
)

// WriteText renders day blocks as indented text, one lesson line per row.
// Lines of a multi-line lesson are separated by a divider.
func WriteText(w io.Writer, days models.Schedule) error {
	bw := bufio.NewWriter(w)

	for i, block := range days {
		if i > 0 {
			bw.WriteString("\n")
		}
		bw.WriteString(dayMark + block.Day + "\n")

		for _, lesson := range block.Lessons {
			bw.WriteString("  " + timeMark + lesson.Time + "\n")

			lines := LessonLines(lesson)
			for j, line := range lines {
				bw.WriteString("    " + lessonMark + line + "\n")
				if j < len(lines)-1 {
					bw.WriteString("    " + lineDivider + "\n")
				}
			}
		}
	}

	return bw.Flush()
}

// LessonLines splits lesson text into its non-empty lines.
func LessonLines(lesson models.Lesson) []string {
	var lines []string
	for _, line := range strings.Split(lesson.Text, "\n") {
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
