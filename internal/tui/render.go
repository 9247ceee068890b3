package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/output"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("63"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dayStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("111"))
	timeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	lessonStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dividerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1)
	activeDayTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("63")).Padding(0, 1)
	passiveDayTab = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1)
)

// renderList renders a picker with a cursor in front of the selected item.
func renderList(title string, items []string, cursor int) string {
	var s strings.Builder

	s.WriteString(labelStyle.Render(title) + "\n\n")
	if len(items) == 0 {
		s.WriteString(emptyStyle.Render("Nothing to choose from"))
		return s.String()
	}

	for i, item := range items {
		if i == cursor {
			s.WriteString(cursorStyle.Render("> "+item) + "\n")
			continue
		}
		s.WriteString("  " + item + "\n")
	}
	return s.String()
}

// renderDayTabs renders the day filter as a row of tabs.
func renderDayTabs(days []string, active string) string {
	tabs := make([]string, 0, len(days))
	for _, day := range days {
		if day == active {
			tabs = append(tabs, activeDayTab.Render(day))
			continue
		}
		tabs = append(tabs, passiveDayTab.Render(day))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderSchedule renders day blocks for the viewport.
func renderSchedule(days models.Schedule, width int) string {
	if len(days) == 0 {
		return emptyStyle.Render("No lessons")
	}

	dividerWidth := width - 6
	if dividerWidth < 10 {
		dividerWidth = 10
	}

	var s strings.Builder
	for i, block := range days {
		if i > 0 {
			s.WriteString("\n")
		}
		s.WriteString(dayStyle.Render("📅 "+block.Day) + "\n")

		for _, lesson := range block.Lessons {
			s.WriteString("  " + timeStyle.Render("⏰ "+lesson.Time) + "\n")

			lines := output.LessonLines(lesson)
			for j, line := range lines {
				s.WriteString("    " + lessonStyle.Render("📘 "+line) + "\n")
				if j < len(lines)-1 {
					s.WriteString("    " + dividerStyle.Render(strings.Repeat("─", dividerWidth)) + "\n")
				}
			}
		}
	}
	return s.String()
}

func renderError(err error) string {
	return errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n\n" +
		footerStyle.Render("press any key to continue")
}
