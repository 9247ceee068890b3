package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
)

// workbookLoadedMsg carries the result of decoding a file.
type workbookLoadedMsg struct {
	Path     string
	Workbook *models.Workbook
	Err      error
}

// importCmd decodes the file off the update loop. The session itself is only
// touched when the message comes back.
func importCmd(path string, opts timetable.Options) tea.Cmd {
	return func() tea.Msg {
		wb, err := timetable.Import(path, opts)
		return workbookLoadedMsg{
			Path:     path,
			Workbook: wb,
			Err:      err,
		}
	}
}
