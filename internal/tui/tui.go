package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ukaji3/timetable-go/internal/session"
	"github.com/ukaji3/timetable-go/pkg/timetable"
)

type viewMode int

const (
	sheetView viewMode = iota
	groupView
	scheduleView
	pickerView
)

// importableTypes are the extensions offered by the file picker.
var importableTypes = []string{".xlsx", ".xlsm", ".xltx", ".xltm", ".csv", ".txt"}

type model struct {
	ctx     context.Context
	session *session.Session
	opts    timetable.Options

	currentMode viewMode
	sheetCursor int
	groupCursor int
	dayCursor   int
	returnMode  viewMode

	picker   filepicker.Model
	viewport viewport.Model
	spinner  spinner.Model
	loading  bool
	pending  string
	err      error
	ready    bool
	width    int
	height   int
}

func initialModel(ctx context.Context, sess *session.Session, path string, opts timetable.Options) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))

	fp := filepicker.New()
	fp.AllowedTypes = importableTypes
	// esc closes the picker instead of climbing to the parent directory.
	fp.KeyMap.Back = key.NewBinding(key.WithKeys("h", "backspace", "left"))

	m := model{
		ctx:     ctx,
		session: sess,
		opts:    opts,
		picker:  fp,
		spinner: sp,
		pending: path,
		loading: path != "",
	}

	// Resume where the previous run stopped.
	sel := sess.Selection()
	switch {
	case sel.Complete():
		m.currentMode = scheduleView
		m.sheetCursor = indexOf(sess.Sheets(), sel.Sheet)
		m.groupCursor = indexOf(sess.Groups(), sel.Group)
	case sel.Sheet != "":
		m.currentMode = groupView
		m.sheetCursor = indexOf(sess.Sheets(), sel.Sheet)
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.pending == "" {
		return nil
	}
	return tea.Batch(m.spinner.Tick, importCmd(m.pending, m.opts))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.picker.Height = pickerHeight(msg.Height)
		m.picker, _ = m.picker.Update(msg)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-4)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 4
		}
		m.updateViewport()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case workbookLoadedMsg:
		m.loading = false
		m.pending = ""
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}
		m.session.Apply(m.ctx, msg.Workbook)
		m.currentMode = sheetView
		m.sheetCursor, m.groupCursor, m.dayCursor = 0, 0, 0
		m.updateViewport()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Directory listings arrive as the picker's own messages.
	if m.currentMode == pickerView {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	pressed := msg.String()
	if pressed == "ctrl+c" {
		return m, tea.Quit
	}
	// Decoding cannot be cancelled; keys wait until it finishes.
	if m.loading {
		return m, nil
	}
	if m.err != nil {
		m.err = nil
		return m, nil
	}
	if m.currentMode == pickerView {
		return m.handlePickerKey(msg)
	}

	switch pressed {
	case "q":
		return m, tea.Quit

	case "o":
		cmd := m.openPicker()
		return m, cmd

	case "up", "k":
		m.moveCursor(-1)

	case "down", "j":
		m.moveCursor(1)

	case "left", "h":
		if m.currentMode == scheduleView {
			m.shiftDay(-1)
		}

	case "right", "l", "tab":
		if m.currentMode == scheduleView {
			m.shiftDay(1)
		}

	case "enter":
		m.choose()

	case "esc", "backspace":
		switch m.currentMode {
		case scheduleView:
			m.currentMode = groupView
		case groupView:
			m.currentMode = sheetView
		}
	}

	if m.currentMode == scheduleView && (pressed == "pgup" || pressed == "pgdown") {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	m.updateViewport()
	return m, nil
}

func (m *model) openPicker() tea.Cmd {
	m.returnMode = m.currentMode
	m.currentMode = pickerView
	if m.height > 0 {
		m.picker.Height = pickerHeight(m.height)
	}
	return m.picker.Init()
}

// handlePickerKey forwards keys to the file picker and starts an import once a
// file is chosen. The previous view stays in place until the import succeeds.
func (m model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.currentMode = m.returnMode
		m.updateViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.currentMode = m.returnMode
		m.loading = true
		m.pending = path
		return m, tea.Batch(m.spinner.Tick, importCmd(path, m.opts))
	}
	return m, cmd
}

func (m *model) moveCursor(delta int) {
	switch m.currentMode {
	case sheetView:
		m.sheetCursor = clamp(m.sheetCursor+delta, len(m.session.Sheets()))
	case groupView:
		m.groupCursor = clamp(m.groupCursor+delta, len(m.session.Groups()))
	case scheduleView:
		if delta < 0 {
			m.viewport.LineUp(1)
		} else {
			m.viewport.LineDown(1)
		}
	}
}

func (m *model) choose() {
	switch m.currentMode {
	case sheetView:
		sheets := m.session.Sheets()
		if m.sheetCursor >= len(sheets) {
			return
		}
		previous := m.session.Selection().Sheet
		if err := m.session.SelectSheet(m.ctx, sheets[m.sheetCursor]); err != nil {
			m.err = err
			return
		}
		if previous != sheets[m.sheetCursor] {
			m.groupCursor = 0
		}
		m.currentMode = groupView

	case groupView:
		groups := m.session.Groups()
		if m.groupCursor >= len(groups) {
			return
		}
		if err := m.session.SelectGroup(m.ctx, groups[m.groupCursor]); err != nil {
			m.err = err
			return
		}
		m.dayCursor = 0
		m.currentMode = scheduleView
		m.viewport.GotoTop()
	}
}

// shiftDay cycles the day filter, wrapping around at both ends.
func (m *model) shiftDay(delta int) {
	days := m.session.Days()
	m.dayCursor = (m.dayCursor + delta + len(days)) % len(days)
	m.session.SelectDay(days[m.dayCursor])
	m.viewport.GotoTop()
}

func (m *model) updateViewport() {
	if !m.ready {
		return
	}

	switch m.currentMode {
	case sheetView:
		m.viewport.SetContent(renderList("Choose a course sheet", m.session.Sheets(), m.sheetCursor))
	case groupView:
		m.viewport.SetContent(renderList("Choose a group", m.session.Groups(), m.groupCursor))
	case scheduleView:
		view := m.session.View()
		if view == nil {
			m.viewport.SetContent(emptyStyle.Render("No group chosen"))
			return
		}
		m.viewport.SetContent(renderDayTabs(m.session.Days(), view.Day) + "\n\n" + renderSchedule(view.Days, m.width))
	}
}

func (m model) View() string {
	if m.loading {
		return fmt.Sprintf("\n  %s Loading %s...\n", m.spinner.View(), m.pending)
	}
	if !m.ready {
		return "\n  Initializing..."
	}
	if m.err != nil {
		return "\n" + renderError(m.err) + "\n"
	}
	if m.currentMode == pickerView {
		return fmt.Sprintf("%s\n%s\n\n%s\n%s",
			m.renderHeader(),
			labelStyle.Render("Open a schedule file"),
			m.picker.View(),
			m.renderFooter())
	}
	if len(m.session.Sheets()) == 0 {
		return fmt.Sprintf("%s\n\n  %s\n\n%s",
			m.renderHeader(),
			emptyStyle.Render("No schedule imported. Press o to open a file."),
			m.renderFooter())
	}

	return fmt.Sprintf("%s\n%s\n%s", m.renderHeader(), m.viewport.View(), m.renderFooter())
}

func (m model) renderHeader() string {
	title := "Timetable"
	if wb := m.session.Workbook(); wb != nil && wb.BookName != "" {
		title += " - " + wb.BookName
	}
	sel := m.session.Selection()
	if sel.Sheet != "" {
		title += " / " + sel.Sheet
	}
	if sel.Group != "" && m.currentMode == scheduleView {
		title += " / " + sel.Group
	}
	return headerStyle.Render(title)
}

func (m model) renderFooter() string {
	info := "↑/↓: navigate • enter: select"
	switch m.currentMode {
	case groupView:
		info += " • esc: back"
	case scheduleView:
		info = "↑/↓: scroll • ←/→: day • esc: back"
	case pickerView:
		return footerStyle.Render("↑/↓: navigate • →/enter: open • ←: parent dir • esc: cancel")
	}
	info += " • o: open file • q: quit"
	return footerStyle.Render(info)
}

func pickerHeight(windowHeight int) int {
	if windowHeight < 10 {
		return 5
	}
	return windowHeight - 6
}

func clamp(i, n int) int {
	if i < 0 || n == 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func indexOf(items []string, item string) int {
	for i, it := range items {
		if it == item {
			return i
		}
	}
	return 0
}

// Run starts the interactive picker. When path is set, the file is imported first.
func Run(ctx context.Context, sess *session.Session, path string, opts timetable.Options) error {
	p := tea.NewProgram(
		initialModel(ctx, sess, path, opts),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	_, err := p.Run()
	return err
}
