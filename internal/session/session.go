// Package session holds the state of the single user driving the timetable:
// the imported workbook, the chosen sheet and group, the built schedule and
// the day filter.
package session

import (
	"context"
	"fmt"

	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"github.com/ukaji3/timetable-go/pkg/timetable/store"
	"go.uber.org/zap"
)

// Session is not safe for concurrent use; every action runs to completion
// before the next one starts.
type Session struct {
	state *store.State
	log   *zap.Logger
	opts  timetable.Options

	workbook  *models.Workbook
	selection models.Selection
	groups    []string
	schedule  models.Schedule
	day       string
}

// New returns an empty session writing through state. A nil log discards output.
func New(state *store.State, log *zap.Logger, opts timetable.Options) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Logger == nil {
		opts.Logger = log
	}
	return &Session{
		state: state,
		log:   log,
		opts:  opts,
		day:   models.AllDays,
	}
}

// Restore loads the persisted workbook and selection. Anything missing or no
// longer valid is dropped; Restore never fails.
func (s *Session) Restore(ctx context.Context) {
	wb, ok := s.state.LoadWorkbook(ctx)
	if !ok {
		return
	}
	s.workbook = wb

	sel, ok := s.state.LoadSelection(ctx)
	if !ok || sel.Sheet == "" {
		return
	}
	if err := s.SelectSheet(ctx, sel.Sheet); err != nil {
		s.log.Warn("dropping remembered sheet", zap.String("sheet", sel.Sheet), zap.Error(err))
		return
	}
	if sel.Group == "" {
		return
	}
	if err := s.SelectGroup(ctx, sel.Group); err != nil {
		s.log.Warn("dropping remembered group", zap.String("group", sel.Group), zap.Error(err))
	}
}

// Import decodes a file and replaces the workbook. On failure the session is unchanged.
func (s *Session) Import(ctx context.Context, path string) error {
	wb, err := timetable.Import(path, s.opts)
	if err != nil {
		return err
	}
	s.Apply(ctx, wb)
	return nil
}

// Apply replaces the workbook with an already decoded one and clears the selection.
func (s *Session) Apply(ctx context.Context, wb *models.Workbook) {
	s.workbook = wb
	s.selection = models.Selection{}
	s.groups = nil
	s.schedule = nil
	s.day = models.AllDays

	s.log.Info("workbook imported",
		zap.String("book", wb.BookName),
		zap.Strings("sheets", wb.SheetNames))
	s.persist(ctx, false)
}

// SelectSheet chooses a course sheet and resolves its groups. Switching to a
// different sheet drops the group and the schedule.
func (s *Session) SelectSheet(ctx context.Context, sheet string) error {
	groups, err := timetable.Groups(s.workbook, sheet)
	if err != nil {
		return err
	}

	if sheet != s.selection.Sheet {
		s.selection = models.Selection{Sheet: sheet}
		s.schedule = nil
		s.day = models.AllDays
	}
	s.groups = groups

	if grid, _ := s.workbook.Sheet(sheet); !grid.Usable() {
		s.log.Warn("sheet has no group columns", zap.String("sheet", sheet))
	}
	return nil
}

// SelectGroup builds the schedule of a group of the current sheet and resets the
// day filter. When the group is not in the sheet the previous schedule is kept.
func (s *Session) SelectGroup(ctx context.Context, group string) error {
	if s.selection.Sheet == "" {
		return fmt.Errorf("%w: no sheet chosen", timetable.ErrEmptySelection)
	}

	sel := models.Selection{Sheet: s.selection.Sheet, Group: group}
	days, err := timetable.Build(s.workbook, sel)
	if err != nil {
		return err
	}

	s.selection = sel
	s.schedule = days
	s.day = models.AllDays

	s.log.Debug("schedule built",
		zap.String("sheet", sel.Sheet),
		zap.String("group", sel.Group),
		zap.Int("days", len(days)))
	s.persist(ctx, true)
	return nil
}

// SelectDay sets the day filter. models.AllDays shows every day.
func (s *Session) SelectDay(day string) {
	s.day = day
}

// View returns the schedule restricted by the day filter, or nil when no group is chosen.
func (s *Session) View() *models.ScheduleView {
	if !s.selection.Complete() {
		return nil
	}
	view := &models.ScheduleView{
		Sheet: s.selection.Sheet,
		Group: s.selection.Group,
		Day:   s.day,
		Days:  parser.FilterByDay(s.schedule, s.day),
	}
	if s.workbook != nil {
		view.BookName = s.workbook.BookName
	}
	return view
}

// Sheets lists the sheets of the imported workbook in workbook order.
func (s *Session) Sheets() []string {
	if s.workbook == nil {
		return nil
	}
	return s.workbook.SheetNames
}

// Groups lists the groups of the selected sheet.
func (s *Session) Groups() []string {
	return s.groups
}

// Days lists the day filter options, models.AllDays first.
func (s *Session) Days() []string {
	return parser.DayNames(s.schedule)
}

// Day returns the current day filter.
func (s *Session) Day() string {
	return s.day
}

// Selection returns the current sheet and group.
func (s *Session) Selection() models.Selection {
	return s.selection
}

// Workbook returns the imported workbook, or nil.
func (s *Session) Workbook() *models.Workbook {
	return s.workbook
}

// persist writes the workbook and, after a build, the selection. Failures are
// logged only: the in-memory state is already up to date.
func (s *Session) persist(ctx context.Context, withSelection bool) {
	if err := s.state.SaveWorkbook(ctx, s.workbook); err != nil {
		s.log.Warn("failed to persist workbook", zap.Error(err))
	}
	if !withSelection {
		return
	}
	if err := s.state.SaveSelection(ctx, s.selection); err != nil {
		s.log.Warn("failed to persist selection", zap.Error(err))
	}
}
