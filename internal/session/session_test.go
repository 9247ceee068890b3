package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/store"
	"github.com/xuri/excelize/v2"
)

func testWorkbook() *models.Workbook {
	return &models.Workbook{
		BookName:   "schedule.xlsx",
		SheetNames: []string{"1 курс", "2 курс"},
		Sheets: map[string]models.Grid{
			"1 курс": {
				{"День", "Время", "ГР-1", "ГР-2"},
				{"Пн", "9:00", "Матем", "Физика"},
				{"", "", "Продолжение", ""},
				{"Вт", "9:00", "История", "Химия"},
			},
			"2 курс": {
				{"День", "Время", "ГР-21"},
				{"Ср", "11:00", "Право"},
			},
		},
	}
}

func newTestSession(mem *store.MemoryStore) *Session {
	return New(store.NewState(mem, nil), nil, timetable.DefaultOptions())
}

func TestSessionFlow(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	s := newTestSession(mem)

	if s.View() != nil {
		t.Error("Expected no view before any selection")
	}

	s.Apply(ctx, testWorkbook())
	if got := s.Sheets(); len(got) != 2 || got[0] != "1 курс" {
		t.Errorf("Unexpected sheets %q", got)
	}
	if _, err := mem.Get(ctx, store.KeyWorkbook); err != nil {
		t.Errorf("Expected workbook to be persisted after import: %v", err)
	}
	if _, err := mem.Get(ctx, store.KeySelection); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("Expected no selection persisted after import, got %v", err)
	}

	if err := s.SelectSheet(ctx, "1 курс"); err != nil {
		t.Fatalf("SelectSheet failed: %v", err)
	}
	if got := s.Groups(); len(got) != 2 || got[1] != "ГР-2" {
		t.Errorf("Unexpected groups %q", got)
	}

	if err := s.SelectGroup(ctx, "ГР-1"); err != nil {
		t.Fatalf("SelectGroup failed: %v", err)
	}
	view := s.View()
	if view == nil || len(view.Days) != 2 || view.Day != models.AllDays {
		t.Fatalf("Unexpected view %+v", view)
	}
	if view.Days[0].Lessons[0].Text != "Матем\nПродолжение" {
		t.Errorf("Unexpected lesson %q", view.Days[0].Lessons[0].Text)
	}
	if days := s.Days(); len(days) != 3 || days[0] != models.AllDays || days[2] != "Вт" {
		t.Errorf("Unexpected day options %q", days)
	}

	s.SelectDay("Вт")
	if view := s.View(); len(view.Days) != 1 || view.Days[0].Day != "Вт" {
		t.Errorf("Expected only Вт, got %+v", view.Days)
	}

	// Building another group resets the day filter.
	if err := s.SelectGroup(ctx, "ГР-2"); err != nil {
		t.Fatalf("SelectGroup failed: %v", err)
	}
	if s.Day() != models.AllDays {
		t.Errorf("Expected day filter reset, got %q", s.Day())
	}

	raw, err := mem.Get(ctx, store.KeySelection)
	if err != nil || raw != `{"sheet":"1 курс","group":"ГР-2"}` {
		t.Errorf("Persisted selection = %q, %v", raw, err)
	}
}

func TestSessionSelectGroupNotFoundKeepsSchedule(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(store.NewMemoryStore())
	s.Apply(ctx, testWorkbook())
	s.SelectSheet(ctx, "1 курс")
	if err := s.SelectGroup(ctx, "ГР-1"); err != nil {
		t.Fatal(err)
	}

	err := s.SelectGroup(ctx, "ГР-9")
	if !errors.Is(err, timetable.ErrGroupNotFound) {
		t.Fatalf("Expected ErrGroupNotFound, got %v", err)
	}
	if s.Selection().Group != "ГР-1" || len(s.View().Days) != 2 {
		t.Error("Expected previous schedule to be kept")
	}
}

func TestSessionEmptySelection(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(store.NewMemoryStore())

	if err := s.SelectGroup(ctx, "ГР-1"); !errors.Is(err, timetable.ErrEmptySelection) {
		t.Errorf("Expected ErrEmptySelection without sheet, got %v", err)
	}

	s.Apply(ctx, testWorkbook())
	if err := s.SelectSheet(ctx, ""); !errors.Is(err, timetable.ErrEmptySelection) {
		t.Errorf("Expected ErrEmptySelection for empty sheet, got %v", err)
	}
	if err := s.SelectSheet(ctx, "9 курс"); !errors.Is(err, timetable.ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound, got %v", err)
	}

	s.SelectSheet(ctx, "1 курс")
	if err := s.SelectGroup(ctx, ""); !errors.Is(err, timetable.ErrEmptySelection) {
		t.Errorf("Expected ErrEmptySelection for empty group, got %v", err)
	}
}

func TestSessionSwitchSheetClearsGroup(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(store.NewMemoryStore())
	s.Apply(ctx, testWorkbook())
	s.SelectSheet(ctx, "1 курс")
	s.SelectGroup(ctx, "ГР-1")

	// Re-selecting the same sheet keeps the schedule.
	s.SelectSheet(ctx, "1 курс")
	if s.View() == nil {
		t.Error("Expected schedule to survive re-selecting the same sheet")
	}

	s.SelectSheet(ctx, "2 курс")
	if s.Selection().Group != "" || s.View() != nil {
		t.Errorf("Expected group cleared, got %+v", s.Selection())
	}
	if got := s.Groups(); len(got) != 1 || got[0] != "ГР-21" {
		t.Errorf("Unexpected groups %q", got)
	}
}

func TestSessionImport(t *testing.T) {
	ctx := context.Background()
	s := newTestSession(store.NewMemoryStore())
	s.Apply(ctx, testWorkbook())
	s.SelectSheet(ctx, "1 курс")
	s.SelectGroup(ctx, "ГР-1")

	// A failed import leaves everything as it was.
	err := s.Import(ctx, filepath.Join(t.TempDir(), "missing.xlsx"))
	if !errors.Is(err, timetable.ErrFileNotFound) {
		t.Fatalf("Expected ErrFileNotFound, got %v", err)
	}
	if s.Workbook().BookName != "schedule.xlsx" || s.Selection().Group != "ГР-1" {
		t.Error("Expected state untouched after failed import")
	}

	f := excelize.NewFile()
	defer f.Close()
	f.SetCellValue("Sheet1", "A1", "День")
	f.SetCellValue("Sheet1", "B1", "Время")
	f.SetCellValue("Sheet1", "C1", "ГР-3")
	path := filepath.Join(t.TempDir(), "new.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}

	if err := s.Import(ctx, path); err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if s.Workbook().BookName != "new.xlsx" {
		t.Errorf("Expected new workbook, got %q", s.Workbook().BookName)
	}
	if s.Selection() != (models.Selection{}) || s.Groups() != nil || s.View() != nil {
		t.Error("Expected selection cleared after import")
	}
}

func TestSessionRestore(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()

	first := newTestSession(mem)
	first.Apply(ctx, testWorkbook())
	first.SelectSheet(ctx, "1 курс")
	first.SelectGroup(ctx, "ГР-2")

	second := newTestSession(mem)
	second.Restore(ctx)

	if second.Selection() != (models.Selection{Sheet: "1 курс", Group: "ГР-2"}) {
		t.Fatalf("Unexpected restored selection %+v", second.Selection())
	}
	view := second.View()
	if view == nil || len(view.Days) != 2 || view.Days[0].Lessons[0].Text != "Физика" {
		t.Errorf("Expected rebuilt schedule, got %+v", view)
	}
}

func TestSessionRestoreDropsStaleSelection(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemoryStore()
	st := store.NewState(mem, nil)
	st.SaveWorkbook(ctx, testWorkbook())
	st.SaveSelection(ctx, models.Selection{Sheet: "1 курс", Group: "ГР-9"})

	s := newTestSession(mem)
	s.Restore(ctx)

	if s.Workbook() == nil {
		t.Fatal("Expected workbook restored")
	}
	if s.Selection().Sheet != "1 курс" || s.Selection().Group != "" {
		t.Errorf("Expected sheet kept and unknown group dropped, got %+v", s.Selection())
	}

	mem.Set(ctx, store.KeySelection, `{"sheet":"9 курс","group":"ГР-1"}`)
	s = newTestSession(mem)
	s.Restore(ctx)
	if s.Selection() != (models.Selection{}) {
		t.Errorf("Expected unknown sheet dropped, got %+v", s.Selection())
	}
}

func TestSessionRestoreWithoutState(t *testing.T) {
	mem := store.NewMemoryStore()
	mem.Set(context.Background(), store.KeyWorkbook, "garbage")

	s := newTestSession(mem)
	s.Restore(context.Background())

	if s.Workbook() != nil || s.Sheets() != nil {
		t.Error("Expected no prior state")
	}
}
