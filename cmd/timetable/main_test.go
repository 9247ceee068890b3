package main

import (
	"context"
	"errors"
	"testing"

	"github.com/ukaji3/timetable-go/internal/config"
	"github.com/ukaji3/timetable-go/pkg/timetable"
	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/store"
)

func TestResolveDay(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", models.AllDays},
		{"all", models.AllDays},
		{"ALL", models.AllDays},
		{"Пн", "Пн"},
		{models.AllDays, models.AllDays},
	}
	for _, tt := range tests {
		if got := resolveDay(tt.in); got != tt.want {
			t.Errorf("resolveDay(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()

	st, err := openStore(ctx, &config.Config{StateBackend: config.BackendMemory})
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	if _, ok := st.(*store.MemoryStore); !ok {
		t.Errorf("Expected *store.MemoryStore, got %T", st)
	}

	st, err = openStore(ctx, &config.Config{StateBackend: config.BackendFile, StateDir: t.TempDir()})
	if err != nil {
		t.Fatalf("file backend: %v", err)
	}
	if _, ok := st.(*store.FileStore); !ok {
		t.Errorf("Expected *store.FileStore, got %T", st)
	}

	if _, err := openStore(ctx, &config.Config{StateBackend: "sqlite"}); err == nil {
		t.Error("Expected error for unknown backend")
	}
}

func TestSheetSummaries(t *testing.T) {
	wb := &models.Workbook{
		SheetNames: []string{"1 курс", "2 курс"},
		Sheets: map[string]models.Grid{
			"1 курс": {{"День", "Время", "ГР-1", "ГР-2"}},
			"2 курс": {{"День", "Время"}},
		},
	}

	summaries, err := sheetSummaries(wb)
	if err != nil {
		t.Fatalf("sheetSummaries failed: %v", err)
	}
	if len(summaries) != 2 || len(summaries[0].Groups) != 2 || len(summaries[1].Groups) != 0 {
		t.Errorf("Unexpected summaries %+v", summaries)
	}

	wb.SheetNames = append(wb.SheetNames, "3 курс")
	if _, err := sheetSummaries(wb); !errors.Is(err, timetable.ErrSheetNotFound) {
		t.Errorf("Expected ErrSheetNotFound for a listed but missing sheet, got %v", err)
	}
}
