package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/ukaji3/timetable-go/pkg/timetable/models"
	"github.com/ukaji3/timetable-go/pkg/timetable/parser"
	"go.uber.org/zap"
)

// Slot keys.
const (
	KeyWorkbook  = "scheduleData"
	KeySelection = "scheduleConfig"
)

// State reads and writes the two persisted slots.
// Absent or unreadable slots load as "no prior state".
type State struct {
	store Store
	log   *zap.Logger
}

// NewState wraps store. A nil log discards warnings.
func NewState(store Store, log *zap.Logger) *State {
	if log == nil {
		log = zap.NewNop()
	}
	return &State{store: store, log: log}
}

// LoadWorkbook returns the last imported workbook, if any.
func (s *State) LoadWorkbook(ctx context.Context) (*models.Workbook, bool) {
	raw, ok := s.load(ctx, KeyWorkbook)
	if !ok {
		return nil, false
	}

	wb, err := decodeWorkbook(raw)
	if err != nil {
		s.log.Warn("discarding unreadable workbook slot", zap.Error(err))
		return nil, false
	}
	return wb, true
}

// SaveWorkbook replaces the workbook slot.
func (s *State) SaveWorkbook(ctx context.Context, wb *models.Workbook) error {
	return s.save(ctx, KeyWorkbook, wb)
}

// LoadSelection returns the last sheet/group selection, if any.
func (s *State) LoadSelection(ctx context.Context) (models.Selection, bool) {
	raw, ok := s.load(ctx, KeySelection)
	if !ok {
		return models.Selection{}, false
	}

	var sel models.Selection
	if err := json.Unmarshal([]byte(raw), &sel); err != nil {
		s.log.Warn("discarding unreadable selection slot", zap.Error(err))
		return models.Selection{}, false
	}
	return sel, true
}

// SaveSelection replaces the selection slot.
func (s *State) SaveSelection(ctx context.Context, sel models.Selection) error {
	return s.save(ctx, KeySelection, sel)
}

func (s *State) load(ctx context.Context, key string) (string, bool) {
	raw, err := s.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return "", false
	}
	if err != nil {
		s.log.Warn("failed to read state slot", zap.String("key", key), zap.Error(err))
		return "", false
	}
	return raw, true
}

func (s *State) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, key, string(data))
}

var errEmptyWorkbook = errors.New("workbook has no sheets")

// decodeWorkbook accepts both the current layout and a bare {sheet: rows}
// mapping whose cells may be strings, numbers, booleans or null. Sheet order
// is lost in the latter and falls back to name order, as it does when the
// stored sheet list no longer matches the stored sheets.
func decodeWorkbook(raw string) (*models.Workbook, error) {
	var wb models.Workbook
	if err := json.Unmarshal([]byte(raw), &wb); err == nil && len(wb.Sheets) > 0 {
		if !sameSheets(wb.SheetNames, wb.Sheets) {
			wb.SheetNames = sortedNames(wb.Sheets)
		}
		return &wb, nil
	}

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var mapping map[string][][]any
	if err := dec.Decode(&mapping); err != nil {
		return nil, err
	}
	if len(mapping) == 0 {
		return nil, errEmptyWorkbook
	}

	sheets := make(map[string]models.Grid, len(mapping))
	for name, rows := range mapping {
		sheets[name] = parser.Materialize(stringifyRows(rows))
	}
	return &models.Workbook{
		SheetNames: sortedNames(sheets),
		Sheets:     sheets,
	}, nil
}

// sameSheets reports whether names lists every sheet exactly once.
func sameSheets(names []string, sheets map[string]models.Grid) bool {
	if len(names) != len(sheets) {
		return false
	}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if _, ok := sheets[name]; !ok || seen[name] {
			return false
		}
		seen[name] = true
	}
	return true
}

func stringifyRows(rows [][]any) [][]string {
	out := make([][]string, len(rows))
	for i, row := range rows {
		out[i] = make([]string, len(row))
		for j, cell := range row {
			out[i][j] = stringifyCell(cell)
		}
	}
	return out
}

func stringifyCell(cell any) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func sortedNames(sheets map[string]models.Grid) []string {
	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
