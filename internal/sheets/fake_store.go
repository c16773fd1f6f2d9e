package sheets

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// FakeStore is an in-memory Store for tests. Failures are scriptable per
// operation so edit-session tests can drive the batch-then-degrade path.
type FakeStore struct {
	mu     sync.Mutex
	tables map[string]*models.RowTable

	FailReads bool
	FailBatch bool
	FailList  bool
	FailCells map[string]bool

	ReadCalls   []string
	BatchCalls  [][]models.PendingEdit
	CellWrites  []models.PendingEdit
	AppendCalls []int
}

// Ensure interface conformance
var _ Store = (*FakeStore)(nil)

// NewFakeStore seeds a fake with raw cell grids keyed by sheet name.
func NewFakeStore(seed map[string][][]string) *FakeStore {
	tables := make(map[string]*models.RowTable, len(seed))
	for sheet, cells := range seed {
		tables[sheet] = models.NewRowTable(cells)
	}
	return &FakeStore{
		tables:    tables,
		FailCells: make(map[string]bool),
	}
}

func cellKey(sheet string, row, col int) string {
	return fmt.Sprintf("%s:%d:%d", sheet, row, col)
}

// FailCell scripts one cell write to fail.
func (f *FakeStore) FailCell(sheet string, row, col int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.FailCells[cellKey(sheet, row, col)] = true
}

func (f *FakeStore) ReadAll(ctx context.Context, sheet string) (*models.RowTable, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.ReadCalls = append(f.ReadCalls, sheet)
	if f.FailReads {
		return nil, fmt.Errorf("%w: scripted read failure", ErrReadFailed)
	}

	table, ok := f.tables[sheet]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}
	return table.DeepCopy(), nil
}

func (f *FakeStore) WriteCell(ctx context.Context, sheet string, row, col int, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailCells[cellKey(sheet, row, col)] {
		return fmt.Errorf("%w: scripted cell failure at (%d,%d)", ErrWriteFailed, row, col)
	}

	table, ok := f.tables[sheet]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	table.Set(row, col, value)
	f.CellWrites = append(f.CellWrites, models.PendingEdit{
		Sheet: sheet, RowIndex: row, Column: col, NewValue: value,
	})
	return nil
}

func (f *FakeStore) WriteCells(ctx context.Context, sheet string, edits []models.PendingEdit) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	recorded := make([]models.PendingEdit, len(edits))
	copy(recorded, edits)
	f.BatchCalls = append(f.BatchCalls, recorded)

	if f.FailBatch {
		return fmt.Errorf("%w: scripted batch failure", ErrWriteFailed)
	}

	for _, edit := range edits {
		target := sheet
		if edit.Sheet != "" {
			target = edit.Sheet
		}
		table, ok := f.tables[target]
		if !ok {
			return fmt.Errorf("%w: %s", ErrSheetNotFound, target)
		}
		table.Set(edit.RowIndex, edit.Column, edit.NewValue)
	}
	return nil
}

func (f *FakeStore) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	table, ok := f.tables[sheet]
	if !ok {
		return fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	for _, row := range rows {
		table.AppendRow(row)
	}
	f.AppendCalls = append(f.AppendCalls, len(rows))
	return nil
}

func (f *FakeStore) EnsureColumn(ctx context.Context, sheet, header string) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	table, ok := f.tables[sheet]
	if !ok {
		return -1, fmt.Errorf("%w: %s", ErrSheetNotFound, sheet)
	}

	if idx := table.ColumnIndex(header); idx >= 0 {
		return idx, nil
	}
	return table.AppendColumn(header), nil
}

func (f *FakeStore) ListSheets(ctx context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.FailList {
		return nil, fmt.Errorf("%w: scripted list failure", ErrUnavailable)
	}

	names := make([]string, 0, len(f.tables))
	for name := range f.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Table exposes a seeded sheet's live table for assertions.
func (f *FakeStore) Table(sheet string) *models.RowTable {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tables[sheet]
}
