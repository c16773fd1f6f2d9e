package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

// MockStore is a function-field stub for sheets.Store, for tests that need
// to interleave work with a write in flight.
type MockStore struct {
	WriteCellsFunc func(ctx context.Context, sheet string, edits []models.PendingEdit) error
	WriteCellFunc  func(ctx context.Context, sheet string, row, col int, value string) error
}

func (m *MockStore) ReadAll(ctx context.Context, sheet string) (*models.RowTable, error) {
	return nil, sheets.ErrNotSupported
}

func (m *MockStore) WriteCell(ctx context.Context, sheet string, row, col int, value string) error {
	if m.WriteCellFunc != nil {
		return m.WriteCellFunc(ctx, sheet, row, col, value)
	}
	return nil
}

func (m *MockStore) WriteCells(ctx context.Context, sheet string, edits []models.PendingEdit) error {
	if m.WriteCellsFunc != nil {
		return m.WriteCellsFunc(ctx, sheet, edits)
	}
	return nil
}

func (m *MockStore) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	return sheets.ErrNotSupported
}

func (m *MockStore) EnsureColumn(ctx context.Context, sheet, header string) (int, error) {
	return -1, sheets.ErrNotSupported
}

func (m *MockStore) ListSheets(ctx context.Context) ([]string, error) {
	return nil, sheets.ErrNotSupported
}

// EditCacheSuite defines the test suite for EditCacheInterface
type EditCacheSuite struct {
	suite.Suite
	ctx      context.Context
	store    *sheets.FakeStore
	table    *models.RowTable
	cache    EditCacheInterface
	merchCol int
	groupCol int
}

// SetupTest runs before each test in the suite
func (s *EditCacheSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = sheets.NewFakeStore(map[string][][]string{
		"Transactions": {
			{"Date", "Merchant", "Amount", "Merchant Group"},
			{"2026-01-05", "MCDONALD'S #1234", "-12.50", ""},
			{"2026-01-06", "TIM HORTONS 45", "-3.25", ""},
			{"2026-01-07", "MCDONALD'S #1234", "-9.75", ""},
			{"2026-01-08", "MCDONALDS 40382", "-6.00", ""},
		},
	})

	var err error
	s.table, err = s.store.ReadAll(s.ctx, "Transactions")
	s.Require().NoError(err)

	s.merchCol = s.table.ColumnIndex("Merchant")
	s.groupCol = s.table.ColumnIndex("Merchant Group")
	s.cache = NewEditCache("Transactions", s.table, s.merchCol, s.groupCol)
}

// TestEditCacheSuite runs the test suite
func TestEditCacheSuite(t *testing.T) {
	suite.Run(t, new(EditCacheSuite))
}

func (s *EditCacheSuite) TestEnable_Twice() {
	s.NoError(s.cache.Enable())
	s.ErrorIs(s.cache.Enable(), ErrCacheAlreadyEnabled)
}

func (s *EditCacheSuite) TestApply_WithoutSession() {
	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.ErrorIs(err, ErrCacheDisabled)
}

func (s *EditCacheSuite) TestApply_RewritesMatchingRows() {
	s.Require().NoError(s.cache.Enable())

	touched, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.NoError(err)
	s.Equal(2, touched)

	// Edits hit the working table immediately.
	s.Equal("McDonald's", s.table.Get(1, s.groupCol))
	s.Equal("", s.table.Get(2, s.groupCol))
	s.Equal("McDonald's", s.table.Get(3, s.groupCol))
	s.Equal(2, s.cache.PendingCount())

	// The spreadsheet has seen nothing yet.
	s.Empty(s.store.BatchCalls)
	s.Empty(s.store.CellWrites)
}

func (s *EditCacheSuite) TestApply_UnknownMerchant() {
	s.Require().NoError(s.cache.Enable())

	touched, err := s.cache.Apply("NO SUCH MERCHANT", "Anything")
	s.NoError(err)
	s.Zero(touched)
	s.Zero(s.cache.PendingCount())
}

func (s *EditCacheSuite) TestLiveGroups_ReflectsPendingEdits() {
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)
	_, err = s.cache.Apply("MCDONALDS 40382", "McDonald's")
	s.Require().NoError(err)

	groups := s.cache.LiveGroups()
	s.Require().Contains(groups, "McDonald's")
	s.Equal([]string{"MCDONALD'S #1234", "MCDONALDS 40382"}, groups["McDonald's"])
}

func (s *EditCacheSuite) TestRevert_RestoresSnapshotBytewise() {
	before := s.table.DeepCopy()
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)
	_, err = s.cache.Apply("TIM HORTONS 45", "Tim Hortons")
	s.Require().NoError(err)
	s.Require().False(s.table.Equal(before))

	s.NoError(s.cache.Revert())

	s.True(s.table.Equal(before))
	s.False(s.cache.IsEnabled())
	s.Zero(s.cache.PendingCount())
	s.Empty(s.store.BatchCalls)
}

func (s *EditCacheSuite) TestRevert_WithoutSession() {
	s.ErrorIs(s.cache.Revert(), ErrCacheDisabled)
}

func (s *EditCacheSuite) TestFlush_NothingPending() {
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Flush(s.ctx, s.store)
	s.ErrorIs(err, ErrNothingPending)
}

func (s *EditCacheSuite) TestFlush_SingleBatchWrite() {
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)
	_, err = s.cache.Apply("MCDONALDS 40382", "McDonald's")
	s.Require().NoError(err)
	s.Equal(3, s.cache.PendingCount())

	result, err := s.cache.Flush(s.ctx, s.store)
	s.Require().NoError(err)
	s.Equal(3, result.CellsWritten)
	s.Zero(result.CellsFailed)
	s.False(result.Degraded)

	// Exactly one batch, no per-cell fallback.
	s.Require().Len(s.store.BatchCalls, 1)
	s.Len(s.store.BatchCalls[0], 3)
	s.Empty(s.store.CellWrites)

	// The store's table carries the edits now.
	stored := s.store.Table("Transactions")
	s.Equal("McDonald's", stored.Get(1, s.groupCol))
	s.Equal("McDonald's", stored.Get(3, s.groupCol))
	s.Equal("McDonald's", stored.Get(4, s.groupCol))
	s.Equal("", stored.Get(2, s.groupCol))

	// Session closed, nothing left over.
	s.False(s.cache.IsEnabled())
	s.Zero(s.cache.PendingCount())
}

func (s *EditCacheSuite) TestFlush_DegradesToPerCellWrites() {
	s.store.FailBatch = true
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)

	result, err := s.cache.Flush(s.ctx, s.store)
	s.Require().NoError(err)
	s.Equal(2, result.CellsWritten)
	s.Zero(result.CellsFailed)
	s.True(result.Degraded)

	s.Len(s.store.BatchCalls, 1)
	s.Len(s.store.CellWrites, 2)
	s.False(s.cache.IsEnabled())
}

func (s *EditCacheSuite) TestFlush_FailedCellsStayPending() {
	s.store.FailBatch = true
	s.store.FailCell("Transactions", 3, s.groupCol)
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)

	result, err := s.cache.Flush(s.ctx, s.store)
	s.Require().NoError(err)
	s.Equal(1, result.CellsWritten)
	s.Equal(1, result.CellsFailed)
	s.True(result.Degraded)

	// The failed row waits for the next flush; the session stays open.
	s.True(s.cache.IsEnabled())
	s.Equal(1, s.cache.PendingCount())

	// A retry against a healthy store drains it.
	s.store.FailBatch = false
	s.store.FailCells = map[string]bool{}
	retry, err := s.cache.Flush(s.ctx, s.store)
	s.Require().NoError(err)
	s.Equal(1, retry.CellsWritten)
	s.False(s.cache.IsEnabled())
}

func (s *EditCacheSuite) TestFlush_MidFlightApplyWaitsForNextFlush() {
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)

	var inFlightErr error
	store := &MockStore{
		WriteCellsFunc: func(ctx context.Context, sheet string, edits []models.PendingEdit) error {
			// An apply landing while the batch is on the wire.
			_, inFlightErr = s.cache.Apply("TIM HORTONS 45", "Tim Hortons")
			return nil
		},
	}

	result, err := s.cache.Flush(s.ctx, store)
	s.Require().NoError(err)
	s.NoError(inFlightErr)

	// Only the rows queued before the flush went out.
	s.Equal(2, result.CellsWritten)

	// The mid-flight apply is queued for the next flush and keeps the
	// session open.
	s.True(s.cache.IsEnabled())
	s.Equal(1, s.cache.PendingCount())

	next, err := s.cache.Flush(s.ctx, store)
	s.Require().NoError(err)
	s.Equal(1, next.CellsWritten)
	s.False(s.cache.IsEnabled())
}

func (s *EditCacheSuite) TestRevert_DuringFlight() {
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)

	var revertErr error
	store := &MockStore{
		WriteCellsFunc: func(ctx context.Context, sheet string, edits []models.PendingEdit) error {
			revertErr = s.cache.Revert()
			return nil
		},
	}

	_, err = s.cache.Flush(s.ctx, store)
	s.Require().NoError(err)

	// Those cells were already on their way out; the revert is refused.
	s.ErrorIs(revertErr, ErrFlushInProgress)
}

func (s *EditCacheSuite) TestFlush_DuringFlight() {
	s.Require().NoError(s.cache.Enable())

	_, err := s.cache.Apply("MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)

	var nestedErr error
	store := &MockStore{
		WriteCellsFunc: func(ctx context.Context, sheet string, edits []models.PendingEdit) error {
			_, nestedErr = s.cache.Flush(ctx, &MockStore{})
			return nil
		},
	}

	_, err = s.cache.Flush(s.ctx, store)
	s.Require().NoError(err)
	s.ErrorIs(nestedErr, ErrFlushInProgress)
}
