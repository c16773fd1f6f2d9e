package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/repositories/repository_mocks"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

// MerchantServiceSuite defines the test suite for MerchantServiceInterface
type MerchantServiceSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	store         *sheets.FakeStore
	mockOverrides *repository_mocks.MockMerchantOverrideRepositoryInterface
	service       MerchantServiceInterface
}

// SetupTest runs before each test in the suite
func (s *MerchantServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	s.store = sheets.NewFakeStore(map[string][][]string{
		"Transactions": {
			{"Date", "Merchant", "Amount"},
			{"2026-01-05", "MCDONALD'S #1234", "-12.50"},
			{"2026-01-06", "TIM HORTONS 45", "-3.25"},
			{"2026-01-07", "MCDONALD'S #1234", "-9.75"},
			{"2026-01-08", "MCDONALDS 40382", "-6.00"},
			{"2026-01-09", "PAYROLL DEPOSIT", "1500.00"},
		},
	})
	s.mockOverrides = repository_mocks.NewMockMerchantOverrideRepositoryInterface(s.ctrl)

	audit := NewAuditLogger(slog.Default())
	s.service = NewMerchantService(s.store, NewSimilarityGrouper(), s.mockOverrides, audit, nil)
}

// TearDownTest runs after each test in the suite
func (s *MerchantServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestMerchantServiceSuite runs the test suite
func TestMerchantServiceSuite(t *testing.T) {
	suite.Run(t, new(MerchantServiceSuite))
}

// groupColumn returns the index the group column lands on after a session
// appends it to the three seeded columns.
func (s *MerchantServiceSuite) groupColumn() int {
	return 3
}

func (s *MerchantServiceSuite) TestProposeGroups_ClustersVariantsWithTotals() {
	view, err := s.service.ProposeGroups(s.ctx, "Transactions")
	s.Require().NoError(err)

	s.False(view.SessionOpen)
	s.Require().Len(view.Groups, 1, "only the McDonald's variants share a key")

	group := view.Groups[0]
	s.Equal("MCDONALD'S", group.Name)
	s.Equal(3, group.Count)
	s.Require().Len(group.Members, 2)
	s.Equal("MCDONALD'S #1234", group.Members[0].Raw)
	s.Equal(2, group.Members[0].Count)
	s.Equal("MCDONALDS 40382", group.Members[1].Raw)
	s.True(group.Total.Equal(decimal.RequireFromString("28.25")),
		"expected 28.25, got %s", group.Total)
}

func (s *MerchantServiceSuite) TestProposeGroups_MissingSheet() {
	_, err := s.service.ProposeGroups(s.ctx, "Nope")
	s.Require().ErrorIs(err, sheets.ErrSheetNotFound)
}

func (s *MerchantServiceSuite) TestStartSession_CreatesGroupColumn() {
	s.Require().NoError(s.service.StartSession(s.ctx, "Transactions"))

	table, open := s.service.SessionTable("Transactions")
	s.Require().True(open)
	s.Equal(s.groupColumn(), table.ColumnIndex(models.MerchantGroupHeader))

	// The column was created server-side, not just locally.
	s.Equal(s.groupColumn(), s.store.Table("Transactions").ColumnIndex(models.MerchantGroupHeader))
}

func (s *MerchantServiceSuite) TestStartSession_Twice() {
	s.Require().NoError(s.service.StartSession(s.ctx, "Transactions"))

	err := s.service.StartSession(s.ctx, "Transactions")
	s.Require().ErrorIs(err, ErrSessionActive)
}

func (s *MerchantServiceSuite) TestProposeGroups_OpenSessionSkipsStoreRead() {
	s.Require().NoError(s.service.StartSession(s.ctx, "Transactions"))
	readsAfterStart := len(s.store.ReadCalls)

	view, err := s.service.ProposeGroups(s.ctx, "Transactions")
	s.Require().NoError(err)

	s.True(view.SessionOpen)
	s.Len(s.store.ReadCalls, readsAfterStart, "an open session serves its working table")
}

func (s *MerchantServiceSuite) TestApplyGroup_WithoutSession() {
	_, err := s.service.ApplyGroup(s.ctx, "Transactions", "MCDONALD'S #1234", "McDonald's")
	s.Require().ErrorIs(err, ErrNoSession)
}

func (s *MerchantServiceSuite) TestApplyGroup_RewritesMatchingRows() {
	s.Require().NoError(s.service.StartSession(s.ctx, "Transactions"))

	touched, err := s.service.ApplyGroup(s.ctx, "Transactions", "MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)
	s.Equal(2, touched)

	open, pending := s.service.SessionState("Transactions")
	s.True(open)
	s.Equal(2, pending)

	// The store has not been written; edits live in the session only.
	s.Empty(s.store.BatchCalls)
	s.Empty(s.store.CellWrites)
}

func (s *MerchantServiceSuite) TestApplyGroup_Validation() {
	s.Require().NoError(s.service.StartSession(s.ctx, "Transactions"))

	_, err := s.service.ApplyGroup(s.ctx, "Transactions", "  ", "McDonald's")
	s.Require().ErrorIs(err, ErrMerchantEmpty)

	_, err = s.service.ApplyGroup(s.ctx, "Transactions", "MCDONALD'S #1234", " ")
	s.Require().ErrorIs(err, ErrGroupNameEmpty)

	_, err = s.service.ApplyGroup(s.ctx, "Transactions", "BURGER PALACE", "Burgers")
	s.Require().ErrorIs(err, ErrMerchantNoRows)
}

func (s *MerchantServiceSuite) TestFlushSession_WritesBatchAndPersistsOverrides() {
	s.Require().NoError(s.service.StartSession(s.ctx, "Transactions"))

	_, err := s.service.ApplyGroup(s.ctx, "Transactions", "MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)
	_, err = s.service.ApplyGroup(s.ctx, "Transactions", "MCDONALDS 40382", "McDonald's")
	s.Require().NoError(err)

	var persisted []models.MerchantOverride
	s.mockOverrides.EXPECT().
		UpsertBatch(gomock.Any()).
		DoAndReturn(func(overrides []models.MerchantOverride) error {
			persisted = overrides
			return nil
		}).
		Times(1)

	result, err := s.service.FlushSession(s.ctx, "Transactions")
	s.Require().NoError(err)
	s.Equal(3, result.CellsWritten)
	s.Equal(0, result.CellsFailed)
	s.False(result.Degraded)

	s.Require().Len(persisted, 2)
	byRaw := make(map[string]string)
	for _, override := range persisted {
		byRaw[override.RawName] = override.GroupName
	}
	s.Equal("McDonald's", byRaw["MCDONALD'S #1234"])
	s.Equal("McDonald's", byRaw["MCDONALDS 40382"])

	open, pending := s.service.SessionState("Transactions")
	s.False(open)
	s.Equal(0, pending)

	s.Equal("McDonald's", s.store.Table("Transactions").Get(1, s.groupColumn()))
	s.Equal("McDonald's", s.store.Table("Transactions").Get(4, s.groupColumn()))

	_, err = s.service.FlushSession(s.ctx, "Transactions")
	s.Require().ErrorIs(err, ErrNoSession)
}

func (s *MerchantServiceSuite) TestFlushSession_FailedCellsKeepSessionOpen() {
	s.Require().NoError(s.service.StartSession(s.ctx, "Transactions"))

	_, err := s.service.ApplyGroup(s.ctx, "Transactions", "MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)

	s.store.FailBatch = true
	s.store.FailCell("Transactions", 1, s.groupColumn())

	result, err := s.service.FlushSession(s.ctx, "Transactions")
	s.Require().NoError(err)
	s.True(result.Degraded)
	s.Equal(1, result.CellsWritten)
	s.Equal(1, result.CellsFailed)

	// Overrides are only persisted once everything lands; the session
	// stays open holding the failed cell.
	open, pending := s.service.SessionState("Transactions")
	s.True(open)
	s.Equal(1, pending)

	s.store.FailBatch = false
	s.store.FailCells = map[string]bool{}
	s.mockOverrides.EXPECT().UpsertBatch(gomock.Any()).Return(nil).Times(1)

	retry, err := s.service.FlushSession(s.ctx, "Transactions")
	s.Require().NoError(err)
	s.Equal(1, retry.CellsWritten)

	open, _ = s.service.SessionState("Transactions")
	s.False(open)
}

func (s *MerchantServiceSuite) TestRevertSession_DiscardsEdits() {
	s.Require().NoError(s.service.StartSession(s.ctx, "Transactions"))

	_, err := s.service.ApplyGroup(s.ctx, "Transactions", "MCDONALD'S #1234", "McDonald's")
	s.Require().NoError(err)

	s.Require().NoError(s.service.RevertSession(s.ctx, "Transactions"))

	open, pending := s.service.SessionState("Transactions")
	s.False(open)
	s.Equal(0, pending)

	_, sessionOpen := s.service.SessionTable("Transactions")
	s.False(sessionOpen)

	s.Empty(s.store.BatchCalls)
	s.Empty(s.store.CellWrites)

	err = s.service.RevertSession(s.ctx, "Transactions")
	s.Require().ErrorIs(err, ErrNoSession)
}

func (s *MerchantServiceSuite) TestSessionState_NoSession() {
	open, pending := s.service.SessionState("Transactions")
	s.False(open)
	s.Equal(0, pending)
}
