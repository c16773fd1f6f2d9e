package services

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/repositories"
	"github.com/danvolchok/budget-tracker-web/internal/repositories/repository_mocks"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

// DashboardServiceSuite defines the test suite for DashboardServiceInterface
type DashboardServiceSuite struct {
	suite.Suite
	ctx           context.Context
	ctrl          *gomock.Controller
	store         *sheets.FakeStore
	mockSnapshots *repository_mocks.MockSnapshotRepositoryInterface
	mockOverrides *repository_mocks.MockMerchantOverrideRepositoryInterface
	snapLatest    map[string]*models.RowSnapshot
	overrideRows  []models.MerchantOverride
	merchants     MerchantServiceInterface
	service       DashboardServiceInterface
	now           time.Time
}

// SetupTest runs before each test in the suite
func (s *DashboardServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())
	// 2026-03-10 is a Tuesday; the surrounding Sunday week runs Mar 8-15.
	s.now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	s.snapLatest = make(map[string]*models.RowSnapshot)
	s.overrideRows = nil

	s.mockSnapshots = repository_mocks.NewMockSnapshotRepositoryInterface(s.ctrl)
	s.mockSnapshots.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(snapshot *models.RowSnapshot) error {
			if snapshot.TakenAt.IsZero() {
				snapshot.TakenAt = time.Now()
			}
			s.snapLatest[snapshot.Sheet] = snapshot
			return nil
		}).
		AnyTimes()
	s.mockSnapshots.EXPECT().
		GetLatestBySheet(gomock.Any()).
		DoAndReturn(func(sheet string) (*models.RowSnapshot, error) {
			snapshot, ok := s.snapLatest[sheet]
			if !ok {
				return nil, repositories.ErrSnapshotNotFound
			}
			return snapshot, nil
		}).
		AnyTimes()
	s.mockSnapshots.EXPECT().
		PruneBySheet(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		AnyTimes()

	s.mockOverrides = repository_mocks.NewMockMerchantOverrideRepositoryInterface(s.ctrl)
	s.mockOverrides.EXPECT().
		GetAll().
		DoAndReturn(func() ([]models.MerchantOverride, error) {
			return s.overrideRows, nil
		}).
		AnyTimes()

	s.buildService(map[string][][]string{
		"Transactions": {
			{"Date", "Merchant", "Amount", "Account", "Category"},
			{"2026-03-09", "WAL-MART #3454", "-50.00", "Visa", "Groceries"},
			{"2026-03-09", "UBER TRIP HELP.UBER.COM", "-25.00", "Amex", "Transport"},
			{"2026-03-02", "WAL-MART #3454", "-40.00", "Visa", "Groceries"},
			{"2026-03-03", "PAYROLL ACME CORP", "1500.00", "Chequing", "Income"},
			{"2025-12-31", "NETFLIX.COM", "-17.99", "Visa", ""},
			{"garbage", "MYSTERY SHOP", "-5.00", "Visa", ""},
		},
	})
}

// TearDownTest runs after each test in the suite
func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestDashboardServiceSuite runs the test suite
func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) buildService(seed map[string][][]string) {
	s.store = sheets.NewFakeStore(seed)

	audit := NewAuditLogger(slog.Default())
	snapshots := NewSnapshotService(s.mockSnapshots)
	s.merchants = NewMerchantService(s.store, NewSimilarityGrouper(), s.mockOverrides, audit, nil)
	normalizer := NewNameNormalizer(nil, nil, audit, nil, 0)

	s.service = NewDashboardService(
		s.store,
		snapshots,
		s.merchants,
		normalizer,
		s.mockOverrides,
		NewPeriodFilter(),
		NewAggregator(),
		audit,
		nil,
		[]string{"Transactions"},
	)
}

func (s *DashboardServiceSuite) amount(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func (s *DashboardServiceSuite) TestGetDashboard_WeekView() {
	view, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().NoError(err)

	s.Equal(models.PeriodWeek, view.Period)
	s.Equal("Week of Mar 8, 2026", view.PeriodLabel)
	s.False(view.Stale)
	s.True(view.TotalSpending.Equal(s.amount("75")), "expected 75, got %s", view.TotalSpending)
	s.True(view.TotalIncome.IsZero(), "payroll lands outside the week")

	s.Require().Len(view.Cards, 2)
	s.Equal("Groceries", view.Cards[0].Label)
	s.True(view.Cards[0].Amount.Equal(s.amount("50")))
	s.Equal("$50.00", view.Cards[0].Formatted)
	s.Equal("66.7%", view.Cards[0].Percentage)
	s.Equal(1, view.Cards[0].Count)
	s.Equal("Transport", view.Cards[1].Label)
}

func (s *DashboardServiceSuite) TestGetDashboard_MonthView() {
	view, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodMonth, s.now)
	s.Require().NoError(err)

	s.Equal("March 2026", view.PeriodLabel)
	s.True(view.TotalSpending.Equal(s.amount("115")), "expected 115, got %s", view.TotalSpending)
	s.True(view.TotalIncome.Equal(s.amount("1500")))

	s.Require().Len(view.Cards, 2)
	s.Equal("Groceries", view.Cards[0].Label)
	s.True(view.Cards[0].Amount.Equal(s.amount("90")))
	s.Equal(2, view.Cards[0].Count)

	s.Require().Len(view.Trend, 2, "two distinct spending days in March")
	s.Equal("Mar 2", view.Trend[0].Label)
	s.True(view.Trend[0].Amount.Equal(s.amount("40")))
	s.Equal("Mar 9", view.Trend[1].Label)
	s.True(view.Trend[1].Amount.Equal(s.amount("75")))
}

func (s *DashboardServiceSuite) TestGetDashboard_NormalizesPieLabels() {
	view, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().NoError(err)

	s.Require().Len(view.Pie, 2)
	s.Equal("Wal-Mart", view.Pie[0].Label)
	s.True(view.Pie[0].Amount.Equal(s.amount("50")))
	s.Equal("Uber", view.Pie[1].Label)
	s.Equal("33.3%", view.Pie[1].Percentage)
}

func (s *DashboardServiceSuite) TestGetDashboard_AccountRollup() {
	view, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().NoError(err)

	s.Require().Len(view.Accounts, 2)
	s.Equal("Visa", view.Accounts[0].Account)
	s.True(view.Accounts[0].Total.Equal(s.amount("50")))
	s.Equal(1, view.Accounts[0].Count)
	s.Equal("Amex", view.Accounts[1].Account)
}

func (s *DashboardServiceSuite) TestGetDashboard_StoredOverrideWins() {
	s.overrideRows = []models.MerchantOverride{
		{RawName: "UBER TRIP HELP.UBER.COM", GroupName: "Rideshare"},
	}

	view, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().NoError(err)

	labels := pieLabels(view.Pie)
	s.Contains(labels, "Rideshare")
	s.NotContains(labels, "Uber")
}

func (s *DashboardServiceSuite) TestGetDashboard_SheetGroupBeatsOverride() {
	s.buildService(map[string][][]string{
		"Transactions": {
			{"Date", "Merchant", "Amount", "Merchant Group"},
			{"2026-03-09", "UBER TRIP HELP.UBER.COM", "-25.00", "Trips"},
		},
	})
	s.overrideRows = []models.MerchantOverride{
		{RawName: "UBER TRIP HELP.UBER.COM", GroupName: "Rideshare"},
	}

	view, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().NoError(err)

	labels := pieLabels(view.Pie)
	s.Contains(labels, "Trips")
	s.NotContains(labels, "Rideshare")
}

func (s *DashboardServiceSuite) TestGetDashboard_ServesSnapshotWhenReadFails() {
	_, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().NoError(err)
	s.Require().Contains(s.snapLatest, "Transactions", "a successful read mirrors a snapshot")

	s.store.FailReads = true

	view, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().NoError(err)
	s.True(view.Stale)
	s.True(view.TotalSpending.Equal(s.amount("75")), "snapshot serves the same numbers")
}

func (s *DashboardServiceSuite) TestGetDashboard_ReadFailureWithoutSnapshot() {
	s.store.FailReads = true

	_, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().ErrorIs(err, sheets.ErrReadFailed)
}

func (s *DashboardServiceSuite) TestGetDashboard_OpenSessionTableServed() {
	s.Require().NoError(s.merchants.StartSession(s.ctx, "Transactions"))
	_, err := s.merchants.ApplyGroup(s.ctx, "Transactions", "WAL-MART #3454", "Wally World")
	s.Require().NoError(err)
	reads := len(s.store.ReadCalls)

	view, err := s.service.GetDashboard(s.ctx, "Transactions", models.PeriodWeek, s.now)
	s.Require().NoError(err)

	s.False(view.Stale)
	s.Contains(pieLabels(view.Pie), "Wally World", "pending edits show before any flush")
	s.Len(s.store.ReadCalls, reads, "the session table is served without a fresh read")
}

func (s *DashboardServiceSuite) TestListTransactions_AccountFilterNewestFirst() {
	txns, err := s.service.ListTransactions(s.ctx, "Transactions", models.PeriodMonth, "visa", s.now)
	s.Require().NoError(err)

	s.Require().Len(txns, 2)
	s.Equal("2026-03-09", txns[0].DateRaw)
	s.Equal("Wal-Mart", txns[0].Merchant)
	s.Equal("2026-03-02", txns[1].DateRaw)
}

func (s *DashboardServiceSuite) TestListTransactions_DropsUnparseableDates() {
	txns, err := s.service.ListTransactions(s.ctx, "Transactions", models.PeriodYear, "", s.now)
	s.Require().NoError(err)

	s.Len(txns, 4, "the 2025 row and the bad-date row are excluded")
	for _, txn := range txns {
		s.True(txn.DateValid)
	}
}

func (s *DashboardServiceSuite) TestListSheets_ConfiguredAndPresent() {
	names, err := s.service.ListSheets(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Transactions"}, names)
}

func (s *DashboardServiceSuite) TestListSheets_ConfiguredSheetMissing() {
	audit := NewAuditLogger(slog.Default())
	service := NewDashboardService(
		s.store, NewSnapshotService(s.mockSnapshots), nil, nil, nil,
		NewPeriodFilter(), NewAggregator(), audit, nil,
		[]string{"Ledger"},
	)

	names, err := service.ListSheets(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Transactions"}, names, "unknown configured names fall back to the spreadsheet's sheets")
}

func (s *DashboardServiceSuite) TestListSheets_BackendWithoutListing() {
	audit := NewAuditLogger(slog.Default())
	service := NewDashboardService(
		&MockStore{}, NewSnapshotService(s.mockSnapshots), nil, nil, nil,
		NewPeriodFilter(), NewAggregator(), audit, nil,
		[]string{"Main", "Joint"},
	)

	names, err := service.ListSheets(s.ctx)
	s.Require().NoError(err)
	s.Equal([]string{"Main", "Joint"}, names)
}

func pieLabels(slices []models.PieSlice) []string {
	labels := make([]string, 0, len(slices))
	for _, slice := range slices {
		labels = append(labels, slice.Label)
	}
	return labels
}
