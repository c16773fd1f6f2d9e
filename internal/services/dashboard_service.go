package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/repositories"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

const (
	// snapshotKeepPerSheet bounds the snapshot history retained per sheet.
	snapshotKeepPerSheet = 10

	maxDashboardCards = 6
	maxPieSlices      = 8
	pieOtherLabel     = "Other"

	trendDayLayout = "Jan 2"
)

// dashboardService assembles spending views from a transaction sheet. Reads
// prefer an open edit session's working table, then the live spreadsheet,
// then the newest stored snapshot; only the last is marked stale.
type dashboardService struct {
	store      sheets.Store
	snapshots  SnapshotServiceInterface
	merchants  MerchantServiceInterface
	normalizer NameNormalizerInterface
	overrides  repositories.MerchantOverrideRepositoryInterface
	filter     PeriodFilterInterface
	agg        AggregatorInterface
	audit      AuditLoggerInterface
	metrics    MetricsRecorderInterface
	sheetNames []string
}

// NewDashboardService creates the dashboard assembly service. sheetNames is
// the configured transaction sheet list, used when the backend cannot
// enumerate sheets itself.
func NewDashboardService(
	store sheets.Store,
	snapshots SnapshotServiceInterface,
	merchants MerchantServiceInterface,
	normalizer NameNormalizerInterface,
	overrides repositories.MerchantOverrideRepositoryInterface,
	filter PeriodFilterInterface,
	agg AggregatorInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	sheetNames []string,
) DashboardServiceInterface {
	return &dashboardService{
		store:      store,
		snapshots:  snapshots,
		merchants:  merchants,
		normalizer: normalizer,
		overrides:  overrides,
		filter:     filter,
		agg:        agg,
		audit:      audit,
		metrics:    metrics,
		sheetNames: sheetNames,
	}
}

// GetDashboard builds the full dashboard for one sheet and period.
func (d *dashboardService) GetDashboard(ctx context.Context, sheet string, period models.Period, now time.Time) (*models.DashboardView, error) {
	start := time.Now()

	table, stale, err := d.loadTable(ctx, sheet)
	if err != nil {
		return nil, err
	}

	txns, err := d.prepareTransactions(ctx, sheet, table)
	if err != nil {
		return nil, err
	}

	inPeriod := d.filter.Filter(txns, period, now)
	expenses := expensesOf(inPeriod)
	totalSpending := d.agg.TotalSpending(expenses)

	view := &models.DashboardView{
		Period:        period,
		PeriodLabel:   d.filter.Label(period, now),
		TotalSpending: totalSpending,
		TotalIncome:   d.agg.TotalIncome(inPeriod),
		Cards:         d.buildCards(expenses, totalSpending),
		Pie:           d.buildPie(expenses, totalSpending),
		Trend:         d.buildTrend(expenses),
		Accounts:      d.buildAccounts(inPeriod),
		Stale:         stale,
	}

	if d.metrics != nil {
		d.metrics.RecordProcessingTime("dashboard_assembly", time.Since(start))
	}
	return view, nil
}

// ListTransactions returns the sheet's transactions inside the period,
// newest first, optionally restricted to one account.
func (d *dashboardService) ListTransactions(ctx context.Context, sheet string, period models.Period, account string, now time.Time) ([]models.Transaction, error) {
	table, _, err := d.loadTable(ctx, sheet)
	if err != nil {
		return nil, err
	}

	txns, err := d.prepareTransactions(ctx, sheet, table)
	if err != nil {
		return nil, err
	}

	inPeriod := d.filter.Filter(txns, period, now)
	if account != "" {
		kept := make([]models.Transaction, 0, len(inPeriod))
		for _, txn := range inPeriod {
			if strings.EqualFold(txn.Account, account) {
				kept = append(kept, txn)
			}
		}
		inPeriod = kept
	}

	sort.SliceStable(inPeriod, func(i, j int) bool {
		return inPeriod[i].Date.After(inPeriod[j].Date)
	})
	return inPeriod, nil
}

// ListSheets names the transaction sheets the dashboard can serve. The
// configured list wins where the backend can confirm it; backends without
// sheet enumeration serve the configured list as-is.
func (d *dashboardService) ListSheets(ctx context.Context) ([]string, error) {
	names, err := d.store.ListSheets(ctx)
	if err != nil {
		if errors.Is(err, sheets.ErrNotSupported) {
			return append([]string(nil), d.sheetNames...), nil
		}
		return nil, fmt.Errorf("list sheets: %w", err)
	}

	if len(d.sheetNames) == 0 {
		return names, nil
	}

	present := make(map[string]struct{}, len(names))
	for _, name := range names {
		present[name] = struct{}{}
	}

	kept := make([]string, 0, len(d.sheetNames))
	for _, name := range d.sheetNames {
		if _, ok := present[name]; ok {
			kept = append(kept, name)
		}
	}
	if len(kept) == 0 {
		// Nothing configured matches the spreadsheet; show what exists.
		return names, nil
	}
	return kept, nil
}

// loadTable resolves the table a view is built from: an open edit session's
// working table, else a live read mirrored to the snapshot store, else the
// newest snapshot marked stale.
func (d *dashboardService) loadTable(ctx context.Context, sheet string) (*models.RowTable, bool, error) {
	if d.merchants != nil {
		if table, open := d.merchants.SessionTable(sheet); open {
			return table, false, nil
		}
	}

	readStart := time.Now()
	table, err := d.store.ReadAll(ctx, sheet)
	if err == nil {
		if d.audit != nil {
			d.audit.LogSheetRead(ctx, sheet, table.RowCount(), time.Since(readStart).Milliseconds())
		}
		d.mirror(ctx, sheet, table)
		return table, false, nil
	}

	if d.audit != nil {
		d.audit.LogSheetReadFailed(ctx, sheet, err.Error())
	}
	if d.metrics != nil {
		d.metrics.IncrementCounter("sheet_read_fallbacks", map[string]string{"sheet": sheet})
	}

	snapshot, takenAt, snapErr := d.snapshots.LoadLatest(ctx, sheet)
	if snapErr != nil {
		return nil, false, fmt.Errorf("read %s: %w", sheet, err)
	}

	if d.audit != nil {
		d.audit.LogSnapshotServed(ctx, sheet, takenAt)
	}
	return snapshot, true, nil
}

// mirror stores a fresh read as the sheet's newest snapshot. Mirroring is
// best-effort; a snapshot failure never fails the read that produced it.
func (d *dashboardService) mirror(ctx context.Context, sheet string, table *models.RowTable) {
	if d.snapshots == nil {
		return
	}
	if err := d.snapshots.SaveSnapshot(ctx, sheet, table); err != nil {
		if d.metrics != nil {
			d.metrics.IncrementCounter("snapshot_save_failures", map[string]string{"sheet": sheet})
		}
		return
	}
	_ = d.snapshots.Prune(ctx, sheet, snapshotKeepPerSheet)
}

// prepareTransactions decodes the table and resolves each row's display
// merchant: a sheet group assignment wins, then a stored override, then the
// name normalizer.
func (d *dashboardService) prepareTransactions(ctx context.Context, sheet string, table *models.RowTable) ([]models.Transaction, error) {
	cm, err := models.ResolveColumns(table)
	if err != nil {
		return nil, fmt.Errorf("resolve columns on %s: %w", sheet, err)
	}

	txns := models.DecodeTransactions(sheet, table, cm)
	d.applyOverrides(txns)
	d.normalizeRemaining(ctx, txns)
	return txns, nil
}

func (d *dashboardService) applyOverrides(txns []models.Transaction) {
	if d.overrides == nil {
		return
	}

	stored, err := d.overrides.GetAll()
	if err != nil {
		if d.metrics != nil {
			d.metrics.IncrementCounter("merchant_override_load_failures", nil)
		}
		return
	}
	if len(stored) == 0 {
		return
	}

	byRaw := make(map[string]string, len(stored))
	for _, override := range stored {
		byRaw[override.RawName] = override.GroupName
	}

	for i := range txns {
		if txns[i].Merchant != txns[i].RawMerchant {
			continue
		}
		if group, ok := byRaw[txns[i].RawMerchant]; ok {
			txns[i].Merchant = group
		}
	}
}

func (d *dashboardService) normalizeRemaining(ctx context.Context, txns []models.Transaction) {
	if d.normalizer == nil {
		return
	}

	raws := make([]string, 0, len(txns))
	for i := range txns {
		if txns[i].Merchant == txns[i].RawMerchant && strings.TrimSpace(txns[i].RawMerchant) != "" {
			raws = append(raws, txns[i].RawMerchant)
		}
	}
	if len(raws) == 0 {
		return
	}

	cleaned := d.normalizer.CleanBatch(ctx, raws)
	for i := range txns {
		if txns[i].Merchant != txns[i].RawMerchant {
			continue
		}
		if name, ok := cleaned[txns[i].RawMerchant]; ok && name != "" {
			txns[i].Merchant = name
		}
	}
}

func (d *dashboardService) buildCards(expenses []models.Transaction, total decimal.Decimal) []models.SpendingCard {
	groups := d.agg.TopN(d.agg.GroupBy(expenses, ByCategory), maxDashboardCards)

	cards := make([]models.SpendingCard, 0, len(groups))
	for _, g := range groups {
		cards = append(cards, models.SpendingCard{
			Label:      g.Key,
			Amount:     g.Total,
			Formatted:  formatMoney(g.Total),
			Percentage: d.agg.PercentageOf(g.Total, total),
			Count:      g.Count,
		})
	}
	return cards
}

func (d *dashboardService) buildPie(expenses []models.Transaction, total decimal.Decimal) []models.PieSlice {
	groups := d.agg.GroupBy(expenses, ByMerchant)
	top := d.agg.TopN(groups, maxPieSlices)

	slices := make([]models.PieSlice, 0, len(top)+1)
	for _, g := range top {
		slices = append(slices, models.PieSlice{
			Label:      g.Key,
			Amount:     g.Total,
			Percentage: d.agg.PercentageOf(g.Total, total),
		})
	}

	if len(groups) > len(top) {
		other := decimal.Zero
		for _, g := range groups[len(top):] {
			other = other.Add(g.Total)
		}
		slices = append(slices, models.PieSlice{
			Label:      pieOtherLabel,
			Amount:     other,
			Percentage: d.agg.PercentageOf(other, total),
		})
	}
	return slices
}

// buildTrend turns the per-day rollup into a chronological series. GroupBy
// orders by amount; trend points re-sort on the sortable day key.
func (d *dashboardService) buildTrend(expenses []models.Transaction) []models.TrendPoint {
	days := d.agg.GroupBy(expenses, ByDay)
	sort.Slice(days, func(i, j int) bool { return days[i].Key < days[j].Key })

	points := make([]models.TrendPoint, 0, len(days))
	for _, g := range days {
		label := g.Key
		if parsed, err := time.Parse("2006-01-02", g.Key); err == nil {
			label = parsed.Format(trendDayLayout)
		}
		points = append(points, models.TrendPoint{Label: label, Amount: g.Total})
	}
	return points
}

func (d *dashboardService) buildAccounts(txns []models.Transaction) []models.AccountSummary {
	groups := d.agg.GroupBy(txns, ByAccount)

	summaries := make([]models.AccountSummary, 0, len(groups))
	for _, g := range groups {
		if g.Key == "" {
			continue
		}
		summaries = append(summaries, models.AccountSummary{
			Account: g.Key,
			Total:   g.Total,
			Count:   g.Count,
		})
	}
	return summaries
}

func expensesOf(txns []models.Transaction) []models.Transaction {
	expenses := make([]models.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.IsExpense() {
			expenses = append(expenses, txn)
		}
	}
	return expenses
}

func formatMoney(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
