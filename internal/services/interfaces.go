package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

// NameNormalizerInterface turns raw bank merchant strings into display names
type NameNormalizerInterface interface {
	// Clean normalizes a single raw merchant string
	Clean(ctx context.Context, raw string) string

	// CleanBatch normalizes a set of raw strings, performing exactly one
	// normalization per unique input
	CleanBatch(ctx context.Context, raws []string) map[string]string
}

// SemanticCleanerInterface asks a language model for a canonical merchant name
type SemanticCleanerInterface interface {
	// CleanName returns the model's suggested merchant name for a raw string
	CleanName(ctx context.Context, raw string) (string, error)

	// Provider identifies the backing model provider for logs and metrics
	Provider() string
}

// SimilarityGrouperInterface clusters merchant name variants into groups
type SimilarityGrouperInterface interface {
	// ProposeGroups clusters raw merchant counts into named groups; only
	// clusters with more than one distinct raw variant are returned
	ProposeGroups(counts []models.MerchantCount) []models.MerchantGroup

	// SuggestMerges pairs groups whose derived keys are nearly identical
	SuggestMerges(groups []models.MerchantGroup) []models.MergeSuggestion
}

// EditCacheInterface buffers merchant renames against one sheet until flushed
type EditCacheInterface interface {
	// Enable snapshots the working table and opens an edit session
	Enable() error

	// Apply rewrites a merchant across the working table, recording the
	// touched cells, and returns the number of rows rewritten
	Apply(rawMerchant, newGroup string) (int, error)

	// LiveGroups recomputes group assignments from the working table so
	// callers see pending edits reflected immediately
	LiveGroups() map[string][]string

	// Flush writes all pending edits through the store and clears them
	Flush(ctx context.Context, store sheets.Store) (*FlushResult, error)

	// Revert restores the working table to its enable-time snapshot and
	// discards pending edits
	Revert() error

	// IsEnabled reports whether an edit session is open
	IsEnabled() bool

	// PendingCount returns the number of buffered cell edits
	PendingCount() int
}

// PeriodFilterInterface restricts transactions to a reporting window
type PeriodFilterInterface interface {
	// PeriodBounds returns the [start, end) window for a period anchored at
	// now; a zero end time means the window is open-ended
	PeriodBounds(period models.Period, now time.Time) (time.Time, time.Time)

	// IsInPeriod reports whether a date falls inside the period window
	IsInPeriod(date time.Time, period models.Period, now time.Time) bool

	// Filter returns the transactions whose dates fall inside the window,
	// excluding transactions with unparseable dates
	Filter(txns []models.Transaction, period models.Period, now time.Time) []models.Transaction

	// Label renders a human-readable description of the period window
	Label(period models.Period, now time.Time) string
}

// AggregatorInterface computes spending rollups over transaction sets.
// Callers are expected to filter the list (by period, by expense sign)
// before aggregating; the rollups themselves sum absolute amounts.
type AggregatorInterface interface {
	// TotalSpending sums the absolute amounts of every transaction
	TotalSpending(txns []models.Transaction) decimal.Decimal

	// TotalIncome sums positive amounts
	TotalIncome(txns []models.Transaction) decimal.Decimal

	// GroupBy buckets absolute amounts by key, returning totals in
	// descending amount order with first-seen keys breaking ties
	GroupBy(txns []models.Transaction, key GroupKeyFunc) []GroupTotal

	// TopN keeps the n largest groups, preserving GroupBy order
	TopN(groups []GroupTotal, n int) []GroupTotal

	// PercentageOf formats part as a percentage of total with one decimal
	PercentageOf(part, total decimal.Decimal) string
}

// BudgetConverterInterface translates budget amounts between horizons
type BudgetConverterInterface interface {
	// ToBase converts an amount entered at a horizon to the stored
	// pay-period base
	ToBase(amount decimal.Decimal, horizon models.Period) (decimal.Decimal, error)

	// FromBase projects a stored base amount onto a horizon
	FromBase(base decimal.Decimal, horizon models.Period) decimal.Decimal

	// View projects a budget onto all four horizons at once
	View(budget models.Budget) models.BudgetView
}

// DashboardServiceInterface assembles spending views from sheet data
type DashboardServiceInterface interface {
	GetDashboard(ctx context.Context, sheet string, period models.Period, now time.Time) (*models.DashboardView, error)
	ListTransactions(ctx context.Context, sheet string, period models.Period, account string, now time.Time) ([]models.Transaction, error)
	ListSheets(ctx context.Context) ([]string, error)
}

// MerchantServiceInterface manages merchant grouping and edit sessions
type MerchantServiceInterface interface {
	ProposeGroups(ctx context.Context, sheet string) (*models.MerchantGroupView, error)
	StartSession(ctx context.Context, sheet string) error
	ApplyGroup(ctx context.Context, sheet, rawMerchant, newGroup string) (int, error)
	FlushSession(ctx context.Context, sheet string) (*FlushResult, error)
	RevertSession(ctx context.Context, sheet string) error
	SessionState(sheet string) (bool, int)

	// SessionTable exposes the open session's working table so other
	// readers observe pending edits; false when no session is open
	SessionTable(sheet string) (*models.RowTable, bool)
}

// BudgetServiceInterface manages per-category budgets and spending status
type BudgetServiceInterface interface {
	ListBudgets(ctx context.Context) ([]models.BudgetView, error)
	GetBudget(ctx context.Context, category string) (*models.BudgetView, error)
	UpsertBudget(ctx context.Context, category string, amount decimal.Decimal, horizon models.Period) (*models.BudgetView, error)
	DeleteBudget(ctx context.Context, category string) error
	Summary(ctx context.Context, sheet string, period models.Period, now time.Time) (*models.BudgetSummaryView, error)
}

// SnapshotServiceInterface persists sheet row snapshots for stale fallback
type SnapshotServiceInterface interface {
	SaveSnapshot(ctx context.Context, sheet string, table *models.RowTable) error
	LoadLatest(ctx context.Context, sheet string) (*models.RowTable, time.Time, error)
	Prune(ctx context.Context, sheet string, keep int) error
}

// SettingsServiceInterface stores runtime settings, optionally sealed
type SettingsServiceInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	SetSecret(ctx context.Context, key, value string) error
	GetSecret(ctx context.Context, key string) (string, error)
}

// SampleDataServiceInterface seeds a sheet with generated transactions
type SampleDataServiceInterface interface {
	Generate(ctx context.Context, sheet string, rows int) (int, error)
}

type AuditLoggerInterface interface {
	LogSheetRead(ctx context.Context, sheet string, rows int, durationMs int64)
	LogSheetReadFailed(ctx context.Context, sheet string, errorMsg string)
	LogSnapshotServed(ctx context.Context, sheet string, takenAt time.Time)
	LogSessionEnabled(ctx context.Context, sheet string, rows int)
	LogGroupApplied(ctx context.Context, sheet, rawMerchant, newGroup string, rowsTouched int)
	LogSessionFlushed(ctx context.Context, sheet string, cellsWritten, cellsFailed int, degraded bool)
	LogSessionReverted(ctx context.Context, sheet string)
	LogSemanticCleanApplied(ctx context.Context, provider, raw, cleaned string)
	LogSemanticCleanFailed(ctx context.Context, provider, raw, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogBudgetChanged(ctx context.Context, category, baseAmount, action string)
	LogSampleDataGenerated(ctx context.Context, sheet string, rows int)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
