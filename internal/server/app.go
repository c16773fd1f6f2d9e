package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/danvolchok/budget-tracker-web/internal/config"
	"github.com/danvolchok/budget-tracker-web/internal/database"
	"github.com/danvolchok/budget-tracker-web/internal/repositories"
	"github.com/danvolchok/budget-tracker-web/internal/services"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

// App owns the wired application: configuration, storage, and the service
// graph behind the HTTP handlers. Everything is assembled once here and
// handed down; no package reaches for shared state.
type App struct {
	Config *config.Config
	DB     *database.DB
	Store  sheets.Store

	Dashboard  services.DashboardServiceInterface
	Merchants  services.MerchantServiceInterface
	Budgets    services.BudgetServiceInterface
	Settings   services.SettingsServiceInterface
	SampleData services.SampleDataServiceInterface
	Metrics    services.MetricsRecorderInterface
}

// NewApp connects the database and spreadsheet backend, then assembles the
// service graph from configuration.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	if err := db.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	store, err := sheets.NewStore(ctx, cfg.Sheets)
	if err != nil {
		return nil, fmt.Errorf("build sheet store: %w", err)
	}

	return NewAppWithStore(cfg, db, store)
}

// NewAppWithStore assembles the service graph over pre-built storage. Tests
// use it to wire the full graph over a fake store and an in-memory database.
func NewAppWithStore(cfg *config.Config, db *database.DB, store sheets.Store) (*App, error) {
	audit := services.NewAuditLogger(slog.Default())
	metrics := services.NewPrometheusMetrics()

	semantic, err := services.NewSemanticCleaner(cfg.Semantic)
	if err != nil {
		return nil, fmt.Errorf("build semantic cleaner: %w", err)
	}
	var breaker services.CircuitBreakerInterface
	if semantic != nil {
		breaker = services.NewCircuitBreaker("semantic_cleaner", services.DefaultCircuitBreakerConfig())
	}
	normalizer := services.NewNameNormalizer(semantic, breaker, audit, metrics, cfg.Semantic.BatchInterval)

	overrides := repositories.NewMerchantOverrideRepository(db.DB)
	snapshots := services.NewSnapshotService(repositories.NewSnapshotRepository(db.DB))
	merchants := services.NewMerchantService(store, services.NewSimilarityGrouper(), overrides, audit, metrics)

	agg := services.NewAggregator()
	dashboard := services.NewDashboardService(
		store,
		snapshots,
		merchants,
		normalizer,
		overrides,
		services.NewPeriodFilter(),
		agg,
		audit,
		metrics,
		cfg.Sheets.TransactionSheets,
	)

	converter := services.NewBudgetConverter(cfg.Budget.PayPeriodsPerYear)
	budgets := services.NewBudgetService(repositories.NewBudgetRepository(db.DB), converter, dashboard, agg, audit)

	settings := services.NewSettingsService(repositories.NewSettingRepository(db.DB), cfg.Security.SecretsPassphrase)
	sampleData := services.NewSampleDataService(store, audit, cfg.Server.Environment)

	return &App{
		Config:     cfg,
		DB:         db,
		Store:      store,
		Dashboard:  dashboard,
		Merchants:  merchants,
		Budgets:    budgets,
		Settings:   settings,
		SampleData: sampleData,
		Metrics:    metrics,
	}, nil
}

// DefaultSheet returns the sheet handlers fall back to when a request
// names none: the first configured transaction sheet.
func (a *App) DefaultSheet() string {
	if len(a.Config.Sheets.TransactionSheets) > 0 {
		return a.Config.Sheets.TransactionSheets[0]
	}
	return "Transactions"
}

// Close releases the database connection pool.
func (a *App) Close() error {
	return a.DB.Close()
}
