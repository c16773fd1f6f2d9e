package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/repositories"
)

var (
	ErrBudgetNotFound       = errors.New("no budget set for this category")
	ErrBudgetCategoryEmpty  = errors.New("budget category cannot be empty")
	ErrBudgetAmountNegative = errors.New("budget amount cannot be negative")
)

// budgetService manages per-category budgets. Amounts are stored at the
// pay-period base and projected onto the requested horizon on the way out,
// so a budget edited on the month view and read on the year view agrees
// with itself.
type budgetService struct {
	repo      repositories.BudgetRepositoryInterface
	converter BudgetConverterInterface
	dashboard DashboardServiceInterface
	agg       AggregatorInterface
	audit     AuditLoggerInterface
}

// NewBudgetService creates a budget service. The dashboard dependency
// supplies period spending for the budget-vs-actual summary.
func NewBudgetService(
	repo repositories.BudgetRepositoryInterface,
	converter BudgetConverterInterface,
	dashboard DashboardServiceInterface,
	agg AggregatorInterface,
	audit AuditLoggerInterface,
) BudgetServiceInterface {
	return &budgetService{
		repo:      repo,
		converter: converter,
		dashboard: dashboard,
		agg:       agg,
		audit:     audit,
	}
}

// ListBudgets returns every budget projected onto all four horizons,
// ordered by category.
func (s *budgetService) ListBudgets(ctx context.Context) ([]models.BudgetView, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	views := make([]models.BudgetView, 0, len(records))
	for _, record := range records {
		views = append(views, s.converter.View(record.ToBudget()))
	}
	return views, nil
}

// GetBudget returns one category's budget at all four horizons.
func (s *budgetService) GetBudget(ctx context.Context, category string) (*models.BudgetView, error) {
	record, err := s.repo.GetByCategory(category)
	if err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return nil, ErrBudgetNotFound
		}
		return nil, fmt.Errorf("get budget for %s: %w", category, err)
	}

	view := s.converter.View(record.ToBudget())
	return &view, nil
}

// UpsertBudget stores a budget entered at any horizon. The amount is
// converted to the pay-period base before persisting.
func (s *budgetService) UpsertBudget(ctx context.Context, category string, amount decimal.Decimal, horizon models.Period) (*models.BudgetView, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrBudgetCategoryEmpty
	}
	if amount.IsNegative() {
		return nil, ErrBudgetAmountNegative
	}

	base, err := s.converter.ToBase(amount, horizon)
	if err != nil {
		return nil, err
	}

	record := &models.BudgetRecord{Category: category, BaseAmount: base}
	if err := s.repo.Upsert(record); err != nil {
		return nil, fmt.Errorf("store budget for %s: %w", category, err)
	}

	if s.audit != nil {
		s.audit.LogBudgetChanged(ctx, category, base.String(), "upsert")
	}

	view := s.converter.View(record.ToBudget())
	return &view, nil
}

// DeleteBudget removes a category's budget.
func (s *budgetService) DeleteBudget(ctx context.Context, category string) error {
	if err := s.repo.Delete(category); err != nil {
		if errors.Is(err, repositories.ErrBudgetNotFound) {
			return ErrBudgetNotFound
		}
		return fmt.Errorf("delete budget for %s: %w", category, err)
	}

	if s.audit != nil {
		s.audit.LogBudgetChanged(ctx, category, "", "delete")
	}
	return nil
}

// Summary compares each budget against actual spending in the period. The
// budgeted column is the base amount projected onto the period's horizon;
// actuals come from the sheet's categorized expenses.
func (s *budgetService) Summary(ctx context.Context, sheet string, period models.Period, now time.Time) (*models.BudgetSummaryView, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("list budgets: %w", err)
	}

	txns, err := s.dashboard.ListTransactions(ctx, sheet, period, "", now)
	if err != nil {
		return nil, err
	}

	actuals := make(map[string]decimal.Decimal)
	for _, g := range s.agg.GroupBy(expensesOf(txns), ByCategory) {
		actuals[g.Key] = g.Total
	}

	statuses := make([]models.BudgetStatus, 0, len(records))
	for _, record := range records {
		budgeted := s.converter.FromBase(record.BaseAmount, period)
		actual := actuals[record.Category]

		statuses = append(statuses, models.BudgetStatus{
			Category:  record.Category,
			Budgeted:  budgeted,
			Actual:    actual,
			Remaining: budgeted.Sub(actual),
			OverLimit: actual.GreaterThan(budgeted),
		})
	}

	return &models.BudgetSummaryView{Period: period, Statuses: statuses}, nil
}
