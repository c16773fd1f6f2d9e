package models

import "github.com/shopspring/decimal"

// View models returned by the API. Each carries everything the renderer
// paints, already computed and formatted; clients never derive numbers.

// SpendingCard is one top-merchant or top-category card.
type SpendingCard struct {
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
	Formatted  string          `json:"formatted"`
	Percentage string          `json:"percentage"`
	Count      int             `json:"count"`
}

// PieSlice is one wedge of the category pie. The final slice may be the
// fold of everything past the display cutoff.
type PieSlice struct {
	Label      string          `json:"label"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage string          `json:"percentage"`
}

// TrendPoint is one bucket of the spending-over-time series.
type TrendPoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// AccountSummary totals one account's activity within the period.
type AccountSummary struct {
	Account string          `json:"account"`
	Total   decimal.Decimal `json:"total"`
	Count   int             `json:"count"`
}

// DashboardView is the whole dashboard for one period. Stale marks a
// response served from the snapshot mirror instead of the live sheet.
type DashboardView struct {
	Period        Period           `json:"period"`
	PeriodLabel   string           `json:"period_label"`
	TotalSpending decimal.Decimal  `json:"total_spending"`
	TotalIncome   decimal.Decimal  `json:"total_income"`
	Cards         []SpendingCard   `json:"cards"`
	Pie           []PieSlice       `json:"pie"`
	Trend         []TrendPoint     `json:"trend"`
	Accounts      []AccountSummary `json:"accounts"`
	Stale         bool             `json:"stale"`
}

// MerchantGroupView is a proposed group plus any near-miss merge hints.
type MerchantGroupView struct {
	Groups      []MerchantGroup   `json:"groups"`
	Suggestions []MergeSuggestion `json:"suggestions"`
	SessionOpen bool              `json:"session_open"`
}

// BudgetView renders one budget at every horizon.
type BudgetView struct {
	Category  string          `json:"category"`
	Week      decimal.Decimal `json:"week"`
	PayPeriod decimal.Decimal `json:"pay_period"`
	Month     decimal.Decimal `json:"month"`
	Year      decimal.Decimal `json:"year"`
}

// BudgetSummaryView is the budget-vs-actual table for one period.
type BudgetSummaryView struct {
	Period   Period         `json:"period"`
	Statuses []BudgetStatus `json:"statuses"`
}
