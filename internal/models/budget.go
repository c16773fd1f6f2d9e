package models

import "github.com/shopspring/decimal"

// Budget is a per-category spending target stored in its pay-period base
// amount. Other horizons are derived, never stored, so a budget edited at
// the month view and re-read at the year view stays consistent.
type Budget struct {
	Category   string          `json:"category"`
	BaseAmount decimal.Decimal `json:"base_amount"`
}

// BudgetStatus summarizes actual spending against a budget for one category
// over the selected period.
type BudgetStatus struct {
	Category  string          `json:"category"`
	Budgeted  decimal.Decimal `json:"budgeted"`
	Actual    decimal.Decimal `json:"actual"`
	Remaining decimal.Decimal `json:"remaining"`
	OverLimit bool            `json:"over_limit"`
}
