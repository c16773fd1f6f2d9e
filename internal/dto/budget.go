package dto

import (
	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// UpsertBudgetRequest sets the budget for one category. Amount is a decimal
// string interpreted at the given horizon and stored as a pay-period base.
type UpsertBudgetRequest struct {
	Amount  string `json:"amount" validate:"required,money"`
	Horizon string `json:"horizon" validate:"required,horizon"`
}

// BudgetListResponse returns every stored budget rendered at all horizons
type BudgetListResponse struct {
	Budgets []models.BudgetView `json:"budgets"`
	Count   int                 `json:"count"`
}

// DeleteBudgetResponse confirms a budget removal
type DeleteBudgetResponse struct {
	Message string `json:"message"`
}
