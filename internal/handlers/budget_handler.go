package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"
	"time"

	"github.com/danvolchok/budget-tracker-web/internal/dto"
	"github.com/danvolchok/budget-tracker-web/internal/errors"
	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// BudgetHandler handles budget HTTP requests
type BudgetHandler struct {
	budgetService services.BudgetServiceInterface
	defaultSheet  string
}

// NewBudgetHandler creates a new budget handler
func NewBudgetHandler(budgetService services.BudgetServiceInterface, defaultSheet string) *BudgetHandler {
	return &BudgetHandler{
		budgetService: budgetService,
		defaultSheet:  defaultSheet,
	}
}

// ListBudgets lists every stored budget
// @Summary List budgets
// @Description List every stored budget with its amount rendered at all four horizons
// @Tags Budgets
// @Produce json
// @Success 200 {object} dto.BudgetListResponse "Stored budgets"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets [get]
func (h *BudgetHandler) ListBudgets(c echo.Context) error {
	budgets, err := h.budgetService.ListBudgets(c.Request().Context())
	if err != nil {
		return mapBudgetErr(c, err)
	}

	response := dto.BudgetListResponse{
		Budgets: budgets,
		Count:   len(budgets),
	}

	return c.JSON(http.StatusOK, response)
}

// GetBudget returns one category's budget
// @Summary Get budget
// @Description Return one category's budget rendered at all four horizons
// @Tags Budgets
// @Produce json
// @Param category path string true "Budget category"
// @Success 200 {object} models.BudgetView "The budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing category"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - No budget set for this category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{category} [get]
func (h *BudgetHandler) GetBudget(c echo.Context) error {
	category := strings.TrimSpace(c.Param("category"))
	if category == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category is required"))
	}

	budget, err := h.budgetService.GetBudget(c.Request().Context(), category)
	if err != nil {
		return mapBudgetErr(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// UpsertBudget creates or replaces one category's budget
// @Summary Set budget
// @Description Create or replace the budget for a category. The amount is read at the given horizon, stored at the pay-period base, and returned rendered at all four horizons.
// @Tags Budgets
// @Accept json
// @Produce json
// @Param category path string true "Budget category"
// @Param request body dto.UpsertBudgetRequest true "Amount and the horizon it is expressed in"
// @Success 200 {object} models.BudgetView "The stored budget"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body, BUDGET_002 - Invalid horizon, or BUDGET_003 - Invalid amount"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{category} [put]
func (h *BudgetHandler) UpsertBudget(c echo.Context) error {
	category := strings.TrimSpace(c.Param("category"))
	if category == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category is required"))
	}

	var req dto.UpsertBudgetRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return SendError(c, errors.BudgetInvalidAmount, errors.WithDetails("Invalid budget amount"))
	}

	budget, err := h.budgetService.UpsertBudget(c.Request().Context(), category, amount, models.Period(req.Horizon))
	if err != nil {
		return mapBudgetErr(c, err)
	}

	return c.JSON(http.StatusOK, budget)
}

// DeleteBudget removes one category's budget
// @Summary Delete budget
// @Description Remove the budget stored for a category
// @Tags Budgets
// @Produce json
// @Param category path string true "Budget category"
// @Success 200 {object} dto.DeleteBudgetResponse "Budget removed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing category"
// @Failure 404 {object} errors.ErrorResponse "BUDGET_001 - No budget set for this category"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/{category} [delete]
func (h *BudgetHandler) DeleteBudget(c echo.Context) error {
	category := strings.TrimSpace(c.Param("category"))
	if category == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("category is required"))
	}

	if err := h.budgetService.DeleteBudget(c.Request().Context(), category); err != nil {
		return mapBudgetErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.DeleteBudgetResponse{
		Message: "Budget deleted successfully",
	})
}

// GetSummary compares budgets against actual period spending
// @Summary Budget summary
// @Description Compare every budgeted category's actual period spending against its budget projected onto the same period
// @Tags Budgets
// @Produce json
// @Param period query string false "Reporting period" Enums(week, payweek, month, year) default(month)
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Success 200 {object} models.BudgetSummaryView "Budget-vs-actual statuses"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid period"
// @Failure 404 {object} errors.ErrorResponse "SHEET_005 - Sheet not found"
// @Failure 502 {object} errors.ErrorResponse "SHEET_001 - Spreadsheet unreachable and no snapshot stored"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /budgets/summary [get]
func (h *BudgetHandler) GetSummary(c echo.Context) error {
	period, err := periodParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}
	sheet := sheetParam(c, h.defaultSheet)

	summary, err := h.budgetService.Summary(c.Request().Context(), sheet, period, time.Now())
	if err != nil {
		return mapBudgetErr(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// mapBudgetErr translates budget failures, deferring sheet-layer failures
// (the summary reads transaction sheets) to mapSheetErr.
func mapBudgetErr(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrBudgetNotFound) {
		return SendError(c, errors.BudgetNotFound)
	}
	if stderrors.Is(err, services.ErrBudgetCategoryEmpty) {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails(err.Error()))
	}
	if stderrors.Is(err, services.ErrBudgetAmountNegative) {
		return SendError(c, errors.BudgetInvalidAmount, errors.WithDetails(err.Error()))
	}
	if stderrors.Is(err, services.ErrInvalidHorizon) {
		return SendError(c, errors.BudgetInvalidHorizon)
	}
	return mapSheetErr(c, err)
}
