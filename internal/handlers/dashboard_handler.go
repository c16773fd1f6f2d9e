package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/danvolchok/budget-tracker-web/internal/dto"
	"github.com/danvolchok/budget-tracker-web/internal/errors"
	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/services"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard and transaction listing HTTP requests
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	defaultSheet     string
}

// NewDashboardHandler creates a new dashboard handler. defaultSheet is
// served when a request names no sheet.
func NewDashboardHandler(dashboardService services.DashboardServiceInterface, defaultSheet string) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		defaultSheet:     defaultSheet,
	}
}

// GetDashboard builds the spending dashboard for one sheet and period
// @Summary Get dashboard
// @Description Build the full dashboard (totals, top-merchant cards, category pie, trend, account totals) for one sheet and reporting period
// @Tags Dashboard
// @Produce json
// @Param period query string false "Reporting period" Enums(week, payweek, month, year) default(month)
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Success 200 {object} models.DashboardView "Dashboard view; stale=true means served from the snapshot mirror"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid period"
// @Failure 404 {object} errors.ErrorResponse "SHEET_005 - Sheet not found"
// @Failure 422 {object} errors.ErrorResponse "SHEET_004 - Amount column missing from sheet header"
// @Failure 502 {object} errors.ErrorResponse "SHEET_001 - Spreadsheet unreachable and no snapshot stored"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	period, err := periodParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}
	sheet := sheetParam(c, h.defaultSheet)

	view, err := h.dashboardService.GetDashboard(c.Request().Context(), sheet, period, time.Now())
	if err != nil {
		return mapSheetErr(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// ListTransactions lists the sheet's transactions within a period
// @Summary List transactions
// @Description List the sheet's transactions inside the reporting period, newest first, optionally restricted to one account
// @Tags Dashboard
// @Produce json
// @Param period query string false "Reporting period" Enums(week, payweek, month, year) default(month)
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Param account query string false "Restrict to one account (case-insensitive)"
// @Param limit query int false "Cap the number of returned rows (0 = no cap)"
// @Success 200 {object} dto.ListTransactionsResponse "Transactions in the period"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid period"
// @Failure 404 {object} errors.ErrorResponse "SHEET_005 - Sheet not found"
// @Failure 502 {object} errors.ErrorResponse "SHEET_001 - Spreadsheet unreachable and no snapshot stored"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *DashboardHandler) ListTransactions(c echo.Context) error {
	period, err := periodParam(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidPeriod, errors.WithDetails(err.Error()))
	}
	sheet := sheetParam(c, h.defaultSheet)
	account := c.QueryParam("account")
	limit := getIntParam(c, "limit", 0)

	transactions, err := h.dashboardService.ListTransactions(c.Request().Context(), sheet, period, account, time.Now())
	if err != nil {
		return mapSheetErr(c, err)
	}

	if limit > 0 && len(transactions) > limit {
		transactions = transactions[:limit]
	}

	response := dto.ListTransactionsResponse{
		Transactions: transactions,
		Count:        len(transactions),
		Period:       string(period),
		Sheet:        sheet,
	}

	return c.JSON(http.StatusOK, response)
}

// ListSheets names the transaction sheets the dashboard can serve
// @Summary List sheets
// @Description Name the transaction sheets available to the dashboard
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.SheetListResponse "Available sheet names"
// @Failure 502 {object} errors.ErrorResponse "SHEET_001 - Spreadsheet unreachable"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /sheets [get]
func (h *DashboardHandler) ListSheets(c echo.Context) error {
	names, err := h.dashboardService.ListSheets(c.Request().Context())
	if err != nil {
		return mapSheetErr(c, err)
	}

	return c.JSON(http.StatusOK, dto.SheetListResponse{Sheets: names})
}

// mapSheetErr translates sheet-layer failures into API error responses.
// Services wrap store sentinels on the way up, so matching uses errors.Is.
func mapSheetErr(c echo.Context, err error) error {
	if stderrors.Is(err, sheets.ErrSheetNotFound) {
		return SendError(c, errors.SheetNotFound)
	}
	if stderrors.Is(err, models.ErrMissingAmountColumn) {
		return SendError(c, errors.SheetColumnMissing, errors.WithDetails(err.Error()))
	}
	if stderrors.Is(err, sheets.ErrNotSupported) {
		return SendError(c, errors.SheetOpUnsupported)
	}
	if stderrors.Is(err, sheets.ErrUnavailable) {
		return SendError(c, errors.SheetUnavailable)
	}
	if stderrors.Is(err, sheets.ErrWriteFailed) {
		return SendError(c, errors.SheetWriteFailed)
	}
	if stderrors.Is(err, sheets.ErrReadFailed) {
		return SendError(c, errors.SheetReadFailed)
	}
	return SendSystemError(c, err)
}
