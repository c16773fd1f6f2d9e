package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/danvolchok/budget-tracker-web/internal/dto"
	"github.com/danvolchok/budget-tracker-web/internal/errors"
	"github.com/danvolchok/budget-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
)

// MerchantHandler handles merchant grouping and edit session HTTP requests
type MerchantHandler struct {
	merchantService  services.MerchantServiceInterface
	metricsCollector services.MetricsRecorderInterface
	defaultSheet     string
}

// NewMerchantHandler creates a new merchant handler
func NewMerchantHandler(merchantService services.MerchantServiceInterface, metricsCollector services.MetricsRecorderInterface, defaultSheet string) *MerchantHandler {
	return &MerchantHandler{
		merchantService:  merchantService,
		metricsCollector: metricsCollector,
		defaultSheet:     defaultSheet,
	}
}

// GetGroups proposes merchant groups for a sheet
// @Summary Propose merchant groups
// @Description Group the sheet's raw merchants by similarity and list near-miss merge suggestions. Proposals reflect the open edit session when one exists.
// @Tags Merchants
// @Produce json
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Success 200 {object} models.MerchantGroupView "Proposed groups and merge suggestions"
// @Failure 404 {object} errors.ErrorResponse "SHEET_005 - Sheet not found"
// @Failure 502 {object} errors.ErrorResponse "SHEET_001 - Spreadsheet unreachable"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/groups [get]
func (h *MerchantHandler) GetGroups(c echo.Context) error {
	sheet := sheetParam(c, h.defaultSheet)

	view, err := h.merchantService.ProposeGroups(c.Request().Context(), sheet)
	if err != nil {
		return mapSessionErr(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

// StartSession opens an edit session on a sheet
// @Summary Start edit session
// @Description Open an edit session on the sheet. Group renames apply to the session's working table immediately and reach the spreadsheet only on flush.
// @Tags Merchants
// @Produce json
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Success 201 {object} dto.SessionStateResponse "Session opened"
// @Failure 404 {object} errors.ErrorResponse "SHEET_005 - Sheet not found"
// @Failure 409 {object} errors.ErrorResponse "SESSION_001 - A session is already open for this sheet"
// @Failure 502 {object} errors.ErrorResponse "SHEET_001 - Spreadsheet unreachable"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/session [post]
func (h *MerchantHandler) StartSession(c echo.Context) error {
	sheet := sheetParam(c, h.defaultSheet)

	if err := h.merchantService.StartSession(c.Request().Context(), sheet); err != nil {
		return mapSessionErr(c, err)
	}

	open, pending := h.merchantService.SessionState(sheet)
	response := dto.SessionStateResponse{
		Sheet:        sheet,
		SessionOpen:  open,
		PendingEdits: pending,
	}

	return c.JSON(http.StatusCreated, response)
}

// GetSessionState reports the edit session state for a sheet
// @Summary Get edit session state
// @Description Report whether an edit session is open on the sheet and how many cell edits it is holding
// @Tags Merchants
// @Produce json
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Success 200 {object} dto.SessionStateResponse "Session state"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/session [get]
func (h *MerchantHandler) GetSessionState(c echo.Context) error {
	sheet := sheetParam(c, h.defaultSheet)

	open, pending := h.merchantService.SessionState(sheet)
	response := dto.SessionStateResponse{
		Sheet:        sheet,
		SessionOpen:  open,
		PendingEdits: pending,
	}

	return c.JSON(http.StatusOK, response)
}

// ApplyGroup renames a raw merchant to a group inside the open session
// @Summary Apply group rename
// @Description Assign a group name to every row of the open session whose merchant matches rawMerchant. Readers see the change immediately; the spreadsheet is untouched until flush.
// @Tags Merchants
// @Accept json
// @Produce json
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Param request body dto.ApplyGroupRequest true "Raw merchant and group name"
// @Success 200 {object} dto.ApplyGroupResponse "Rows rewritten in the working table"
// @Failure 400 {object} errors.ErrorResponse "MERCHANT_002 - Empty merchant or group name"
// @Failure 409 {object} errors.ErrorResponse "SESSION_002 - No session is open for this sheet"
// @Failure 422 {object} errors.ErrorResponse "MERCHANT_003 - No rows match this merchant"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/apply [post]
func (h *MerchantHandler) ApplyGroup(c echo.Context) error {
	sheet := sheetParam(c, h.defaultSheet)

	var req dto.ApplyGroupRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	touched, err := h.merchantService.ApplyGroup(c.Request().Context(), sheet, req.RawMerchant, req.NewGroup)
	if err != nil {
		return mapSessionErr(c, err)
	}

	_, pending := h.merchantService.SessionState(sheet)
	response := dto.ApplyGroupResponse{
		Message:      "Group applied to the working table",
		RowsUpdated:  touched,
		PendingEdits: pending,
	}

	return c.JSON(http.StatusOK, response)
}

// FlushSession writes the session's pending edits to the spreadsheet
// @Summary Flush edit session
// @Description Write all pending cell edits to the spreadsheet in one batch. When the batch write fails, cells are retried one at a time and the response is marked degraded; failed cells stay pending and the session stays open for a retry.
// @Tags Merchants
// @Produce json
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Success 200 {object} dto.FlushSessionResponse "Flush outcome"
// @Failure 409 {object} errors.ErrorResponse "SESSION_002 - No session open or SESSION_003 - Flush already in flight"
// @Failure 422 {object} errors.ErrorResponse "SESSION_004 - Nothing pending to flush"
// @Failure 502 {object} errors.ErrorResponse "SHEET_003 - Spreadsheet write failed"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/flush [post]
func (h *MerchantHandler) FlushSession(c echo.Context) error {
	sheet := sheetParam(c, h.defaultSheet)

	start := time.Now()
	result, err := h.merchantService.FlushSession(c.Request().Context(), sheet)
	duration := time.Since(start)

	if err != nil {
		if h.metricsCollector != nil {
			h.metricsCollector.IncrementCounter("session_flushes_total", map[string]string{"status": "failed"})
		}
		return mapSessionErr(c, err)
	}

	flushStatus := "completed"
	if result.Degraded {
		flushStatus = "degraded"
	}
	if h.metricsCollector != nil {
		h.metricsCollector.IncrementCounter("session_flushes_total", map[string]string{"status": flushStatus})
		h.metricsCollector.RecordProcessingTime("session_flush_duration", duration)
	}

	open, _ := h.merchantService.SessionState(sheet)
	message := "All pending edits were written to the sheet"
	if result.CellsFailed > 0 {
		message = "Some cells failed to write and stay pending; flush again to retry"
	}

	response := dto.FlushSessionResponse{
		Message:      message,
		CellsWritten: result.CellsWritten,
		CellsFailed:  result.CellsFailed,
		Degraded:     result.Degraded,
		SessionOpen:  open,
	}

	return c.JSON(http.StatusOK, response)
}

// RevertSession discards the session's pending edits
// @Summary Revert edit session
// @Description Restore the working table to its session-start state, discard all pending edits, and close the session
// @Tags Merchants
// @Produce json
// @Param sheet query string false "Transaction sheet name (defaults to the configured sheet)"
// @Success 200 {object} dto.SessionStateResponse "Session closed"
// @Failure 409 {object} errors.ErrorResponse "SESSION_002 - No session is open for this sheet"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /merchants/revert [post]
func (h *MerchantHandler) RevertSession(c echo.Context) error {
	sheet := sheetParam(c, h.defaultSheet)

	if err := h.merchantService.RevertSession(c.Request().Context(), sheet); err != nil {
		return mapSessionErr(c, err)
	}

	response := dto.SessionStateResponse{
		Sheet:        sheet,
		SessionOpen:  false,
		PendingEdits: 0,
	}

	return c.JSON(http.StatusOK, response)
}

// mapSessionErr translates edit session and grouping failures, deferring
// sheet-layer failures to mapSheetErr.
func mapSessionErr(c echo.Context, err error) error {
	if stderrors.Is(err, services.ErrSessionActive) {
		return SendError(c, errors.SessionAlreadyActive)
	}
	if stderrors.Is(err, services.ErrNoSession) || stderrors.Is(err, services.ErrCacheDisabled) {
		return SendError(c, errors.SessionNotActive)
	}
	if stderrors.Is(err, services.ErrFlushInProgress) {
		return SendError(c, errors.SessionFlushInFlight)
	}
	if stderrors.Is(err, services.ErrNothingPending) {
		return SendError(c, errors.SessionNothingPending)
	}
	if stderrors.Is(err, services.ErrMerchantEmpty) || stderrors.Is(err, services.ErrGroupNameEmpty) {
		return SendError(c, errors.MerchantEmptyName, errors.WithDetails(err.Error()))
	}
	if stderrors.Is(err, services.ErrMerchantNoRows) {
		return SendError(c, errors.MerchantNoRows)
	}
	return mapSheetErr(c, err)
}
