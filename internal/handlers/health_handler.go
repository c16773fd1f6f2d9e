package handlers

import (
	stderrors "errors"
	"net/http"
	"time"

	"github.com/danvolchok/budget-tracker-web/internal/errors"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db    *gorm.DB
	store sheets.Store
}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler(db *gorm.DB, store sheets.Store) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, store: store}
}

// HealthCheck adds the health check endpoint
// @Summary Health check
// @Description Check API, database, and spreadsheet connectivity. An unreachable spreadsheet degrades the status but keeps it 200; snapshots still serve reads.
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,sheets=string,time=string} "Service is healthy or degraded"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Service unavailable (database connection failed)"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	// Check database connectivity by getting the underlying sql.DB
	sqlDB, err := h.db.DB()
	if err != nil {
		traceID := getTraceIDFromContext(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Database connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	if err := sqlDB.Ping(); err != nil {
		// Return SYSTEM_003 error for service unavailability
		traceID := getTraceIDFromContext(c)
		errorResponse := errors.NewErrorResponse(
			errors.SystemServiceUnavailable,
			traceID,
			errors.WithDetails("Database connection failed"),
		)
		return c.JSON(http.StatusServiceUnavailable, errorResponse)
	}

	status := "healthy"
	sheetStatus := "ok"
	if h.store != nil {
		if _, err := h.store.ListSheets(c.Request().Context()); err != nil && !stderrors.Is(err, sheets.ErrNotSupported) {
			// Snapshot fallback keeps dashboards serving, so an
			// unreachable spreadsheet degrades health without failing it.
			status = "degraded"
			sheetStatus = "unreachable"
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": status,
		"sheets": sheetStatus,
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// Helper to get trace ID from context
func getTraceIDFromContext(c echo.Context) string {
	traceID := c.Response().Header().Get("X-Trace-ID")
	if traceID == "" {
		if tid, ok := c.Get("trace_id").(string); ok {
			traceID = tid
		}
	}
	if traceID == "" {
		traceID = "unknown"
	}
	return traceID
}
