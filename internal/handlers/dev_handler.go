package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/danvolchok/budget-tracker-web/internal/dto"
	"github.com/danvolchok/budget-tracker-web/internal/errors"
	"github.com/danvolchok/budget-tracker-web/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
// These endpoints should only be available in development environments
type DevHandler struct {
	sampleDataService services.SampleDataServiceInterface
	defaultSheet      string
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleDataService services.SampleDataServiceInterface, defaultSheet string) *DevHandler {
	return &DevHandler{
		sampleDataService: sampleDataService,
		defaultSheet:      defaultSheet,
	}
}

// GenerateSampleData appends generated demo transactions to a sheet
//
// Method: POST /api/v1/sample-data
// Environment: Development and testing only; the service refuses to write
// demo rows into a production spreadsheet.
//
// Request body (optional):
//   - sheet: Target sheet name (default: the configured sheet)
//   - rows: Number of rows to append (default: 50, max: 500)
//
// Success Response: 201 Created
//   - message: Success message
//   - sheet: Sheet the rows were appended to
//   - rowsCreated: Number of rows appended
//
// Error Responses:
//   - 400: Invalid request body
//   - 403: Not a development or testing environment
//   - 404: Sheet not found
//   - 502: Spreadsheet write failed
//   - 500: Internal server error
func (h *DevHandler) GenerateSampleData(c echo.Context) error {
	var req dto.GenerateSampleDataRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	sheet := req.Sheet
	if sheet == "" {
		sheet = h.defaultSheet
	}

	created, err := h.sampleDataService.Generate(c.Request().Context(), sheet, req.Rows)
	if err != nil {
		if stderrors.Is(err, services.ErrSampleDataDisabled) {
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		}
		return mapSheetErr(c, err)
	}

	return c.JSON(http.StatusCreated, dto.GenerateSampleDataResponse{
		Message:     "Sample data generated successfully",
		Sheet:       sheet,
		RowsCreated: created,
	})
}
