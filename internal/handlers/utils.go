package handlers

import (
	"fmt"

	"github.com/danvolchok/budget-tracker-web/internal/models"

	"github.com/labstack/echo/v4"
)

// periodParam reads the period query parameter, defaulting to month.
func periodParam(c echo.Context) (models.Period, error) {
	raw := c.QueryParam("period")
	if raw == "" {
		return models.PeriodMonth, nil
	}
	if !models.IsValidPeriod(raw) {
		return "", fmt.Errorf("invalid period %q, must be one of week, payweek, month, year", raw)
	}
	return models.Period(raw), nil
}

// sheetParam reads the sheet query parameter, falling back to the
// configured default sheet.
func sheetParam(c echo.Context, defaultSheet string) string {
	if sheet := c.QueryParam("sheet"); sheet != "" {
		return sheet
	}
	return defaultSheet
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}
