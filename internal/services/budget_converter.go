package services

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// ErrInvalidHorizon is returned when a budget amount arrives with an
// unrecognized period unit.
var ErrInvalidHorizon = errors.New("invalid budget horizon")

// DefaultPayPeriodsPerYear links the bi-weekly base unit to week, month and
// year horizons.
const DefaultPayPeriodsPerYear = 26

var (
	weeksPerYear  = decimal.NewFromInt(52)
	monthsPerYear = decimal.NewFromInt(12)
)

type budgetConverter struct {
	payPeriodsPerYear decimal.Decimal
}

// NewBudgetConverter creates a converter between budget period units.
// Budgets are stored in the bi-weekly base unit; every other horizon is a
// projection through the pay-periods-per-year constant.
func NewBudgetConverter(payPeriodsPerYear int) BudgetConverterInterface {
	if payPeriodsPerYear <= 0 {
		payPeriodsPerYear = DefaultPayPeriodsPerYear
	}
	return &budgetConverter{
		payPeriodsPerYear: decimal.NewFromInt(int64(payPeriodsPerYear)),
	}
}

// ToBase converts an amount entered at a horizon to the stored base unit.
// ToBase and FromBase are exact inverses for every horizon.
func (c *budgetConverter) ToBase(amount decimal.Decimal, horizon models.Period) (decimal.Decimal, error) {
	switch horizon {
	case models.PeriodPayweek:
		return amount, nil
	case models.PeriodWeek:
		return amount.Mul(weeksPerYear).Div(c.payPeriodsPerYear), nil
	case models.PeriodMonth:
		return amount.Mul(monthsPerYear).Div(c.payPeriodsPerYear), nil
	case models.PeriodYear:
		return amount.Div(c.payPeriodsPerYear), nil
	default:
		return decimal.Zero, ErrInvalidHorizon
	}
}

// FromBase projects a stored base amount onto a horizon. Unknown horizons
// fall back to the base amount itself.
func (c *budgetConverter) FromBase(base decimal.Decimal, horizon models.Period) decimal.Decimal {
	switch horizon {
	case models.PeriodPayweek:
		return base
	case models.PeriodWeek:
		return base.Mul(c.payPeriodsPerYear).Div(weeksPerYear)
	case models.PeriodMonth:
		return base.Mul(c.payPeriodsPerYear).Div(monthsPerYear)
	case models.PeriodYear:
		return base.Mul(c.payPeriodsPerYear)
	default:
		return base
	}
}

// View projects a budget onto all four horizons at once.
func (c *budgetConverter) View(budget models.Budget) models.BudgetView {
	return models.BudgetView{
		Category:  budget.Category,
		Week:      c.FromBase(budget.BaseAmount, models.PeriodWeek),
		PayPeriod: budget.BaseAmount,
		Month:     c.FromBase(budget.BaseAmount, models.PeriodMonth),
		Year:      c.FromBase(budget.BaseAmount, models.PeriodYear),
	}
}
