package services

import (
	"time"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// payweekLengthDays is the length of one pay-period bucket. Buckets are
// anchored at January 1 of the reference year.
const payweekLengthDays = 14

type periodFilter struct{}

// NewPeriodFilter creates a period filter service
func NewPeriodFilter() PeriodFilterInterface {
	return &periodFilter{}
}

// PeriodBounds returns the [start, end) window for a period anchored at now.
// The payweek window deliberately has no upper bound: its end is the zero
// time, and dates on or after the bucket start all qualify. Dates from a
// later bucket therefore also pass, which mirrors the open-ended "since the
// start of the current pay period" reading.
func (f *periodFilter) PeriodBounds(period models.Period, now time.Time) (time.Time, time.Time) {
	day := dateOnly(now)

	switch period {
	case models.PeriodWeek:
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 7)
	case models.PeriodPayweek:
		yearStart := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		bucket := (day.YearDay() - 1) / payweekLengthDays
		return yearStart.AddDate(0, 0, bucket*payweekLengthDays), time.Time{}
	case models.PeriodMonth:
		start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(0, 1, 0)
	case models.PeriodYear:
		start := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())
		return start, start.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}
	}
}

// IsInPeriod reports whether a date falls inside the period window anchored
// at now. Comparison is at day granularity.
func (f *periodFilter) IsInPeriod(date time.Time, period models.Period, now time.Time) bool {
	start, end := f.PeriodBounds(period, now)
	day := dateOnly(date)

	if day.Before(start) {
		return false
	}
	if !end.IsZero() && !day.Before(end) {
		return false
	}
	return true
}

// Filter returns the transactions whose dates fall inside the window.
// Transactions whose date cell never parsed are excluded from every period.
func (f *periodFilter) Filter(txns []models.Transaction, period models.Period, now time.Time) []models.Transaction {
	filtered := make([]models.Transaction, 0, len(txns))
	for _, txn := range txns {
		if !txn.DateValid {
			continue
		}
		if f.IsInPeriod(txn.Date, period, now) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// Label renders a human-readable description of the period window.
func (f *periodFilter) Label(period models.Period, now time.Time) string {
	start, _ := f.PeriodBounds(period, now)

	switch period {
	case models.PeriodWeek:
		return "Week of " + start.Format("Jan 2, 2006")
	case models.PeriodPayweek:
		return "Pay period from " + start.Format("Jan 2, 2006")
	case models.PeriodMonth:
		return now.Format("January 2006")
	case models.PeriodYear:
		return now.Format("2006")
	default:
		return "All time"
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
