package models

// Period selects the dashboard's time window.
type Period string

const (
	PeriodWeek    Period = "week"
	PeriodPayweek Period = "payweek"
	PeriodMonth   Period = "month"
	PeriodYear    Period = "year"
)

// AllPeriods returns every valid period value.
func AllPeriods() []Period {
	return []Period{PeriodWeek, PeriodPayweek, PeriodMonth, PeriodYear}
}

// IsValidPeriod checks whether a string names a known period.
func IsValidPeriod(period string) bool {
	switch Period(period) {
	case PeriodWeek, PeriodPayweek, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}
