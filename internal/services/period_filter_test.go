package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// PeriodFilterSuite defines the test suite for PeriodFilterInterface
type PeriodFilterSuite struct {
	suite.Suite
	filter PeriodFilterInterface
}

// SetupTest runs before each test in the suite
func (s *PeriodFilterSuite) SetupTest() {
	s.filter = NewPeriodFilter()
}

// TestPeriodFilterSuite runs the test suite
func TestPeriodFilterSuite(t *testing.T) {
	suite.Run(t, new(PeriodFilterSuite))
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func (s *PeriodFilterSuite) TestPeriodBounds_WeekStartsSunday() {
	// 2026-01-14 is a Wednesday; its week runs Sunday the 11th through
	// Saturday the 17th.
	now := day(2026, time.January, 14)

	start, end := s.filter.PeriodBounds(models.PeriodWeek, now)
	s.Equal(day(2026, time.January, 11), start)
	s.Equal(day(2026, time.January, 18), end)

	// Anchoring on the Sunday itself keeps the same window.
	start, end = s.filter.PeriodBounds(models.PeriodWeek, day(2026, time.January, 11))
	s.Equal(day(2026, time.January, 11), start)
	s.Equal(day(2026, time.January, 18), end)
}

func (s *PeriodFilterSuite) TestPeriodBounds_MonthAndYear() {
	now := day(2026, time.January, 20)

	start, end := s.filter.PeriodBounds(models.PeriodMonth, now)
	s.Equal(day(2026, time.January, 1), start)
	s.Equal(day(2026, time.February, 1), end)

	start, end = s.filter.PeriodBounds(models.PeriodYear, now)
	s.Equal(day(2026, time.January, 1), start)
	s.Equal(day(2027, time.January, 1), end)
}

func (s *PeriodFilterSuite) TestPeriodBounds_PayweekIsOpenEnded() {
	// Buckets are 14 days anchored at January 1. The 20th falls in the
	// second bucket, which opened on the 15th.
	now := day(2026, time.January, 20)

	start, end := s.filter.PeriodBounds(models.PeriodPayweek, now)
	s.Equal(day(2026, time.January, 15), start)
	s.True(end.IsZero())

	// The first bucket opens on January 1 itself.
	start, _ = s.filter.PeriodBounds(models.PeriodPayweek, day(2026, time.January, 5))
	s.Equal(day(2026, time.January, 1), start)
}

func (s *PeriodFilterSuite) TestIsInPeriod_WeekEdges() {
	now := day(2026, time.January, 14)

	s.True(s.filter.IsInPeriod(day(2026, time.January, 11), models.PeriodWeek, now))
	s.True(s.filter.IsInPeriod(day(2026, time.January, 17), models.PeriodWeek, now))
	s.False(s.filter.IsInPeriod(day(2026, time.January, 10), models.PeriodWeek, now))
	s.False(s.filter.IsInPeriod(day(2026, time.January, 18), models.PeriodWeek, now))
}

func (s *PeriodFilterSuite) TestIsInPeriod_MonthBoundary() {
	now := day(2026, time.January, 20)

	s.True(s.filter.IsInPeriod(day(2026, time.January, 1), models.PeriodMonth, now))
	s.True(s.filter.IsInPeriod(day(2026, time.January, 31), models.PeriodMonth, now))
	s.False(s.filter.IsInPeriod(day(2026, time.February, 1), models.PeriodMonth, now))
	s.False(s.filter.IsInPeriod(day(2025, time.December, 31), models.PeriodMonth, now))
}

func (s *PeriodFilterSuite) TestIsInPeriod_PayweekAcceptsLaterDates() {
	now := day(2026, time.January, 20)

	s.False(s.filter.IsInPeriod(day(2026, time.January, 14), models.PeriodPayweek, now))
	s.True(s.filter.IsInPeriod(day(2026, time.January, 15), models.PeriodPayweek, now))
	s.True(s.filter.IsInPeriod(day(2026, time.January, 28), models.PeriodPayweek, now))

	// No upper bound: a date from a later bucket still qualifies.
	s.True(s.filter.IsInPeriod(day(2026, time.February, 20), models.PeriodPayweek, now))
}

func (s *PeriodFilterSuite) TestIsInPeriod_IgnoresTimeOfDay() {
	now := time.Date(2026, time.January, 14, 23, 59, 0, 0, time.UTC)
	late := time.Date(2026, time.January, 17, 23, 30, 0, 0, time.UTC)

	s.True(s.filter.IsInPeriod(late, models.PeriodWeek, now))
}

func (s *PeriodFilterSuite) TestFilter_ExcludesUnparseableDates() {
	now := day(2026, time.January, 20)
	txns := []models.Transaction{
		{RawMerchant: "IN WINDOW", Date: day(2026, time.January, 12), DateValid: true},
		{RawMerchant: "BAD DATE", DateRaw: "not a date", DateValid: false},
		{RawMerchant: "OUT OF WINDOW", Date: day(2025, time.June, 1), DateValid: true},
	}

	filtered := s.filter.Filter(txns, models.PeriodMonth, now)

	s.Require().Len(filtered, 1)
	s.Equal("IN WINDOW", filtered[0].RawMerchant)
}

func (s *PeriodFilterSuite) TestFilter_AllPeriods() {
	now := day(2026, time.March, 10)
	txns := []models.Transaction{
		{RawMerchant: "TODAY", Date: now, DateValid: true},
		{RawMerchant: "LAST MONTH", Date: day(2026, time.February, 10), DateValid: true},
		{RawMerchant: "LAST YEAR", Date: day(2025, time.March, 10), DateValid: true},
	}

	s.Len(s.filter.Filter(txns, models.PeriodWeek, now), 1)
	s.Len(s.filter.Filter(txns, models.PeriodMonth, now), 1)
	s.Len(s.filter.Filter(txns, models.PeriodYear, now), 2)
}

func (s *PeriodFilterSuite) TestLabel() {
	now := day(2026, time.January, 20)

	s.Equal("Week of Jan 18, 2026", s.filter.Label(models.PeriodWeek, now))
	s.Equal("Pay period from Jan 15, 2026", s.filter.Label(models.PeriodPayweek, now))
	s.Equal("January 2026", s.filter.Label(models.PeriodMonth, now))
	s.Equal("2026", s.filter.Label(models.PeriodYear, now))
}
