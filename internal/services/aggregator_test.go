package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// AggregatorSuite defines the test suite for AggregatorInterface
type AggregatorSuite struct {
	suite.Suite
	aggregator AggregatorInterface
}

// SetupTest runs before each test in the suite
func (s *AggregatorSuite) SetupTest() {
	s.aggregator = NewAggregator()
}

// TestAggregatorSuite runs the test suite
func TestAggregatorSuite(t *testing.T) {
	suite.Run(t, new(AggregatorSuite))
}

func txn(account, category string, amount string) models.Transaction {
	return models.Transaction{
		Account:  account,
		Category: category,
		Amount:   decimal.RequireFromString(amount),
	}
}

func (s *AggregatorSuite) TestTotalSpending_SumsAbsoluteAmounts() {
	txns := []models.Transaction{
		txn("Checking", "Groceries", "-25.50"),
		txn("Checking", "Dining", "-10.25"),
		txn("Savings", "", "100.00"),
	}

	s.Equal("135.75", s.aggregator.TotalSpending(txns).String())
}

func (s *AggregatorSuite) TestTotalIncome_PositiveAmountsOnly() {
	txns := []models.Transaction{
		txn("Checking", "Groceries", "-25.50"),
		txn("Checking", "Payroll", "1500.00"),
		txn("Checking", "Refund", "12.34"),
	}

	s.Equal("1512.34", s.aggregator.TotalIncome(txns).String())
	s.True(s.aggregator.TotalIncome(nil).IsZero())
}

func (s *AggregatorSuite) TestGroupBy_Account() {
	txns := []models.Transaction{
		txn("Checking", "Groceries", "-20.00"),
		txn("Visa", "Dining", "-45.00"),
		txn("Checking", "Gas", "-15.00"),
	}

	groups := s.aggregator.GroupBy(txns, ByAccount)

	s.Require().Len(groups, 2)
	s.Equal("Visa", groups[0].Key)
	s.Equal("45", groups[0].Total.String())
	s.Equal(1, groups[0].Count)
	s.Equal("Checking", groups[1].Key)
	s.Equal("35", groups[1].Total.String())
	s.Equal(2, groups[1].Count)
}

func (s *AggregatorSuite) TestGroupBy_CategoryFallsBackToOther() {
	txns := []models.Transaction{
		txn("Checking", "Groceries", "-20.00"),
		txn("Checking", "", "-5.00"),
		txn("Checking", "", "-7.00"),
	}

	groups := s.aggregator.GroupBy(txns, ByCategory)

	s.Require().Len(groups, 2)
	s.Equal("Groceries", groups[0].Key)
	s.Equal(models.GroupFallback, groups[1].Key)
	s.Equal("12", groups[1].Total.String())
}

func (s *AggregatorSuite) TestGroupBy_TiesKeepFirstSeenOrder() {
	txns := []models.Transaction{
		txn("Checking", "Zoo", "-10.00"),
		txn("Checking", "Aquarium", "-10.00"),
		txn("Checking", "Museum", "-10.00"),
	}

	first := s.aggregator.GroupBy(txns, ByCategory)
	second := s.aggregator.GroupBy(txns, ByCategory)

	s.Require().Len(first, 3)
	s.Equal("Zoo", first[0].Key)
	s.Equal("Aquarium", first[1].Key)
	s.Equal("Museum", first[2].Key)
	s.Equal(first, second)
}

func (s *AggregatorSuite) TestGroupBy_Day() {
	jan12 := time.Date(2026, time.January, 12, 0, 0, 0, 0, time.UTC)
	jan13 := time.Date(2026, time.January, 13, 0, 0, 0, 0, time.UTC)
	txns := []models.Transaction{
		{Date: jan12, Amount: decimal.RequireFromString("-4.00")},
		{Date: jan13, Amount: decimal.RequireFromString("-6.00")},
		{Date: jan12, Amount: decimal.RequireFromString("-1.00")},
	}

	groups := s.aggregator.GroupBy(txns, ByDay)

	s.Require().Len(groups, 2)
	s.Equal("2026-01-13", groups[0].Key)
	s.Equal("2026-01-12", groups[1].Key)
	s.Equal("5", groups[1].Total.String())
}

func (s *AggregatorSuite) TestTopN() {
	txns := []models.Transaction{
		txn("Checking", "A", "-40.00"),
		txn("Checking", "B", "-30.00"),
		txn("Checking", "C", "-20.00"),
		txn("Checking", "D", "-10.00"),
	}
	groups := s.aggregator.GroupBy(txns, ByCategory)

	top := s.aggregator.TopN(groups, 2)
	s.Require().Len(top, 2)
	s.Equal("A", top[0].Key)
	s.Equal("B", top[1].Key)

	s.Len(s.aggregator.TopN(groups, 10), 4)
	s.Empty(s.aggregator.TopN(groups, 0))
	s.Empty(s.aggregator.TopN(groups, -1))
}

func (s *AggregatorSuite) TestPercentageOf() {
	s.Equal("25.0%", s.aggregator.PercentageOf(decimal.NewFromInt(25), decimal.NewFromInt(100)))
	s.Equal("33.3%", s.aggregator.PercentageOf(decimal.NewFromInt(1), decimal.NewFromInt(3)))
	s.Equal("100.0%", s.aggregator.PercentageOf(decimal.NewFromInt(7), decimal.NewFromInt(7)))
}

func (s *AggregatorSuite) TestPercentageOf_ZeroTotal() {
	s.Equal("0%", s.aggregator.PercentageOf(decimal.NewFromInt(50), decimal.Zero))
}
