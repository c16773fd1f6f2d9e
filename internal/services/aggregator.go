package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// GroupKeyFunc extracts the bucketing key for one transaction.
type GroupKeyFunc func(txn models.Transaction) string

// GroupTotal is one bucket of a GroupBy rollup.
type GroupTotal struct {
	Key   string          `json:"key"`
	Total decimal.Decimal `json:"total"`
	Count int             `json:"count"`
}

// ByAccount buckets by the account column.
func ByAccount(txn models.Transaction) string {
	return txn.Account
}

// ByCategory buckets by category, folding uncategorized rows into the
// fallback group.
func ByCategory(txn models.Transaction) string {
	if txn.Category == "" {
		return models.GroupFallback
	}
	return txn.Category
}

// ByMerchant buckets by the display merchant.
func ByMerchant(txn models.Transaction) string {
	return txn.DisplayMerchant()
}

// ByDay buckets by calendar day.
func ByDay(txn models.Transaction) string {
	return txn.Date.Format("2006-01-02")
}

// ByISOWeek buckets by ISO week label.
func ByISOWeek(txn models.Transaction) string {
	year, week := txn.Date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ByMonth buckets by month label.
func ByMonth(txn models.Transaction) string {
	return txn.Date.Format("2006-01")
}

var oneHundred = decimal.NewFromInt(100)

type aggregator struct{}

// NewAggregator creates an aggregation service
func NewAggregator() AggregatorInterface {
	return &aggregator{}
}

// TotalSpending sums absolute amounts across the list.
func (a *aggregator) TotalSpending(txns []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		total = total.Add(txn.AbsAmount())
	}
	return total
}

// TotalIncome sums positive amounts across the list.
func (a *aggregator) TotalIncome(txns []models.Transaction) decimal.Decimal {
	total := decimal.Zero
	for _, txn := range txns {
		if txn.Amount.IsPositive() {
			total = total.Add(txn.Amount)
		}
	}
	return total
}

// GroupBy sums absolute amounts per key. Buckets come back sorted by total
// descending; ties keep the order the keys were first seen in, so the same
// input always yields the same output.
func (a *aggregator) GroupBy(txns []models.Transaction, key GroupKeyFunc) []GroupTotal {
	totals := make(map[string]int)
	groups := make([]GroupTotal, 0)

	for _, txn := range txns {
		k := key(txn)
		idx, seen := totals[k]
		if !seen {
			idx = len(groups)
			totals[k] = idx
			groups = append(groups, GroupTotal{Key: k, Total: decimal.Zero})
		}
		groups[idx].Total = groups[idx].Total.Add(txn.AbsAmount())
		groups[idx].Count++
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Total.Cmp(groups[j].Total) > 0
	})
	return groups
}

// TopN keeps the n largest buckets of an already-sorted rollup.
func (a *aggregator) TopN(groups []GroupTotal, n int) []GroupTotal {
	if n < 0 {
		n = 0
	}
	if len(groups) <= n {
		return groups
	}
	return groups[:n]
}

// PercentageOf formats part as a percentage of total with one decimal place.
// A zero total yields "0%" rather than a division error.
func (a *aggregator) PercentageOf(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "0%"
	}
	return part.Div(total).Mul(oneHundred).StringFixed(1) + "%"
}
