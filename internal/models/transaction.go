package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrMissingMerchantColumn = errors.New("merchant column not found in header")
	ErrMissingAmountColumn   = errors.New("amount column not found in header")
	ErrMissingDateColumn     = errors.New("date column not found in header")
)

// dateLayouts are tried in order when decoding the date cell. Sheets edited
// by hand carry a mix of formats.
var dateLayouts = []string{
	"2006-01-02",
	"1/2/2006",
	"01/02/2006",
	"2006/01/02",
	time.RFC3339,
}

// Transaction is one spreadsheet row decoded into the domain. RawMerchant is
// the cell as imported; Merchant is the current group or display name that
// normalization and edit sessions rewrite. RowIndex counts from 1 for the
// first data row (the header occupies row 0 of the table).
type Transaction struct {
	Sheet       string          `json:"sheet"`
	RowIndex    int             `json:"row_index"`
	ID          string          `json:"id,omitempty"`
	Account     string          `json:"account"`
	Amount      decimal.Decimal `json:"amount"`
	RawMerchant string          `json:"raw_merchant"`
	Merchant    string          `json:"merchant"`
	Description string          `json:"description,omitempty"`
	DateRaw     string          `json:"date_raw"`
	Date        time.Time       `json:"date"`
	DateValid   bool            `json:"date_valid"`
	Notes       string          `json:"notes,omitempty"`
	Category    string          `json:"category,omitempty"`
}

// IsExpense reports whether the row spends money. Imports record expenses as
// negative amounts and income as positive.
func (t *Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// AbsAmount returns the magnitude of the amount.
func (t *Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// DisplayMerchant returns the grouped name when set, the raw cell otherwise.
func (t *Transaction) DisplayMerchant() string {
	if t.Merchant != "" {
		return t.Merchant
	}
	return t.RawMerchant
}

// ParseDate decodes a date cell. The second return is false when no known
// layout matches; such rows stay out of period-filtered views but are kept
// in raw listings.
func ParseDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, trimmed); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// ParseAmount decodes an amount cell, tolerating currency symbols, thousands
// separators, and accounting-style parentheses for negatives.
func ParseAmount(raw string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}

	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		amount = amount.Neg()
	}
	return amount, true
}

// MerchantGroupHeader is the column that stores confirmed group assignments.
// It is appended to sheets that lack it when an edit session starts.
const MerchantGroupHeader = "Merchant Group"

// ColumnMap resolves the well-known columns of a transaction sheet from its
// header row. Missing optional columns are -1.
type ColumnMap struct {
	Account       int
	Date          int
	Merchant      int
	MerchantGroup int
	Amount        int
	Description   int
	ID            int
	Notes         int
	Category      int
}

// ResolveColumns builds a ColumnMap from a header row. Merchant, amount and
// date are required; the rest degrade to -1 when absent.
func ResolveColumns(table *RowTable) (ColumnMap, error) {
	cm := ColumnMap{
		Account:       table.ColumnIndex("account"),
		Date:          table.ColumnIndex("date"),
		Merchant:      table.ColumnIndex("merchant"),
		MerchantGroup: table.ColumnIndex(MerchantGroupHeader),
		Amount:        table.ColumnIndex("amount"),
		Description:   table.ColumnIndex("description"),
		ID:            table.ColumnIndex("id"),
		Notes:         table.ColumnIndex("notes"),
		Category:      table.ColumnIndex("category"),
	}

	if cm.Merchant < 0 {
		cm.Merchant = table.ColumnIndex("name")
	}
	if cm.Merchant < 0 {
		return cm, ErrMissingMerchantColumn
	}
	if cm.Amount < 0 {
		return cm, ErrMissingAmountColumn
	}
	if cm.Date < 0 {
		return cm, ErrMissingDateColumn
	}
	return cm, nil
}

// DecodeTransactions turns every data row of a table into a Transaction.
// Rows never fail to decode; malformed cells degrade field by field
// (unparseable amount becomes zero, unparseable date clears DateValid).
func DecodeTransactions(sheet string, table *RowTable, cm ColumnMap) []Transaction {
	txns := make([]Transaction, 0, table.RowCount())

	for i := 1; i <= table.RowCount(); i++ {
		txn := Transaction{
			Sheet:    sheet,
			RowIndex: i,
		}

		txn.RawMerchant = table.Get(i, cm.Merchant)
		txn.Merchant = txn.RawMerchant
		if cm.MerchantGroup >= 0 {
			if group := table.Get(i, cm.MerchantGroup); group != "" {
				txn.Merchant = group
			}
		}

		txn.DateRaw = table.Get(i, cm.Date)
		txn.Date, txn.DateValid = ParseDate(txn.DateRaw)

		if amount, ok := ParseAmount(table.Get(i, cm.Amount)); ok {
			txn.Amount = amount
		}

		if cm.Account >= 0 {
			txn.Account = table.Get(i, cm.Account)
		}
		if cm.Description >= 0 {
			txn.Description = table.Get(i, cm.Description)
		}
		if cm.ID >= 0 {
			txn.ID = table.Get(i, cm.ID)
		}
		if cm.Notes >= 0 {
			txn.Notes = table.Get(i, cm.Notes)
		}
		if cm.Category >= 0 {
			txn.Category = table.Get(i, cm.Category)
		}

		txns = append(txns, txn)
	}

	return txns
}
