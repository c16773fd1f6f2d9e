package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnLetter(t *testing.T) {
	tests := []struct {
		name string
		col  int
		want string
	}{
		{name: "first column", col: 0, want: "A"},
		{name: "second column", col: 1, want: "B"},
		{name: "last single letter", col: 25, want: "Z"},
		{name: "first double letter", col: 26, want: "AA"},
		{name: "AB", col: 27, want: "AB"},
		{name: "AZ", col: 51, want: "AZ"},
		{name: "BA", col: 52, want: "BA"},
		{name: "ZZ", col: 701, want: "ZZ"},
		{name: "AAA", col: 702, want: "AAA"},
		{name: "negative is empty", col: -1, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ColumnLetter(tt.col))
		})
	}
}

func TestCellRef(t *testing.T) {
	// Table row 1 is the first data row, which lives on spreadsheet row 2.
	assert.Equal(t, "Transactions!B2", CellRef("Transactions", 1, 1))
	assert.Equal(t, "Transactions!A6", CellRef("Transactions", 5, 0))
	assert.Equal(t, "'My Sheet'!C3", CellRef("My Sheet", 2, 2))
}

func TestRangeRef(t *testing.T) {
	assert.Equal(t, "Transactions!A2:C4", RangeRef("Transactions", 1, 0, 3, 2))
}

func TestHeaderCellRef(t *testing.T) {
	assert.Equal(t, "Transactions!H1", HeaderCellRef("Transactions", 7))
	assert.Equal(t, "'2026 Budget'!A1", HeaderCellRef("2026 Budget", 0))
}

func TestQuoteSheet(t *testing.T) {
	assert.Equal(t, "Transactions", quoteSheet("Transactions"))
	assert.Equal(t, "'My Sheet'", quoteSheet("My Sheet"))
	assert.Equal(t, "'It''s mine'", quoteSheet("It's mine"))
}
