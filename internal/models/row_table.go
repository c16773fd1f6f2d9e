package models

import "strings"

// RowTable is a sheet's cells as read: Header is row 0 of the source range,
// Rows holds the data rows. Row index 1 addresses Rows[0] so that table
// indices line up with the one-line-down offset callers see in A1 references.
type RowTable struct {
	Header []string
	Rows   [][]string
}

// NewRowTable builds a table from raw cells where cells[0] is the header.
// Ragged rows are kept as-is; Get pads reads beyond a short row.
func NewRowTable(cells [][]string) *RowTable {
	if len(cells) == 0 {
		return &RowTable{}
	}
	return &RowTable{Header: cells[0], Rows: cells[1:]}
}

// RowCount returns the number of data rows.
func (t *RowTable) RowCount() int {
	return len(t.Rows)
}

// ColumnCount returns the header width.
func (t *RowTable) ColumnCount() int {
	return len(t.Header)
}

// ColumnIndex finds a header column by case-insensitive name, -1 when absent.
func (t *RowTable) ColumnIndex(name string) int {
	for i, h := range t.Header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// Get returns the cell at (row, col) where row 1 is the first data row.
// Out-of-range reads return "".
func (t *RowTable) Get(row, col int) string {
	if row < 1 || row > len(t.Rows) || col < 0 {
		return ""
	}
	cells := t.Rows[row-1]
	if col >= len(cells) {
		return ""
	}
	return cells[col]
}

// Set writes the cell at (row, col), growing a short row as needed.
// Out-of-range rows are ignored.
func (t *RowTable) Set(row, col int, value string) {
	if row < 1 || row > len(t.Rows) || col < 0 {
		return
	}
	cells := t.Rows[row-1]
	for len(cells) <= col {
		cells = append(cells, "")
	}
	cells[col] = value
	t.Rows[row-1] = cells
}

// AppendColumn adds a header column and returns its index. Existing data
// rows are left short; Get pads them.
func (t *RowTable) AppendColumn(header string) int {
	t.Header = append(t.Header, header)
	return len(t.Header) - 1
}

// AppendRow adds a data row after the current last row, copying the cells.
func (t *RowTable) AppendRow(cells []string) {
	t.Rows = append(t.Rows, append([]string(nil), cells...))
}

// DeepCopy clones every cell. Edit sessions snapshot through this so a
// revert can restore the table bytewise.
func (t *RowTable) DeepCopy() *RowTable {
	clone := &RowTable{
		Header: append([]string(nil), t.Header...),
		Rows:   make([][]string, len(t.Rows)),
	}
	for i, row := range t.Rows {
		clone.Rows[i] = append([]string(nil), row...)
	}
	return clone
}

// RestoreFrom copies another table's cells into this one in place, so
// references held by callers keep observing the restored data.
func (t *RowTable) RestoreFrom(src *RowTable) {
	t.Header = append(t.Header[:0], src.Header...)
	t.Rows = t.Rows[:0]
	for _, row := range src.Rows {
		t.Rows = append(t.Rows, append([]string(nil), row...))
	}
}

// Equal reports cell-for-cell equality, used by tests to check bytewise
// restoration after a revert.
func (t *RowTable) Equal(other *RowTable) bool {
	if len(t.Header) != len(other.Header) || len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Header {
		if t.Header[i] != other.Header[i] {
			return false
		}
	}
	for i := range t.Rows {
		if len(t.Rows[i]) != len(other.Rows[i]) {
			return false
		}
		for j := range t.Rows[i] {
			if t.Rows[i][j] != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}
