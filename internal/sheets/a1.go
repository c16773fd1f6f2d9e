package sheets

import (
	"fmt"
	"strings"
)

// ColumnLetter converts a zero-based column index to its A1 letters:
// 0 -> A, 25 -> Z, 26 -> AA.
func ColumnLetter(col int) string {
	if col < 0 {
		return ""
	}
	var letters []byte
	for {
		letters = append([]byte{byte('A' + col%26)}, letters...)
		col = col/26 - 1
		if col < 0 {
			break
		}
	}
	return string(letters)
}

// CellRef renders an absolute A1 reference for a table cell. Table row 1 is
// the first data row, which sits on spreadsheet row 2 below the header.
func CellRef(sheet string, row, col int) string {
	return fmt.Sprintf("%s!%s%d", quoteSheet(sheet), ColumnLetter(col), row+1)
}

// RangeRef renders a rectangular A1 range over table coordinates.
func RangeRef(sheet string, startRow, startCol, endRow, endCol int) string {
	return fmt.Sprintf("%s!%s%d:%s%d",
		quoteSheet(sheet),
		ColumnLetter(startCol), startRow+1,
		ColumnLetter(endCol), endRow+1)
}

// HeaderCellRef renders the A1 reference of a header cell (spreadsheet row 1).
func HeaderCellRef(sheet string, col int) string {
	return fmt.Sprintf("%s!%s1", quoteSheet(sheet), ColumnLetter(col))
}

// SheetRange renders the range covering a whole sheet.
func SheetRange(sheet string) string {
	return quoteSheet(sheet)
}

// quoteSheet wraps names that need A1 quoting. Single quotes inside a name
// double per the A1 grammar.
func quoteSheet(sheet string) string {
	if !strings.ContainsAny(sheet, " !'") {
		return sheet
	}
	return "'" + strings.ReplaceAll(sheet, "'", "''") + "'"
}
