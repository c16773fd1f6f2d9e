package sheets

import (
	"context"
	"errors"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

var (
	ErrUnavailable   = errors.New("spreadsheet backend unreachable")
	ErrReadFailed    = errors.New("spreadsheet read failed")
	ErrWriteFailed   = errors.New("spreadsheet write failed")
	ErrSheetNotFound = errors.New("sheet not found")
	ErrNotSupported  = errors.New("operation not supported by this backend")
)

// Store is the spreadsheet port the engine runs against. Row 0 of a returned
// table is the header row; data rows are addressed from 1, which puts table
// row N on spreadsheet row N+1.
type Store interface {
	// ReadAll fetches a sheet's used range.
	ReadAll(ctx context.Context, sheet string) (*models.RowTable, error)

	// WriteCell writes one cell addressed by table row and column index.
	WriteCell(ctx context.Context, sheet string, row, col int, value string) error

	// WriteCells performs all edits as a single batch. Backends must not
	// apply a partial batch on failure.
	WriteCells(ctx context.Context, sheet string, edits []models.PendingEdit) error

	// AppendRows adds data rows after the sheet's used range.
	AppendRows(ctx context.Context, sheet string, rows [][]string) error

	// EnsureColumn returns the index of the named header column, creating
	// it at the end of the header row when absent.
	EnsureColumn(ctx context.Context, sheet, header string) (int, error)

	// ListSheets names the spreadsheet's sheets. Backends without
	// spreadsheet-level metadata return ErrNotSupported.
	ListSheets(ctx context.Context) ([]string, error)
}
