package sheets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/danvolchok/budget-tracker-web/internal/config"
	"github.com/danvolchok/budget-tracker-web/internal/models"
)

type googleStore struct {
	svc           *gsheet.Service
	spreadsheetID string
}

// Ensure interface conformance
var _ Store = (*googleStore)(nil)

// NewGoogleStore builds a Store over the Sheets API using installed-app OAuth
// credentials: a client secret file plus a previously minted token file.
func NewGoogleStore(ctx context.Context, cfg config.SheetsConfig) (Store, error) {
	if cfg.SpreadsheetID == "" {
		return nil, errors.New("spreadsheet ID is required")
	}

	svc, err := newSheetsService(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &googleStore{
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
	}, nil
}

func newSheetsService(ctx context.Context, cfg config.SheetsConfig) (*gsheet.Service, error) {
	b, err := os.ReadFile(cfg.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("read oauth client file: %w", err)
	}

	oauthCfg, err := google.ConfigFromJSON(b, gsheet.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("oauth config: %w", err)
	}

	data, err := os.ReadFile(cfg.TokenFile)
	if err != nil {
		return nil, fmt.Errorf("read oauth token file: %w", err)
	}
	tok := &oauth2.Token{}
	if err := json.Unmarshal(data, tok); err != nil {
		return nil, fmt.Errorf("oauth token file: %w", err)
	}

	// Fail fast when the token is expired and cannot auto-refresh.
	if !tok.Expiry.IsZero() && tok.Expiry.Before(time.Now()) && strings.TrimSpace(tok.RefreshToken) == "" {
		return nil, errors.New("oauth token expired and missing refresh_token; mint a new token with offline access")
	}

	httpClient := oauthCfg.Client(ctx, tok)
	return gsheet.NewService(ctx, goption.WithHTTPClient(httpClient))
}

func (g *googleStore) ReadAll(ctx context.Context, sheet string) (*models.RowTable, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, SheetRange(sheet)).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrReadFailed, sheet, err)
	}

	return models.NewRowTable(toStringCells(resp.Values)), nil
}

func (g *googleStore) WriteCell(ctx context.Context, sheet string, row, col int, value string) error {
	vr := &gsheet.ValueRange{Values: [][]any{{value}}}

	_, err := g.svc.Spreadsheets.Values.Update(g.spreadsheetID, CellRef(sheet, row, col), vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: update %s: %v", ErrWriteFailed, CellRef(sheet, row, col), err)
	}
	return nil
}

func (g *googleStore) WriteCells(ctx context.Context, sheet string, edits []models.PendingEdit) error {
	if len(edits) == 0 {
		return nil
	}

	data := make([]*gsheet.ValueRange, 0, len(edits))
	for _, edit := range edits {
		target := sheet
		if edit.Sheet != "" {
			target = edit.Sheet
		}
		data = append(data, &gsheet.ValueRange{
			Range:  CellRef(target, edit.RowIndex, edit.Column),
			Values: [][]any{{edit.NewValue}},
		})
	}

	req := &gsheet.BatchUpdateValuesRequest{
		ValueInputOption: "USER_ENTERED",
		Data:             data,
	}

	_, err := g.svc.Spreadsheets.Values.BatchUpdate(g.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: batch of %d cells: %v", ErrWriteFailed, len(edits), err)
	}
	return nil
}

func (g *googleStore) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	vr := &gsheet.ValueRange{Values: values}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, SheetRange(sheet), vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: append %d rows to %s: %v", ErrWriteFailed, len(rows), sheet, err)
	}
	return nil
}

func (g *googleStore) EnsureColumn(ctx context.Context, sheet, header string) (int, error) {
	rng := fmt.Sprintf("%s!1:1", quoteSheet(sheet))
	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return -1, fmt.Errorf("%w: read header of %s: %v", ErrReadFailed, sheet, err)
	}

	var headerRow []string
	if len(resp.Values) > 0 {
		headerRow = toStrings(resp.Values[0])
	}

	for i, h := range headerRow {
		if strings.EqualFold(strings.TrimSpace(h), header) {
			return i, nil
		}
	}

	col := len(headerRow)
	vr := &gsheet.ValueRange{Values: [][]any{{header}}}
	_, err = g.svc.Spreadsheets.Values.Update(g.spreadsheetID, HeaderCellRef(sheet, col), vr).
		ValueInputOption("USER_ENTERED").
		Context(ctx).Do()
	if err != nil {
		return -1, fmt.Errorf("%w: create column %q on %s: %v", ErrWriteFailed, header, sheet, err)
	}
	return col, nil
}

func (g *googleStore) ListSheets(ctx context.Context) ([]string, error) {
	resp, err := g.svc.Spreadsheets.Get(g.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: list sheets: %v", ErrReadFailed, err)
	}

	titles := make([]string, 0, len(resp.Sheets))
	for _, s := range resp.Sheets {
		if s.Properties != nil {
			titles = append(titles, s.Properties.Title)
		}
	}
	return titles, nil
}

func toStrings(in []any) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = strings.TrimSpace(fmt.Sprint(v))
	}
	return out
}

func toStringCells(in [][]any) [][]string {
	out := make([][]string, len(in))
	for i, row := range in {
		out[i] = toStrings(row)
	}
	return out
}
