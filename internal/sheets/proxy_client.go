package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/danvolchok/budget-tracker-web/internal/config"
	"github.com/danvolchok/budget-tracker-web/internal/models"
)

const proxySecretHeader = "X-Api-Secret"

// proxyStore talks to an Apps Script web app deployed next to the sheet.
// The script exposes one POST endpoint dispatching on an action verb, so the
// engine can run against a spreadsheet without Sheets API credentials.
type proxyStore struct {
	baseURL string
	secret  string
	client  *http.Client
}

// Ensure interface conformance
var _ Store = (*proxyStore)(nil)

// NewProxyStore builds a Store over an Apps Script web-app bridge.
func NewProxyStore(cfg config.SheetsConfig) Store {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &proxyStore{
		baseURL: cfg.ProxyURL,
		secret:  cfg.ProxySecret,
		client:  &http.Client{Timeout: timeout},
	}
}

type proxyRequest struct {
	Action string      `json:"action"`
	Sheet  string      `json:"sheet,omitempty"`
	Row    int         `json:"row,omitempty"`
	Col    int         `json:"col,omitempty"`
	Value  string      `json:"value,omitempty"`
	Header string      `json:"header,omitempty"`
	Edits  []proxyEdit `json:"edits,omitempty"`
	Rows   [][]string  `json:"rows,omitempty"`
}

type proxyEdit struct {
	Sheet string `json:"sheet,omitempty"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Value string `json:"value"`
}

type proxyResponse struct {
	OK     bool       `json:"ok"`
	Error  string     `json:"error,omitempty"`
	Values [][]string `json:"values,omitempty"`
	Column int        `json:"column,omitempty"`
}

func (p *proxyStore) ReadAll(ctx context.Context, sheet string) (*models.RowTable, error) {
	resp, err := p.call(ctx, proxyRequest{Action: "readAll", Sheet: sheet})
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrReadFailed, sheet, err)
	}
	return models.NewRowTable(resp.Values), nil
}

func (p *proxyStore) WriteCell(ctx context.Context, sheet string, row, col int, value string) error {
	_, err := p.call(ctx, proxyRequest{
		Action: "writeCell",
		Sheet:  sheet,
		Row:    row,
		Col:    col,
		Value:  value,
	})
	if err != nil {
		return fmt.Errorf("%w: cell (%d,%d) on %s: %v", ErrWriteFailed, row, col, sheet, err)
	}
	return nil
}

func (p *proxyStore) WriteCells(ctx context.Context, sheet string, edits []models.PendingEdit) error {
	if len(edits) == 0 {
		return nil
	}

	wire := make([]proxyEdit, 0, len(edits))
	for _, edit := range edits {
		wire = append(wire, proxyEdit{
			Sheet: edit.Sheet,
			Row:   edit.RowIndex,
			Col:   edit.Column,
			Value: edit.NewValue,
		})
	}

	_, err := p.call(ctx, proxyRequest{Action: "writeCells", Sheet: sheet, Edits: wire})
	if err != nil {
		return fmt.Errorf("%w: batch of %d cells: %v", ErrWriteFailed, len(edits), err)
	}
	return nil
}

func (p *proxyStore) AppendRows(ctx context.Context, sheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	_, err := p.call(ctx, proxyRequest{Action: "appendRows", Sheet: sheet, Rows: rows})
	if err != nil {
		return fmt.Errorf("%w: append %d rows to %s: %v", ErrWriteFailed, len(rows), sheet, err)
	}
	return nil
}

func (p *proxyStore) EnsureColumn(ctx context.Context, sheet, header string) (int, error) {
	resp, err := p.call(ctx, proxyRequest{Action: "ensureColumn", Sheet: sheet, Header: header})
	if err != nil {
		return -1, fmt.Errorf("%w: column %q on %s: %v", ErrWriteFailed, header, sheet, err)
	}
	return resp.Column, nil
}

// ListSheets is not part of the script's contract; the web app is bound to
// sheets it was configured with.
func (p *proxyStore) ListSheets(ctx context.Context) ([]string, error) {
	return nil, ErrNotSupported
}

func (p *proxyStore) call(ctx context.Context, req proxyRequest) (*proxyResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if p.secret != "" {
		httpReq.Header.Set(proxySecretHeader, p.secret)
	}

	httpResp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("proxy returned status %d", httpResp.StatusCode)
	}

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	var resp proxyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if !resp.OK {
		return nil, fmt.Errorf("proxy error: %s", resp.Error)
	}
	return &resp, nil
}
