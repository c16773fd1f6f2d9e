package services

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/repositories"
)

var ErrNoSnapshot = errors.New("no snapshot stored for sheet")

// snapshotPayload is the persisted form of a table. Stored gzip-compressed;
// sheet cells are repetitive enough that compression pays for itself within
// a few hundred rows.
type snapshotPayload struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}

type snapshotService struct {
	repo repositories.SnapshotRepositoryInterface
}

// NewSnapshotService creates a snapshot service persisting through repo.
func NewSnapshotService(repo repositories.SnapshotRepositoryInterface) SnapshotServiceInterface {
	return &snapshotService{repo: repo}
}

// SaveSnapshot stores a compressed copy of a sheet's table so reads can
// fall back to it when the spreadsheet backend is unreachable.
func (s *snapshotService) SaveSnapshot(ctx context.Context, sheet string, table *models.RowTable) error {
	payload, err := encodeSnapshot(table)
	if err != nil {
		return fmt.Errorf("encode snapshot for %s: %w", sheet, err)
	}

	snapshot := &models.RowSnapshot{
		Sheet:    sheet,
		Payload:  payload,
		RowCount: table.RowCount(),
	}
	if err := s.repo.Create(snapshot); err != nil {
		return fmt.Errorf("store snapshot for %s: %w", sheet, err)
	}
	return nil
}

// LoadLatest returns the most recent stored table for a sheet and the time
// it was taken.
func (s *snapshotService) LoadLatest(ctx context.Context, sheet string) (*models.RowTable, time.Time, error) {
	snapshot, err := s.repo.GetLatestBySheet(sheet)
	if err != nil {
		if errors.Is(err, repositories.ErrSnapshotNotFound) {
			return nil, time.Time{}, ErrNoSnapshot
		}
		return nil, time.Time{}, fmt.Errorf("load snapshot for %s: %w", sheet, err)
	}

	table, err := decodeSnapshot(snapshot.Payload)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("decode snapshot for %s: %w", sheet, err)
	}
	return table, snapshot.TakenAt, nil
}

// Prune deletes all but the newest keep snapshots of a sheet.
func (s *snapshotService) Prune(ctx context.Context, sheet string, keep int) error {
	if keep < 1 {
		keep = 1
	}
	if _, err := s.repo.PruneBySheet(sheet, keep); err != nil {
		return fmt.Errorf("prune snapshots for %s: %w", sheet, err)
	}
	return nil
}

func encodeSnapshot(table *models.RowTable) ([]byte, error) {
	raw, err := json.Marshal(snapshotPayload{Header: table.Header, Rows: table.Rows})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeSnapshot(payload []byte) (*models.RowTable, error) {
	zr, err := gzip.NewReader(bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}

	var decoded snapshotPayload
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	return &models.RowTable{Header: decoded.Header, Rows: decoded.Rows}, nil
}
