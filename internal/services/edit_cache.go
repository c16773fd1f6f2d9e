package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

var (
	ErrCacheAlreadyEnabled = errors.New("edit session already enabled")
	ErrCacheDisabled       = errors.New("no edit session enabled")
	ErrFlushInProgress     = errors.New("a flush is already in progress")
	ErrNothingPending      = errors.New("no pending edits to flush")
)

// FlushResult reports what a flush managed to write. CellsFailed is only
// ever non-zero on the degraded per-cell path; failed cells stay pending
// for the next flush.
type FlushResult struct {
	CellsWritten int  `json:"cells_written"`
	CellsFailed  int  `json:"cells_failed"`
	Degraded     bool `json:"degraded"`
}

// editCache is an optimistic write-through cache over one sheet's row
// table. Applies mutate the live table immediately, so every reader of the
// table sees pending edits without snapshot isolation; the spreadsheet
// itself only changes on Flush.
//
// Touched rows are tracked conservatively: a row applied twice counts as
// changed even if the second apply restored its original value. Cell counts
// reported to the user follow that conservative set.
type editCache struct {
	sheet       string
	merchantCol int
	groupCol    int

	mu       sync.Mutex
	table    *models.RowTable
	snapshot *models.RowTable
	pending  map[int]struct{}
	enabled  bool
	inFlight bool
}

// NewEditCache creates an edit session cache over a live row table.
// merchantCol locates raw merchant cells, groupCol the group assignment
// column writes go to.
func NewEditCache(sheet string, table *models.RowTable, merchantCol, groupCol int) EditCacheInterface {
	return &editCache{
		sheet:       sheet,
		merchantCol: merchantCol,
		groupCol:    groupCol,
		table:       table,
		pending:     make(map[int]struct{}),
	}
}

// Enable snapshots the current table and opens the session. A second
// Enable without an intervening flush or revert is rejected; honoring it
// would silently discard the first snapshot.
func (c *editCache) Enable() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.enabled {
		return ErrCacheAlreadyEnabled
	}

	c.snapshot = c.table.DeepCopy()
	c.pending = make(map[int]struct{})
	c.enabled = true
	return nil
}

// Apply sets the group column to newGroup on every row whose merchant cell
// equals rawMerchant, effective immediately for all readers of the table.
// Returns the number of rows rewritten.
func (c *editCache) Apply(rawMerchant, newGroup string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return 0, ErrCacheDisabled
	}

	touched := 0
	for i := 1; i <= c.table.RowCount(); i++ {
		if c.table.Get(i, c.merchantCol) != rawMerchant {
			continue
		}
		c.table.Set(i, c.groupCol, newGroup)
		c.pending[i] = struct{}{}
		touched++
	}
	return touched, nil
}

// LiveGroups recomputes group membership from the live table, so applies
// show up before any flush. Raw names repeat across rows; each appears once
// per group, in row order.
func (c *editCache) LiveGroups() map[string][]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	groups := make(map[string][]string)
	seen := make(map[string]map[string]struct{})

	for i := 1; i <= c.table.RowCount(); i++ {
		group := c.table.Get(i, c.groupCol)
		if group == "" {
			continue
		}
		raw := c.table.Get(i, c.merchantCol)

		if seen[group] == nil {
			seen[group] = make(map[string]struct{})
		}
		if _, dup := seen[group][raw]; dup {
			continue
		}
		seen[group][raw] = struct{}{}
		groups[group] = append(groups[group], raw)
	}
	return groups
}

// Flush writes the rows queued right now as one batch of their current
// group values. Applies arriving while the batch is in flight land in the
// next flush, never the current one. When the batch write fails, the same
// edits are retried as individual cell writes and the result reports how
// many were individually confirmed; failed cells remain queued. The session
// closes once nothing is left pending.
func (c *editCache) Flush(ctx context.Context, store sheets.Store) (*FlushResult, error) {
	c.mu.Lock()
	if !c.enabled {
		c.mu.Unlock()
		return nil, ErrCacheDisabled
	}
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrFlushInProgress
	}
	if len(c.pending) == 0 {
		c.mu.Unlock()
		return nil, ErrNothingPending
	}

	rows := make([]int, 0, len(c.pending))
	for row := range c.pending {
		rows = append(rows, row)
	}
	sort.Ints(rows)

	edits := make([]models.PendingEdit, 0, len(rows))
	for _, row := range rows {
		edits = append(edits, models.PendingEdit{
			Sheet:    c.sheet,
			RowIndex: row,
			Column:   c.groupCol,
			NewValue: c.table.Get(row, c.groupCol),
		})
	}

	c.pending = make(map[int]struct{})
	c.inFlight = true
	c.mu.Unlock()

	result := &FlushResult{}
	failed := make([]int, 0)

	if err := store.WriteCells(ctx, c.sheet, edits); err == nil {
		result.CellsWritten = len(edits)
	} else {
		result.Degraded = true
		for _, edit := range edits {
			if cellErr := store.WriteCell(ctx, c.sheet, edit.RowIndex, edit.Column, edit.NewValue); cellErr != nil {
				result.CellsFailed++
				failed = append(failed, edit.RowIndex)
				continue
			}
			result.CellsWritten++
		}
	}

	c.mu.Lock()
	c.inFlight = false
	for _, row := range failed {
		c.pending[row] = struct{}{}
	}
	if len(c.pending) == 0 {
		c.enabled = false
		c.snapshot = nil
	}
	c.mu.Unlock()

	return result, nil
}

// Revert restores the table to its enable-time snapshot in place and closes
// the session. It is rejected while a flush is in flight; those cells are
// already on their way to the store.
func (c *editCache) Revert() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.enabled {
		return ErrCacheDisabled
	}
	if c.inFlight {
		return ErrFlushInProgress
	}

	c.table.RestoreFrom(c.snapshot)
	c.snapshot = nil
	c.pending = make(map[int]struct{})
	c.enabled = false
	return nil
}

// IsEnabled reports whether an edit session is open.
func (c *editCache) IsEnabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// PendingCount returns the number of queued rows, not counting any batch
// currently in flight.
func (c *editCache) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
