package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/danvolchok/budget-tracker-web/internal/models"
	"github.com/danvolchok/budget-tracker-web/internal/repositories"
	"github.com/danvolchok/budget-tracker-web/internal/sheets"
)

var (
	ErrSessionActive  = errors.New("an edit session is already open for this sheet")
	ErrNoSession      = errors.New("no edit session is open for this sheet")
	ErrMerchantEmpty  = errors.New("merchant name cannot be empty")
	ErrGroupNameEmpty = errors.New("group name cannot be empty")
	ErrMerchantNoRows = errors.New("no rows match this merchant")
)

// editSession ties one sheet's working table to its edit cache for the life
// of a grouping session. applied remembers raw-to-group assignments so a
// successful flush can persist them as overrides.
type editSession struct {
	table   *models.RowTable
	cache   EditCacheInterface
	columns models.ColumnMap
	applied map[string]string
}

// merchantService manages merchant group proposals and per-sheet edit
// sessions. At most one session is open per sheet; its working table is the
// one dashboard reads observe while the session lasts.
type merchantService struct {
	store     sheets.Store
	grouper   SimilarityGrouperInterface
	overrides repositories.MerchantOverrideRepositoryInterface
	audit     AuditLoggerInterface
	metrics   MetricsRecorderInterface

	mu       sync.Mutex
	sessions map[string]*editSession
}

// NewMerchantService creates a merchant grouping service over a sheet store.
func NewMerchantService(
	store sheets.Store,
	grouper SimilarityGrouperInterface,
	overrides repositories.MerchantOverrideRepositoryInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
) MerchantServiceInterface {
	return &merchantService{
		store:     store,
		grouper:   grouper,
		overrides: overrides,
		audit:     audit,
		metrics:   metrics,
		sessions:  make(map[string]*editSession),
	}
}

// ProposeGroups clusters the sheet's raw merchant names and returns the
// proposed groups with their spending totals attached. While a session is
// open the proposal reads the session's working table, so pending applies
// are reflected immediately.
func (m *merchantService) ProposeGroups(ctx context.Context, sheet string) (*models.MerchantGroupView, error) {
	table, open, err := m.workingTable(ctx, sheet)
	if err != nil {
		return nil, err
	}

	cm, err := models.ResolveColumns(table)
	if err != nil {
		return nil, fmt.Errorf("resolve columns on %s: %w", sheet, err)
	}

	txns := models.DecodeTransactions(sheet, table, cm)
	groups := m.grouper.ProposeGroups(merchantCounts(txns))
	attachSpendingTotals(groups, txns)

	return &models.MerchantGroupView{
		Groups:      groups,
		Suggestions: m.grouper.SuggestMerges(groups),
		SessionOpen: open,
	}, nil
}

// StartSession opens an edit session on a sheet. The group column is
// created server-side first so the fetched table always carries it, then
// the table is snapshotted for a later revert.
func (m *merchantService) StartSession(ctx context.Context, sheet string) error {
	m.mu.Lock()
	_, open := m.sessions[sheet]
	m.mu.Unlock()
	if open {
		return ErrSessionActive
	}

	if _, err := m.store.EnsureColumn(ctx, sheet, models.MerchantGroupHeader); err != nil {
		return fmt.Errorf("ensure group column on %s: %w", sheet, err)
	}

	table, err := m.store.ReadAll(ctx, sheet)
	if err != nil {
		return fmt.Errorf("read %s: %w", sheet, err)
	}

	cm, err := models.ResolveColumns(table)
	if err != nil {
		return fmt.Errorf("resolve columns on %s: %w", sheet, err)
	}
	if cm.MerchantGroup < 0 {
		// A backend read raced the column creation; the column exists
		// server-side, so extending the local header is safe.
		cm.MerchantGroup = table.AppendColumn(models.MerchantGroupHeader)
	}

	cache := NewEditCache(sheet, table, cm.Merchant, cm.MerchantGroup)
	if err := cache.Enable(); err != nil {
		return err
	}

	m.mu.Lock()
	if _, open := m.sessions[sheet]; open {
		m.mu.Unlock()
		return ErrSessionActive
	}
	m.sessions[sheet] = &editSession{
		table:   table,
		cache:   cache,
		columns: cm,
		applied: make(map[string]string),
	}
	m.mu.Unlock()

	if m.audit != nil {
		m.audit.LogSessionEnabled(ctx, sheet, table.RowCount())
	}
	return nil
}

// ApplyGroup assigns a group name to every row of the open session whose
// merchant cell matches rawMerchant. The change is visible to readers
// immediately; the spreadsheet is untouched until FlushSession.
func (m *merchantService) ApplyGroup(ctx context.Context, sheet, rawMerchant, newGroup string) (int, error) {
	if strings.TrimSpace(rawMerchant) == "" {
		return 0, ErrMerchantEmpty
	}
	if strings.TrimSpace(newGroup) == "" {
		return 0, ErrGroupNameEmpty
	}

	session, err := m.session(sheet)
	if err != nil {
		return 0, err
	}

	touched, err := session.cache.Apply(rawMerchant, newGroup)
	if err != nil {
		return 0, err
	}
	if touched == 0 {
		return 0, ErrMerchantNoRows
	}

	m.mu.Lock()
	session.applied[rawMerchant] = newGroup
	m.mu.Unlock()

	if m.audit != nil {
		m.audit.LogGroupApplied(ctx, sheet, rawMerchant, newGroup, touched)
	}
	if m.metrics != nil {
		m.metrics.IncrementCounter("merchant_group_applied", map[string]string{"sheet": sheet})
	}
	return touched, nil
}

// FlushSession writes the session's pending edits through to the store.
// When every cell lands, the assignments are persisted as merchant
// overrides and the session closes; cells that failed stay pending and the
// session stays open for a retry.
func (m *merchantService) FlushSession(ctx context.Context, sheet string) (*FlushResult, error) {
	session, err := m.session(sheet)
	if err != nil {
		return nil, err
	}

	result, err := session.cache.Flush(ctx, m.store)
	if err != nil {
		return nil, err
	}

	if m.audit != nil {
		m.audit.LogSessionFlushed(ctx, sheet, result.CellsWritten, result.CellsFailed, result.Degraded)
	}

	if session.cache.IsEnabled() {
		// Some cells failed or new applies arrived mid-flight; the
		// session stays open so they can be flushed again.
		return result, nil
	}

	m.persistOverrides(ctx, session)

	m.mu.Lock()
	delete(m.sessions, sheet)
	m.mu.Unlock()

	return result, nil
}

// RevertSession restores the working table to its session-start state and
// discards all pending edits.
func (m *merchantService) RevertSession(ctx context.Context, sheet string) error {
	session, err := m.session(sheet)
	if err != nil {
		return err
	}

	if err := session.cache.Revert(); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.sessions, sheet)
	m.mu.Unlock()

	if m.audit != nil {
		m.audit.LogSessionReverted(ctx, sheet)
	}
	return nil
}

// SessionState reports whether a session is open on the sheet and how many
// cell edits it is holding.
func (m *merchantService) SessionState(sheet string) (bool, int) {
	m.mu.Lock()
	session, open := m.sessions[sheet]
	m.mu.Unlock()

	if !open {
		return false, 0
	}
	return session.cache.IsEnabled(), session.cache.PendingCount()
}

// SessionTable exposes the open session's working table so dashboard reads
// observe pending edits. The second return is false when no session is open.
func (m *merchantService) SessionTable(sheet string) (*models.RowTable, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, open := m.sessions[sheet]
	if !open {
		return nil, false
	}
	return session.table, true
}

// workingTable returns the session's live table when one is open, a fresh
// store read otherwise.
func (m *merchantService) workingTable(ctx context.Context, sheet string) (*models.RowTable, bool, error) {
	if table, open := m.SessionTable(sheet); open {
		return table, true, nil
	}

	table, err := m.store.ReadAll(ctx, sheet)
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", sheet, err)
	}
	return table, false, nil
}

func (m *merchantService) session(sheet string) (*editSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, open := m.sessions[sheet]
	if !open {
		return nil, ErrNoSession
	}
	return session, nil
}

// persistOverrides records the session's raw-to-group assignments so a
// re-import that resurrects a raw merchant string lands in its group again.
// Persistence is best-effort; a database hiccup must not undo a flush that
// already reached the spreadsheet.
func (m *merchantService) persistOverrides(ctx context.Context, session *editSession) {
	if m.overrides == nil {
		return
	}

	m.mu.Lock()
	batch := make([]models.MerchantOverride, 0, len(session.applied))
	for raw, group := range session.applied {
		batch = append(batch, models.MerchantOverride{RawName: raw, GroupName: group})
	}
	m.mu.Unlock()

	if len(batch) == 0 {
		return
	}
	if err := m.overrides.UpsertBatch(batch); err != nil && m.metrics != nil {
		m.metrics.IncrementCounter("merchant_override_persist_failures", nil)
	}
}

// merchantCounts tallies raw merchant strings in row order, preserving
// first-encounter order for the grouper's deterministic tie-breaks.
func merchantCounts(txns []models.Transaction) []models.MerchantCount {
	index := make(map[string]int)
	counts := make([]models.MerchantCount, 0)

	for _, txn := range txns {
		raw := strings.TrimSpace(txn.RawMerchant)
		if raw == "" {
			continue
		}
		if at, seen := index[raw]; seen {
			counts[at].Count++
			continue
		}
		index[raw] = len(counts)
		counts = append(counts, models.MerchantCount{Raw: raw, Count: 1})
	}
	return counts
}

// attachSpendingTotals fills each group's Total with the absolute expense
// amounts of its member merchants.
func attachSpendingTotals(groups []models.MerchantGroup, txns []models.Transaction) {
	spent := make(map[string]decimal.Decimal)
	for _, txn := range txns {
		if !txn.IsExpense() {
			continue
		}
		raw := strings.TrimSpace(txn.RawMerchant)
		spent[raw] = spent[raw].Add(txn.AbsAmount())
	}

	for i := range groups {
		total := decimal.Zero
		for _, member := range groups[i].Members {
			total = total.Add(spent[member.Raw])
		}
		groups[i].Total = total
	}
}
