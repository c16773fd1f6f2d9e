package services

import (
	"context"
	"log/slog"
	"time"
)

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogSheetRead(ctx context.Context, sheet string, rows int, durationMs int64) {
	al.logger.InfoContext(ctx, "sheet read",
		slog.String("event_type", "sheet_read"),
		slog.String("sheet", sheet),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSheetReadFailed(ctx context.Context, sheet string, errorMsg string) {
	al.logger.WarnContext(ctx, "sheet read failed",
		slog.String("event_type", "sheet_read_failed"),
		slog.String("sheet", sheet),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSnapshotServed(ctx context.Context, sheet string, takenAt time.Time) {
	al.logger.WarnContext(ctx, "stale snapshot served",
		slog.String("event_type", "snapshot_served"),
		slog.String("sheet", sheet),
		slog.Time("taken_at", takenAt),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSessionEnabled(ctx context.Context, sheet string, rows int) {
	al.logger.InfoContext(ctx, "edit session enabled",
		slog.String("event_type", "edit_session_enabled"),
		slog.String("sheet", sheet),
		slog.Int("rows", rows),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogGroupApplied(ctx context.Context, sheet, rawMerchant, newGroup string, rowsTouched int) {
	al.logger.InfoContext(ctx, "merchant group applied",
		slog.String("event_type", "merchant_group_applied"),
		slog.String("sheet", sheet),
		slog.String("raw_merchant", rawMerchant),
		slog.String("new_group", newGroup),
		slog.Int("rows_touched", rowsTouched),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSessionFlushed(ctx context.Context, sheet string, cellsWritten, cellsFailed int, degraded bool) {
	level := slog.LevelInfo
	if degraded {
		level = slog.LevelWarn
	}

	al.logger.LogAttrs(ctx, level, "edit session flushed",
		slog.String("event_type", "edit_session_flushed"),
		slog.String("sheet", sheet),
		slog.Int("cells_written", cellsWritten),
		slog.Int("cells_failed", cellsFailed),
		slog.Bool("degraded", degraded),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSessionReverted(ctx context.Context, sheet string) {
	al.logger.InfoContext(ctx, "edit session reverted",
		slog.String("event_type", "edit_session_reverted"),
		slog.String("sheet", sheet),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSemanticCleanApplied(ctx context.Context, provider, raw, cleaned string) {
	al.logger.InfoContext(ctx, "semantic clean applied",
		slog.String("event_type", "semantic_clean_applied"),
		slog.String("provider", provider),
		slog.String("raw", raw),
		slog.String("cleaned", cleaned),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSemanticCleanFailed(ctx context.Context, provider, raw, errorMsg string) {
	al.logger.WarnContext(ctx, "semantic clean failed",
		slog.String("event_type", "semantic_clean_failed"),
		slog.String("provider", provider),
		slog.String("raw", raw),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	al.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogBudgetChanged(ctx context.Context, category, baseAmount, action string) {
	al.logger.InfoContext(ctx, "budget changed",
		slog.String("event_type", "budget_changed"),
		slog.String("category", category),
		slog.String("base_amount", baseAmount),
		slog.String("action", action),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogSampleDataGenerated(ctx context.Context, sheet string, rows int) {
	al.logger.InfoContext(ctx, "sample data generated",
		slog.String("event_type", "sample_data_generated"),
		slog.String("sheet", sheet),
		slog.Int("rows", rows),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value("correlation_id").(string); ok {
		return correlationID
	}

	if requestID, ok := ctx.Value("request_id").(string); ok {
		return requestID
	}

	return ""
}
