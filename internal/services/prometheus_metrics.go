package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	sheetReads            *prometheus.CounterVec
	sheetReadDuration     prometheus.Histogram
	cellsWritten          *prometheus.CounterVec
	flushesTotal          *prometheus.CounterVec
	editSessionsActive    prometheus.Gauge
	pendingEdits          *prometheus.GaugeVec
	semanticCleans        *prometheus.CounterVec
	semanticCleanDuration prometheus.Histogram
	circuitBreakerState   *prometheus.GaugeVec
	dashboardRequests     *prometheus.CounterVec
	dashboardDuration     prometheus.Histogram
	snapshotsServed       prometheus.Counter
	budgetsConfigured     prometheus.Gauge
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		sheetReads: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheet_reads_total",
				Help: "Total number of spreadsheet reads",
			},
			[]string{"sheet", "status"},
		),
		sheetReadDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sheet_read_duration_milliseconds",
				Help:    "Spreadsheet read duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		cellsWritten: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sheet_cells_written_total",
				Help: "Total number of cells written to the spreadsheet",
			},
			[]string{"sheet", "mode"},
		),
		flushesTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "edit_flushes_total",
				Help: "Total number of edit session flushes",
			},
			[]string{"status"},
		),
		editSessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "edit_sessions_active",
				Help: "Current number of open edit sessions",
			},
		),
		pendingEdits: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pending_edits",
				Help: "Current number of pending cell edits per sheet",
			},
			[]string{"sheet"},
		),
		semanticCleans: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "semantic_cleans_total",
				Help: "Total number of semantic merchant cleaning calls",
			},
			[]string{"provider", "status"},
		),
		semanticCleanDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "semantic_clean_duration_milliseconds",
				Help:    "Semantic cleaning call duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		circuitBreakerState: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "circuit_breaker_state",
				Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
			},
			[]string{"service"},
		),
		dashboardRequests: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_requests_total",
				Help: "Total number of dashboard builds by period",
			},
			[]string{"period"},
		),
		dashboardDuration: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "dashboard_build_duration_milliseconds",
				Help:    "Dashboard build duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
		),
		snapshotsServed: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "stale_snapshots_served_total",
				Help: "Total number of requests served from a stale snapshot",
			},
		),
		budgetsConfigured: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "budgets_configured",
				Help: "Current number of configured category budgets",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	sheet := tags["sheet"]
	provider := tags["provider"]

	switch name {
	case "sheet.read.success":
		m.sheetReads.WithLabelValues(sheet, "success").Inc()
	case "sheet.read.failed":
		m.sheetReads.WithLabelValues(sheet, "failed").Inc()
	case "cells.written.batch":
		m.cellsWritten.WithLabelValues(sheet, "batch").Inc()
	case "cells.written.single":
		m.cellsWritten.WithLabelValues(sheet, "single").Inc()
	case "flush.clean":
		m.flushesTotal.WithLabelValues("clean").Inc()
	case "flush.degraded":
		m.flushesTotal.WithLabelValues("degraded").Inc()
	case "semantic_clean_success":
		m.semanticCleans.WithLabelValues(provider, "success").Inc()
	case "semantic_clean_failures":
		m.semanticCleans.WithLabelValues(provider, "failed").Inc()
	case "circuit_breaker.open":
		m.circuitBreakerState.WithLabelValues(tags["service"]).Set(1)
	case "dashboard.request":
		if period := tags["period"]; period != "" {
			m.dashboardRequests.WithLabelValues(period).Inc()
		}
	case "snapshot.served":
		m.snapshotsServed.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case "sheet.read":
		m.sheetReadDuration.Observe(float64(duration.Milliseconds()))
	case "semantic_clean":
		m.semanticCleanDuration.Observe(float64(duration.Milliseconds()))
	case "dashboard.build":
		m.dashboardDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case "edit_sessions_active":
		m.editSessionsActive.Set(value)
	case "pending_edits":
		if sheet := tags["sheet"]; sheet != "" {
			m.pendingEdits.WithLabelValues(sheet).Set(value)
		}
	case "circuit_breaker_state":
		if service := tags["service"]; service != "" {
			m.circuitBreakerState.WithLabelValues(service).Set(value)
		}
	case "budgets_configured":
		m.budgetsConfigured.Set(value)
	}
}
