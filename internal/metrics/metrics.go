package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RPCRetries counts retried ledger RPC calls by operation
	RPCRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_rpc_retries_total",
			Help: "Total number of retried ledger RPC calls",
		},
		[]string{"operation"},
	)

	// RPCFailures counts ledger RPC calls that failed after all attempts
	RPCFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_rpc_failures_total",
			Help: "Total number of ledger RPC calls that exhausted their retries",
		},
		[]string{"operation"},
	)

	// TicksTotal counts dispatcher ticks by result
	TicksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_ticks_total",
			Help: "Total number of dispatcher ticks",
		},
		[]string{"contract", "status"},
	)

	// TickDuration tracks dispatcher tick duration
	TickDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "indexer_tick_duration_seconds",
			Help:    "Dispatcher tick duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"contract"},
	)

	// EventsIndexed counts events appended to the event log
	EventsIndexed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_events_indexed_total",
			Help: "Total number of ledger events written to the event log",
		},
		[]string{"event_type"},
	)

	// EventsSkipped counts events that were not applied
	EventsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "indexer_events_skipped_total",
			Help: "Total number of ledger events skipped",
		},
		[]string{"reason"},
	)

	// CursorLedger tracks the last processed ledger per contract
	CursorLedger = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "indexer_cursor_ledger",
			Help: "Highest ledger whose events have been applied",
		},
		[]string{"contract"},
	)

	// LatestLedger tracks the latest ledger reported by the RPC node
	LatestLedger = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "indexer_latest_ledger",
			Help: "Latest ledger sequence reported by the RPC node",
		},
	)

	// Resolutions counts market resolution attempts by outcome
	Resolutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "oracle_resolutions_total",
			Help: "Total number of market resolution attempts",
		},
		[]string{"outcome"},
	)

	// ReportsTotal counts community reports by result
	ReportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "moderation_reports_total",
			Help: "Total number of market reports",
		},
		[]string{"result"},
	)

	// PausedCalls counts auto-pause transitions
	PausedCalls = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "moderation_calls_paused_total",
			Help: "Total number of markets paused by the report threshold",
		},
	)

	// PendingCalls tracks the number of markets awaiting resolution
	PendingCalls = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "oracle_pending_calls",
			Help: "Number of markets awaiting resolution",
		},
	)

	// DependencyUp reports the last result of each dependency health check
	DependencyUp = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "indexer_dependency_up",
			Help: "Whether the last health check of a dependency passed (1) or failed (0)",
		},
		[]string{"check"},
	)
)
