// Package metrics provides Prometheus metrics for tasklist.
// Counters track widget operations and store traffic; gauges mirror the
// current list so /metrics reflects state without reading the store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Operations ─────────────────────────────────────────────────────────────

// Operations counts widget operations by name and outcome
// (outcome is "applied" or "noop").
var Operations = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tasklist",
	Name:      "operations_total",
	Help:      "Widget operations by name and outcome.",
}, []string{"op", "outcome"})

// TasksRemoved counts tasks removed by delete or clear-completed.
var TasksRemoved = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tasklist",
	Name:      "tasks_removed_total",
	Help:      "Tasks removed, by operation.",
}, []string{"op"})

// ─── Store ──────────────────────────────────────────────────────────────────

// StoreWrites counts persistence writes by result ("ok" or "error").
var StoreWrites = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tasklist",
	Name:      "store_writes_total",
	Help:      "Writes of the serialized task list.",
}, []string{"result"})

// StoreWriteBytes tracks the size of each serialized list.
var StoreWriteBytes = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "tasklist",
	Name:      "store_write_bytes",
	Help:      "Size of the serialized task list per write.",
	Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
})

// LoadFailures counts startup loads that fell back to an empty list.
var LoadFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "tasklist",
	Name:      "load_failures_total",
	Help:      "Startup loads that fell back to an empty list, by reason.",
}, []string{"reason"})

// ─── State ──────────────────────────────────────────────────────────────────

// TasksCurrent tracks the current list by state ("active" or "completed").
var TasksCurrent = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "tasklist",
	Name:      "tasks_current",
	Help:      "Tasks currently in the list, by state.",
}, []string{"state"})

// ─── Health ─────────────────────────────────────────────────────────────────

// HealthCheckStatus tracks health check results (1=healthy, 0=unhealthy).
var HealthCheckStatus = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "tasklist",
	Name:      "health_check_status",
	Help:      "Health check result per component (1=healthy, 0=unhealthy).",
}, []string{"check"})

// ObserveCounts sets the state gauges.
func ObserveCounts(active, completed int) {
	TasksCurrent.WithLabelValues("active").Set(float64(active))
	TasksCurrent.WithLabelValues("completed").Set(float64(completed))
}
