package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// SyncMetrics holds Prometheus metrics for the synchronization engine.
// A nil *SyncMetrics records nothing.
type SyncMetrics struct {
	Operations *prometheus.CounterVec
	Rows       *prometheus.CounterVec
	Duration   *prometheus.HistogramVec
}

// NewSyncMetrics creates and registers sync metrics on the given registry.
func NewSyncMetrics(reg prometheus.Registerer) *SyncMetrics {
	m := &SyncMetrics{
		Operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_operations_total",
			Help:      "Total number of sync operations, by operation and result.",
		}, []string{"op", "result"}),
		Rows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sync_rows_total",
			Help:      "Total number of rows handled during sync, by table and outcome.",
		}, []string{"table", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duration of sync operations in seconds.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"op"}),
	}

	reg.MustRegister(m.Operations, m.Rows, m.Duration)
	return m
}

// Observe records one finished operation.
func (m *SyncMetrics) Observe(op string, success bool, took time.Duration) {
	if m == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	m.Operations.WithLabelValues(op, result).Inc()
	m.Duration.WithLabelValues(op).Observe(took.Seconds())
}

// AddRows counts rows of table by outcome (adopted, kept, invalid, demoted, pushed, skipped).
func (m *SyncMetrics) AddRows(table, outcome string, n int) {
	if m == nil || n == 0 {
		return
	}
	m.Rows.WithLabelValues(table, outcome).Add(float64(n))
}
