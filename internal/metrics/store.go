package metrics

import "github.com/prometheus/client_golang/prometheus"

// StoreMetrics tracks writes of collection snapshots to the local store.
// A nil *StoreMetrics records nothing.
type StoreMetrics struct {
	Writes *prometheus.CounterVec
}

// NewStoreMetrics creates and registers store metrics on the given registry.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	m := &StoreMetrics{
		Writes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_writes_total",
			Help:      "Total number of collection snapshot writes, by collection and result.",
		}, []string{"collection", "result"}),
	}

	reg.MustRegister(m.Writes)
	return m
}

func (m *StoreMetrics) Write(collection string, err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.Writes.WithLabelValues(collection, result).Inc()
}
