package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ledgerRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "ledger_client",
		Name:      "operations_total",
		Help:      "Count of ledger operations.",
	}, []string{"operation", "backend", "status"})
	ledgerRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "ledger_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ledger operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "backend", "status"})
)

// LedgerClient tracks metrics for calls to the ledger backend.
type LedgerClient struct {
	backend string
}

// NewLedgerClient constructs a metrics collector for one ledger backend.
func NewLedgerClient(backend string) *LedgerClient {
	return &LedgerClient{backend: orUnknown(backend)}
}

// Observe records a single ledger call outcome and duration.
func (m LedgerClient) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	ledgerRequestsTotal.WithLabelValues(operation, m.backend, status).Inc()
	ledgerRequestDuration.WithLabelValues(operation, m.backend, status).Observe(time.Since(started).Seconds())
}
