package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditFlushTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "audit",
		Name:      "flush_total",
		Help:      "Count of verdict audit flushes.",
	}, []string{"status"})
	auditFlushSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "audit",
		Name:      "flush_size",
		Help:      "Number of verdict records per flush.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	})
	auditDroppedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "audit",
		Name:      "dropped_total",
		Help:      "Count of verdict records dropped because the audit queue was full.",
	})
	auditFlushDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "audit",
		Name:      "flush_duration_seconds",
		Help:      "Duration of verdict audit flushes.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})
)

// AuditSink tracks batched writes of verdict records.
type AuditSink struct{}

func NewAuditSink() *AuditSink {
	return &AuditSink{}
}

// ObserveFlush records one flush of queued verdict records.
func (m AuditSink) ObserveFlush(err error, records int, started time.Time) {
	status := statusOf(err)
	auditFlushTotal.WithLabelValues(status).Inc()
	auditFlushDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	auditFlushSize.Observe(float64(records))
}

func (m AuditSink) ObserveDropped() {
	auditDroppedTotal.Inc()
}
