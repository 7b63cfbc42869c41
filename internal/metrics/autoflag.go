package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	autoFlagOutcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "autoflag",
		Name:      "outcomes_total",
		Help:      "Count of auto-flag attempts by outcome (flagged, status_update_failed, partial).",
	}, []string{"outcome"})
	autoFlagDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "autoflag",
		Name:      "duration_seconds",
		Help:      "Duration of an auto-flag attempt.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"outcome"})
)

// AutoFlag tracks the outcome of the flag pipeline.
type AutoFlag struct{}

func NewAutoFlag() *AutoFlag {
	return &AutoFlag{}
}

// ObserveOutcome records one pipeline run.
func (m AutoFlag) ObserveOutcome(outcome string, started time.Time) {
	outcome = orUnknown(outcome)
	autoFlagOutcomesTotal.WithLabelValues(outcome).Inc()
	autoFlagDuration.WithLabelValues(outcome).Observe(time.Since(started).Seconds())
}
