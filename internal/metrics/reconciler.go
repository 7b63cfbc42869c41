package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	reconcilerPassTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "reconciler",
		Name:      "pass_total",
		Help:      "Count of reconciliation passes.",
	}, []string{"status"})

	reconcilerPassDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "reconciler",
		Name:      "pass_duration_seconds",
		Help:      "Duration of a reconciliation pass.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"status"})

	reconcilerPassSize = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "reconciler",
		Name:      "pass_size",
		Help:      "Number of batches inspected per pass.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 14),
	})

	reconcilerBatchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "reconciler",
		Name:      "batches_total",
		Help:      "Count of inspected batches by classification.",
	}, []string{"classification"})

	reconcilerRepairsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "reconciler",
		Name:      "repairs_total",
		Help:      "Count of repair attempts by classification.",
	}, []string{"classification", "status"})
)

// Reconciler tracks the flag reconciliation loop.
type Reconciler struct{}

func NewReconciler() *Reconciler {
	return &Reconciler{}
}

// ObservePass records one full pass over the derived store.
func (m Reconciler) ObservePass(err error, batches int, started time.Time) {
	status := statusOf(err)
	reconcilerPassTotal.WithLabelValues(status).Inc()
	reconcilerPassDuration.WithLabelValues(status).Observe(time.Since(started).Seconds())
	reconcilerPassSize.Observe(float64(batches))
}

func (m Reconciler) ObserveClassification(classification string) {
	reconcilerBatchesTotal.WithLabelValues(orUnknown(classification)).Inc()
}

func (m Reconciler) ObserveRepair(classification string, err error) {
	reconcilerRepairsTotal.WithLabelValues(orUnknown(classification), statusOf(err)).Inc()
}
