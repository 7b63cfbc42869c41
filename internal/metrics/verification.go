package metrics

import (
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	verificationVerdictsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "verification",
		Name:      "verdicts_total",
		Help:      "Count of verdicts by status.",
	}, []string{"kind", "status"})

	verificationFailedChecksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "verification",
		Name:      "failed_checks_total",
		Help:      "Count of failed checks by name.",
	}, []string{"check"})

	verificationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "verification",
		Name:      "errors_total",
		Help:      "Count of verifications that could not produce a verdict.",
	}, []string{"kind"})

	verificationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "verification",
		Name:      "duration_seconds",
		Help:      "Duration of a verification including ledger reads.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"kind", "status"})

	verificationHistorySize = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "verification",
		Name:      "history_size",
		Help:      "Number of ledger entries evaluated per verification.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
	}, []string{"kind"})
)

// Verification tracks verdict outcomes.
type Verification struct{}

func NewVerification() *Verification {
	return &Verification{}
}

// ObserveVerdict records a produced verdict. kind is "scan" or "batch".
func (m Verification) ObserveVerdict(kind string, v model.Verdict, started time.Time) {
	kind = orUnknown(kind)
	verificationVerdictsTotal.WithLabelValues(kind, string(v.Status)).Inc()
	for _, name := range v.FailedChecks() {
		verificationFailedChecksTotal.WithLabelValues(string(name)).Inc()
	}
	verificationDuration.WithLabelValues(kind, string(v.Status)).Observe(time.Since(started).Seconds())
	verificationHistorySize.WithLabelValues(kind).Observe(float64(v.EventCount))
}

// ObserveError records a verification that ended without a verdict.
func (m Verification) ObserveError(kind string, started time.Time) {
	kind = orUnknown(kind)
	verificationErrorsTotal.WithLabelValues(kind).Inc()
	verificationDuration.WithLabelValues(kind, "error").Observe(time.Since(started).Seconds())
}
