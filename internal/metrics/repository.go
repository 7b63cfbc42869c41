package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	repositoryRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "medicheck",
		Subsystem: "repository",
		Name:      "operations_total",
		Help:      "Count of repository operations.",
	}, []string{"store", "operation", "status"})
	repositoryRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "medicheck",
		Subsystem: "repository",
		Name:      "operation_duration_seconds",
		Help:      "Duration of repository operations.",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30},
	}, []string{"store", "operation", "status"})
)

// Repository tracks metrics for one store (postgres, clickhouse, redis).
type Repository struct {
	store string
}

// NewPostgresRepository creates a collector for the derived store.
func NewPostgresRepository() *Repository {
	return &Repository{store: "postgres"}
}

// NewClickhouseRepository creates a collector for the verdict audit log.
func NewClickhouseRepository() *Repository {
	return &Repository{store: "clickhouse"}
}

// NewRedisCache creates a collector for the topic cache.
func NewRedisCache() *Repository {
	return &Repository{store: "redis"}
}

// Observe records duration and status of a repository operation.
func (m Repository) Observe(operation string, err error, started time.Time) {
	status := statusOf(err)
	repositoryRequestsTotal.WithLabelValues(m.store, operation, status).Inc()
	repositoryRequestDuration.WithLabelValues(m.store, operation, status).Observe(time.Since(started).Seconds())
}
