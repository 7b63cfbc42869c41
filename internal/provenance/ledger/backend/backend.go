// Package backend selects and builds a ledger.Client from configuration.
package backend

import (
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger/kafka"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger/memory"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger/sqlite"
	"go.uber.org/zap"
)

// Kind names a ledger backend.
type Kind string

const (
	Memory Kind = "memory"
	SQLite Kind = "sqlite"
	Kafka  Kind = "kafka"
)

// Config carries everything any backend needs. Only the fields of the
// selected Kind are read.
type Config struct {
	Kind                   Kind
	SQLitePath             string
	KafkaBrokers           []string
	KafkaTopicPrefix       string
	KafkaReplicationFactor int
	KafkaTimeout           time.Duration
	Credentials            ledger.Credentials
}

// New builds the configured backend wrapped in a metrics-observing client.
// The returned close function releases backend resources.
func New(cfg Config, metrics ledger.Metrics, logger *zap.Logger) (ledger.Client, func() error, error) {
	if metrics == nil {
		return nil, nil, fmt.Errorf("ledger metrics is required")
	}
	noop := func() error { return nil }

	var (
		client ledger.Client
		closer = noop
	)
	switch cfg.Kind {
	case Memory:
		logger.Warn("using in-memory ledger; entries are lost on restart")
		client = memory.New()
	case SQLite:
		l, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite ledger: %w", err)
		}
		client, closer = l, l.Close
	case Kafka:
		l, err := kafka.New(kafka.Config{
			Brokers:           cfg.KafkaBrokers,
			TopicPrefix:       cfg.KafkaTopicPrefix,
			ReplicationFactor: cfg.KafkaReplicationFactor,
			Timeout:           cfg.KafkaTimeout,
			Credentials:       cfg.Credentials,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("init kafka ledger: %w", err)
		}
		client = l
	default:
		return nil, nil, fmt.Errorf("unsupported ledger backend %q", cfg.Kind)
	}

	logger.Info("ledger backend ready", zap.String("backend", string(cfg.Kind)))
	return ledger.NewObservedClient(client, metrics), closer, nil
}
