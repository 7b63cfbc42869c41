// Package config holds flag groups shared by the binaries.
package config

import (
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger/backend"
)

// Ledger selects and configures the ledger backend.
type Ledger struct {
	Backend                string        `long:"ledger-backend" env:"MEDICHECK_LEDGER_BACKEND" choice:"memory" choice:"sqlite" choice:"kafka" default:"sqlite" description:"ledger backend"`
	SQLitePath             string        `long:"ledger-sqlite-path" env:"MEDICHECK_LEDGER_SQLITE_PATH" default:"medicheck-ledger.db" description:"path of the SQLite ledger file"`
	KafkaBrokers           []string      `long:"ledger-kafka-broker" env:"MEDICHECK_LEDGER_KAFKA_BROKERS" env-delim:"," description:"Kafka broker address (repeatable)"`
	KafkaTopicPrefix       string        `long:"ledger-kafka-topic-prefix" env:"MEDICHECK_LEDGER_KAFKA_TOPIC_PREFIX" default:"medicheck" description:"prefix of registry topic names"`
	KafkaReplicationFactor int           `long:"ledger-kafka-replication" env:"MEDICHECK_LEDGER_KAFKA_REPLICATION" default:"1" description:"replication factor of new registry topics"`
	KafkaTimeout           time.Duration `long:"ledger-kafka-timeout" env:"MEDICHECK_LEDGER_KAFKA_TIMEOUT" default:"10s" description:"Kafka request timeout"`
	Username               string        `long:"ledger-username" env:"MEDICHECK_LEDGER_USERNAME" description:"SASL/PLAIN username for the ledger"`
	Password               string        `long:"ledger-password" env:"MEDICHECK_LEDGER_PASSWORD" description:"SASL/PLAIN password for the ledger"`
	MaxPages               int           `long:"ledger-max-pages" env:"MEDICHECK_LEDGER_MAX_PAGES" default:"50" description:"page cap for full-history reads"`
}

// BackendConfig resolves the flags, credentials included, into the backend
// configuration. It is called once at startup.
func (l Ledger) BackendConfig() backend.Config {
	return backend.Config{
		Kind:                   backend.Kind(l.Backend),
		SQLitePath:             l.SQLitePath,
		KafkaBrokers:           l.KafkaBrokers,
		KafkaTopicPrefix:       l.KafkaTopicPrefix,
		KafkaReplicationFactor: l.KafkaReplicationFactor,
		KafkaTimeout:           l.KafkaTimeout,
		Credentials:            ledger.Credentials{Username: l.Username, Password: l.Password},
	}
}
