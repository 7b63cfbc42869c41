// Package ledger defines the append-only ledger capability the provenance
// engine is built on. Backends live in subpackages.
package ledger

import (
	"context"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Client creates topics, appends entries and reads them back in sequence order.
	Client interface {
		CreateTopic(ctx context.Context, req CreateTopicRequest) (CreateTopicResult, error)
		RegisterEntry(ctx context.Context, topicID string, entry Entry) (uint64, error)
		GetRegistry(ctx context.Context, topicID string, opts ReadOptions) ([]model.LedgerEntry, error)
	}
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)
