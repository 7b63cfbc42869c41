package reconcile

import (
	"context"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		ListBatchesByStatus(ctx context.Context, statuses []model.BatchStatus, afterBatchID string, limit int) ([]model.Batch, error)
		UpdateBatchStatus(ctx context.Context, batchID string, status model.BatchStatus) error
	}
	History interface {
		GetFullBatchEventLogs(ctx context.Context, topicID string) ([]model.Event, error)
	}
	EventWriter interface {
		LogBatchEvent(ctx context.Context, topicID string, eventType model.EventType, payload model.EventPayload) (uint64, error)
	}
	Metrics interface {
		ObservePass(err error, batches int, started time.Time)
		ObserveClassification(classification string)
		ObserveRepair(classification string, err error)
	}
)
