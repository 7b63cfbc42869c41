package autoflag

import (
	"context"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	StatusStore interface {
		UpdateBatchStatus(ctx context.Context, batchID string, status model.BatchStatus) error
	}
	EventWriter interface {
		LogBatchEvent(ctx context.Context, topicID string, eventType model.EventType, payload model.EventPayload) (uint64, error)
	}
	Metrics interface {
		ObserveOutcome(outcome string, started time.Time)
	}
)
