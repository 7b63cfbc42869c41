package verification

import (
	"context"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/autoflag"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// ScanGuard stores a scan and returns the earliest earlier scan of the
	// same unit, or nil. Both steps happen under one per-unit lock.
	ScanGuard interface {
		RecordScan(ctx context.Context, scan model.ScanRecord) (*model.ScanRecord, error)
	}
	AutoFlagger interface {
		AutoFlagBatch(ctx context.Context, req autoflag.FlagRequest) (uint64, error)
	}
	EventReader interface {
		GetFullBatchEventLogs(ctx context.Context, topicID string) ([]model.Event, error)
	}
	TopicResolver interface {
		TopicForBatch(ctx context.Context, batchID string) (string, error)
	}
	TopicCache interface {
		GetTopic(ctx context.Context, batchID string) (string, error)
		SetTopic(ctx context.Context, batchID, topicID string) error
	}
	AuditSink interface {
		Record(rec model.VerdictRecord)
	}
	Metrics interface {
		ObserveVerdict(kind string, v model.Verdict, started time.Time)
		ObserveError(kind string, started time.Time)
	}
)
