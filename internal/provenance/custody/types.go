package custody

import (
	"context"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/autoflag"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/registry"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Store interface {
		InsertBatch(ctx context.Context, batch model.Batch) error
		SetBatchTopic(ctx context.Context, batchID, topicID string) error
		GetBatch(ctx context.Context, batchID string) (model.Batch, error)
		UpdateBatchStatus(ctx context.Context, batchID string, status model.BatchStatus) error
		UpdateBatchCustody(ctx context.Context, batchID string, status model.BatchStatus, location string) error
		// ReserveUnits adds count to the batch unit tally unless that would
		// exceed limit, in which case it fails with model.ErrUnitLimitReached.
		ReserveUnits(ctx context.Context, batchID string, count, limit int) error
		ReleaseUnits(ctx context.Context, batchID string, count int) error
	}
	Registry interface {
		CreateBatchRegistry(ctx context.Context, req registry.BatchRegistryRequest) (model.Registry, error)
		CreateOrgManagedRegistry(ctx context.Context, orgID, orgName string) (string, error)
		IndexBatch(ctx context.Context, orgTopicID, batchID, batchTopicID string) (uint64, error)
	}
	EventWriter interface {
		LogBatchEvent(ctx context.Context, topicID string, eventType model.EventType, payload model.EventPayload) (uint64, error)
		RegisterUnitOnBatch(ctx context.Context, topicID string, unit model.Unit) (uint64, error)
		GetFullBatchEventLogs(ctx context.Context, topicID string) ([]model.Event, error)
	}
	Flagger interface {
		AutoFlagBatch(ctx context.Context, req autoflag.FlagRequest) (uint64, error)
	}
	TopicCache interface {
		SetTopic(ctx context.Context, batchID, topicID string) error
	}
)
