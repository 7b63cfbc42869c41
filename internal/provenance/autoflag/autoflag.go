// Package autoflag marks a batch FLAGGED in the derived store and records the
// matching BATCH_FLAG on the ledger.
package autoflag

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"go.uber.org/zap"
)

var (
	// ErrStatusUpdateFailed means nothing was written: the ledger is not
	// touched when the derived store rejects the status change.
	ErrStatusUpdateFailed = errors.New("auto-flag: status update failed")
	// ErrPartialFlag means the derived store says FLAGGED but the ledger has no
	// BATCH_FLAG. Retrying is safe for the store and appends a new ledger flag.
	ErrPartialFlag = errors.New("auto-flag: ledger append failed after status update")
)

const (
	outcomeFlagged            = "flagged"
	outcomeStatusUpdateFailed = "status_update_failed"
	outcomePartial            = "partial"
)

// FlagRequest identifies the batch to flag and why.
type FlagRequest struct {
	BatchID        string
	TopicID        string
	OrganizationID string
	FlagReason     string
}

// Pipeline runs the two-step flag write.
type Pipeline struct {
	store   StatusStore
	writer  EventWriter
	metrics Metrics
	logger  *zap.Logger
}

func New(store StatusStore, writer EventWriter, metrics Metrics, logger *zap.Logger) (*Pipeline, error) {
	if store == nil {
		return nil, fmt.Errorf("status store is required")
	}
	if writer == nil {
		return nil, fmt.Errorf("event writer is required")
	}
	if metrics == nil {
		return nil, fmt.Errorf("auto-flag metrics is required")
	}
	return &Pipeline{
		store:   store,
		writer:  writer,
		metrics: metrics,
		logger:  logger.Named("autoflag"),
	}, nil
}

// AutoFlagBatch sets the derived status to FLAGGED, then appends BATCH_FLAG.
// It returns the sequence number of the appended flag.
func (p *Pipeline) AutoFlagBatch(ctx context.Context, req FlagRequest) (uint64, error) {
	started := time.Now()
	logger := p.logger.With(
		zap.String("batch_id", req.BatchID),
		zap.String("topic_id", req.TopicID),
		zap.String("organization_id", req.OrganizationID),
	)

	if err := p.store.UpdateBatchStatus(ctx, req.BatchID, model.BatchFlagged); err != nil {
		p.metrics.ObserveOutcome(outcomeStatusUpdateFailed, started)
		logger.Error("flag status update failed", zap.Error(err))
		return 0, fmt.Errorf("%w: batch %s: %w", ErrStatusUpdateFailed, req.BatchID, err)
	}

	seq, err := p.writer.LogBatchEvent(ctx, req.TopicID, model.EventBatchFlag, model.EventPayload{
		BatchID:        req.BatchID,
		OrganizationID: req.OrganizationID,
		FlagReason:     req.FlagReason,
	})
	if err != nil {
		p.metrics.ObserveOutcome(outcomePartial, started)
		logger.Error("batch FLAGGED in store but not on ledger", zap.Error(err))
		return 0, fmt.Errorf("%w: batch %s: %w", ErrPartialFlag, req.BatchID, err)
	}

	p.metrics.ObserveOutcome(outcomeFlagged, started)
	logger.Info("batch flagged", zap.Uint64("seq", seq), zap.String("reason", req.FlagReason))
	return seq, nil
}
