// Package eventlog writes canonical event envelopes to batch topics and
// reads them back in sequence order.
package eventlog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"go.uber.org/zap"
)

var (
	ErrInvalidEvent     = errors.New("invalid event")
	ErrHistoryTruncated = errors.New("event history exceeds read limit")
)

// EventLog appends and reads batch events through a ledger client.
type EventLog struct {
	client   Ledger
	logger   *zap.Logger
	now      func() time.Time
	pageSize int
	maxPages int
	maxUnits int
}

// New builds an EventLog. maxPages bounds the non-unit entries of a
// full-history read; zero selects the default.
func New(client Ledger, maxPages int, logger *zap.Logger) *EventLog {
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	return &EventLog{
		client:   client,
		logger:   logger.Named("eventlog"),
		now:      time.Now,
		pageSize: ledger.DefaultPageSize,
		maxPages: maxPages,
		maxUnits: model.MaxUnitsPerBatch,
	}
}

// LogBatchEvent appends an EVENT_LOG envelope and returns its sequence number.
func (l *EventLog) LogBatchEvent(ctx context.Context, topicID string, eventType model.EventType, payload model.EventPayload) (uint64, error) {
	if strings.TrimSpace(topicID) == "" {
		return 0, fmt.Errorf("%w: topic id is required", ErrInvalidEvent)
	}
	if err := ValidatePayload(eventType, payload); err != nil {
		return 0, err
	}

	msg, err := EncodeEvent(eventType, payload, l.now())
	if err != nil {
		return 0, err
	}

	seq, err := l.client.RegisterEntry(ctx, topicID, ledger.Entry{Metadata: string(msg)})
	if err != nil {
		return 0, fmt.Errorf("append %s to %s: %w", eventType, topicID, err)
	}

	l.logger.Debug("event appended",
		zap.String("topic_id", topicID),
		zap.String("event_type", string(eventType)),
		zap.String("batch_id", payload.BatchID),
		zap.Uint64("seq", seq),
	)
	return seq, nil
}

// RegisterUnitOnBatch appends a UNIT entry scoping a serial number to a batch.
func (l *EventLog) RegisterUnitOnBatch(ctx context.Context, topicID string, unit model.Unit) (uint64, error) {
	if strings.TrimSpace(topicID) == "" {
		return 0, fmt.Errorf("%w: topic id is required", ErrInvalidEvent)
	}
	if strings.TrimSpace(unit.SerialNumber) == "" || strings.TrimSpace(unit.BatchID) == "" {
		return 0, fmt.Errorf("%w: unit needs serialNumber and batchId", ErrInvalidEvent)
	}

	msg, err := EncodeUnit(unit)
	if err != nil {
		return 0, err
	}

	seq, err := l.client.RegisterEntry(ctx, topicID, ledger.Entry{Metadata: string(msg)})
	if err != nil {
		return 0, fmt.Errorf("append unit %s to %s: %w", unit.SerialNumber, topicID, err)
	}
	return seq, nil
}

// GetBatchEventLogs returns one ascending page of at most limit events.
func (l *EventLog) GetBatchEventLogs(ctx context.Context, topicID string, limit int) ([]model.Event, error) {
	entries, err := l.client.GetRegistry(ctx, topicID, ledger.ReadOptions{Limit: limit, Order: ledger.OrderAsc})
	if err != nil {
		return nil, fmt.Errorf("read events of %s: %w", topicID, err)
	}
	return DecodeAll(entries), nil
}

// GetFullBatchEventLogs pages through the whole topic. UNIT entries and all
// other entries have separate budgets, so a batch carrying its full unit
// quota stays readable. It fails with ErrHistoryTruncated instead of
// returning a partial history.
func (l *EventLog) GetFullBatchEventLogs(ctx context.Context, topicID string) ([]model.Event, error) {
	var (
		events []model.Event
		after  uint64
		units  int
	)
	maxLogged := l.maxPages * l.pageSize
	for {
		entries, err := l.client.GetRegistry(ctx, topicID, ledger.ReadOptions{Limit: l.pageSize, AfterSequence: after})
		if err != nil {
			return nil, fmt.Errorf("read events of %s after %d: %w", topicID, after, err)
		}
		for _, ev := range DecodeAll(entries) {
			if ev.Kind == model.EntryUnit {
				units++
			}
			events = append(events, ev)
		}
		if units > l.maxUnits {
			return nil, fmt.Errorf("%w: topic %s has more than %d units", ErrHistoryTruncated, topicID, l.maxUnits)
		}
		if logged := len(events) - units; logged > maxLogged {
			return nil, fmt.Errorf("%w: topic %s has more than %d entries", ErrHistoryTruncated, topicID, maxLogged)
		}
		if len(entries) < l.pageSize {
			return events, nil
		}
		after = entries[len(entries)-1].SequenceNumber
	}
}
