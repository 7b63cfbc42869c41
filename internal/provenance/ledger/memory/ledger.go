// Package memory is an in-process ledger backend for development and tests.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/ledger"
	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"github.com/google/uuid"
)

type topic struct {
	registry  model.Registry
	expiresAt time.Time
	entries   []model.LedgerEntry
}

// Ledger keeps topics in memory. It is safe for concurrent use.
type Ledger struct {
	mu     sync.RWMutex
	topics map[string]*topic
	now    func() time.Time
	newID  func() string
}

// New returns an empty Ledger.
func New() *Ledger {
	return &Ledger{
		topics: make(map[string]*topic),
		now:    func() time.Time { return time.Now().UTC() },
		newID:  uuid.NewString,
	}
}

func (l *Ledger) CreateTopic(ctx context.Context, req ledger.CreateTopicRequest) (ledger.CreateTopicResult, error) {
	if err := ctx.Err(); err != nil {
		return ledger.CreateTopicResult{}, err
	}
	if err := req.Validate(); err != nil {
		return ledger.CreateTopicResult{}, err
	}

	now := l.now()
	id := l.newID()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.topics[id] = &topic{
		registry: model.Registry{
			TopicID:   id,
			Kind:      req.Kind,
			TTL:       req.TTL,
			AdminKey:  req.AdminKey,
			CreatedAt: now,
		},
		expiresAt: now.Add(req.TTL),
	}
	return ledger.CreateTopicResult{TopicID: id, CreatedAt: now}, nil
}

func (l *Ledger) RegisterEntry(ctx context.Context, topicID string, entry ledger.Entry) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if entry.Metadata == "" {
		return 0, fmt.Errorf("%w: empty metadata", ledger.ErrInvalidRequest)
	}

	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	t, ok := l.topics[topicID]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ledger.ErrTopicNotFound, topicID)
	}
	if !now.Before(t.expiresAt) {
		return 0, fmt.Errorf("%w: %s", ledger.ErrTopicExpired, topicID)
	}

	seq := uint64(len(t.entries)) + 1
	t.entries = append(t.entries, model.LedgerEntry{
		TopicID:            topicID,
		SequenceNumber:     seq,
		ConsensusTimestamp: now,
		TargetTopicID:      entry.TargetTopicID,
		Message:            []byte(entry.Metadata),
	})
	return seq, nil
}

func (l *Ledger) GetRegistry(ctx context.Context, topicID string, opts ledger.ReadOptions) ([]model.LedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts = opts.Normalize()

	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.topics[topicID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ledger.ErrTopicNotFound, topicID)
	}

	entries := t.entries
	if opts.Order == ledger.OrderDesc {
		out := make([]model.LedgerEntry, 0, min(opts.Limit, len(entries)))
		for i := len(entries) - 1; i >= 0 && len(out) < opts.Limit; i-- {
			out = append(out, entries[i])
		}
		return out, nil
	}

	// Sequence numbers are dense, so the entry after AfterSequence sits at that index.
	start := min(opts.AfterSequence, uint64(len(entries)))
	end := min(start+uint64(opts.Limit), uint64(len(entries)))
	out := make([]model.LedgerEntry, end-start)
	copy(out, entries[start:end])
	return out, nil
}

// Registry returns the topic description, mainly for tests and diagnostics.
func (l *Ledger) Registry(topicID string) (model.Registry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	t, ok := l.topics[topicID]
	if !ok {
		return model.Registry{}, false
	}
	return t.registry, true
}
