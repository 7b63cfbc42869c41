package ledger

import (
	"context"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
)

// ObservedClient records metrics for every call to the wrapped Client.
type ObservedClient struct {
	client  Client
	metrics Metrics
}

func NewObservedClient(client Client, metrics Metrics) *ObservedClient {
	return &ObservedClient{
		client:  client,
		metrics: metrics,
	}
}

func (c *ObservedClient) CreateTopic(ctx context.Context, req CreateTopicRequest) (res CreateTopicResult, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("create_topic", err, started)
	}()
	return c.client.CreateTopic(ctx, req)
}

func (c *ObservedClient) RegisterEntry(ctx context.Context, topicID string, entry Entry) (seq uint64, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("register_entry", err, started)
	}()
	return c.client.RegisterEntry(ctx, topicID, entry)
}

func (c *ObservedClient) GetRegistry(ctx context.Context, topicID string, opts ReadOptions) (entries []model.LedgerEntry, err error) {
	started := time.Now()
	defer func() {
		c.metrics.Observe("get_registry", err, started)
	}()
	return c.client.GetRegistry(ctx, topicID, opts)
}
