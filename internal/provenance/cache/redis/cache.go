// Package redis caches batch-to-topic lookups in Redis.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix  = "medicheck:batch-topic:"
	DefaultTTL = 24 * time.Hour
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

// TopicCache maps batch ids to registry topic ids. Topics never change once
// assigned, so entries only expire to bound memory.
type TopicCache struct {
	client  *goredis.Client
	ttl     time.Duration
	metrics Metrics
}

// Open connects to the Redis server at url (redis://host:port/db).
func Open(ctx context.Context, url string, ttl time.Duration, metrics Metrics) (*TopicCache, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return New(client, ttl, metrics), nil
}

func New(client *goredis.Client, ttl time.Duration, metrics Metrics) *TopicCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &TopicCache{client: client, ttl: ttl, metrics: metrics}
}

// GetTopic returns the cached topic or model.ErrNotFound on a miss.
func (c *TopicCache) GetTopic(ctx context.Context, batchID string) (string, error) {
	start := time.Now()
	var err error
	defer func() {
		c.observe("get_topic", err, start)
	}()

	topicID, err := c.client.Get(ctx, key(batchID)).Result()
	if errors.Is(err, goredis.Nil) {
		err = nil
		return "", fmt.Errorf("%w: no cached topic for %s", model.ErrNotFound, batchID)
	}
	if err != nil {
		return "", fmt.Errorf("get cached topic of %s: %w", batchID, err)
	}
	return topicID, nil
}

func (c *TopicCache) SetTopic(ctx context.Context, batchID, topicID string) error {
	start := time.Now()
	var err error
	defer func() {
		c.observe("set_topic", err, start)
	}()

	if err = c.client.Set(ctx, key(batchID), topicID, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache topic of %s: %w", batchID, err)
	}
	return nil
}

func (c *TopicCache) Health(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *TopicCache) Close() error {
	return c.client.Close()
}

func (c *TopicCache) observe(operation string, err error, started time.Time) {
	if c.metrics != nil {
		c.metrics.Observe(operation, err, started)
	}
}

func key(batchID string) string {
	return keyPrefix + batchID
}
