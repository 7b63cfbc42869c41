package verification

import (
	"context"
	"errors"

	"github.com/Derojuu/MediCheck-sub000/internal/provenance/model"
	"go.uber.org/zap"
)

// CachedTopics resolves batch topics through a cache in front of the derived
// store. Cache failures are logged and never fail a lookup.
type CachedTopics struct {
	cache  TopicCache
	store  TopicResolver
	logger *zap.Logger
}

// NewCachedTopics returns a resolver. A nil cache resolves from store only.
func NewCachedTopics(cache TopicCache, store TopicResolver, logger *zap.Logger) *CachedTopics {
	return &CachedTopics{cache: cache, store: store, logger: logger.Named("topics")}
}

func (r *CachedTopics) TopicForBatch(ctx context.Context, batchID string) (string, error) {
	if r.cache != nil {
		topicID, err := r.cache.GetTopic(ctx, batchID)
		switch {
		case err == nil && topicID != "":
			return topicID, nil
		case err != nil && !errors.Is(err, model.ErrNotFound):
			r.logger.Warn("topic cache read failed", zap.String("batch_id", batchID), zap.Error(err))
		}
	}

	topicID, err := r.store.TopicForBatch(ctx, batchID)
	if err != nil {
		return "", err
	}

	if r.cache != nil && topicID != "" {
		if err := r.cache.SetTopic(ctx, batchID, topicID); err != nil {
			r.logger.Warn("topic cache write failed", zap.String("batch_id", batchID), zap.Error(err))
		}
	}
	return topicID, nil
}
