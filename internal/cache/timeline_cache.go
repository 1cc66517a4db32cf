package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/tweetapp/tweet-service/internal/domain"
)

const timelineKey = "tweets:all"

// TimelineCache keeps the all-tweets timeline in Redis for a short TTL.
// It is strictly an accelerator: every method degrades to a miss when the
// client is nil or Redis is unreachable, and writers invalidate the key so
// readers never see a posted tweet disappear for longer than the TTL.
type TimelineCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewTimelineCache builds the cache. A nil client disables it.
func NewTimelineCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *TimelineCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimelineCache{client: client, ttl: ttl, logger: logger}
}

// Get returns the cached timeline, or (nil, false) on a miss.
func (c *TimelineCache) Get(ctx context.Context) ([]domain.Tweet, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, timelineKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("timeline cache read failed", zap.Error(err))
		}
		return nil, false
	}
	var tweets []domain.Tweet
	if err := json.Unmarshal(raw, &tweets); err != nil {
		c.logger.Warn("timeline cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return tweets, true
}

// Set stores the timeline with the configured TTL.
func (c *TimelineCache) Set(ctx context.Context, tweets []domain.Tweet) {
	if c == nil || c.client == nil || c.ttl <= 0 {
		return
	}
	raw, err := json.Marshal(tweets)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, timelineKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("timeline cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached timeline. Called after every posted tweet.
func (c *TimelineCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, timelineKey).Err(); err != nil {
		c.logger.Warn("timeline cache invalidation failed", zap.Error(err))
	}
}
