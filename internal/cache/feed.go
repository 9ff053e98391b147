package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"clubverse/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	feedKey = "feed:posts"

	// FeedTTL bounds staleness if an invalidation is ever missed.
	FeedTTL = 5 * time.Minute
)

// FeedCache caches the full newest-first post feed as one JSON value.
// Mutations to the posts collection invalidate it. All methods degrade to
// no-ops on Redis errors; the collection remains the source of truth.
type FeedCache struct {
	rdb    *redis.Client
	logger *slog.Logger
}

// NewFeedCache wraps rdb. Returns nil when rdb is nil so callers can keep a
// single nil check.
func NewFeedCache(rdb *redis.Client, logger *slog.Logger) *FeedCache {
	if rdb == nil {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FeedCache{rdb: rdb, logger: logger}
}

// Get returns the cached feed and whether it was present.
func (f *FeedCache) Get(ctx context.Context) ([]models.Post, bool) {
	data, err := f.rdb.Get(ctx, feedKey).Bytes()
	if err != nil {
		return nil, false
	}

	var posts []models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		f.logger.Warn("feed cache entry unreadable, dropping",
			slog.String("error", err.Error()),
		)
		f.rdb.Del(ctx, feedKey)
		return nil, false
	}
	return posts, true
}

// Set stores the feed with the standard TTL.
func (f *FeedCache) Set(ctx context.Context, posts []models.Post) {
	data, err := json.Marshal(posts)
	if err != nil {
		return
	}
	if err := f.rdb.Set(ctx, feedKey, data, FeedTTL).Err(); err != nil {
		f.logger.Warn("feed cache set failed", slog.String("error", err.Error()))
	}
}

// Invalidate drops the cached feed.
func (f *FeedCache) Invalidate(ctx context.Context) {
	if err := f.rdb.Del(ctx, feedKey).Err(); err != nil {
		f.logger.Warn("feed cache invalidate failed", slog.String("error", err.Error()))
	}
}
