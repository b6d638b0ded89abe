// Package cache wraps a scholarship.Repository with a Redis cache-aside layer.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/artem13815/scholarship/pkg/scholarship"
)

// Key holds the serialized catalog.
const Key = "scholarships:all"

// Repository serves ListAll from Redis when possible. Redis failures are
// logged and the call goes to the wrapped store.
type Repository struct {
	inner  scholarship.Repository
	client redis.Cmdable
	ttl    time.Duration
	log    *zap.Logger
}

func New(inner scholarship.Repository, client redis.Cmdable, ttl time.Duration, log *zap.Logger) *Repository {
	if log == nil {
		log = zap.NewNop()
	}
	return &Repository{inner: inner, client: client, ttl: ttl, log: log}
}

func (r *Repository) ListAll(ctx context.Context) ([]scholarship.Scholarship, error) {
	raw, err := r.client.Get(ctx, Key).Bytes()
	switch {
	case err == nil:
		var items []scholarship.Scholarship
		if jerr := json.Unmarshal(raw, &items); jerr == nil {
			return items, nil
		}
		r.log.Warn("discarding corrupt catalog cache entry")
	case !errors.Is(err, redis.Nil):
		r.log.Warn("catalog cache read failed", zap.Error(err))
	}
	return r.Refresh(ctx)
}

// ReplaceAll writes through to the store and drops the cached copy.
func (r *Repository) ReplaceAll(ctx context.Context, items []scholarship.Scholarship) error {
	if err := r.inner.ReplaceAll(ctx, items); err != nil {
		return err
	}
	if err := r.client.Del(ctx, Key).Err(); err != nil {
		r.log.Warn("catalog cache invalidation failed", zap.Error(err))
	}
	return nil
}

// Refresh reloads the catalog from the store and stores it in Redis.
func (r *Repository) Refresh(ctx context.Context) ([]scholarship.Scholarship, error) {
	items, err := r.inner.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return items, nil
	}
	if err := r.client.Set(ctx, Key, raw, r.ttl).Err(); err != nil {
		r.log.Warn("catalog cache write failed", zap.Error(err))
	}
	return items, nil
}
