package content

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"buildpro-site/internal/metrics"
	"buildpro-site/internal/models"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache is a redis read-through cache for collection reads. Redis failures
// never fail a read; the wrapped reader is used instead.
type Cache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCache(rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *Cache {
	return &Cache{rdb: rdb, ttl: ttl, logger: logger}
}

func listKey(c Collection) string {
	return fmt.Sprintf("content:%s:all", c)
}

func itemKey(c Collection, id string) string {
	return fmt.Sprintf("content:%s:id:%s", c, id)
}

// Invalidate drops every cached entry of one collection.
func (c *Cache) Invalidate(ctx context.Context, collection Collection) error {
	pattern := fmt.Sprintf("content:%s:*", collection)
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("scan %s: %w", pattern, err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("delete %d keys for %s: %w", len(keys), collection, err)
	}
	c.logger.Info("content cache invalidated",
		zap.String("collection", string(collection)),
		zap.Int("keys", len(keys)),
	)
	return nil
}

// lookup decodes key into out. It reports false on a miss or a redis error.
func (c *Cache) lookup(ctx context.Context, collection Collection, key string, out any) bool {
	data, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.IncrementCacheLookup(string(collection), "miss")
		return false
	}
	if err == nil {
		err = json.Unmarshal(data, out)
	}
	if err != nil {
		metrics.IncrementCacheLookup(string(collection), "error")
		c.logger.Warn("content cache read failed, falling through",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	metrics.IncrementCacheLookup(string(collection), "hit")
	return true
}

func (c *Cache) store(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("content cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.Warn("content cache write failed", zap.String("key", key), zap.Error(err))
	}
}

type cachedReader[T any] struct {
	cache      *Cache
	collection Collection
	next       Reader[T]
}

// Wrap puts next behind the cache.
func Wrap[T any](cache *Cache, c Collection, next Reader[T]) Reader[T] {
	return &cachedReader[T]{cache: cache, collection: c, next: next}
}

// WrapCatalog puts every reader of catalog behind the cache.
func WrapCatalog(cache *Cache, catalog *Catalog) *Catalog {
	return &Catalog{
		Projects:     Wrap[models.Project](cache, Projects, catalog.Projects),
		Services:     Wrap[models.Service](cache, Services, catalog.Services),
		Testimonials: Wrap[models.Testimonial](cache, Testimonials, catalog.Testimonials),
	}
}

func (r *cachedReader[T]) ListAll(ctx context.Context) ([]T, error) {
	key := listKey(r.collection)
	var items []T
	if r.cache.lookup(ctx, r.collection, key, &items) {
		return items, nil
	}
	items, err := r.next.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	r.cache.store(ctx, key, items)
	return items, nil
}

// GetOne caches found records only; misses always reach the wrapped reader.
func (r *cachedReader[T]) GetOne(ctx context.Context, id string) (*T, error) {
	key := itemKey(r.collection, id)
	var item T
	if r.cache.lookup(ctx, r.collection, key, &item) {
		return &item, nil
	}
	found, err := r.next.GetOne(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.store(ctx, key, found)
	return found, nil
}
