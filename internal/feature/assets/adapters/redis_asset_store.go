// Package adapters provides the persistence and network adapters for the
// asset cache proxy.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dahldoescards/bowman-tracker/internal/feature/assets/usecase"
)

// storedAsset is the JSON shape persisted per cached asset.
type storedAsset struct {
	Body        []byte `json:"body"`
	ContentType string `json:"content_type"`
	StoredAt    int64  `json:"stored_at"`
}

// RedisAssetStore persists cached assets in Redis, one JSON entry per key.
// Keys carry the cache version so that a deploy with a new version can
// purge everything the old one left behind. A nil Redis client degrades
// gracefully: every Get misses and every Put is a no-op.
type RedisAssetStore struct {
	rdb       *redis.Client
	version   string
	namespace string
	ttl       time.Duration
	now       func() time.Time
}

var _ usecase.AssetStore = (*RedisAssetStore)(nil)

// NewRedisAssetStore creates a store for the given cache version.
// If ttl is 0, entries persist for 24 hours. If namespace is empty, it
// uses "assets".
func NewRedisAssetStore(rdb *redis.Client, version string, ttl time.Duration, namespace string) *RedisAssetStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	if namespace == "" {
		namespace = "assets"
	}
	return &RedisAssetStore{
		rdb:       rdb,
		version:   version,
		namespace: namespace,
		ttl:       ttl,
		now:       time.Now,
	}
}

// Get returns the cached asset at path, if present.
func (s *RedisAssetStore) Get(ctx context.Context, path string) (usecase.AssetEntry, bool) {
	if s.rdb == nil {
		return usecase.AssetEntry{}, false
	}

	b, err := s.rdb.Get(ctx, s.key(path)).Bytes()
	if err != nil || len(b) == 0 {
		return usecase.AssetEntry{}, false
	}

	var stored storedAsset
	if err := json.Unmarshal(b, &stored); err != nil {
		// Delete corrupted cache entry
		_ = s.rdb.Del(ctx, s.key(path)).Err()
		return usecase.AssetEntry{}, false
	}
	return usecase.AssetEntry{Body: stored.Body, ContentType: stored.ContentType}, true
}

// Put stores the asset at path under the current cache version (best effort).
func (s *RedisAssetStore) Put(ctx context.Context, path string, entry usecase.AssetEntry) {
	if s.rdb == nil {
		return
	}

	stored := storedAsset{
		Body:        entry.Body,
		ContentType: entry.ContentType,
		StoredAt:    s.now().Unix(),
	}
	if b, err := json.Marshal(stored); err == nil {
		_ = s.rdb.Set(ctx, s.key(path), b, s.ttl).Err()
	}
}

// ActivateVersion deletes every entry whose key belongs to a cache version
// other than the current one.
func (s *RedisAssetStore) ActivateVersion(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}

	current := fmt.Sprintf("%s:%s:", s.namespace, safe(s.version))
	var cursor uint64
	for {
		keys, cur, err := s.rdb.Scan(ctx, cursor, s.namespace+":*", 200).Result()
		if err != nil {
			return err
		}

		stale := keys[:0]
		for _, k := range keys {
			if !strings.HasPrefix(k, current) {
				stale = append(stale, k)
			}
		}
		if len(stale) > 0 {
			if err := s.rdb.Del(ctx, stale...).Err(); err != nil {
				return err
			}
		}

		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// key generates the Redis key for path under the current cache version.
func (s *RedisAssetStore) key(path string) string {
	return fmt.Sprintf("%s:%s:%s", s.namespace, safe(s.version), path)
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
