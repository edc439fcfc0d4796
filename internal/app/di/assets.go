package di

import (
	"github.com/redis/go-redis/v9"

	"github.com/dahldoescards/bowman-tracker/internal/feature/assets/adapters"
	"github.com/dahldoescards/bowman-tracker/internal/feature/assets/usecase"
	"github.com/dahldoescards/bowman-tracker/internal/platform/config"
)

// NewAssetProxy creates the versioned asset cache proxy. A nil Redis
// client is allowed and disables persistence.
func NewAssetProxy(rdb *redis.Client, cfg config.AssetsConfig) *usecase.Proxy {
	store := adapters.NewRedisAssetStore(rdb, cfg.CacheVersion, cfg.TTL, "assets")
	origin := adapters.NewHTTPOrigin(cfg.Origin, nil)
	return usecase.NewProxy(store, origin, 0)
}
