// Package redis creates the shared Redis client.
package redis

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis at host:port. An empty host returns a
// nil client, which the asset store treats as cache-disabled.
func NewRedisClient(host, port, password string) (*redis.Client, error) {
	if host == "" {
		slog.Info("Redis not configured, asset cache disabled")
		return nil, nil
	}

	addr := host + ":" + port
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		slog.Error("Redis connection failed", "address", addr, "error", err)
		return nil, err
	}

	slog.Info("Redis connection successful", "address", addr)
	return rdb, nil
}
