// Package di provides dependency injection factories for creating application components.
package di

import (
	"log/slog"
	"os"

	"powerwidget/internal/feature/prices/adapters/spotmarket"
	"powerwidget/internal/feature/prices/usecase"
	"powerwidget/internal/platform/cachestore"
	infrahttp "powerwidget/internal/platform/http"
	infraredis "powerwidget/internal/platform/redis"
)

// NewPriceSource creates a fully configured spot market client with HTTP client.
func NewPriceSource() *spotmarket.Client {
	cfg := spotmarket.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	return spotmarket.NewClient(cfg, httpClient)
}

// NewCacheStore picks a cache backend from the environment: Redis when
// REDIS_HOST is set and reachable, otherwise a local SQLite file, otherwise
// an in-memory store.
func NewCacheStore() usecase.CacheStore {
	if os.Getenv("REDIS_HOST") != "" {
		if rdb, err := infraredis.NewRedisClient(); err == nil {
			return cachestore.NewRedisStore(rdb, "powerwidget")
		}
		slog.Warn("Redis unavailable, falling back to SQLite cache")
	}

	path := os.Getenv("CACHE_DB_PATH")
	if path == "" {
		path = "powerwidget.db"
	}
	store, err := cachestore.NewSQLiteStore(path)
	if err != nil {
		slog.Warn("SQLite cache unavailable, falling back to in-memory store", "path", path, "error", err)
		return cachestore.NewMemoryStore()
	}
	return store
}
