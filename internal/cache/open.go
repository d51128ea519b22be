package cache

import (
	"context"
	"log/slog"
	"time"

	"textclean/internal/config"
	"textclean/internal/logging"
)

// Open builds the Store selected by cfg.Cache. When caching is disabled it
// returns Noop; when the selected backend cannot be reached it logs a
// warning and also returns Noop, so callers never branch on availability.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) Store {
	logger = logging.NewComponentLogger(logger, "cache")
	if cfg == nil || !cfg.Cache.Enabled {
		return Noop{}
	}
	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second

	var (
		store Store
		err   error
	)
	switch cfg.Cache.Backend {
	case "memory", "":
		store = NewMemory(cfg.Cache.MaxSize, ttl)
	case "redis":
		store, err = NewRedis(ctx, RedisOptions{
			Addr:     cfg.RedisAddr(),
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
			Timeout:  time.Duration(cfg.Cache.Redis.TimeoutSeconds) * time.Second,
			TTL:      ttl,
		})
	case "sqlite":
		var path string
		path, err = config.ExpandPath(cfg.Cache.SQLitePath)
		if err == nil {
			store, err = NewSQLite(path, ttl)
		}
	default:
		return Noop{}
	}
	if err != nil {
		logging.WarnWithContext(logger, "cache backend unavailable", "cache_fallback",
			logging.String("backend", cfg.Cache.Backend),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check the [cache] section or set cache.backend = \"memory\""),
			logging.String(logging.FieldImpact, "results are recomputed on every call"),
		)
		return Noop{}
	}

	logger.Debug("cache backend ready", logging.String("backend", store.Name()))
	return store
}
