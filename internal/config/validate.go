package config

import (
	"slices"

	"textclean/internal/errs"
	"textclean/internal/language"
	"textclean/internal/textutil"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateCleaner(); err != nil {
		return err
	}
	if err := c.validatePerformance(); err != nil {
		return err
	}
	if err := c.validateCache(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateCleaner() error {
	if _, err := textutil.ParseCaseMode(c.Cleaner.DefaultCase); err != nil {
		return &errs.ConfigError{Key: "cleaner.default_case", Value: c.Cleaner.DefaultCase, Reason: "must be one of " + joinQuoted(textutil.CaseModes())}
	}
	if !language.IsSupported(c.Cleaner.DefaultLanguage) {
		return &errs.ConfigError{Key: "cleaner.default_language", Value: c.Cleaner.DefaultLanguage, Reason: "must be one of " + joinQuoted(language.Supported())}
	}
	return nil
}

func (c *Config) validatePerformance() error {
	if c.Performance.MaxWorkers < 1 || c.Performance.MaxWorkers > maxAllowedWorkerCount {
		return &errs.ConfigError{Key: "performance.max_workers", Value: c.Performance.MaxWorkers, Reason: "must be between 1 and 256"}
	}
	if c.Performance.ChunkSize < 1 {
		return &errs.ConfigError{Key: "performance.chunk_size", Value: c.Performance.ChunkSize, Reason: "must be positive"}
	}
	return nil
}

func (c *Config) validateCache() error {
	if !slices.Contains(CacheBackends(), c.Cache.Backend) {
		return &errs.ConfigError{Key: "cache.backend", Value: c.Cache.Backend, Reason: "must be one of " + joinQuoted(CacheBackends())}
	}
	if c.Cache.TTLSeconds < 0 {
		return &errs.ConfigError{Key: "cache.ttl_seconds", Value: c.Cache.TTLSeconds, Reason: "must be zero or positive"}
	}
	if c.Cache.MaxSize < 1 {
		return &errs.ConfigError{Key: "cache.max_size", Value: c.Cache.MaxSize, Reason: "must be positive"}
	}
	if c.Cache.Backend == cacheBackendRedis {
		if c.Cache.Redis.Port < 1 || c.Cache.Redis.Port > 65535 {
			return &errs.ConfigError{Key: "cache.redis.port", Value: c.Cache.Redis.Port, Reason: "must be between 1 and 65535"}
		}
		if c.Cache.Redis.DB < 0 {
			return &errs.ConfigError{Key: "cache.redis.db", Value: c.Cache.Redis.DB, Reason: "must be zero or positive"}
		}
		if c.Cache.Redis.TimeoutSeconds < 1 {
			return &errs.ConfigError{Key: "cache.redis.timeout_seconds", Value: c.Cache.Redis.TimeoutSeconds, Reason: "must be positive"}
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return &errs.ConfigError{Key: "logging.format", Value: c.Logging.Format, Reason: `must be "console" or "json"`}
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &errs.ConfigError{Key: "logging.level", Value: c.Logging.Level, Reason: `must be one of "debug", "info", "warn", "error"`}
	}
	return nil
}

func joinQuoted(values []string) string {
	out := ""
	for i, v := range values {
		if i > 0 {
			out += ", "
		}
		out += `"` + v + `"`
	}
	return out
}
