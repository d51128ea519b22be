package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"textclean/internal/errs"
)

func (c *Config) normalize() error {
	if err := c.normalizeCleaner(); err != nil {
		return err
	}
	if err := c.normalizePerformance(); err != nil {
		return err
	}
	if err := c.normalizeCache(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizeCleaner() error {
	if err := envBool("REMOVE_HTML", &c.Cleaner.RemoveHTML); err != nil {
		return err
	}
	envString("DEFAULT_CASE", &c.Cleaner.DefaultCase)
	envString("DEFAULT_LANGUAGE", &c.Cleaner.DefaultLanguage)

	c.Cleaner.DefaultCase = strings.ToLower(strings.TrimSpace(c.Cleaner.DefaultCase))
	if c.Cleaner.DefaultCase == "" {
		c.Cleaner.DefaultCase = defaultCase
	}
	c.Cleaner.DefaultLanguage = strings.ToLower(strings.TrimSpace(c.Cleaner.DefaultLanguage))
	if c.Cleaner.DefaultLanguage == "" {
		c.Cleaner.DefaultLanguage = defaultLanguage
	}
	return nil
}

func (c *Config) normalizePerformance() error {
	return envInt("MAX_WORKERS", &c.Performance.MaxWorkers)
}

func (c *Config) normalizeCache() error {
	envString("REDIS_HOST", &c.Cache.Redis.Host)
	if err := envInt("REDIS_PORT", &c.Cache.Redis.Port); err != nil {
		return err
	}
	if value, ok := os.LookupEnv(envPrefix + "REDIS_PASSWORD"); ok {
		c.Cache.Redis.Password = value
	}

	c.Cache.Backend = strings.ToLower(strings.TrimSpace(c.Cache.Backend))
	if c.Cache.Backend == "" {
		c.Cache.Backend = defaultCacheBackend
	}
	c.Cache.Redis.Host = strings.TrimSpace(c.Cache.Redis.Host)
	if c.Cache.Redis.Host == "" {
		c.Cache.Redis.Host = defaultRedisHost
	}
	if strings.TrimSpace(c.Cache.SQLitePath) == "" {
		c.Cache.SQLitePath = defaultSQLitePath
	}
	var err error
	if c.Cache.SQLitePath, err = expandPath(c.Cache.SQLitePath); err != nil {
		return fmt.Errorf("cache.sqlite_path: %w", err)
	}
	return nil
}

func (c *Config) normalizeLogging() {
	envString("LOG_LEVEL", &c.Logging.Level)

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if path := strings.TrimSpace(c.Logging.File); path != "" {
		if expanded, err := expandPath(path); err == nil {
			c.Logging.File = expanded
		}
	}
}

func envString(name string, target *string) {
	if value, ok := os.LookupEnv(envPrefix + name); ok && strings.TrimSpace(value) != "" {
		*target = value
	}
}

func envBool(name string, target *bool) error {
	value, ok := os.LookupEnv(envPrefix + name)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	parsed, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		return &errs.ConfigError{Key: envPrefix + name, Value: value, Reason: "must be a boolean"}
	}
	*target = parsed
	return nil
}

func envInt(name string, target *int) error {
	value, ok := os.LookupEnv(envPrefix + name)
	if !ok || strings.TrimSpace(value) == "" {
		return nil
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return &errs.ConfigError{Key: envPrefix + name, Value: value, Reason: "must be an integer"}
	}
	*target = parsed
	return nil
}
