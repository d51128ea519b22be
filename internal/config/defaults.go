package config

const (
	defaultCase           = "lower"
	defaultLanguage       = "pt"
	defaultMaxWorkers     = 4
	defaultChunkSize      = 1000
	defaultCacheBackend   = "memory"
	defaultCacheTTL       = 3600
	defaultCacheMaxSize   = 1000
	defaultSQLitePath     = "~/.cache/textclean/cache.db"
	defaultRedisHost      = "localhost"
	defaultRedisPort      = 6379
	defaultRedisTimeout   = 2
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	envPrefix             = "TEXT_CLEANER_"
	cacheBackendMemory    = "memory"
	cacheBackendRedis     = "redis"
	cacheBackendSQLite    = "sqlite"
	cacheBackendNone      = "none"
	maxAllowedWorkerCount = 256
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Cleaner: Cleaner{
			RemoveHTML:         true,
			RemoveAccents:      true,
			RemoveSpecialChars: true,
			RemoveExtraSpaces:  true,
			DefaultCase:        defaultCase,
			DefaultLanguage:    defaultLanguage,
		},
		Performance: Performance{
			MaxWorkers: defaultMaxWorkers,
			ChunkSize:  defaultChunkSize,
		},
		Cache: Cache{
			Enabled:    true,
			Backend:    defaultCacheBackend,
			TTLSeconds: defaultCacheTTL,
			MaxSize:    defaultCacheMaxSize,
			SQLitePath: defaultSQLitePath,
			Redis: Redis{
				Host:           defaultRedisHost,
				Port:           defaultRedisPort,
				TimeoutSeconds: defaultRedisTimeout,
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}

// CacheBackends lists the accepted cache.backend values.
func CacheBackends() []string {
	return []string{cacheBackendMemory, cacheBackendRedis, cacheBackendSQLite, cacheBackendNone}
}
