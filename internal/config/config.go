package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hjson/hjson-go"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Cleaner holds the default cleaning toggles used by the configured pipeline.
type Cleaner struct {
	RemoveHTML           bool   `toml:"remove_html" json:"remove_html"`
	RemoveAccents        bool   `toml:"remove_accents" json:"remove_accents"`
	RemoveSpecialChars   bool   `toml:"remove_special_chars" json:"remove_special_chars"`
	RemoveExtraSpaces    bool   `toml:"remove_extra_spaces" json:"remove_extra_spaces"`
	RemoveEmojis         bool   `toml:"remove_emojis" json:"remove_emojis"`
	RemoveURLs           bool   `toml:"remove_urls" json:"remove_urls"`
	RemoveEmails         bool   `toml:"remove_emails" json:"remove_emails"`
	NormalizeDates       bool   `toml:"normalize_dates" json:"normalize_dates"`
	NormalizeNumbers     bool   `toml:"normalize_numbers" json:"normalize_numbers"`
	NormalizeMeasures    bool   `toml:"normalize_measurements" json:"normalize_measurements"`
	NormalizeProperNames bool   `toml:"normalize_proper_names" json:"normalize_proper_names"`
	DefaultCase          string `toml:"default_case" json:"default_case"`
	DefaultLanguage      string `toml:"default_language" json:"default_language"`
}

// Performance controls batch fan-out and chunking.
type Performance struct {
	MaxWorkers int  `toml:"max_workers" json:"max_workers"`
	ChunkSize  int  `toml:"chunk_size" json:"chunk_size"`
	EnableGPU  bool `toml:"enable_gpu" json:"enable_gpu"`
}

// Redis contains connection settings for the external cache backend.
type Redis struct {
	Host           string `toml:"host" json:"host"`
	Port           int    `toml:"port" json:"port"`
	DB             int    `toml:"db" json:"db"`
	Password       string `toml:"password" json:"password"`
	TimeoutSeconds int    `toml:"timeout_seconds" json:"timeout_seconds"`
}

// Cache selects the memoization backend and its limits.
type Cache struct {
	Enabled    bool   `toml:"enabled" json:"enabled"`
	Backend    string `toml:"backend" json:"backend"`
	TTLSeconds int    `toml:"ttl_seconds" json:"ttl_seconds"`
	MaxSize    int    `toml:"max_size" json:"max_size"`
	SQLitePath string `toml:"sqlite_path" json:"sqlite_path"`
	Redis      Redis  `toml:"redis" json:"redis"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format" json:"format"`
	Level  string `toml:"level" json:"level"`
	File   string `toml:"file" json:"file"`
}

// Config encapsulates all configuration values for textclean.
//
// Configuration sections:
//   - Cleaner: default cleaning steps, case mode, and language
//   - Performance: worker count, chunk size, GPU probing
//   - Cache: memoization backend (memory, redis, sqlite, none)
//   - Logging: log format, level, and optional file
type Config struct {
	Cleaner     Cleaner     `toml:"cleaner" json:"cleaner"`
	Performance Performance `toml:"performance" json:"performance"`
	Cache       Cache       `toml:"cache" json:"cache"`
	Logging     Logging     `toml:"logging" json:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/textclean/config.toml")
}

// Load locates, parses, and validates a configuration file. Environment
// overrides are applied after the file is read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		if err := decodeFile(resolvedPath, &cfg); err != nil {
			return nil, "", false, err
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".hjson", ".json":
		var raw map[string]any
		if err := hjson.Unmarshal(data, &raw); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
		// hjson only decodes into generic values; round-trip through JSON to fill the struct.
		encoded, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
		decoder := json.NewDecoder(bytes.NewReader(encoded))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	default:
		decoder := toml.NewDecoder(bytes.NewReader(data))
		if err := decoder.Decode(cfg); err != nil {
			return fmt.Errorf("parse config: %w", err)
		}
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("textclean.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// RedisAddr returns the host:port pair for the redis client.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Cache.Redis.Host, c.Cache.Redis.Port)
}
