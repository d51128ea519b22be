// Package config loads, normalizes, and validates textclean configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), reads
// TOML files (or HJSON/JSON files by extension), and applies TEXT_CLEANER_*
// environment overrides on top of whatever the file sets. Validation failures
// are reported as *errs.ConfigError naming the offending key.
package config
