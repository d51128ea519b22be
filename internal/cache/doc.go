// Package cache provides the key/value stores used to memoize cleaning
// results: an in-process LRU with TTL, Redis for sharing across processes,
// and a SQLite file for persistence on a single host.
//
// Open picks a backend from configuration and degrades to Noop when the
// backend is unavailable. Keys come from Key so that every backend sees the
// same fixed-length, namespaced identifiers.
package cache
