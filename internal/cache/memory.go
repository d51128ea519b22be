package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is a bounded in-process LRU whose entries expire after a TTL.
type Memory struct {
	lru *expirable.LRU[string, string]
}

// NewMemory returns a cache holding at most size entries (0 means
// unbounded). A ttl of zero disables expiry.
func NewMemory(size int, ttl time.Duration) *Memory {
	if size < 0 {
		size = 0
	}
	return &Memory{lru: expirable.NewLRU[string, string](size, nil, ttl)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	value, ok := m.lru.Get(key)
	return value, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.lru.Add(key, value)
	return nil
}

// Len reports the number of live entries.
func (m *Memory) Len() int { return m.lru.Len() }

// Purge drops every entry.
func (m *Memory) Purge() { m.lru.Purge() }

func (m *Memory) Close() error {
	m.lru.Purge()
	return nil
}

func (m *Memory) Name() string { return "memory" }
