package cache

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"textclean/internal/config"
)

func TestKey(t *testing.T) {
	a := Key("clean", "ab", "c")
	b := Key("clean", "a", "bc")
	if a == b {
		t.Fatal("expected different keys for different part boundaries")
	}
	if a != Key("clean", "ab", "c") {
		t.Fatal("expected deterministic keys")
	}
	if !strings.HasPrefix(a, "text_cleaner:clean:") || len(a) != len("text_cleaner:clean:")+64 {
		t.Fatalf("unexpected key shape %q", a)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(2, 0)

	if _, ok, _ := m.Get(ctx, "missing"); ok {
		t.Fatal("expected miss")
	}
	for _, k := range []string{"a", "b", "c"} {
		if err := m.Set(ctx, k, strings.ToUpper(k)); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	if m.Len() != 2 {
		t.Fatalf("Len = %d, want 2", m.Len())
	}
	if _, ok, _ := m.Get(ctx, "a"); ok {
		t.Fatal("expected oldest entry to be evicted")
	}
	if v, ok, _ := m.Get(ctx, "c"); !ok || v != "C" {
		t.Fatalf("Get(c) = %q, %v", v, ok)
	}
	m.Purge()
	if m.Len() != 0 {
		t.Fatal("expected empty cache after Purge")
	}
}

func TestMemoryStoreExpires(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(10, 20*time.Millisecond)
	_ = m.Set(ctx, "k", "v")
	time.Sleep(80 * time.Millisecond)
	if _, ok, _ := m.Get(ctx, "k"); ok {
		t.Fatal("expected entry to expire")
	}
}

func TestSQLiteStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "cache.db")
	s, err := NewSQLite(path, time.Hour)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	defer s.Close()

	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	if err := s.Set(ctx, "k", "first"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Set(ctx, "k", "second"); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if v, ok, err := s.Get(ctx, "k"); err != nil || !ok || v != "second" {
		t.Fatalf("Get = %q, %v, %v", v, ok, err)
	}
	if n, _ := s.Count(ctx); n != 1 {
		t.Fatalf("Count = %d", n)
	}

	now = now.Add(2 * time.Hour)
	if _, ok, _ := s.Get(ctx, "k"); ok {
		t.Fatal("expected expired entry to miss")
	}
	removed, err := s.Prune(ctx)
	if err != nil || removed != 1 {
		t.Fatalf("Prune = %d, %v", removed, err)
	}

	_ = s.Set(ctx, "a", "1")
	_ = s.Set(ctx, "b", "2")
	if err := s.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, _ := s.Count(ctx); n != 0 {
		t.Fatalf("Count after Clear = %d", n)
	}
}

func TestSQLiteStorePersists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "cache.db")
	s, err := NewSQLite(path, 0)
	if err != nil {
		t.Fatalf("NewSQLite: %v", err)
	}
	_ = s.Set(ctx, "k", "v")
	_ = s.Close()

	reopened, err := NewSQLite(path, 0)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if v, ok, _ := reopened.Get(ctx, "k"); !ok || v != "v" {
		t.Fatalf("Get after reopen = %q, %v", v, ok)
	}
}

func TestOpenSelectsBackend(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"memory", func(c *config.Config) {}, "memory"},
		{"disabled", func(c *config.Config) { c.Cache.Enabled = false }, "none"},
		{"none", func(c *config.Config) { c.Cache.Backend = "none" }, "none"},
		{"sqlite", func(c *config.Config) {
			c.Cache.Backend = "sqlite"
			c.Cache.SQLitePath = filepath.Join(t.TempDir(), "cache.db")
		}, "sqlite"},
		{"redis unreachable", func(c *config.Config) {
			c.Cache.Backend = "redis"
			c.Cache.Redis.Host = "127.0.0.1"
			c.Cache.Redis.Port = 1
			c.Cache.Redis.TimeoutSeconds = 1
		}, "none"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			store := Open(ctx, &cfg, nil)
			defer store.Close()
			if store.Name() != tt.want {
				t.Fatalf("backend = %q, want %q", store.Name(), tt.want)
			}
		})
	}

	if Open(ctx, nil, nil).Name() != "none" {
		t.Fatal("nil config should disable caching")
	}
}

func TestNoopNeverHits(t *testing.T) {
	ctx := context.Background()
	var s Store = Noop{}
	_ = s.Set(ctx, "k", "v")
	if _, ok, err := s.Get(ctx, "k"); ok || err != nil {
		t.Fatalf("Noop Get = %v, %v", ok, err)
	}
}
