package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// KeyPrefix namespaces every key this package generates.
const KeyPrefix = "text_cleaner:"

// Store is a string key/value cache. A miss is reported as ok=false with a
// nil error; errors are reserved for backend failures.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
	Name() string
}

// Key derives a fixed-length cache key from namespace and parts. Parts are
// separated by a NUL byte so ("ab", "c") and ("a", "bc") never collide.
func Key(namespace string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(namespace))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return KeyPrefix + strings.TrimSpace(namespace) + ":" + hex.EncodeToString(h.Sum(nil))
}
