package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Default lifetimes for cached embeddings. Vectors are deterministic
// per (model, input) pair, so the disk layer keeps them for a week.
const (
	DefaultMemoryTTL = 1 * time.Hour
	DefaultDiskTTL   = 7 * 24 * time.Hour
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a cache key from the given parts. Parts are hashed so
// arbitrarily long article text never leaks into filenames.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "placerank:v1:" + hex.EncodeToString(hash[:])
}
