// Package cache stores rendered chart artifacts.
//
// A [Cache] maps string keys to byte slices with an optional TTL. Backends:
//
//   - [NullCache]: never stores anything (the default)
//   - [FileCache]: one JSON file per entry under a directory
//   - [RedisCache]: a Redis server, entries under a key prefix
//   - [MongoCache]: a MongoDB collection with a TTL index
//
// Keys come from a [Keyer], which hashes the frequency table and the render
// options so that any change to either produces a new key.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store.
type Cache interface {
	// Get returns the value for key. ok is false on a miss or expired entry.
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Clearer is implemented by caches that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) error
}

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Backends lists the valid backend names.
var Backends = []string{BackendNone, BackendFile, BackendRedis, BackendMongo}
