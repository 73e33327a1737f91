// Package profilecache is the persistent key-value cache backing the
// client's profile records. The repository is error-returning on purpose:
// deciding that cache failures are non-fatal is the profilestore's job,
// not the storage layer's.
package profilecache

import "context"

// Repository is a small KV store over the local cache database.
type Repository interface {
	// Get returns the value for key, or (nil, nil) when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set inserts or replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
	// Promote atomically writes key and removes legacyKey.
	Promote(ctx context.Context, key string, value []byte, legacyKey string) error
}
