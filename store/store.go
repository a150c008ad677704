// Package store defines the key-value byte store contract the engine
// persists into, plus two implementations: a quota-bounded in-memory
// store and a durable SQLite-backed store.
//
// Any durable or semi-durable store provided by the host environment can
// satisfy the Store interface; the engine only relies on the eviction
// and retry policy contract around ErrQuotaExceeded.
package store

import "errors"

// ErrQuotaExceeded is returned by Set when the store cannot accept the
// value for capacity reasons. Callers are expected to evict other keys
// in their namespace and retry once.
var ErrQuotaExceeded = errors.New("store: quota exceeded")

// Store is a key-value byte store.
//
// Implementations must be safe for concurrent use: the engine writes
// from a debounce timer goroutine while the host may read elsewhere.
type Store interface {
	// Get returns the value for key. The second result is false when
	// the key is absent.
	Get(key string) ([]byte, bool, error)

	// Set writes the value for key, overwriting any previous value.
	// Returns ErrQuotaExceeded when the store is out of capacity.
	Set(key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error

	// Keys lists all keys with the given prefix.
	Keys(prefix string) ([]string, error)
}
