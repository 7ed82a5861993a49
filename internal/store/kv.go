// Package store persists conversations and personalization through a small
// key-value port. The dispatcher layer never touches storage directly; it
// receives a KV (or a service built on one) by injection, so tests run on
// the in-memory implementation and the CLI on SQLite.
package store

import "errors"

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store is closed")

// KV is the persistence port. Values are opaque bytes; callers own the
// encoding.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value []byte, ok bool, err error)
	// Set writes the value for key, replacing any previous value.
	Set(key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(key string) error
	// List returns all keys with the given prefix, sorted.
	List(prefix string) ([]string, error)
	// Close releases the store.
	Close() error
}
