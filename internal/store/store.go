// Package store provides the device-local key/value store the stylist
// client persists its records in. Values are opaque byte slices; encoding
// is the caller's responsibility. There are no transactions and no expiry:
// last writer wins.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when the key has no value.
// Callers should match it with errors.Is.
var ErrNotFound = errors.New("key not found")

// Store is the local persistence contract. A failing Write or Delete means
// the storage medium is unavailable or full; callers must treat that as
// non-fatal and degrade to in-memory operation for the session.
type Store interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
