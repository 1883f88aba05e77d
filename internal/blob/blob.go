// Package blob defines the persistence boundary: a flat namespace of named
// blobs accessed synchronously. The ledger uses a single fixed key and
// overwrites it in full after every mutation, so last-writer-wins is the
// only concurrency semantic any implementation needs.
package blob

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no blob exists under the key.
var ErrNotFound = errors.New("blob not found")

// Store is implemented by every persistence backend.
type Store interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set overwrites the blob under key unconditionally.
	Set(ctx context.Context, key string, data []byte) error

	// Clear removes the blob under key. Clearing an absent key is a no-op.
	Clear(ctx context.Context, key string) error
}
