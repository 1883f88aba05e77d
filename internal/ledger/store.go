// Package ledger owns the authoritative expense collection and the write
// path over it. Reads are served as defensive copies; views are derived on
// demand by the query engine in internal/core.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"spendlog/internal/blob"
	"spendlog/internal/core"
)

// Store holds the in-memory collection and mirrors every change to the
// persistence boundary as one full-replace write of a JSON array under a
// fixed key.
type Store struct {
	mu      sync.Mutex
	blobs   blob.Store
	key     string
	records []core.Record
	rev     uint64
}

func NewStore(blobs blob.Store, key string) *Store {
	return &Store{blobs: blobs, key: key}
}

// Load reads the persisted blob into memory. An absent or unparseable blob
// is treated as an empty collection: the problem is logged and the
// application starts fresh rather than failing.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = nil
	data, err := s.blobs.Get(ctx, s.key)
	if err == blob.ErrNotFound {
		slog.InfoContext(ctx, "No persisted ledger found, starting empty", "key", s.key)
		return
	}
	if err != nil {
		slog.WarnContext(ctx, "Failed reading persisted ledger, starting empty",
			"key", s.key, "error", err)
		return
	}

	var records []core.Record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.WarnContext(ctx, "Persisted ledger is corrupt, starting empty",
			"key", s.key, "bytes", len(data), "error", err)
		return
	}
	s.records = records
	slog.InfoContext(ctx, "Ledger loaded", "key", s.key, "records", len(records))
}

// Snapshot returns a copy of the current collection. Callers may reorder or
// filter it freely without affecting the held state.
func (s *Store) Snapshot() []core.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Replace persists the given collection as the new authoritative state.
// The blob write happens first; on failure the held state is left
// untouched so memory and disk never disagree.
func (s *Store) Replace(ctx context.Context, records []core.Record) error {
	if records == nil {
		records = []core.Record{}
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode ledger: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.blobs.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("persist ledger: %w", err)
	}
	s.records = records
	s.rev++
	return nil
}

// Revision increments on every successful Replace. The HTTP layer folds it
// into cache keys so derived views can be cached without ever going stale.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// Len reports the current collection size.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
