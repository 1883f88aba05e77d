// Package backend selects and constructs the persistence boundary
// implementation from configuration.
package backend

import (
	"fmt"
	"log/slog"

	"spendlog/internal/blob"
	"spendlog/internal/config"
	"spendlog/internal/storage"
)

const (
	FileBackend   Type = "file"
	SQLiteBackend Type = "sqlite"
	MemoryBackend Type = "memory"
)

type (
	Type string

	// CleanupFunc releases backend resources on shutdown.
	CleanupFunc func() error

	// Result pairs the constructed blob store with its cleanup.
	Result struct {
		Blobs   blob.Store
		Cleanup CleanupFunc
	}
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case FileBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Open builds the blob store named by the config's DataBackend.
func Open(cfg *config.Config, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}

	t := Type(cfg.DataBackend)
	switch t {
	case SQLiteBackend:
		store, err := storage.NewBlobStore(cfg.SQLiteDBPath)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite backend: %w", err)
		}
		logger.Info("Initialized sqlite backend", "db_path", cfg.SQLiteDBPath)
		return &Result{Blobs: store, Cleanup: store.Close}, nil

	case FileBackend:
		store, err := blob.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("initialize file backend: %w", err)
		}
		logger.Info("Initialized file backend", "data_dir", cfg.DataDir)
		return &Result{Blobs: store, Cleanup: nil}, nil

	case MemoryBackend:
		logger.Info("Initialized memory backend")
		return &Result{Blobs: blob.NewMemoryStore(), Cleanup: nil}, nil

	default:
		return nil, fmt.Errorf("invalid backend type: %s", cfg.DataBackend)
	}
}
