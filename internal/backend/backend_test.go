package backend

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"spendlog/internal/config"
)

func TestTypeIsValid(t *testing.T) {
	for _, valid := range []Type{FileBackend, SQLiteBackend, MemoryBackend} {
		if !valid.IsValid() {
			t.Fatalf("%s should be valid", valid)
		}
	}
	if Type("sheets").IsValid() {
		t.Fatalf("unknown type should be invalid")
	}
}

func TestOpen(t *testing.T) {
	tmpDir := t.TempDir()
	cases := []struct {
		name string
		cfg  config.Config
	}{
		{"memory", config.Config{DataBackend: "memory"}},
		{"file", config.Config{DataBackend: "file", DataDir: filepath.Join(tmpDir, "data")}},
		{"sqlite", config.Config{DataBackend: "sqlite", SQLiteDBPath: filepath.Join(tmpDir, "db", "test.db")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.cfg.Port = "8080"
			tc.cfg.LedgerKey = "expenses"
			tc.cfg.NoticeTTL = 4 * time.Second

			result, err := Open(&tc.cfg, nil)
			if err != nil {
				t.Fatalf("open: %v", err)
			}
			if result.Blobs == nil {
				t.Fatalf("expected a blob store")
			}

			ctx := context.Background()
			if err := result.Blobs.Set(ctx, "k", []byte("v")); err != nil {
				t.Fatalf("set through backend: %v", err)
			}
			got, err := result.Blobs.Get(ctx, "k")
			if err != nil || string(got) != "v" {
				t.Fatalf("get through backend: %s, %v", got, err)
			}

			if result.Cleanup != nil {
				if err := result.Cleanup(); err != nil {
					t.Fatalf("cleanup: %v", err)
				}
			}
		})
	}
}

func TestOpenUnknownBackend(t *testing.T) {
	cfg := config.Config{DataBackend: "sheets"}
	if _, err := Open(&cfg, nil); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
