package config

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestConfig_Validate(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		config      Config
		wantErr     bool
		errorString string
	}{
		{
			name: "valid file backend config",
			config: Config{
				Port:        "8080",
				DataBackend: "file",
				DataDir:     filepath.Join(tmpDir, "data"),
				LedgerKey:   "spendlog.expenses",
				NoticeTTL:   4 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid memory backend config",
			config: Config{
				Port:        "8080",
				DataBackend: "memory",
				LedgerKey:   "spendlog.expenses",
				NoticeTTL:   4 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "valid sqlite backend config",
			config: Config{
				Port:         "8080",
				DataBackend:  "sqlite",
				SQLiteDBPath: filepath.Join(tmpDir, "db", "spendlog.db"),
				LedgerKey:    "spendlog.expenses",
				NoticeTTL:    4 * time.Second,
			},
			wantErr: false,
		},
		{
			name: "invalid port - non-numeric",
			config: Config{
				Port:        "abc",
				DataBackend: "memory",
				LedgerKey:   "k",
				NoticeTTL:   4 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name: "invalid port - out of range",
			config: Config{
				Port:        "70000",
				DataBackend: "memory",
				LedgerKey:   "k",
				NoticeTTL:   4 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name: "invalid data backend",
			config: Config{
				Port:        "8080",
				DataBackend: "sheets",
				LedgerKey:   "k",
				NoticeTTL:   4 * time.Second,
			},
			wantErr:     true,
			errorString: "invalid data backend 'sheets'",
		},
		{
			name: "file backend missing data dir",
			config: Config{
				Port:        "8080",
				DataBackend: "file",
				DataDir:     "",
				LedgerKey:   "k",
				NoticeTTL:   4 * time.Second,
			},
			wantErr:     true,
			errorString: "data directory cannot be empty when using file backend",
		},
		{
			name: "sqlite backend missing database path",
			config: Config{
				Port:         "8080",
				DataBackend:  "sqlite",
				SQLiteDBPath: "",
				LedgerKey:    "k",
				NoticeTTL:    4 * time.Second,
			},
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name: "empty ledger key",
			config: Config{
				Port:        "8080",
				DataBackend: "memory",
				LedgerKey:   "",
				NoticeTTL:   4 * time.Second,
			},
			wantErr:     true,
			errorString: "ledger key cannot be empty",
		},
		{
			name: "notice TTL too short",
			config: Config{
				Port:        "8080",
				DataBackend: "memory",
				LedgerKey:   "k",
				NoticeTTL:   500 * time.Millisecond,
			},
			wantErr:     true,
			errorString: "must be at least 1 second",
		},
		{
			name: "notice TTL too long",
			config: Config{
				Port:        "8080",
				DataBackend: "memory",
				LedgerKey:   "k",
				NoticeTTL:   2 * time.Minute,
			},
			wantErr:     true,
			errorString: "must be at most 1 minute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr {
				if err == nil {
					t.Errorf("Config.Validate() error = nil, wantErr %v", tt.wantErr)
					return
				}
				if tt.errorString != "" && !strings.Contains(err.Error(), tt.errorString) {
					t.Errorf("Config.Validate() error = %v, want error containing %v", err.Error(), tt.errorString)
				}
			} else {
				if err != nil {
					t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
				}
			}
		})
	}
}

func TestLoad(t *testing.T) {
	for _, key := range []string{"PORT", "DATA_BACKEND", "DATA_DIR", "SQLITE_DB_PATH", "LEDGER_KEY", "NOTICE_TTL"} {
		t.Setenv(key, "")
	}

	t.Run("default values", func(t *testing.T) {
		cfg := Load()

		if cfg.Port != "8080" {
			t.Errorf("Load() Port = %v, want 8080", cfg.Port)
		}
		if cfg.DataBackend != "file" {
			t.Errorf("Load() DataBackend = %v, want file", cfg.DataBackend)
		}
		if cfg.DataDir != "./data" {
			t.Errorf("Load() DataDir = %v, want ./data", cfg.DataDir)
		}
		if cfg.SQLiteDBPath != "./data/spendlog.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/spendlog.db", cfg.SQLiteDBPath)
		}
		if cfg.LedgerKey != "spendlog.expenses" {
			t.Errorf("Load() LedgerKey = %v, want spendlog.expenses", cfg.LedgerKey)
		}
		if cfg.NoticeTTL != 4*time.Second {
			t.Errorf("Load() NoticeTTL = %v, want 4s", cfg.NoticeTTL)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DATA_BACKEND", "memory")
		t.Setenv("LEDGER_KEY", "other.key")
		t.Setenv("NOTICE_TTL", "10s")

		cfg := Load()

		if cfg.Port != "9090" {
			t.Errorf("Load() Port = %v, want 9090", cfg.Port)
		}
		if cfg.DataBackend != "memory" {
			t.Errorf("Load() DataBackend = %v, want memory", cfg.DataBackend)
		}
		if cfg.LedgerKey != "other.key" {
			t.Errorf("Load() LedgerKey = %v, want other.key", cfg.LedgerKey)
		}
		if cfg.NoticeTTL != 10*time.Second {
			t.Errorf("Load() NoticeTTL = %v, want 10s", cfg.NoticeTTL)
		}
	})

	t.Run("invalid duration uses default", func(t *testing.T) {
		t.Setenv("NOTICE_TTL", "soon")

		cfg := Load()
		if cfg.NoticeTTL != 4*time.Second {
			t.Errorf("Load() NoticeTTL = %v, want 4s (default for invalid input)", cfg.NoticeTTL)
		}
	})
}
