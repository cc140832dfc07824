// Package storage provides the SQLite implementation of ports.SnapshotStore.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xvierd/tomato/internal/domain"
	"github.com/xvierd/tomato/internal/ports"
	_ "modernc.org/sqlite"
)

// timerStateKey is the key the timer snapshot is stored under.
const timerStateKey = "timer_state"

// sqliteStorage implements ports.SnapshotStore on a single key/value table.
type sqliteStorage struct {
	db *sql.DB
}

// Ensure sqliteStorage implements ports.SnapshotStore.
var _ ports.SnapshotStore = (*sqliteStorage)(nil)

// New opens (creating if needed) the SQLite database at dbPath.
func New(dbPath string) (ports.SnapshotStore, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer at a time; also keeps a :memory: database on one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	storage := &sqliteStorage{db: db}
	if err := storage.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return storage, nil
}

// NewMemory creates a new in-memory SQLite storage instance for testing.
func NewMemory() (ports.SnapshotStore, error) {
	return New(":memory:")
}

// Migrate creates the database schema.
func (s *sqliteStorage) Migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to execute schema: %w", err)
	}
	return nil
}

// Load reads the saved timer snapshot.
func (s *sqliteStorage) Load(ctx context.Context) (*domain.Snapshot, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, timerStateKey).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, domain.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load timer state: %w", err)
	}

	var snap domain.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
	}
	return &snap, nil
}

// Save replaces the saved timer snapshot.
func (s *sqliteStorage) Save(ctx context.Context, snap domain.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode timer state: %w", err)
	}

	query := `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, timerStateKey, string(raw), time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save timer state: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *sqliteStorage) Close() error {
	return s.db.Close()
}
