// Package ports defines the interfaces (driven and driving ports)
// for the tomato application following hexagonal architecture principles.
// These interfaces define the contracts between the timer engine and
// the terminal, the desktop and the disk.
package ports

import (
	"context"

	"github.com/xvierd/tomato/internal/domain"
)

// SnapshotStore persists the timer state between runs.
// This is a driven port (implemented by adapters).
type SnapshotStore interface {
	// Load returns the last saved snapshot, or domain.ErrSnapshotNotFound
	// when nothing was saved yet.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Save replaces the stored snapshot.
	Save(ctx context.Context, snapshot domain.Snapshot) error

	// Close releases the underlying resources.
	Close() error
}
