package store

import (
	"context"
	"time"
)

// Spec is the cached form of a scanned definition file.
type Spec struct {
	// Path is the definition file the spec was extracted from. It is the
	// cache key.
	Path string

	// Kind is "application" or "service".
	Kind string

	// Name is the resource name.
	Name string

	// Inputs and Outputs are the declared variable names.
	Inputs  []string
	Outputs []string

	// ModTime is the definition file's modification time at scan time. A
	// cached spec is stale when the file's current mtime differs.
	ModTime time.Time
}

// Backend persists extracted resource specs between scans. Implementations
// must be safe for concurrent use.
type Backend interface {
	// Save persists the spec, replacing any previous entry for its path.
	Save(ctx context.Context, spec *Spec) error

	// Load retrieves the spec cached for a path. It returns (nil, nil)
	// when no entry exists.
	Load(ctx context.Context, path string) (*Spec, error)

	// Delete removes the entry for a path. Deleting a missing entry is a
	// no-op.
	Delete(ctx context.Context, path string) error

	// List returns every cached spec of the given kind, sorted by name.
	List(ctx context.Context, kind string) ([]*Spec, error)

	// Close releases resources held by the backend.
	Close() error
}
