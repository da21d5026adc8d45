package store

import (
	"context"
	"sort"
	"sync"
)

// MemoryBackend implements Backend with an in-process map. It is the
// default backend; all cached metadata is lost when the process exits.
type MemoryBackend struct {
	mu    sync.RWMutex
	specs map[string]*Spec
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{specs: make(map[string]*Spec)}
}

// Save persists the spec, replacing any previous entry for its path.
func (m *MemoryBackend) Save(_ context.Context, spec *Spec) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *spec
	m.specs[spec.Path] = &cp
	return nil
}

// Load retrieves the spec cached for a path, or (nil, nil) when absent.
func (m *MemoryBackend) Load(_ context.Context, path string) (*Spec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	spec, ok := m.specs[path]
	if !ok {
		return nil, nil
	}
	cp := *spec
	return &cp, nil
}

// Delete removes the entry for a path.
func (m *MemoryBackend) Delete(_ context.Context, path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.specs, path)
	return nil
}

// List returns every cached spec of the given kind, sorted by name.
func (m *MemoryBackend) List(_ context.Context, kind string) ([]*Spec, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*Spec, 0)
	for _, spec := range m.specs {
		if spec.Kind != kind {
			continue
		}
		cp := *spec
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// Close is a no-op for the memory backend.
func (m *MemoryBackend) Close() error {
	return nil
}
