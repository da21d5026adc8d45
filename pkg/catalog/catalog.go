package catalog

import (
	"sort"
	"time"
)

// Kind discriminates applications from services.
type Kind string

const (
	KindApplication Kind = "application"
	KindService     Kind = "service"
)

// Folder returns the directory name a kind is scanned from.
func (k Kind) Folder() string {
	switch k {
	case KindApplication:
		return "applications"
	default:
		return "services"
	}
}

// Catalog exposes the resource names available on disk and the metadata
// each declares. Implementations must be safe for concurrent readers; a
// Refresh may run concurrently with reads.
type Catalog interface {
	// AvailableNames returns the sorted names of every resource in the
	// catalog.
	AvailableNames() []string

	// Has reports whether a resource with the given name exists.
	Has(name string) bool

	// DeclaredInputs returns the sorted input names declared by the named
	// resource. Unknown resources yield an empty slice.
	DeclaredInputs(name string) []string

	// DeclaredOutputs returns the sorted output names declared by the named
	// resource. Unknown resources yield an empty slice.
	DeclaredOutputs(name string) []string

	// Refresh rescans the catalog under the given root path. It is invoked
	// once at the start of each validation request.
	Refresh(rootPath string) error
}

// ResourceSpec is the metadata extracted from one on-disk definition.
type ResourceSpec struct {
	Name    string
	Kind    Kind
	Inputs  []string
	Outputs []string

	// Path and ModTime identify the definition file the spec was read
	// from, used for cache freshness checks.
	Path    string
	ModTime time.Time
}

// sortedCopy returns a sorted copy of names, keeping catalog answers
// deterministic regardless of map iteration order.
func sortedCopy(names []string) []string {
	out := make([]string, len(names))
	copy(out, names)
	sort.Strings(out)
	return out
}
