package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"colony-hq/colony-ls/pkg/catalog/store"
)

// FSCatalog reads resource definitions from a directory tree. Each resource
// lives in its own directory named after it, with a definition file of the
// same name:
//
//	<root>/<folder>/<name>/<name>.yaml
//
// The catalog is safe for concurrent reads; Refresh swaps the spec map
// under a write lock.
type FSCatalog struct {
	kind   Kind
	logger *slog.Logger
	cache  store.Backend

	mu    sync.RWMutex
	specs map[string]*ResourceSpec
}

// Option configures an FSCatalog.
type Option func(*FSCatalog)

// WithLogger sets the catalog's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *FSCatalog) { c.logger = logger }
}

// WithCache sets a backend used to cache extracted metadata between scans.
// Files whose modification time is unchanged are served from the cache.
func WithCache(backend store.Backend) Option {
	return func(c *FSCatalog) { c.cache = backend }
}

// NewApplications creates a catalog over the applications folder.
func NewApplications(opts ...Option) *FSCatalog {
	return newFSCatalog(KindApplication, opts...)
}

// NewServices creates a catalog over the services folder.
func NewServices(opts ...Option) *FSCatalog {
	return newFSCatalog(KindService, opts...)
}

func newFSCatalog(kind Kind, opts ...Option) *FSCatalog {
	c := &FSCatalog{
		kind:   kind,
		logger: slog.Default().With("component", "catalog", "kind", string(kind)),
		specs:  make(map[string]*ResourceSpec),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AvailableNames returns the sorted names of every resource in the catalog.
func (c *FSCatalog) AvailableNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.specs))
	for name := range c.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a resource with the given name exists.
func (c *FSCatalog) Has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.specs[name]
	return ok
}

// DeclaredInputs returns the sorted input names declared by the named
// resource.
func (c *FSCatalog) DeclaredInputs(name string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := c.specs[name]
	if !ok {
		return []string{}
	}
	return sortedCopy(spec.Inputs)
}

// DeclaredOutputs returns the sorted output names declared by the named
// resource.
func (c *FSCatalog) DeclaredOutputs(name string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := c.specs[name]
	if !ok {
		return []string{}
	}
	return sortedCopy(spec.Outputs)
}

// Refresh rescans the catalog folder under rootPath. A missing folder
// yields an empty catalog, not an error: a workspace without services is a
// valid workspace. Definitions that cannot be parsed keep their name with
// empty metadata.
func (c *FSCatalog) Refresh(rootPath string) error {
	dir := filepath.Join(rootPath, c.kind.Folder())
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			c.swap(make(map[string]*ResourceSpec))
			return nil
		}
		return fmt.Errorf("scan %s: %w", dir, err)
	}

	specs := make(map[string]*ResourceSpec, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		specs[name] = c.loadSpec(dir, name)
	}
	c.swap(specs)
	c.logger.Debug("catalog refreshed", "root", rootPath, "resources", len(specs))
	return nil
}

func (c *FSCatalog) swap(specs map[string]*ResourceSpec) {
	c.mu.Lock()
	c.specs = specs
	c.mu.Unlock()
}

// loadSpec extracts the metadata for one resource, consulting the cache
// first when one is configured.
func (c *FSCatalog) loadSpec(dir, name string) *ResourceSpec {
	spec := &ResourceSpec{Name: name, Kind: c.kind, Inputs: []string{}, Outputs: []string{}}

	path := definitionPath(filepath.Join(dir, name), name)
	if path == "" {
		return spec
	}
	spec.Path = path

	info, err := os.Stat(path)
	if err != nil {
		return spec
	}
	spec.ModTime = info.ModTime()

	if c.cache != nil {
		if cached, err := c.cache.Load(context.Background(), path); err == nil && cached != nil &&
			cached.ModTime.Equal(spec.ModTime) {
			spec.Inputs = cached.Inputs
			spec.Outputs = cached.Outputs
			return spec
		}
	}

	c.parseDefinition(spec)

	if c.cache != nil {
		err := c.cache.Save(context.Background(), &store.Spec{
			Path:    spec.Path,
			Kind:    string(spec.Kind),
			Name:    spec.Name,
			Inputs:  spec.Inputs,
			Outputs: spec.Outputs,
			ModTime: spec.ModTime,
		})
		if err != nil {
			c.logger.Warn("catalog cache save failed", "path", spec.Path, "error", err)
		}
	}
	return spec
}

// definitionPath finds the resource's definition file, preferring the .yaml
// extension over .yml.
func definitionPath(resourceDir, name string) string {
	for _, ext := range []string{".yaml", ".yml"} {
		path := filepath.Join(resourceDir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// definitionFile is the subset of a resource definition the catalog needs.
type definitionFile struct {
	Kind    string      `yaml:"kind"`
	Inputs  []yaml.Node `yaml:"inputs"`
	Outputs []string    `yaml:"outputs"`
}

// parseDefinition fills the spec's inputs and outputs from its definition
// file. Unreadable or unrecognized definitions leave the metadata empty
// rather than failing the scan.
func (c *FSCatalog) parseDefinition(spec *ResourceSpec) {
	data, err := os.ReadFile(spec.Path)
	if err != nil {
		c.logger.Debug("definition unreadable", "path", spec.Path, "error", err)
		return
	}

	var def definitionFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		c.logger.Debug("definition not parseable", "path", spec.Path, "error", err)
		return
	}

	spec.Outputs = append(spec.Outputs, def.Outputs...)

	// Terraform services declare their variables in sibling tfvars files
	// instead of the definition's inputs section.
	if def.Kind == "TerraForm" {
		spec.Inputs = append(spec.Inputs, variablesFromTFVarsDir(filepath.Dir(spec.Path))...)
		return
	}

	for _, node := range def.Inputs {
		switch node.Kind {
		case yaml.ScalarNode:
			spec.Inputs = append(spec.Inputs, node.Value)
		case yaml.MappingNode:
			// Input with a default value: the name is the first key.
			if len(node.Content) > 0 {
				spec.Inputs = append(spec.Inputs, node.Content[0].Value)
			}
		}
	}
}
