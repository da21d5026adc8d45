package validator

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"colony-hq/colony-ls/pkg/blueprint/ast"
	"colony-hq/colony-ls/pkg/blueprint/diag"
	"colony-hq/colony-ls/pkg/catalog"
)

// resourceKind carries the per-namespace wording used by the passes that
// run once for applications and once for services.
type resourceKind struct {
	// short is the label used in dependency and folder messages.
	short string
	// noun is the full label used in duplicate and input messages.
	noun string
	// folder is the workspace directory resources of this kind live in.
	folder string
}

var (
	appKind     = resourceKind{short: "app", noun: "application", folder: "applications"}
	serviceKind = resourceKind{short: "service", noun: "service", folder: "services"}
)

// Validator runs the semantic validation passes over one parsed blueprint.
// Construct a fresh Validator per validation request (logically per
// document version); instances hold derived name indices and must not be
// shared between requests.
type Validator struct {
	tree     *ast.Blueprint
	rootPath string
	apps     catalog.Catalog
	services catalog.Catalog

	// Name indices derived from the blueprint itself. Applications and
	// services share one namespace; the union is the resolution domain for
	// depends_on references.
	appNames     map[string]struct{}
	serviceNames map[string]struct{}

	logger  *slog.Logger
	metrics *Metrics
}

// Option configures a Validator.
type Option func(*Validator)

// WithLogger sets the validator's logger.
func WithLogger(logger *slog.Logger) Option {
	return func(v *Validator) { v.logger = logger }
}

// WithMetrics attaches run metrics. Without it no metrics are recorded.
func WithMetrics(m *Metrics) Option {
	return func(v *Validator) { v.metrics = m }
}

// New creates a validator for one blueprint against the catalogs rooted at
// rootPath.
func New(tree *ast.Blueprint, rootPath string, apps, services catalog.Catalog, opts ...Option) *Validator {
	v := &Validator{
		tree:         tree,
		rootPath:     rootPath,
		apps:         apps,
		services:     services,
		appNames:     make(map[string]struct{}, len(tree.Applications)),
		serviceNames: make(map[string]struct{}, len(tree.Services)),
		logger:       slog.Default().With("component", "validator"),
	}
	for _, app := range tree.Applications {
		v.appNames[app.ID.Text] = struct{}{}
	}
	for _, srv := range tree.Services {
		v.serviceNames[srv.ID.Text] = struct{}{}
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Validate refreshes the catalogs and runs every pass in fixed order:
// the unused-input warning pass first, then the error passes. The returned
// slice is ordered by pass, then by document position within each pass.
func (v *Validator) Validate() []diag.Diagnostic {
	runID := uuid.New().String()
	start := time.Now()
	v.logger.Debug("validation started", "run_id", runID, "source", v.tree.Source)

	v.refreshCatalogs()

	c := diag.NewCollector()

	// warnings
	c.Extend(v.checkUnusedInputs())

	// errors
	c.Extend(v.checkDependencies())
	c.Extend(v.checkVariableReferences())
	c.Extend(v.checkResourceExistence(appResources(v.tree), v.apps, appKind))
	c.Extend(v.checkResourceExistence(serviceResources(v.tree), v.services, serviceKind))
	c.Extend(v.checkNameUniqueness())
	c.Extend(v.checkArtifactTargets())
	c.Extend(v.checkArtifactUniqueness())
	c.Extend(v.checkInputExistence(appResources(v.tree), v.apps, appKind))
	c.Extend(v.checkInputExistence(serviceResources(v.tree), v.services, serviceKind))

	diags := c.All()
	elapsed := time.Since(start)
	v.metrics.observeRun(elapsed, diags)
	v.logger.Debug("validation finished",
		"run_id", runID,
		"diagnostics", len(diags),
		"elapsed", elapsed.String(),
	)
	return diags
}

// refreshCatalogs rescans both catalogs. A failed refresh degrades to the
// catalog's previous (possibly empty) contents; the run itself proceeds.
func (v *Validator) refreshCatalogs() {
	refreshStart := time.Now()
	if err := v.apps.Refresh(v.rootPath); err != nil {
		v.logger.Warn("applications catalog refresh failed", "root", v.rootPath, "error", err)
	}
	if err := v.services.Refresh(v.rootPath); err != nil {
		v.logger.Warn("services catalog refresh failed", "root", v.rootPath, "error", err)
	}
	v.metrics.observeRefresh(time.Since(refreshStart))
}

// isKnownName reports whether a name is declared as an application or a
// service in this blueprint.
func (v *Validator) isKnownName(name string) bool {
	if _, ok := v.appNames[name]; ok {
		return true
	}
	_, ok := v.serviceNames[name]
	return ok
}

// appResources returns the applications section as the generic resource
// shape the shared passes operate on.
func appResources(tree *ast.Blueprint) []*ast.Resource {
	out := make([]*ast.Resource, 0, len(tree.Applications))
	for _, app := range tree.Applications {
		out = append(out, &app.Resource)
	}
	return out
}

// serviceResources returns the services section as the generic resource
// shape the shared passes operate on.
func serviceResources(tree *ast.Blueprint) []*ast.Resource {
	out := make([]*ast.Resource, 0, len(tree.Services))
	for _, srv := range tree.Services {
		out = append(out, &srv.Resource)
	}
	return out
}

// toSet builds a membership set from a slice of names.
func toSet(names []string) map[string]struct{} {
	set := make(map[string]struct{}, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}
