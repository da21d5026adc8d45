package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"
)

// Refresher rescans catalogs on a cron schedule. File watching covers edits
// inside the workspace; the scheduled rescan additionally picks up changes
// the watcher cannot see, such as a git checkout replacing whole folders.
type Refresher struct {
	rootPath string
	catalogs []Catalog
	cron     *cron.Cron
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
}

// NewRefresher creates a refresher over the given catalogs.
func NewRefresher(rootPath string, catalogs ...Catalog) *Refresher {
	return &Refresher{
		rootPath: rootPath,
		catalogs: catalogs,
		cron:     cron.New(),
		logger:   slog.Default().With("component", "catalog.refresher"),
	}
}

// Start begins scheduled rescans using a standard cron expression, for
// example "*/5 * * * *" for every five minutes. An empty schedule disables
// the refresher. The refresher stops when the context is cancelled.
func (r *Refresher) Start(ctx context.Context, schedule string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if schedule == "" {
		r.logger.Info("refresh schedule not configured, skipping refresher")
		return nil
	}

	if _, err := cron.ParseStandard(schedule); err != nil {
		return fmt.Errorf("invalid refresh schedule %q: %w", schedule, err)
	}

	if _, err := r.cron.AddFunc(schedule, r.refreshAll); err != nil {
		return fmt.Errorf("schedule catalog refresh: %w", err)
	}

	r.cron.Start()
	r.running = true
	r.logger.Info("catalog refresher started", "schedule", schedule, "root", r.rootPath)

	go func() {
		<-ctx.Done()
		r.Stop()
	}()

	return nil
}

// Stop halts scheduled rescans.
func (r *Refresher) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}
	r.cron.Stop()
	r.running = false
	r.logger.Info("catalog refresher stopped")
}

func (r *Refresher) refreshAll() {
	for _, c := range r.catalogs {
		if err := c.Refresh(r.rootPath); err != nil {
			r.logger.Warn("scheduled catalog refresh failed", "error", err)
		}
	}
}
