package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the applications and services folders and triggers a
// catalog refresh when definitions change. Events are debounced to prevent
// rescan storms while a workspace is being edited.
type Watcher struct {
	watcher    *fsnotify.Watcher
	logger     *slog.Logger
	debounce   *Debouncer
	extensions []string
}

// WatcherConfig configures a Watcher.
type WatcherConfig struct {
	// DebounceInterval is the quiet time before a change triggers a
	// refresh. Default: 200ms.
	DebounceInterval time.Duration

	// Extensions is the list of file extensions that count as definition
	// changes. Default: .yaml, .yml, .tfvars.
	Extensions []string
}

// DefaultWatcherConfig returns the default watcher configuration.
func DefaultWatcherConfig() WatcherConfig {
	return WatcherConfig{
		DebounceInterval: 200 * time.Millisecond,
		Extensions:       []string{".yaml", ".yml", ".tfvars"},
	}
}

// NewWatcher creates a watcher over the catalog folders under rootPath.
func NewWatcher(rootPath string, cfg WatcherConfig, logger *slog.Logger) (*Watcher, error) {
	if cfg.DebounceInterval <= 0 {
		cfg.DebounceInterval = DefaultWatcherConfig().DebounceInterval
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultWatcherConfig().Extensions
	}
	if logger == nil {
		logger = slog.Default().With("component", "catalog.watcher")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}

	w := &Watcher{
		watcher:    fsw,
		logger:     logger,
		debounce:   NewDebouncer(cfg.DebounceInterval),
		extensions: cfg.Extensions,
	}

	for _, kind := range []Kind{KindApplication, KindService} {
		dir := filepath.Join(rootPath, kind.Folder())
		if err := fsw.Add(dir); err != nil {
			// A workspace may legitimately lack one of the folders.
			logger.Debug("folder not watched", "dir", dir, "error", err)
		}
	}

	return w, nil
}

// Watch blocks processing file events until the context is cancelled,
// invoking onChange (debounced) for every relevant change.
func (w *Watcher) Watch(ctx context.Context, onChange func()) error {
	defer w.debounce.Stop()
	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("catalog watcher stopped")
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug("catalog change detected", "path", event.Name, "op", event.Op.String())
			w.debounce.Trigger(onChange)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Warn("catalog watcher error", "error", err)
		}
	}
}

// Close releases the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.debounce.Stop()
	return w.watcher.Close()
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	ext := filepath.Ext(event.Name)
	for _, want := range w.extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	// Directory-level events carry no extension; a new resource directory
	// still warrants a rescan.
	return ext == ""
}
