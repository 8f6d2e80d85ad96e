// Package watch re-runs the sync whenever a LaTeX source changes.
package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/cvsync/internal/core/domain"
	"github.com/custodia-labs/cvsync/internal/core/ports/driving"
	"github.com/custodia-labs/cvsync/internal/logger"
)

// ErrNoDirectories is returned when there is nothing to watch.
var ErrNoDirectories = errors.New("watch: no directories to watch")

// sourceExt is the extension of files that trigger a sync.
const sourceExt = ".tex"

// relevantOps are the operations that can change a source document.
const relevantOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// ResultFunc receives the outcome of each triggered sync.
type ResultFunc func(report *domain.SyncReport, err error)

// Watcher triggers a sync after a quiet period following source changes.
// Syncs run one at a time on the watch loop.
type Watcher struct {
	service  driving.SyncService
	dirs     []string
	debounce time.Duration
	limiter  *rate.Limiter
	onResult ResultFunc
}

// New creates a watcher over dirs. A non-positive MinInterval disables
// throttling.
func New(service driving.SyncService, dirs []string, settings domain.WatchSettings) *Watcher {
	limit := rate.Inf
	if settings.MinInterval > 0 {
		limit = rate.Every(settings.MinInterval)
	}

	return &Watcher{
		service:  service,
		dirs:     dirs,
		debounce: settings.Debounce,
		limiter:  rate.NewLimiter(limit, 1),
		onResult: func(*domain.SyncReport, error) {},
	}
}

// OnResult sets the callback invoked after every triggered sync.
func (w *Watcher) OnResult(fn ResultFunc) {
	if fn != nil {
		w.onResult = fn
	}
}

// Run watches until ctx is cancelled. Cancellation is not an error.
func (w *Watcher) Run(ctx context.Context) error {
	if len(w.dirs) == 0 {
		return ErrNoDirectories
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, dir := range w.dirs {
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("watching directory %s: %w", dir, err)
		}
		logger.Info("watching %s", dir)
	}

	return w.loop(ctx, watcher.Events, watcher.Errors)
}

// loop debounces events and runs the sync when the quiet period ends.
func (w *Watcher) loop(ctx context.Context, events <-chan fsnotify.Event, errs <-chan error) error {
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("source changed: %s (%s)", event.Name, event.Op)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)

		case <-fire:
			fire = nil
			if err := w.limiter.Wait(ctx); err != nil {
				// Cancelled while throttled.
				return nil
			}
			report, err := w.service.Sync(ctx, driving.SyncOptions{})
			w.onResult(report, err)
		}
	}
}

// relevant reports whether event may have changed a source document.
func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), sourceExt) {
		return false
	}
	return event.Op&relevantOps != 0
}
