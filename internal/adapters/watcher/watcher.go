package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/volthaus/meshsweep/internal/core/domain"
	"github.com/volthaus/meshsweep/internal/core/ports"
	"go.trai.ch/zerr"
)

// debounceWindow is how long after the last event a change is reported.
const debounceWindow = 250 * time.Millisecond

var _ ports.Watcher = (*Watcher)(nil)

// Watcher implements plan file watching using fsnotify.
type Watcher struct {
	window time.Duration
}

// NewWatcher creates a new plan file watcher.
func NewWatcher() *Watcher {
	return &Watcher{window: debounceWindow}
}

// Watch observes the plan file at path and invokes onChange after each
// debounced modification. It blocks until ctx is cancelled.
//
// The parent directory is watched rather than the file itself: editors
// commonly save via rename, which would silently detach a file watch.
func (w *Watcher) Watch(ctx context.Context, path string, onChange func()) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}
	defer fsWatcher.Close()

	target, err := filepath.Abs(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	if err := fsWatcher.Add(filepath.Dir(target)); err != nil {
		return zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	debouncer := NewDebouncer(w.window, func(_ []string) {
		onChange()
	})
	defer debouncer.Flush()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if !w.concernsTarget(event, target) {
				continue
			}
			debouncer.Add(event.Name)

		case watchErr, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			return zerr.Wrap(watchErr, domain.ErrWatchFailed.Error())
		}
	}
}

// concernsTarget reports whether the event is a content change of the watched
// plan file. Create and Rename cover editors that save via a temp file swap.
func (w *Watcher) concernsTarget(event fsnotify.Event, target string) bool {
	if event.Name != target {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0
}
