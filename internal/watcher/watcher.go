// Package watcher reports changes to a set of files, coalescing bursts of
// writes into one notification per file.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/osuushi/collinear/internal/logging"
	"github.com/pkg/errors"
)

type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	files    map[string]bool
}

func New(debounce time.Duration) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}
	return &Watcher{
		watcher:  w,
		debounce: debounce,
		files:    make(map[string]bool),
	}, nil
}

// Add starts watching files. The containing directories are watched rather
// than the files themselves, so editors that save by renaming a temporary file
// over the original are still seen.
func (w *Watcher) Add(files ...string) error {
	for _, file := range files {
		abs, err := filepath.Abs(file)
		if err != nil {
			return errors.Wrapf(err, "resolving %s", file)
		}
		if err := w.watcher.Add(filepath.Dir(abs)); err != nil {
			return errors.Wrapf(err, "watching %s", abs)
		}
		w.files[abs] = true
	}
	return nil
}

// Watch blocks until ctx is done or the watcher is closed, calling onChange
// with the absolute path of each file that was written or recreated, once the
// file has been quiet for the debounce interval. onChange runs on the calling
// goroutine.
func (w *Watcher) Watch(ctx context.Context, onChange func(path string)) error {
	pending := make(map[string]bool)
	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || !w.files[name] {
				continue
			}
			pending[name] = true
			timer.Reset(w.debounce)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger().Warn("file watcher error", "error", err)

		case <-timer.C:
			for name := range pending {
				delete(pending, name)
				onChange(name)
			}
		}
	}
}

func (w *Watcher) Close() error {
	return w.watcher.Close()
}
