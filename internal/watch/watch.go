// Package watch re-runs the importer when the source notes directory
// changes.
package watch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce batches bursts of filesystem events (editors write, rename, and
// touch in quick succession) into a single import pass.
const debounce = 500 * time.Millisecond

// Run watches sourceDir (and its subdirectories when recursive) and calls
// sync after each debounced burst of .md changes. It blocks until ctx is
// cancelled.
func Run(ctx context.Context, sourceDir string, recursive bool, logger *slog.Logger, sync func(context.Context)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if recursive {
		if err := addDirsRecursive(w, sourceDir); err != nil {
			return err
		}
	} else if err := w.Add(sourceDir); err != nil {
		return err
	}

	logger.Info("watcher: started", slog.String("root", sourceDir))

	var timer *time.Timer
	var fire <-chan time.Time

	schedule := func() {
		if timer == nil {
			timer = time.NewTimer(debounce)
			fire = timer.C
		} else {
			timer.Reset(debounce)
		}
	}

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("watcher: stopped")
			return nil

		case <-fire:
			logger.Debug("watcher: change burst settled, syncing")
			sync(ctx)

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			// New directories join the watch list in recursive mode.
			if recursive && ev.Op&fsnotify.Create != 0 {
				if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
					if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
						logger.Warn("watcher: add new dir failed",
							slog.String("path", ev.Name),
							slog.String("error", addErr.Error()))
					}
					schedule()
					continue
				}
			}

			if !strings.HasSuffix(ev.Name, ".md") {
				continue
			}
			logger.Debug("watcher: note event",
				slog.String("path", ev.Name),
				slog.String("op", ev.Op.String()))
			schedule()

		case watchErr, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher: error", slog.String("error", watchErr.Error()))
		}
	}
}

// addDirsRecursive adds root and all its subdirectories to the watcher.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.Add(path)
		}
		return nil
	})
}
