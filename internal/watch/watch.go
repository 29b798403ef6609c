// Package watch notifies when the config file changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultQuiet is how long the file must stay untouched before a change
// is reported. Editors tend to write a file in several steps.
const DefaultQuiet = 150 * time.Millisecond

// FileWatcher reports changes to a single file. It watches the parent
// directory so that files replaced by rename are still seen.
type FileWatcher struct {
	path    string
	watcher *fsnotify.Watcher
	logger  *zap.Logger
	quiet   time.Duration
}

// New starts watching path.
func New(path string, logger *zap.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	return &FileWatcher{path: abs, watcher: w, logger: logger, quiet: DefaultQuiet}, nil
}

// SetQuiet changes the debounce period.
func (fw *FileWatcher) SetQuiet(d time.Duration) {
	fw.quiet = d
}

// Run calls onChange once per burst of writes to the file, until ctx is
// done or the watcher is closed. It closes the watcher on return.
func (fw *FileWatcher) Run(ctx context.Context, onChange func()) error {
	defer fw.watcher.Close()

	timer := time.NewTimer(fw.quiet)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			fw.logger.Debug("config file event", zap.String("path", ev.Name), zap.String("op", ev.Op.String()))
			timer.Reset(fw.quiet)

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn("config watcher error", zap.Error(err))

		case <-timer.C:
			fw.logger.Info("config file changed", zap.String("path", fw.path))
			onChange()
		}
	}
}
