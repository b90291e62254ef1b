package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/yildizm/landing/internal/logger"
)

// fileWatcher reports changes to one file. It watches the parent directory
// so that files replaced by rename, as atomic writers and most editors do,
// keep being tracked.
type fileWatcher struct {
	watcher *fsnotify.Watcher
	target  string
	log     *logger.Logger
}

// newFileWatcher starts watching path. Events are only delivered by Run.
func newFileWatcher(path string) (*fileWatcher, error) {
	if err := validateWatchFilePath(path); err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch file: %w", err)
	}

	return &fileWatcher{
		watcher: watcher,
		target:  target,
		log:     newLogger("watch"),
	}, nil
}

// Run calls onChange after every write to the file until ctx is done.
func (w *fileWatcher) Run(ctx context.Context, onChange func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !w.matches(event) {
				continue
			}
			w.log.DebugWithFields("File changed", []logger.Field{
				logger.F("path", event.Name),
				logger.F("op", event.Op.String()),
			})
			onChange()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.log.Warn("Watcher error: %v", err)
		}
	}
}

// matches reports whether event is a write or creation of the target
func (w *fileWatcher) matches(event fsnotify.Event) bool {
	name, err := filepath.Abs(event.Name)
	if err != nil || name != w.target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

// Close stops watching
func (w *fileWatcher) Close() {
	if err := w.watcher.Close(); err != nil {
		w.log.Warn("Failed to close watcher: %v", err)
	}
}

// validateWatchFilePath validates that a file path is safe to watch
func validateWatchFilePath(path string) error {
	// Check for empty path
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}

	// Clean the path to resolve . and .. elements
	cleanPath := filepath.Clean(path)

	// Check for path traversal attempts
	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	return validateFilePath(cleanPath)
}
