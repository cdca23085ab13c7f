package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/logging"
)

// reloadDelay coalesces the burst of events editors emit for one save.
const reloadDelay = 50 * time.Millisecond

// Watch reloads the settings file at path whenever it changes and passes
// the result to fn, with a non-nil error when the new content does not
// load. It blocks until ctx is done.
//
// The parent directory is watched rather than the file, so saves that
// replace the file through a rename are seen too.
func Watch(ctx context.Context, path string, fn func(*Settings, error)) error {
	const op = "config.Watch"
	path = filepath.Clean(path)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(op, errors.KindConfig, err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return errors.Wrap(op, errors.KindConfig, err)
	}
	logging.Logger().Debug("watching settings", "path", path)

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				reload = time.After(reloadDelay)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logging.Logger().Warn("settings watcher error", "path", path, "err", err)
		case <-reload:
			reload = nil
			s, err := Load(path)
			if err != nil {
				logging.Logger().Warn("settings reload failed", "path", path, "err", err)
			} else {
				logging.Logger().Info("settings reloaded", "path", path)
			}
			fn(s, err)
		}
	}
}
