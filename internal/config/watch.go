package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/andyrewlee/amterm/internal/logging"
	"github.com/andyrewlee/amterm/internal/safego"
)

// Watch reloads the config file whenever it changes and hands the result
// to onChange. It watches the parent directory so editors that replace
// the file (rename-over) keep working. The returned stop function ends
// the watch.
func Watch(path string, onChange func(Config)) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	safego.Go("config.watch", func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(path) {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logging.Warn("config: reload failed: %v", err)
					continue
				}
				logging.Info("config: reloaded %s", path)
				onChange(cfg)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logging.Warn("config: watcher error: %v", err)
			}
		}
	})

	return func() { watcher.Close() }, nil
}
