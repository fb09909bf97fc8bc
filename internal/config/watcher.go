package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/Conor-Code-Logistic-Tech/brandability/internal/infrastructure/monitoring/logging"
)

// Watcher hot-reloads the config file, invoking a callback with each newly
// validated Config.  Intended for non-critical settings such as log level and
// decision tunables; callers apply only the subset that is safe to change at
// runtime.
type Watcher struct {
	path     string
	logger   logging.Logger
	onChange func(*Config)
	fsw      *fsnotify.Watcher
	done     chan struct{}
}

// WatchFile starts watching configPath.  The callback runs on a background
// goroutine; a changed file that fails to parse or validate is logged and
// skipped, never delivered.
func WatchFile(configPath string, logger logging.Logger, onChange func(*Config)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("config: failed to create file watcher: %w", err)
	}

	// Watch the directory, not the file: editors and config-map updates
	// replace the file, which drops a file-level watch.
	if err := fsw.Add(filepath.Dir(configPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("config: failed to watch %q: %w", configPath, err)
	}

	w := &Watcher{
		path:     configPath,
		logger:   logger.Named("config-watcher"),
		onChange: onChange,
		fsw:      fsw,
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.logger.Warn("ignoring invalid config change",
					logging.String("path", w.path), logging.Err(err))
				continue
			}
			w.logger.Info("config reloaded", logging.String("path", w.path))
			w.onChange(cfg)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.logger.Error("config watch error", logging.Err(err))
		}
	}
}

// Close stops the watcher.  Safe to call once.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
