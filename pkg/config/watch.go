package config

import (
	"log"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the global configuration whenever the config file changes.
// It blocks until the stop channel is closed. Missing config directories are
// not an error; the watcher simply never fires.
func Watch(stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	cfg := Get()
	dir := filepath.Dir(cfg.ConfigFilePath())
	if err := watcher.Add(dir); err != nil {
		// No config directory; nothing to watch.
		<-stop
		return nil
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != cfg.ConfigFilePath() {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err := Reload(); err != nil {
				log.Printf("config reload failed: %v", err)
				continue
			}
			log.Printf("config reloaded from %s", cfg.ConfigFilePath())
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("config watcher error: %v", err)
		case <-stop:
			return nil
		}
	}
}
