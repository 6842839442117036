package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the global configuration whenever the config file changes.
// It blocks until stop is closed, so run it on its own goroutine.
func Watch(stop <-chan struct{}) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// Watch the directory rather than the file so that editors which
	// replace the file on save keep triggering events.
	configPath := os.Getenv("JOBPORTAL_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	if err := watcher.Add(configPath); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", configPath, err)
	}

	configFile := filepath.Join(configPath, ConfigFileName)
	log.Printf("Watching %s for configuration changes", configFile)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != configFile {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if err := Reload(); err != nil {
					log.Printf("Error reloading configuration: %v", err)
					continue
				}
				log.Printf("Configuration reloaded from %s", configFile)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("Watcher error: %v", err)
		case <-stop:
			return nil
		}
	}
}
