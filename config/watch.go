package config

import (
	"path/filepath"

	"github.com/dylan/commitlabels/fswatch"
	"github.com/fsnotify/fsnotify"
)

// Watch signals whenever the config file at path is written, created or
// replaced. The directory is watched so editors that save by rename are
// still seen.
func Watch(path string) (*fswatch.Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return fswatch.New("config", func(ev fsnotify.Event) bool {
		return filepath.Clean(ev.Name) == abs && !ev.Has(fsnotify.Chmod)
	}, filepath.Dir(abs))
}
