package git

import (
	"path/filepath"
	"strings"

	"github.com/dylan/commitlabels/fswatch"
	"github.com/fsnotify/fsnotify"
)

// refFiles are the git-dir entries whose changes can alter the log.
var refFiles = map[string]bool{
	"HEAD":        true,
	"ORIG_HEAD":   true,
	"FETCH_HEAD":  true,
	"packed-refs": true,
}

// WatchRepo signals whenever the repository's refs move.
func WatchRepo(repoPath string) (*fswatch.Watcher, error) {
	gitDir, err := GitDir(repoPath)
	if err != nil {
		return nil, err
	}
	heads := filepath.Join(gitDir, "refs", "heads")
	return fswatch.New(filepath.Base(repoPath), refFilter(gitDir), gitDir, heads)
}

func refFilter(gitDir string) fswatch.Filter {
	heads := filepath.Join(gitDir, "refs", "heads")
	return func(ev fsnotify.Event) bool {
		if strings.HasSuffix(ev.Name, ".lock") {
			return false
		}
		if filepath.Dir(ev.Name) == heads {
			return true
		}
		return refFiles[filepath.Base(ev.Name)]
	}
}
