// Package fswatch turns fsnotify events on a few directories into coalesced
// change signals.
package fswatch

import (
	"sync"
	"time"

	"github.com/dylan/commitlabels/logging"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// DefaultDebounce is how long the watcher waits for more events before
// signaling.
const DefaultDebounce = 50 * time.Millisecond

// Filter reports whether an event is relevant.
type Filter func(fsnotify.Event) bool

// Watcher monitors directories (non-recursively) for relevant changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	filter    Filter
	wait      time.Duration
	events    chan struct{}
	stop      chan struct{}
	debounce  *time.Timer
	mu        sync.Mutex
	closed    bool
	stopOnce  sync.Once
	log       zerolog.Logger
}

// New watches dirs and signals on Events after each burst of events that
// pass filter. A nil filter accepts everything.
func New(name string, filter Filter, dirs ...string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		fsWatcher: fsw,
		filter:    filter,
		wait:      DefaultDebounce,
		events:    make(chan struct{}, 1),
		stop:      make(chan struct{}),
		log:       logging.Component("watch").With().Str("watch", name).Logger(),
	}

	for _, dir := range dirs {
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, err
		}
	}

	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer func() {
		w.mu.Lock()
		w.closed = true
		if w.debounce != nil {
			w.debounce.Stop()
		}
		w.mu.Unlock()
		close(w.events)
	}()

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if w.filter != nil && !w.filter(event) {
				continue
			}

			w.mu.Lock()
			if w.debounce != nil {
				w.debounce.Stop()
			}
			w.debounce = time.AfterFunc(w.wait, func() {
				w.mu.Lock()
				defer w.mu.Unlock()

				if w.closed {
					return
				}

				select {
				case w.events <- struct{}{}:
				default:
				}
			})
			w.mu.Unlock()
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("watch error")
		}
	}
}

// Events returns a channel that signals when watched files change. It is
// closed after Stop.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

// Stop shuts down the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stop)
		w.fsWatcher.Close()
	})
}
