package watch

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors the currently browsed directory and reports external
// changes so the listing can be refreshed. Events are debounced; onChange
// must hand the refresh off to the app's event loop, not mutate state.
type Watcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	dir      string
	timer    *time.Timer
	onChange func()
}

const debounceDelay = 200 * time.Millisecond

func New(onChange func()) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{watcher: fw, onChange: onChange}, nil
}

// SetDir switches the watched directory. Errors adding the new directory
// are ignored; an unwatchable directory just gets no refreshes.
func (w *Watcher) SetDir(dir string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dir == dir {
		return
	}
	if w.dir != "" {
		_ = w.watcher.Remove(w.dir)
	}
	w.dir = dir
	_ = w.watcher.Add(dir)
}

// Start begins watching for changes. Blocks until Stop is called.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) || event.Has(fsnotify.Write) {
				w.scheduleChange()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) scheduleChange() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, func() {
		if w.onChange != nil {
			w.onChange()
		}
	})
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	return w.watcher.Close()
}
