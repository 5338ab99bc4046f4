package prefabs

import (
	"io/fs"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce collapses the burst of events editors emit for one save.
const DefaultDebounce = 100 * time.Millisecond

// Watcher reports prefab files edited on disk so the game can reload them
// between ticks. Only files that also exist in the embedded set are
// reported, by bare name, ready for Load.
type Watcher struct {
	notify   *fsnotify.Watcher
	debounce time.Duration

	changed chan string
	errs    chan error

	done      chan struct{}
	exited    chan struct{}
	closeOnce sync.Once
	closeErr  error
}

func NewWatcher(dirs ...string) (*Watcher, error) {
	return newWatcher(DefaultDebounce, dirs...)
}

func newWatcher(debounce time.Duration, dirs ...string) (*Watcher, error) {
	notify, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	for _, dir := range dirs {
		if err := notify.Add(dir); err != nil {
			_ = notify.Close()
			return nil, err
		}
	}

	w := &Watcher{
		notify:   notify,
		debounce: debounce,
		changed:  make(chan string, 16),
		errs:     make(chan error, 1),
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Changed delivers prefab names. It is closed once the watcher stops.
func (w *Watcher) Changed() <-chan string { return w.changed }
func (w *Watcher) Errors() <-chan error   { return w.errs }

// Close stops watching and waits for the delivery goroutine to finish.
// It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		close(w.done)
		<-w.exited
		w.closeErr = w.notify.Close()
	})
	return w.closeErr
}

// run is the only sender on changed and errs, and closes both on exit.
func (w *Watcher) run() {
	defer close(w.exited)
	defer close(w.errs)
	defer close(w.changed)

	last := make(map[string]time.Time)
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.notify.Events:
			if !ok {
				return
			}
			name, ok := prefabFor(event)
			if !ok {
				continue
			}
			now := time.Now()
			if t, seen := last[name]; seen && now.Sub(t) < w.debounce {
				continue
			}
			last[name] = now
			select {
			case w.changed <- name:
			case <-w.done:
				return
			}
		case err, ok := <-w.notify.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			case <-w.done:
				return
			}
		}
	}
}

// prefabFor maps a file event to the embedded prefab it overrides.
// Removing the disk copy counts too, since Load falls back to the embed.
func prefabFor(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
		return "", false
	}
	name := filepath.Base(event.Name)
	if _, err := fs.Stat(Embedded, name); err != nil {
		return "", false
	}
	return name, true
}
