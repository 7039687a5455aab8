// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the directory holding the target file, so editors that save by
// rename-and-replace keep triggering events, filters events down to the target
// file, and debounces bursts (editors often write several times per save).
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before onChange fires.
const DefaultDebounce = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw       *fsnotify.Watcher
	done     chan struct{}
	debounce time.Duration
	onError  func(error)
	stopped  bool
	mu       sync.Mutex
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) { w.debounce = d }
}

// WithErrorHandler receives fsnotify errors. By default they are dropped;
// fsnotify recovers on its own.
func WithErrorHandler(fn func(error)) Option {
	return func(w *Watcher) { w.onError = fn }
}

// NewWatcher creates a new file system watcher.
func NewWatcher(opts ...Option) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:       fw,
		done:     make(chan struct{}),
		debounce: DefaultDebounce,
	}
	for _, o := range opts {
		o(w)
	}
	return w, nil
}

// Watch starts monitoring filePath. onChange is called with the absolute
// path of the file after writes, creates, removes, and renames.
func (w *Watcher) Watch(filePath string, onChange func(filePath string)) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(absPath)); err != nil {
		return err
	}

	var timer *time.Timer
	fire := func() { onChange(absPath) }
	go func() {
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != absPath {
					continue
				}
				if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
					continue
				}

				switch {
				case w.debounce <= 0:
					fire()
				case timer == nil:
					timer = time.AfterFunc(w.debounce, fire)
				default:
					timer.Reset(w.debounce)
				}

			case err, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				if w.onError != nil {
					w.onError(err)
				}

			case <-w.done:
				if timer != nil {
					timer.Stop()
				}
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases all resources.
// Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
