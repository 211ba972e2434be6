package watcher

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher observes a single file and invokes a debounced callback whenever
// it is written, created, or renamed. The watch is placed on the parent
// directory so atomic rename-into-place updates are caught.
type Watcher struct {
	path     string
	fw       *fsnotify.Watcher
	debounce *Debouncer
	done     chan struct{}
}

// Watch starts watching path and calls onChange (debounced) on changes.
func Watch(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve watch path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		fw:       fw,
		debounce: NewDebouncer(debounce),
		done:     make(chan struct{}),
	}
	go w.loop(onChange)
	return w, nil
}

func (w *Watcher) loop(onChange func()) {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if event.Name != w.path {
				// sqlite journals and temp files share the directory
				if event.Name != w.path+"-wal" && event.Name != w.path+"-journal" {
					continue
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.debounce.Trigger(onChange)
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are transient on the platforms we care about;
			// the next event or manual refresh recovers.
		}
	}
}

// Close stops the watch and cancels any pending callback.
func (w *Watcher) Close() error {
	close(w.done)
	w.debounce.Cancel()
	return w.fw.Close()
}
