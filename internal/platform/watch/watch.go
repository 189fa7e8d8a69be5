// Package watch reports writes to a set of files, using fsnotify with a stat-polling fallback.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SQLite writes land in sidecar files before the main database is touched.
var sidecars = []string{"", "-wal", "-journal"}

type fileState struct {
	size    int64
	modTime time.Time
}

type Watcher struct {
	paths        []string
	pollInterval time.Duration
	onChange     func()

	mu    sync.Mutex
	state map[string]fileState

	stop     chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func New(paths []string, pollInterval time.Duration, onChange func()) *Watcher {
	w := &Watcher{
		paths:        paths,
		pollInterval: pollInterval,
		onChange:     onChange,
		state:        make(map[string]fileState),
		stop:         make(chan struct{}),
	}
	w.snapshot()
	return w
}

// Start begins watching. fsnotify failures are not fatal: polling always runs.
func (w *Watcher) Start() {
	if fsw, err := fsnotify.NewWatcher(); err == nil {
		dirs := map[string]struct{}{}
		for _, p := range w.paths {
			dirs[filepath.Dir(p)] = struct{}{}
		}
		for dir := range dirs {
			_ = fsw.Add(dir)
		}

		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			defer fsw.Close()
			for {
				select {
				case event, ok := <-fsw.Events:
					if !ok {
						return
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 && w.matches(event.Name) {
						w.check()
					}
				case _, ok := <-fsw.Errors:
					if !ok {
						return
					}
				case <-w.stop:
					return
				}
			}
		}()
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		ticker := time.NewTicker(w.pollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				w.check()
			case <-w.stop:
				return
			}
		}
	}()
}

// Stop signals goroutines to exit and waits for them. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stop) })
	w.wg.Wait()
}

func (w *Watcher) matches(name string) bool {
	clean := filepath.Clean(name)
	for _, p := range w.paths {
		base := filepath.Clean(p)
		for _, suffix := range sidecars {
			if clean == base+suffix {
				return true
			}
		}
	}
	return false
}

// check compares the current file states to the last snapshot and fires onChange once
// if anything moved.
func (w *Watcher) check() {
	current := collect(w.paths)

	w.mu.Lock()
	changed := len(current) != len(w.state)
	if !changed {
		for path, st := range current {
			prev, ok := w.state[path]
			if !ok || prev.size != st.size || !prev.modTime.Equal(st.modTime) {
				changed = true
				break
			}
		}
	}
	w.state = current
	w.mu.Unlock()

	if changed && w.onChange != nil {
		w.onChange()
	}
}

func (w *Watcher) snapshot() {
	current := collect(w.paths)
	w.mu.Lock()
	w.state = current
	w.mu.Unlock()
}

func collect(paths []string) map[string]fileState {
	out := make(map[string]fileState)
	for _, p := range paths {
		for _, suffix := range sidecars {
			info, err := os.Stat(p + suffix)
			if err != nil {
				continue
			}
			out[p+suffix] = fileState{size: info.Size(), modTime: info.ModTime()}
		}
	}
	return out
}
