package vscode

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/wethinkt/go-vstoolbox/internal/tuilog"
)

// DefaultDebounce is how long the watcher waits after the last write to a
// store before reporting it. The editor writes the store in bursts.
const DefaultDebounce = 500 * time.Millisecond

// StoreEvent reports that an installation's settings store changed.
type StoreEvent struct {
	Installation Installation
	Path         string
}

// StoreWatcher watches the settings stores of a set of installations.
type StoreWatcher struct {
	watcher  *fsnotify.Watcher
	dirs     map[string]Installation
	debounce time.Duration
	done     chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
}

// NewStoreWatcher creates a watcher for the globalStorage directories of
// installations under root. Directories that do not exist are skipped.
func NewStoreWatcher(root string, installations []Installation, debounce time.Duration) (*StoreWatcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &StoreWatcher{
		watcher:  fw,
		dirs:     make(map[string]Installation),
		debounce: debounce,
		done:     make(chan struct{}),
	}
	for _, inst := range installations {
		dir := filepath.Dir(StorePath(inst, root))
		if err := fw.Add(dir); err != nil {
			tuilog.Log.Warn("StoreWatcher: cannot watch", "dir", dir, "error", err)
			continue
		}
		w.dirs[filepath.Clean(dir)] = inst
		tuilog.Log.Debug("StoreWatcher: watching", "dir", dir, "installation", inst.ID())
	}
	return w, nil
}

// Watching returns the number of watched directories.
func (w *StoreWatcher) Watching() int {
	return len(w.dirs)
}

// Start begins watching and returns a channel of store events. The channel
// is closed when ctx is canceled or Stop is called.
func (w *StoreWatcher) Start(ctx context.Context) <-chan StoreEvent {
	events := make(chan StoreEvent, 8)
	go w.watchLoop(ctx, events)
	return events
}

// Stop stops the watcher and releases its resources.
func (w *StoreWatcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.watcher.Close()
	})
	return err
}

func (w *StoreWatcher) watchLoop(ctx context.Context, events chan<- StoreEvent) {
	var wg sync.WaitGroup
	defer func() {
		wg.Wait()
		close(events)
	}()

	timers := make(map[Installation]*time.Timer)
	defer func() {
		w.mu.Lock()
		for _, t := range timers {
			if t.Stop() {
				wg.Done()
			}
		}
		w.mu.Unlock()
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isStoreFile(event.Name) {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			inst, ok := w.dirs[filepath.Clean(filepath.Dir(event.Name))]
			if !ok {
				continue
			}

			w.mu.Lock()
			if t, ok := timers[inst]; ok && t.Stop() {
				wg.Done()
			}
			wg.Add(1)
			path := event.Name
			timers[inst] = time.AfterFunc(w.debounce, func() {
				defer wg.Done()
				select {
				case events <- StoreEvent{Installation: inst, Path: path}:
					tuilog.Log.Debug("StoreWatcher: store changed", "installation", inst.ID(), "path", path)
				case <-ctx.Done():
				case <-w.done:
				}
			})
			w.mu.Unlock()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			tuilog.Log.Error("StoreWatcher: error", "error", err)

		case <-w.done:
			return
		case <-ctx.Done():
			return
		}
	}
}

// isStoreFile matches state.vscdb and its journal files.
func isStoreFile(path string) bool {
	return strings.HasPrefix(filepath.Base(path), "state.vscdb")
}
