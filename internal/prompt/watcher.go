package prompt

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"prdforge/internal/logging"
)

// Watcher reloads a YAML instruction pack into a Holder when the file
// changes on disk. Editors produce bursts of write events, so reloads are
// debounced per path.
type Watcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	packPath    string
	holder      *Holder
	debounceMap map[string]time.Time
	debounceDur time.Duration
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
}

// NewWatcher creates a watcher for the given pack file. Start must be
// called to begin watching.
func NewWatcher(packPath string, holder *Holder) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		watcher:     w,
		packPath:    packPath,
		holder:      holder,
		debounceMap: make(map[string]time.Time),
		debounceDur: 500 * time.Millisecond,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching the pack's directory. Watching the directory
// rather than the file survives editors that replace-on-save.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.packPath)); err != nil {
		return err
	}
	w.running = true

	go w.loop()
	logging.Get(logging.CategoryPrompt).Info("watching prompt pack %s", w.packPath)
	return nil
}

func (w *Watcher) loop() {
	defer close(w.doneCh)
	for {
		select {
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryPrompt).Warn("pack watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != filepath.Clean(w.packPath) {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	w.mu.Lock()
	last, seen := w.debounceMap[event.Name]
	now := time.Now()
	if seen && now.Sub(last) < w.debounceDur {
		w.mu.Unlock()
		return
	}
	w.debounceMap[event.Name] = now
	w.mu.Unlock()

	reg, err := LoadPack(w.packPath)
	if err != nil {
		logging.Get(logging.CategoryPrompt).Error("pack reload failed: %v", err)
		return
	}
	if err := w.holder.Set(reg); err != nil {
		logging.Get(logging.CategoryPrompt).Error("pack rejected: %v", err)
		return
	}
	logging.Get(logging.CategoryPrompt).Info("prompt pack reloaded from %s", w.packPath)
}

// Stop shuts the watcher down and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	w.watcher.Close()
	<-w.doneCh
}
