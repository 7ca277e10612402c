// Package watch observes a session's directory and reports files of the
// session's type appearing or disappearing while the sequence is running.
// It is informational only; the sequence itself always relists the directory
// when it advances.
package watch

import (
	"fmt"
	"os"
	"sync"
	"time"

	"filestep/internal/log"
	"filestep/pkg/types"

	"github.com/fsnotify/fsnotify"
)

// FileEvent is one matching-file change seen in the watched directory.
type FileEvent struct {
	Path      string
	Op        fsnotify.Op
	Timestamp time.Time
}

// Watcher monitors one directory for changes to files of one type.
type Watcher struct {
	directory string
	filter    types.FileTypeFilter

	eventChan chan FileEvent
	stopChan  chan struct{}
	fsWatcher *fsnotify.Watcher

	mutex   sync.Mutex
	running bool
}

// New creates a watcher for files matching filter in dir.
func New(dir string, filter types.FileTypeFilter) (*Watcher, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("error accessing directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		closeErr := fsWatcher.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("failed to watch %s: %w (close: %v)", dir, err, closeErr)
		}
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		directory: dir,
		filter:    filter,
		eventChan: make(chan FileEvent, 10),
		stopChan:  make(chan struct{}),
		fsWatcher: fsWatcher,
	}, nil
}

// Events returns the channel delivering matching-file events.
func (w *Watcher) Events() <-chan FileEvent {
	return w.eventChan
}

// Start begins watching. It returns an error if the watcher already runs.
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	go func() {
		log.LogWithFields(log.F("directory", w.directory), log.F("type", w.filter.Name)).
			Debug("watcher started")

		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return
				}
				if !w.filter.Matches(event.Name) {
					continue
				}
				select {
				case w.eventChan <- FileEvent{Path: event.Name, Op: event.Op, Timestamp: time.Now()}:
				case <-w.stopChan:
					return
				}
			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return
				}
				log.Warn("watcher error: %v", err)
			case <-w.stopChan:
				return
			}
		}
	}()

	return nil
}

// Stop ends the watch and releases the fsnotify watcher.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if !w.running {
		return
	}
	w.running = false
	close(w.stopChan)
	if err := w.fsWatcher.Close(); err != nil {
		log.Warn("error closing watcher: %v", err)
	}
}
