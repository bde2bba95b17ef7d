package state

import (
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval coalesces the burst of events an editor save produces
// into a single change notification.
const debounceInterval = 250 * time.Millisecond

// DirWatcher watches the note data directory and reports changes on a
// single-slot channel. The watcher never calls back into shared state
// itself; the consumer decides when to refresh.
type DirWatcher struct {
	watcher *fsnotify.Watcher
	dir     string
	fileExt string
	changes chan struct{}
	done    chan struct{}
	once    sync.Once
}

// NewDirWatcher starts watching dir for note file changes. The archive
// subdirectory is not watched.
func NewDirWatcher(dir, fileExt string) (*DirWatcher, error) {
	if dir == "" {
		return nil, errors.New("data directory cannot be empty")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return nil, err
	}

	dw := &DirWatcher{
		watcher: w,
		dir:     dir,
		fileExt: strings.TrimPrefix(fileExt, "."),
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	go dw.run()
	return dw, nil
}

// Changes returns the notification channel. It carries at most one
// pending notification; a receive means "something changed since you last
// looked", not a per-file event stream.
func (w *DirWatcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *DirWatcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.isRelevant(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounceInterval)
				fire = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceInterval)
			}
		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.changes <- struct{}{}:
			default:
			}
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *DirWatcher) isRelevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, ".") {
		// Temp files from atomic writes settle as a rename to the
		// final name, which produces its own event.
		return false
	}
	if filepath.Dir(event.Name) != w.dir {
		return false
	}
	if w.fileExt != "" && !strings.HasSuffix(name, "."+w.fileExt) {
		return false
	}
	return true
}

// Close stops the watcher. Safe to call more than once.
func (w *DirWatcher) Close() error {
	var closeErr error
	w.once.Do(func() {
		close(w.done)
		closeErr = w.watcher.Close()
	})
	return closeErr
}
