package watch

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	"annoscape/source"
)

// Watcher keeps the label inventory of a corpus folder current by watching
// the folder for filesystem changes. Bursts of events (an unzip, an rsync)
// collapse into a single refresh.
type Watcher struct {
	folder    string
	onChange  func(labels []string)
	watcher   *fsnotify.Watcher
	debounced func(func())
	done      chan struct{}
	stopOnce  sync.Once

	mu     sync.Mutex
	labels []string
}

// New creates a watcher over folder. onChange runs after every refresh that
// changed the label inventory and may be nil.
func New(folder string, onChange func(labels []string)) (*Watcher, error) {
	labels, err := source.Labels(folder)
	if err != nil {
		return nil, err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(folder); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		folder:    folder,
		onChange:  onChange,
		watcher:   fsw,
		debounced: debounce.New(500 * time.Millisecond),
		done:      make(chan struct{}),
		labels:    labels,
	}, nil
}

// Start begins delivering refreshes in the background.
func (w *Watcher) Start() {
	go func() {
		for {
			select {
			case <-w.done:
				return
			case _, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.debounced(w.refresh)
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logrus.WithError(err).Warn("label watcher error")
			}
		}
	}()
}

func (w *Watcher) refresh() {
	labels, err := source.Labels(w.folder)
	if err != nil {
		logrus.WithError(err).Warn("could not refresh labels")
		return
	}
	w.mu.Lock()
	changed := !sameLabels(w.labels, labels)
	if changed {
		w.labels = labels
	}
	w.mu.Unlock()

	if changed && w.onChange != nil {
		out := make([]string, len(labels))
		copy(out, labels)
		w.onChange(out)
	}
}

// Labels returns the current label inventory.
func (w *Watcher) Labels() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.labels))
	copy(out, w.labels)
	return out
}

// Stop shuts the watcher down and releases the underlying filesystem
// watcher. Safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
}

func sameLabels(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
