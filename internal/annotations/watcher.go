package annotations

import (
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"swatch/internal/logging"
)

const DefaultDebounce = 250 * time.Millisecond

type ReloadFunc func(values []string, err error)

// Watcher re-reads one annotation file whenever it changes on disk. Bursts
// of events are collapsed into a single reload.
type Watcher struct {
	path      string
	attribute string
	watcher   *fsnotify.Watcher
	debounced func(f func())
	onReload  ReloadFunc
	closed    atomic.Bool
	done      chan struct{}
	wg        sync.WaitGroup
	logger    zerolog.Logger
}

func Watch(path string, attribute string, delay time.Duration, onReload ReloadFunc) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve annotation path: %w", err)
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create annotation watcher: %w", err)
	}

	// Watch the directory so editors that replace the file are still seen.
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(absPath), err)
	}

	w := &Watcher{
		path:      filepath.Clean(absPath),
		attribute: attribute,
		watcher:   fsWatcher,
		debounced: debounce.New(delay),
		onReload:  onReload,
		done:      make(chan struct{}),
		logger:    logging.For("annotations"),
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

func (w *Watcher) Close() error {
	if !w.closed.CompareAndSwap(false, true) {
		return nil
	}

	close(w.done)
	err := w.watcher.Close()
	w.wg.Wait()

	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			w.debounced(w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn().Err(err).Str("path", w.path).Msg("annotation watcher error")
		}
	}
}

func (w *Watcher) reload() {
	if w.closed.Load() {
		return
	}

	values, err := ReadFile(w.path, w.attribute)
	if w.closed.Load() {
		return
	}

	if w.onReload != nil {
		w.onReload(values, err)
	}
}
