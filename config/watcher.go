package config

import (
	"github.com/fsnotify/fsnotify"

	"github.com/lanternvr/xrbridge/core"
)

// Watcher reloads a Config from disk whenever the file it watches
// changes, handing each new value to onChange. The host is expected to
// apply the new values (e.g. ZNear/ZFar) at the start of its next
// frame, not mid-frame.
type Watcher struct {
	path     string
	fsnotify *fsnotify.Watcher
	done     chan struct{}
}

// NewWatcher starts watching path and invokes onChange with an initial
// Load and on every subsequent write.
func NewWatcher(path string, onChange func(Config)) (*Watcher, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}
	onChange(cfg)

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(path); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		path:     path,
		fsnotify: fsWatch,
		done:     make(chan struct{}),
	}
	go w.watch(onChange)
	return w, nil
}

func (w *Watcher) watch(onChange func(Config)) {
	for {
		select {
		case ev, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				core.LogWarn("reloading config %q: %v", w.path, err)
				continue
			}
			onChange(cfg)
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogWarn("config watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsnotify.Close()
}
