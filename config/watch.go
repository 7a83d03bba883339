package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// reloadDebounce collapses the burst of events editors emit on save.
const reloadDebounce = 100 * time.Millisecond

// TuningWatcher reloads the tuning file whenever it changes on disk.
type TuningWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Reloads chan BehaviorConfig
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
	done    sync.WaitGroup
}

// WatchTuning starts watching path's directory. Editors often replace the
// file on save, so the directory is watched rather than the file itself.
func WatchTuning(path string) (*TuningWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	tw := &TuningWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Reloads: make(chan BehaviorConfig, 1),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	tw.done.Add(1)
	go tw.run()
	return tw, nil
}

func (w *TuningWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.done.Wait()
		close(w.Reloads)
		close(w.Errors)
	})
	return err
}

func (w *TuningWatcher) run() {
	defer w.done.Done()
	var timer *time.Timer
	var fire <-chan time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			// Reload once the burst has settled.
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *TuningWatcher) reload() {
	b, err := LoadTuning(w.path)
	if err != nil {
		log.Printf("Warning: tuning reload failed, keeping previous values: %v", err)
		w.report(err)
		return
	}
	SetBehaviors(b)
	log.Printf("Reloaded tuning from %s", w.path)
	select {
	case w.Reloads <- b:
	default:
	}
}

func (w *TuningWatcher) report(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}
