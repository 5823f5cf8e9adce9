package tuning

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/automoto/hopper/shared/motion"
)

const debounce = 100 * time.Millisecond

// Watcher reloads a tuning file whenever it changes on disk. Successfully
// parsed values arrive on Updates; read or parse failures arrive on Errors
// and leave the previous values in force.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	Updates chan motion.Tuning
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// Watch starts watching path. The parent directory is watched so editors
// that save by rename are still seen.
func Watch(path string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	clean := filepath.Clean(path)
	if err := w.Add(filepath.Dir(clean)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &Watcher{
		path:    clean,
		watcher: w,
		Updates: make(chan motion.Tuning, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Path() string {
	return w.path
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// run reloads once the file has been quiet for the debounce window, so a
// truncate followed by a write yields a single reload of the final content.
func (w *Watcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

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
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			t, err := Load(w.path)
			if err != nil {
				w.send(nil, err)
				continue
			}
			w.send(&t, nil)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.send(nil, err)
		case <-w.closeCh:
			return
		}
	}
}

// send never blocks. A value is dropped if the consumer is behind.
func (w *Watcher) send(t *motion.Tuning, err error) {
	if t != nil {
		select {
		case w.Updates <- *t:
		case <-w.closeCh:
		default:
		}
		return
	}
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	default:
	}
}
