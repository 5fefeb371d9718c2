package assets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/pixello/engine/core"
)

const defaultQueueSize = 64

// KindOf classifies an asset by its file extension.
func KindOf(path string) core.AssetKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".bmp", ".jpg", ".jpeg", ".gif", ".tga":
		return core.ASSET_KIND_IMAGE
	case ".ttf", ".otf":
		return core.ASSET_KIND_FONT
	case ".fnt":
		return core.ASSET_KIND_BITMAP_FONT
	case ".wav":
		return core.ASSET_KIND_SOUND
	case ".mod", ".xm", ".s3m", ".it", ".ogg", ".mp3", ".mid", ".flac":
		return core.ASSET_KIND_MUSIC
	case ".toml", ".yaml", ".yml":
		return core.ASSET_KIND_CONFIG
	default:
		return core.ASSET_KIND_NONE
	}
}

// Watcher reports changes below an assets directory. The fsnotify goroutine
// only queues events; the engine drains them from the loop goroutine so the
// game sees them in order with the other frame events.
type Watcher struct {
	root     string
	fsnotify *fsnotify.Watcher
	queue    chan core.FileChangedEvent
	done     chan struct{}
	wg       sync.WaitGroup

	closeOnce sync.Once
	mutex     sync.Mutex
	dropped   int
}

func NewWatcher(root string) (*Watcher, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, errors.New("asset root is not a directory: " + root)
	}

	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		root:     root,
		fsnotify: fsWatch,
		queue:    make(chan core.FileChangedEvent, defaultQueueSize),
		done:     make(chan struct{}),
	}
	if err := w.watchRecursive(root); err != nil {
		fsWatch.Close()
		return nil, err
	}

	w.wg.Add(1)
	go w.start()
	return w, nil
}

// watchRecursive adds the directory and every sub-directory to the watch list.
func (w *Watcher) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return w.fsnotify.Add(walkPath)
		}
		return nil
	})
}

func (w *Watcher) start() {
	defer w.wg.Done()
	for {
		select {
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			w.handle(e)

		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError("asset watcher: %s", err)

		case <-w.done:
			return
		}
	}
}

func (w *Watcher) handle(e fsnotify.Event) {
	if e.Op&fsnotify.Create != 0 {
		if s, err := os.Stat(e.Name); err == nil && s.IsDir() {
			if err := w.watchRecursive(e.Name); err != nil {
				core.LogWarn("asset watcher: cannot watch %s: %s", e.Name, err)
			}
			return
		}
	}

	var op core.FileOp
	switch {
	case e.Op&fsnotify.Create != 0:
		op = core.FILE_OP_CREATE
	case e.Op&fsnotify.Write != 0:
		op = core.FILE_OP_WRITE
	case e.Op&fsnotify.Remove != 0:
		op = core.FILE_OP_REMOVE
	case e.Op&fsnotify.Rename != 0:
		op = core.FILE_OP_RENAME
	default:
		return
	}

	kind := KindOf(e.Name)
	if kind == core.ASSET_KIND_NONE {
		return
	}

	ev := core.FileChangedEvent{Path: e.Name, Asset: kind, Op: op}
	select {
	case w.queue <- ev:
	default:
		// Never block the watcher on a stalled frame.
		w.mutex.Lock()
		w.dropped++
		w.mutex.Unlock()
	}
}

// Drain hands every queued event to fn without blocking.
func (w *Watcher) Drain(fn func(core.FileChangedEvent)) int {
	n := 0
	for {
		select {
		case ev := <-w.queue:
			fn(ev)
			n++
		default:
			return n
		}
	}
}

// Dropped returns how many events were discarded because the queue was full.
func (w *Watcher) Dropped() int {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.dropped
}

func (w *Watcher) Root() string {
	return w.root
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		w.wg.Wait()
		err = w.fsnotify.Close()
	})
	return err
}
