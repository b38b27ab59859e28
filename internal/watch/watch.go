// Package watch reports changes below a directory tree described by a
// core.Selector. It backs `localfs ls --watch`.
package watch

import (
	"context"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/native"
)

// DefaultDebounce is the quiet period that closes a batch of events.
const DefaultDebounce = 100 * time.Millisecond

// Op is the kind of a change.
type Op int

// Change kinds.
const (
	OpCreate Op = iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

func (o Op) String() string {
	switch o {
	case OpCreate:
		return "create"
	case OpWrite:
		return "write"
	case OpRemove:
		return "remove"
	case OpRename:
		return "rename"
	default:
		return "chmod"
	}
}

// Event is a single change. Path is portable.
type Event struct {
	Op   Op
	Path string
}

// Handler receives a debounced batch of events.
type Handler func([]Event)

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period that closes a batch.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// Watcher watches every directory a selector would list.
type Watcher struct {
	fsys     core.FileSystem
	sel      core.Selector
	notify   *fsnotify.Watcher
	debounce time.Duration
	logger   *zap.Logger

	mu sync.Mutex
	// watched maps a portable directory path to its level: 0 for the base
	// directory, d+1 for a directory found at selector depth d.
	watched map[string]int
}

// New creates a Watcher for sel. The base directory must exist.
func New(fsys core.FileSystem, sel core.Selector, opts ...Option) (*Watcher, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	n, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeIO, "failed to create watcher")
	}

	w := &Watcher{
		fsys:     fsys,
		sel:      sel,
		notify:   n,
		debounce: DefaultDebounce,
		logger:   zap.NewNop(),
		watched:  make(map[string]int),
	}
	for _, opt := range opts {
		opt(w)
	}

	base, err := native.Resolve(sel.BaseDir)
	if err != nil {
		_ = n.Close()
		return nil, err
	}
	if err := w.addTree(native.ToPortable(base), 0); err != nil {
		_ = n.Close()
		return nil, err
	}
	return w, nil
}

// Watched returns the number of directories currently watched.
func (w *Watcher) Watched() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.watched)
}

// Close releases the underlying watches.
func (w *Watcher) Close() error {
	return w.notify.Close()
}

// Run delivers batches of events to h until ctx is done or the watcher is
// closed.
func (w *Watcher) Run(ctx context.Context, h Handler) error {
	var (
		pending []Event
		timer   *time.Timer
		fire    <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.notify.Events:
			if !ok {
				return nil
			}
			e, keep := w.handle(ev)
			if !keep {
				continue
			}
			pending = append(pending, e)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			batch := pending
			pending = nil
			fire = nil
			h(batch)

		case err, ok := <-w.notify.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) (Event, bool) {
	p := filepath.ToSlash(ev.Name)
	w.logger.Debug("event", zap.String("path", p), zap.Stringer("op", ev.Op))

	var op Op
	switch {
	case ev.Has(fsnotify.Create):
		op = OpCreate
		w.maybeAddCreated(p)
	case ev.Has(fsnotify.Write):
		op = OpWrite
	case ev.Has(fsnotify.Remove):
		op = OpRemove
		w.forget(p)
	case ev.Has(fsnotify.Rename):
		op = OpRename
		w.forget(p)
	case ev.Has(fsnotify.Chmod):
		op = OpChmod
	default:
		return Event{}, false
	}
	return Event{Op: op, Path: p}, true
}

// maybeAddCreated starts watching a newly created directory when the
// selector would descend into it.
func (w *Watcher) maybeAddCreated(p string) {
	w.mu.Lock()
	level, ok := w.watched[path.Dir(p)]
	w.mu.Unlock()
	if !ok || !w.sel.Descend(level) {
		return
	}

	st, err := w.fsys.Stat(p)
	if err != nil || !st.IsDir() {
		return
	}
	if err := w.addTree(p, level+1); err != nil {
		w.logger.Debug("cannot watch new directory", zap.String("path", p), zap.Error(err))
	}
}

func (w *Watcher) forget(p string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	prefix := p + "/"
	for dir := range w.watched {
		if dir == p || strings.HasPrefix(dir, prefix) {
			delete(w.watched, dir)
		}
	}
}

// addTree watches dir at level and every directory below it the selector
// would list.
func (w *Watcher) addTree(dir string, level int) error {
	if err := w.add(dir, level); err != nil {
		return err
	}
	if !w.sel.Descend(level) {
		return nil
	}

	sub := core.Selector{
		BaseDir:          dir,
		Recursive:        true,
		MaxRecursion:     w.sel.MaxRecursion - level,
		AllowNonExistent: true,
	}
	entries, err := w.fsys.StatSelector(sub)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		depth := level + depthBelow(dir, e.Path())
		if !w.sel.Descend(depth) {
			continue
		}
		if err := w.add(e.Path(), depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *Watcher) add(dir string, level int) error {
	if err := w.notify.Add(filepath.FromSlash(dir)); err != nil {
		return errors.WithContext(
			errors.Wrapf(err, errors.CodeIO, "Cannot watch directory '%s'", dir),
			"path", dir,
		)
	}
	w.mu.Lock()
	w.watched[dir] = level
	w.mu.Unlock()
	return nil
}

// depthBelow returns the selector depth of p relative to base: 0 for a
// direct child.
func depthBelow(base, p string) int {
	rel := strings.TrimPrefix(p, strings.TrimSuffix(base, "/")+"/")
	return strings.Count(rel, "/")
}
