package local

import (
	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/native"
	"github.com/jmgilman/localfs/internal/selector"
)

// LocalFS is a core.FileSystem over the native filesystem.
type LocalFS struct {
	opts Options
}

var _ core.FileSystem = (*LocalFS)(nil)

// New creates a LocalFS from DefaultOptions modified by opts.
func New(opts ...Option) (*LocalFS, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return NewWithOptions(o)
}

// NewWithOptions creates a LocalFS with exactly the given options. It fails
// with errors.CodeInvalidConfig if the options do not validate.
func NewWithOptions(o Options) (*LocalFS, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &LocalFS{opts: o}, nil
}

// Options returns the filesystem configuration.
func (l *LocalFS) Options() Options {
	return l.opts
}

// Type returns core.FSTypeLocal.
func (l *LocalFS) Type() core.FSType {
	return core.FSTypeLocal
}

// Stat implements core.StatFS.
func (l *LocalFS) Stat(path string) (core.FileStats, error) {
	np, err := native.Resolve(path)
	if err != nil {
		return core.FileStats{}, err
	}
	return native.Stat(np)
}

// StatSelector implements core.SelectorFS.
func (l *LocalFS) StatSelector(sel core.Selector) ([]core.FileStats, error) {
	np, err := native.Resolve(sel.BaseDir)
	if err != nil {
		return nil, err
	}
	return selector.New(nativeTree{}, Logger()).Walk(np, sel)
}

// nativeTree exposes the native primitives to the selector.
type nativeTree struct{}

func (nativeTree) Stat(path string) (core.FileStats, error) { return native.Stat(path) }
func (nativeTree) ListDir(dir string) ([]string, error)      { return native.ListDir(dir) }
func (nativeTree) Join(dir, name string) string              { return native.Join(dir, name) }
