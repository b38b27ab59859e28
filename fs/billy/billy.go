package billy

import (
	"io/fs"
	"path"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"

	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/native"
	"github.com/jmgilman/localfs/internal/selector"
)

// FS implements core.FileSystem over a billy.Filesystem.
type FS struct {
	bfs    billy.Filesystem
	fsType core.FSType
	cfg    config

	mu sync.RWMutex
}

var _ core.FileSystem = (*FS)(nil)

// Option configures filesystem creation.
type Option func(*config)

type config struct {
	dirPerm         fs.FileMode
	filePerm        fs.FileMode
	copyChunkSize   int
	writeBufferSize int
	logger          *zap.Logger
}

// WithDirPerm sets the permission bits for created directories.
func WithDirPerm(perm fs.FileMode) Option {
	return func(c *config) { c.dirPerm = perm }
}

// WithFilePerm sets the permission bits for created files.
func WithFilePerm(perm fs.FileMode) Option {
	return func(c *config) { c.filePerm = perm }
}

// WithWriteBufferSize sets the output stream buffer size in bytes.
// Values <= 0 are ignored.
func WithWriteBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.writeBufferSize = n
		}
	}
}

// WithCopyChunkSize sets the CopyFile buffer size in bytes.
// Values <= 0 are ignored.
func WithCopyChunkSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.copyChunkSize = n
		}
	}
}

// WithLogger sets the logger used for diagnostics. Defaults to a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) { c.logger = l }
}

// New wraps an existing billy.Filesystem. fsType is reported by Type.
func New(bfs billy.Filesystem, fsType core.FSType, opts ...Option) *FS {
	cfg := config{
		dirPerm:         0o777,
		filePerm:        0o666,
		copyChunkSize:   core.DefaultCopyChunkSize,
		writeBufferSize: 64 * 1024,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return &FS{bfs: bfs, fsType: fsType, cfg: cfg}
}

// NewLocal creates a go-billy-backed filesystem rooted at the host
// directory root. Portable paths are interpreted relative to root.
func NewLocal(root string, opts ...Option) *FS {
	return New(osfs.New(root), core.FSTypeLocal, opts...)
}

// NewMemory creates a go-billy-backed in-memory filesystem.
// The filesystem is initially empty.
func NewMemory(opts ...Option) *FS {
	return New(memfs.New(), core.FSTypeMemory, opts...)
}

// Unwrap returns the underlying billy.Filesystem.
func (b *FS) Unwrap() billy.Filesystem {
	return b.bfs
}

// Type returns the FSType given at construction.
func (b *FS) Type() core.FSType {
	return b.fsType
}

// resolve validates a portable path and normalizes it for billy.
// resolve validates p and cleans it lexically. go-billy filesystems have no
// native ".." handling of their own, so dot-dot elements are collapsed here.
func resolve(p string) (string, error) {
	np, err := native.Resolve(p)
	if err != nil {
		return "", err
	}
	return path.Clean(filepath.ToSlash(np)), nil
}

// Stat implements core.StatFS.
func (b *FS) Stat(p string) (core.FileStats, error) {
	bp, err := resolve(p)
	if err != nil {
		return core.FileStats{}, err
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.stat(bp)
}

// StatSelector implements core.SelectorFS.
func (b *FS) StatSelector(sel core.Selector) ([]core.FileStats, error) {
	bp, err := resolve(sel.BaseDir)
	if err != nil {
		return nil, err
	}
	return selector.New(lockedTree{b}, b.cfg.logger).Walk(bp, sel)
}

func (b *FS) stat(p string) (core.FileStats, error) {
	fi, err := b.bfs.Stat(p)
	if err != nil {
		if native.IsNonExistent(err) {
			return core.NonExistentStats(p), nil
		}
		return core.FileStats{}, native.IOError(err, "stat", p, "Failed stat()ing path '%s'", p)
	}
	return native.FromFileInfo(p, fi), nil
}

func (b *FS) listDir(dir string) ([]string, error) {
	st, err := b.stat(dir)
	if err != nil {
		return nil, err
	}
	switch {
	case !st.Exists():
		return nil, native.IOError(syscall.ENOENT, "list", dir, "Cannot list directory '%s'", dir)
	case !st.IsDir():
		return nil, native.IOError(syscall.ENOTDIR, "list", dir, "Cannot list directory '%s'", dir)
	}

	infos, err := b.bfs.ReadDir(dir)
	if err != nil {
		return nil, native.IOError(err, "list", dir, "Cannot list directory '%s'", dir)
	}
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name()
	}
	return names, nil
}

// lockedTree exposes the backend to the selector, taking the read lock
// around each primitive rather than across the whole walk.
type lockedTree struct {
	b *FS
}

func (t lockedTree) Stat(p string) (core.FileStats, error) {
	t.b.mu.RLock()
	defer t.b.mu.RUnlock()
	return t.b.stat(p)
}

func (t lockedTree) ListDir(dir string) ([]string, error) {
	t.b.mu.RLock()
	defer t.b.mu.RUnlock()
	return t.b.listDir(dir)
}

func (t lockedTree) Join(dir, name string) string {
	return path.Join(dir, name)
}
