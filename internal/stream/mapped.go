package stream

import (
	"io"
	"os"
	"sync"

	"golang.org/x/exp/mmap"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/internal/native"
)

// Mapped is a random-access reader over a read-only memory mapping of a
// file. The mapping is fixed at open time; later growth of the file is not
// visible.
type Mapped struct {
	path string

	mu     sync.RWMutex
	r      *mmap.ReaderAt
	off    int64
	closed bool
}

// OpenMapped maps the file at path into memory. Directories are rejected
// before any mapping is attempted.
func OpenMapped(path string) (*Mapped, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, native.IOError(err, "open", path, "Failed to open local file '%s'", path)
	}
	if fi.IsDir() {
		return nil, IsDirError(path)
	}
	r, err := mmap.Open(path)
	if err != nil {
		return nil, native.IOError(err, "mmap", path, "Failed to memory-map file '%s'", path)
	}
	return &Mapped{path: path, r: r}, nil
}

// Read implements io.Reader.
func (m *Mapped) Read(p []byte) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, closedError("read", m.path)
	}
	if m.off >= int64(m.r.Len()) {
		return 0, io.EOF
	}
	n, err := m.r.ReadAt(p, m.off)
	m.off += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// ReadAt implements io.ReaderAt.
func (m *Mapped) ReadAt(p []byte, off int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, closedError("read", m.path)
	}
	if off < 0 {
		return 0, errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "negative offset %d reading '%s'", off, m.path),
			"path", m.path)
	}
	if off >= int64(m.r.Len()) {
		return 0, io.EOF
	}
	return m.r.ReadAt(p, off)
}

// Seek implements io.Seeker.
func (m *Mapped) Seek(offset int64, whence int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return 0, closedError("seek", m.path)
	}

	var base int64
	switch whence {
	case io.SeekStart:
	case io.SeekCurrent:
		base = m.off
	case io.SeekEnd:
		base = int64(m.r.Len())
	default:
		return 0, errors.Newf(errors.CodeInvalidInput, "invalid whence %d", whence)
	}
	pos := base + offset
	if pos < 0 {
		return 0, errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "negative position %d seeking '%s'", pos, m.path),
			"path", m.path)
	}
	m.off = pos
	return pos, nil
}

// Size returns the length of the mapping.
func (m *Mapped) Size() (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return 0, closedError("size", m.path)
	}
	return int64(m.r.Len()), nil
}

// Close unmaps the file. Only the first call has an effect.
func (m *Mapped) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return nil
	}
	m.closed = true
	if err := m.r.Close(); err != nil {
		return wrapCloseError(err, m.path)
	}
	return nil
}
