package stream

import (
	"os"
	"sync/atomic"
)

// Readable is a random-access reader over an open file handle. ReadAt may
// be called concurrently; Read and Seek share the handle's cursor.
type Readable struct {
	f      File
	path   string
	size   SizeFunc
	closed atomic.Bool
}

// NewReadable wraps f, which was opened from path. size reports the file
// length.
func NewReadable(f File, path string, size SizeFunc) *Readable {
	return &Readable{f: f, path: path, size: size}
}

// OpenOSFile wraps an *os.File opened for reading. It fails if f refers to
// a directory; the caller keeps ownership of f on failure.
func OpenOSFile(f *os.File, path string) (*Readable, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, wrapStatError(err, path)
	}
	if fi.IsDir() {
		return nil, IsDirError(path)
	}
	return NewReadable(f, path, func() (int64, error) {
		fi, err := f.Stat()
		if err != nil {
			return 0, wrapStatError(err, path)
		}
		return fi.Size(), nil
	}), nil
}

// Read implements io.Reader.
func (r *Readable) Read(p []byte) (int, error) {
	if r.closed.Load() {
		return 0, closedError("read", r.path)
	}
	n, err := r.f.Read(p)
	return n, wrapReadError(err, "read", r.path)
}

// ReadAt implements io.ReaderAt.
func (r *Readable) ReadAt(p []byte, off int64) (int, error) {
	if r.closed.Load() {
		return 0, closedError("read", r.path)
	}
	n, err := r.f.ReadAt(p, off)
	return n, wrapReadError(err, "read", r.path)
}

// Seek implements io.Seeker.
func (r *Readable) Seek(offset int64, whence int) (int64, error) {
	if r.closed.Load() {
		return 0, closedError("seek", r.path)
	}
	pos, err := r.f.Seek(offset, whence)
	return pos, wrapReadError(err, "seek", r.path)
}

// Size returns the current file length.
func (r *Readable) Size() (int64, error) {
	if r.closed.Load() {
		return 0, closedError("size", r.path)
	}
	return r.size()
}

// Close releases the handle. Only the first call has an effect.
func (r *Readable) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := r.f.Close(); err != nil {
		return wrapCloseError(err, r.path)
	}
	return nil
}
