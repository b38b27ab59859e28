package stream

import (
	"bufio"
	"io"
	"sync"

	"github.com/jmgilman/localfs/internal/native"
)

// Writable is a buffered sequential writer. Tell reports the logical
// position including bytes still held in the buffer.
type Writable struct {
	path string

	mu     sync.Mutex
	f      io.WriteCloser
	w      *bufio.Writer
	pos    int64
	closed bool
}

// NewWritable wraps f, which was opened from path and is positioned at
// offset. bufSize is the write buffer size in bytes.
func NewWritable(f io.WriteCloser, path string, offset int64, bufSize int) *Writable {
	return &Writable{
		path: path,
		f:    f,
		w:    bufio.NewWriterSize(f, bufSize),
		pos:  offset,
	}
}

// Write implements io.Writer.
func (w *Writable) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, closedError("write", w.path)
	}
	n, err := w.w.Write(p)
	w.pos += int64(n)
	if err != nil {
		return n, writeError(err, w.path)
	}
	return n, nil
}

// Flush writes buffered data to the file.
func (w *Writable) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return closedError("flush", w.path)
	}
	if err := w.w.Flush(); err != nil {
		return writeError(err, w.path)
	}
	return nil
}

// Tell returns the number of bytes from the start of the file to the
// current write position.
func (w *Writable) Tell() (int64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return 0, closedError("tell", w.path)
	}
	return w.pos, nil
}

// Close flushes and releases the file, returning the first failure. Only
// the first call has an effect.
func (w *Writable) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true

	flushErr := w.w.Flush()
	closeErr := w.f.Close()
	if flushErr != nil {
		return writeError(flushErr, w.path)
	}
	if closeErr != nil {
		return wrapCloseError(closeErr, w.path)
	}
	return nil
}

func writeError(err error, path string) error {
	return native.IOError(err, "write", path, "Failed writing to file '%s'", path)
}
