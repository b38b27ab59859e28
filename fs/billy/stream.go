package billy

import (
	"io"
	"os"
	"syscall"

	"go.uber.org/zap"

	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/native"
	"github.com/jmgilman/localfs/internal/stream"
)

// OpenInputStream implements core.StreamFS.
func (b *FS) OpenInputStream(p string) (core.InputStream, error) {
	bp, err := resolve(p)
	if err != nil {
		return nil, err
	}
	r, err := b.openReadable(bp)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// OpenInputFile implements core.StreamFS.
func (b *FS) OpenInputFile(p string) (core.RandomAccessFile, error) {
	bp, err := resolve(p)
	if err != nil {
		return nil, err
	}
	r, err := b.openReadable(bp)
	if err != nil {
		return nil, err
	}
	return r, nil
}

// OpenOutputStream implements core.StreamFS.
func (b *FS) OpenOutputStream(p string) (core.OutputStream, error) {
	bp, err := resolve(p)
	if err != nil {
		return nil, err
	}
	w, err := b.openWritable(bp, true, false)
	if err != nil {
		return nil, err
	}
	return w, nil
}

// OpenAppendStream implements core.StreamFS.
func (b *FS) OpenAppendStream(p string) (core.OutputStream, error) {
	bp, err := resolve(p)
	if err != nil {
		return nil, err
	}
	w, err := b.openWritable(bp, false, true)
	if err != nil {
		return nil, err
	}
	return w, nil
}

func (b *FS) openReadable(bp string) (*stream.Readable, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	st, err := b.stat(bp)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, stream.IsDirError(bp)
	}
	f, err := b.bfs.Open(bp)
	if err != nil {
		return nil, native.IOError(err, "open", bp, "Failed to open file '%s'", bp)
	}
	return stream.NewReadable(f, bp, b.sizeFunc(bp)), nil
}

// sizeFunc reports the current size of bp. billy.File has no Stat, so the
// filesystem is asked instead.
func (b *FS) sizeFunc(bp string) stream.SizeFunc {
	return func() (int64, error) {
		b.mu.RLock()
		defer b.mu.RUnlock()
		fi, err := b.bfs.Stat(bp)
		if err != nil {
			return 0, native.IOError(err, "stat", bp, "Failed querying information for file '%s'", bp)
		}
		return fi.Size(), nil
	}
}

func (b *FS) openWritable(bp string, truncate, appendMode bool) (*stream.Writable, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st, err := b.stat(bp)
	if err != nil {
		return nil, err
	}
	if st.IsDir() {
		return nil, native.IOError(syscall.EISDIR, "open", bp, "Failed to open file '%s'", bp)
	}
	// Backends create missing parents on O_CREATE; the facade does not.
	if err := b.requireParentDir(bp, "open", "Failed to open file '%s'"); err != nil {
		return nil, err
	}

	flags := os.O_WRONLY | os.O_CREATE
	if truncate {
		flags |= os.O_TRUNC
	}
	if appendMode {
		flags |= os.O_APPEND
	}
	f, err := b.bfs.OpenFile(bp, flags, b.cfg.filePerm)
	if err != nil {
		return nil, native.IOError(err, "open", bp, "Failed to open file '%s'", bp)
	}

	var off int64
	if appendMode {
		off, err = f.Seek(0, io.SeekEnd)
		if err != nil {
			if cerr := f.Close(); cerr != nil {
				b.cfg.logger.Debug("close failed", zap.String("path", bp), zap.Error(cerr))
			}
			return nil, native.IOError(err, "seek", bp, "Failed seeking to end of file '%s'", bp)
		}
	}
	return stream.NewWritable(f, bp, off, b.cfg.writeBufferSize), nil
}
