package local

import (
	"io"

	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/native"
	"github.com/jmgilman/localfs/internal/stream"
)

// OpenInputStream implements core.StreamFS.
func (l *LocalFS) OpenInputStream(path string) (core.InputStream, error) {
	return l.openReadable(path)
}

// OpenInputFile implements core.StreamFS.
func (l *LocalFS) OpenInputFile(path string) (core.RandomAccessFile, error) {
	return l.openReadable(path)
}

// OpenOutputStream implements core.StreamFS.
func (l *LocalFS) OpenOutputStream(path string) (core.OutputStream, error) {
	np, err := native.Resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := native.OpenWritable(np, true, false, l.opts.FilePerm)
	if err != nil {
		return nil, err
	}
	return stream.NewWritable(f, np, 0, l.opts.WriteBufferSize), nil
}

// OpenAppendStream implements core.StreamFS.
func (l *LocalFS) OpenAppendStream(path string) (core.OutputStream, error) {
	np, err := native.Resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := native.OpenWritable(np, false, true, l.opts.FilePerm)
	if err != nil {
		return nil, err
	}
	off, err := f.Seek(0, io.SeekEnd)
	if err != nil {
		closeQuietly(f, np)
		return nil, native.IOError(err, "seek", np, "Failed seeking to end of file '%s'", np)
	}
	return stream.NewWritable(f, np, off, l.opts.WriteBufferSize), nil
}

func (l *LocalFS) openReadable(path string) (core.RandomAccessFile, error) {
	np, err := native.Resolve(path)
	if err != nil {
		return nil, err
	}

	if l.opts.UseMmap {
		m, err := stream.OpenMapped(np)
		if err != nil {
			return nil, err
		}
		return m, nil
	}

	f, err := native.OpenReadable(np)
	if err != nil {
		return nil, err
	}
	r, err := stream.OpenOSFile(f, np)
	if err != nil {
		closeQuietly(f, np)
		return nil, err
	}
	return r, nil
}
