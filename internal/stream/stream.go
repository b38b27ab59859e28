// Package stream implements the readable and writable file streams handed
// out by the filesystem providers.
package stream

import (
	"io"
	"io/fs"
	"syscall"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/internal/native"
)

// File is the handle a Readable reads from.
type File interface {
	io.Reader
	io.ReaderAt
	io.Seeker
	io.Closer
}

// SizeFunc reports the current length of an open file.
type SizeFunc func() (int64, error)

func closedError(op, path string) error {
	return errors.WrapWithContext(fs.ErrClosed, errors.CodeClosed,
		"Operation on closed file '"+path+"'",
		map[string]interface{}{"op": op, "path": path})
}

// IsDirError reports an attempt to open the directory at path for reading.
func IsDirError(path string) error {
	return native.IOError(syscall.EISDIR, "open", path,
		"Cannot open for reading: path is a directory '%s'", path)
}

// passthrough errors keep their identity so io helpers recognise them.
func wrapReadError(err error, op, path string) error {
	if err == nil || err == io.EOF {
		return err
	}
	if errors.As(err, new(errors.PlatformError)) {
		return err
	}
	return native.IOError(err, op, path, "Failed reading from file '%s'", path)
}

func wrapStatError(err error, path string) error {
	return native.IOError(err, "stat", path, "Failed querying information for file '%s'", path)
}

func wrapCloseError(err error, path string) error {
	return native.IOError(err, "close", path, "Failed closing file '%s'", path)
}
