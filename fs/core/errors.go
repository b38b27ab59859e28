package core

import (
	"io/fs"

	"github.com/jmgilman/localfs/errors"
)

var (
	// ErrNotExist is wrapped by every errors.CodeNotFound failure.
	// Re-exported from io/fs for convenience.
	ErrNotExist = fs.ErrNotExist

	// ErrExist is returned when a file or directory already exists.
	// Re-exported from io/fs for convenience.
	ErrExist = fs.ErrExist

	// ErrPermission is returned when permission is denied.
	// Re-exported from io/fs for convenience.
	ErrPermission = fs.ErrPermission

	// ErrClosed is wrapped by operations on closed streams.
	// Re-exported from io/fs for convenience.
	ErrClosed = fs.ErrClosed
)

// IsNotFound reports whether err is a failure caused by an absent target.
func IsNotFound(err error) bool {
	return errors.HasCode(err, errors.CodeNotFound)
}

// IsIOError reports whether err is a native I/O failure.
func IsIOError(err error) bool {
	return errors.HasCode(err, errors.CodeIO)
}

// IsInvalidPath reports whether err is a path resolution failure.
func IsInvalidPath(err error) bool {
	return errors.HasCode(err, errors.CodeInvalidPath)
}
