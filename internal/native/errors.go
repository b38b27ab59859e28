package native

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"

	"github.com/jmgilman/localfs/errors"
)

// IOError wraps a native failure as errors.CodeIO. The message is built
// from format and args; the native error text becomes the cause so it is
// rendered after the message. Transient causes (EAGAIN, EBUSY, ETIMEDOUT)
// are classified retryable.
func IOError(cause error, op, path, format string, args ...interface{}) error {
	return wrapIO(cause, map[string]interface{}{"op": op, "path": path}, format, args...)
}

// IOError2 is IOError for operations with a source and a destination.
func IOError2(cause error, op, src, dest, format string, args ...interface{}) error {
	return wrapIO(cause, map[string]interface{}{"op": op, "src": src, "dest": dest}, format, args...)
}

// NotFound reports an operation whose target was absent and which treats
// absence as a failure. The error wraps fs.ErrNotExist.
func NotFound(op, path, format string, args ...interface{}) error {
	return errors.WrapWithContext(fs.ErrNotExist, errors.CodeNotFound, fmt.Sprintf(format, args...),
		map[string]interface{}{"op": op, "path": path})
}

// IsNonExistent reports whether err means nothing exists at the path,
// including a non-directory intermediate component and symlink loops.
func IsNonExistent(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) ||
		stderrors.Is(err, syscall.ENOTDIR) ||
		stderrors.Is(err, syscall.ELOOP)
}

func wrapIO(cause error, ctx map[string]interface{}, format string, args ...interface{}) error {
	cause = nativeCause(cause)
	err := errors.WrapWithContext(cause, errors.CodeIO, fmt.Sprintf(format, args...), ctx)
	if isTransient(cause) {
		return errors.WithClassification(err, errors.ClassificationRetryable)
	}
	return err
}

// nativeCause strips the os wrappers that would repeat the path in the
// rendered message, leaving the errno.
func nativeCause(err error) error {
	var pathErr *fs.PathError
	if stderrors.As(err, &pathErr) {
		return pathErr.Err
	}
	var linkErr *os.LinkError
	if stderrors.As(err, &linkErr) {
		return linkErr.Err
	}
	var sysErr *os.SyscallError
	if stderrors.As(err, &sysErr) {
		return sysErr.Err
	}
	return err
}

func isTransient(err error) bool {
	return stderrors.Is(err, syscall.EAGAIN) ||
		stderrors.Is(err, syscall.EBUSY) ||
		stderrors.Is(err, syscall.ETIMEDOUT)
}
