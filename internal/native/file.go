package native

import (
	"io/fs"
	"os"
	"syscall"
)

// DeleteFile removes a single non-directory entry. It reports false with no
// error if nothing exists at path.
func DeleteFile(path string) (bool, error) {
	fi, err := os.Lstat(path)
	if err != nil {
		if IsNonExistent(err) {
			return false, nil
		}
		return false, IOError(err, "rm", path, "Cannot delete file '%s'", path)
	}
	if fi.IsDir() {
		return true, IOError(syscall.EISDIR, "rm", path, "Cannot delete file '%s'", path)
	}
	if err := os.Remove(path); err != nil {
		if IsNonExistent(err) {
			return false, nil
		}
		return true, IOError(err, "rm", path, "Cannot delete file '%s'", path)
	}
	return true, nil
}

// Rename moves src to dest, replacing dest if it is a file.
func Rename(src, dest string) error {
	if err := os.Rename(src, dest); err != nil {
		return IOError2(err, "mv", src, dest, "Failed renaming '%s' to '%s'", src, dest)
	}
	return nil
}

// SameFile reports whether a and b refer to the same existing file.
func SameFile(a, b string) bool {
	fa, err := os.Stat(a)
	if err != nil {
		return false
	}
	fb, err := os.Stat(b)
	if err != nil {
		return false
	}
	return os.SameFile(fa, fb)
}

// OpenReadable opens path read-only.
func OpenReadable(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, IOError(err, "open", path, "Failed to open local file '%s'", path)
	}
	return f, nil
}

// OpenWritable opens path write-only, creating it with perm if missing.
// With truncate the file is emptied; with appendMode every write goes to
// the end of the file.
func OpenWritable(path string, truncate, appendMode bool, perm fs.FileMode) (*os.File, error) {
	flags := os.O_WRONLY | os.O_CREATE
	if truncate {
		flags |= os.O_TRUNC
	}
	if appendMode {
		flags |= os.O_APPEND
	}
	f, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return nil, IOError(err, "open", path, "Failed to open local file '%s'", path)
	}
	return f, nil
}
