package native

import (
	stderrors "errors"
	"io/fs"
	"os"
	"syscall"
)

// ListDir returns the names of the entries of dir in the order the
// operating system reports them. "." and ".." are never included.
func ListDir(dir string) ([]string, error) {
	f, err := os.Open(dir)
	if err != nil {
		return nil, IOError(err, "list", dir, "Cannot list directory '%s'", dir)
	}
	defer func() { _ = f.Close() }()

	names, err := f.Readdirnames(-1)
	if err != nil {
		return nil, IOError(err, "list", dir, "Cannot list directory '%s'", dir)
	}
	return names, nil
}

// CreateDir creates a single directory. The parent must exist. An existing
// directory at dir is not an error; an existing non-directory is.
func CreateDir(dir string, perm fs.FileMode) error {
	err := os.Mkdir(dir, perm)
	if err == nil {
		return nil
	}
	if stderrors.Is(err, fs.ErrExist) {
		if fi, serr := os.Stat(dir); serr == nil && fi.IsDir() {
			return nil
		}
	}
	return IOError(err, "mkdir", dir, "Cannot create directory '%s'", dir)
}

// CreateDirTree creates dir and any missing ancestors.
func CreateDirTree(dir string, perm fs.FileMode) error {
	if err := os.MkdirAll(dir, perm); err != nil {
		return IOError(err, "mkdir", dir, "Cannot create directory tree '%s'", dir)
	}
	return nil
}

// DeleteDirTree removes dir and everything below it. It reports false with
// no error if nothing exists at dir. A dir whose last element is "." or ".."
// is refused.
func DeleteDirTree(dir string) (bool, error) {
	existed, err := checkDir(dir, "rmdir")
	if !existed || err != nil {
		return existed, err
	}
	if EndsInDotElement(dir) {
		return true, IOError(syscall.EINVAL, "rmdir", dir, "Cannot delete directory '%s'", dir)
	}
	if err := os.RemoveAll(dir); err != nil {
		return true, IOError(err, "rmdir", dir, "Cannot delete directory '%s'", dir)
	}
	return true, nil
}

// DeleteDirContents removes every entry of dir but keeps dir itself. It
// reports false with no error if nothing exists at dir.
func DeleteDirContents(dir string) (bool, error) {
	existed, err := checkDir(dir, "rmdir")
	if !existed || err != nil {
		return existed, err
	}
	names, err := ListDir(dir)
	if err != nil {
		return true, err
	}
	for _, name := range names {
		child := Join(dir, name)
		if err := os.RemoveAll(child); err != nil {
			return true, IOError(err, "rmdir", child, "Cannot delete directory entry '%s'", child)
		}
	}
	return true, nil
}

// checkDir reports whether dir exists, failing if it exists as something
// other than a directory. Symlinks are not followed.
func checkDir(dir, op string) (bool, error) {
	fi, err := os.Lstat(dir)
	if err != nil {
		if IsNonExistent(err) {
			return false, nil
		}
		return false, IOError(err, op, dir, "Cannot delete directory '%s'", dir)
	}
	if !fi.IsDir() {
		return true, IOError(syscall.ENOTDIR, op, dir, "Cannot delete directory '%s'", dir)
	}
	return true, nil
}
