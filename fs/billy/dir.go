package billy

import (
	"path"
	"syscall"

	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/localfs/internal/native"
)

// CreateDir implements core.DirFS.
func (b *FS) CreateDir(p string, recursive bool) error {
	bp, err := resolve(p)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	st, err := b.stat(bp)
	if err != nil {
		return err
	}
	if st.IsDir() {
		return nil
	}
	if st.Exists() {
		return native.IOError(syscall.EEXIST, "mkdir", bp, "Cannot create directory '%s'", bp)
	}

	if recursive {
		// memfs silently creates children below files.
		if err := b.requireDirAncestor(bp); err != nil {
			return err
		}
	} else if err := b.requireParentDir(bp, "mkdir", "Cannot create directory '%s'"); err != nil {
		return err
	}
	if err := b.bfs.MkdirAll(bp, b.cfg.dirPerm); err != nil {
		return native.IOError(err, "mkdir", bp, "Cannot create directory tree '%s'", bp)
	}
	return nil
}

// DeleteDir implements core.DirFS.
func (b *FS) DeleteDir(p string) error {
	bp, err := resolve(p)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	existed, err := b.checkDir(bp)
	if err != nil {
		return err
	}
	if !existed {
		return native.NotFound("rmdir", p, "Directory does not exist: '%s'", p)
	}
	if native.EndsInDotElement(p) {
		return native.IOError(syscall.EINVAL, "rmdir", p, "Cannot delete directory '%s'", p)
	}
	if err := util.RemoveAll(b.bfs, bp); err != nil {
		return native.IOError(err, "rmdir", bp, "Cannot delete directory '%s'", bp)
	}
	return nil
}

// DeleteDirContents implements core.DirFS.
func (b *FS) DeleteDirContents(p string) error {
	bp, err := resolve(p)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	existed, err := b.checkDir(bp)
	if err != nil {
		return err
	}
	if !existed {
		return native.NotFound("rmdir", p, "Directory does not exist: '%s'", p)
	}

	names, err := b.listDir(bp)
	if err != nil {
		return err
	}
	for _, name := range names {
		child := path.Join(bp, name)
		if err := util.RemoveAll(b.bfs, child); err != nil {
			return native.IOError(err, "rmdir", child, "Cannot delete directory entry '%s'", child)
		}
	}
	return nil
}

// checkDir reports whether p exists without following symlinks, failing
// if it is not a directory.
func (b *FS) checkDir(p string) (bool, error) {
	fi, err := b.bfs.Lstat(p)
	if err != nil {
		if native.IsNonExistent(err) {
			return false, nil
		}
		return false, native.IOError(err, "rmdir", p, "Cannot delete directory '%s'", p)
	}
	if !fi.IsDir() {
		return true, native.IOError(syscall.ENOTDIR, "rmdir", p, "Cannot delete directory '%s'", p)
	}
	return true, nil
}

// requireParentDir fails unless the parent of p is an existing directory.
func (b *FS) requireParentDir(p, op, format string) error {
	parent := path.Dir(p)
	st, err := b.stat(parent)
	if err != nil {
		return err
	}
	switch {
	case !st.Exists():
		return native.IOError(syscall.ENOENT, op, p, format, p)
	case !st.IsDir():
		return native.IOError(syscall.ENOTDIR, op, p, format, p)
	}
	return nil
}

// requireDirAncestor fails if the nearest existing ancestor of p is not a
// directory.
func (b *FS) requireDirAncestor(p string) error {
	for dir := path.Dir(p); ; dir = path.Dir(dir) {
		st, err := b.stat(dir)
		if err != nil {
			return err
		}
		if st.Exists() {
			if !st.IsDir() {
				return native.IOError(syscall.ENOTDIR, "mkdir", p, "Cannot create directory tree '%s'", p)
			}
			return nil
		}
		if next := path.Dir(dir); next == dir {
			return nil
		}
	}
}
