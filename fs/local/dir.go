package local

import (
	"github.com/jmgilman/localfs/internal/native"
)

// CreateDir implements core.DirFS.
func (l *LocalFS) CreateDir(path string, recursive bool) error {
	np, err := native.Resolve(path)
	if err != nil {
		return err
	}
	if recursive {
		return native.CreateDirTree(np, l.opts.DirPerm)
	}
	return native.CreateDir(np, l.opts.DirPerm)
}

// DeleteDir implements core.DirFS.
func (l *LocalFS) DeleteDir(path string) error {
	np, err := native.Resolve(path)
	if err != nil {
		return err
	}
	existed, err := native.DeleteDirTree(np)
	if err != nil {
		return err
	}
	if !existed {
		return native.NotFound("rmdir", path, "Directory does not exist: '%s'", path)
	}
	return nil
}

// DeleteDirContents implements core.DirFS.
func (l *LocalFS) DeleteDirContents(path string) error {
	np, err := native.Resolve(path)
	if err != nil {
		return err
	}
	existed, err := native.DeleteDirContents(np)
	if err != nil {
		return err
	}
	if !existed {
		return native.NotFound("rmdir", path, "Directory does not exist: '%s'", path)
	}
	return nil
}
