package local

import (
	"os"

	"go.uber.org/zap"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/native"
	"github.com/jmgilman/localfs/internal/stream"
)

// DeleteFile implements core.ManageFS.
func (l *LocalFS) DeleteFile(path string) error {
	np, err := native.Resolve(path)
	if err != nil {
		return err
	}
	existed, err := native.DeleteFile(np)
	if err != nil {
		return err
	}
	if !existed {
		return native.NotFound("rm", path, "File does not exist: '%s'", path)
	}
	return nil
}

// Move implements core.ManageFS.
func (l *LocalFS) Move(src, dest string) error {
	ns, err := native.Resolve(src)
	if err != nil {
		return err
	}
	nd, err := native.Resolve(dest)
	if err != nil {
		return err
	}
	return native.Rename(ns, nd)
}

// CopyFile implements core.ManageFS.
func (l *LocalFS) CopyFile(src, dest string) error {
	ns, err := native.Resolve(src)
	if err != nil {
		return err
	}
	nd, err := native.Resolve(dest)
	if err != nil {
		return err
	}
	if ns == nd || native.SameFile(ns, nd) {
		return nil
	}

	in, err := native.OpenReadable(ns)
	if err != nil {
		return err
	}
	r, err := stream.OpenOSFile(in, ns)
	if err != nil {
		closeQuietly(in, ns)
		return err
	}

	out, err := native.OpenWritable(nd, true, false, l.opts.FilePerm)
	if err != nil {
		closeQuietly(in, ns)
		return err
	}

	if _, err := core.CopyStream(out, r, l.opts.CopyChunkSize); err != nil {
		closeQuietly(out, nd)
		closeQuietly(in, ns)
		if errors.As(err, new(errors.PlatformError)) {
			return err
		}
		return native.IOError2(err, "cp", ns, nd, "Failed copying '%s' to '%s'", ns, nd)
	}
	if err := out.Close(); err != nil {
		closeQuietly(in, ns)
		return native.IOError(err, "close", nd, "Failed closing file '%s'", nd)
	}
	return r.Close()
}

// closeQuietly closes f when an earlier failure is already being reported.
func closeQuietly(f *os.File, path string) {
	if err := f.Close(); err != nil {
		Logger().Debug("close failed", zap.String("path", path), zap.Error(err))
	}
}
