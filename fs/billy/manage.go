package billy

import (
	"io"
	"syscall"

	"go.uber.org/zap"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/internal/native"
)

// DeleteFile implements core.ManageFS.
func (b *FS) DeleteFile(p string) error {
	bp, err := resolve(p)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	fi, err := b.bfs.Lstat(bp)
	if err != nil {
		if native.IsNonExistent(err) {
			return native.NotFound("rm", p, "File does not exist: '%s'", p)
		}
		return native.IOError(err, "rm", bp, "Cannot delete file '%s'", bp)
	}
	if fi.IsDir() {
		return native.IOError(syscall.EISDIR, "rm", bp, "Cannot delete file '%s'", bp)
	}
	if err := b.bfs.Remove(bp); err != nil {
		return native.IOError(err, "rm", bp, "Cannot delete file '%s'", bp)
	}
	return nil
}

// Move implements core.ManageFS.
func (b *FS) Move(src, dest string) error {
	bs, err := resolve(src)
	if err != nil {
		return err
	}
	bd, err := resolve(dest)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.bfs.Rename(bs, bd); err != nil {
		return native.IOError2(err, "mv", bs, bd, "Failed renaming '%s' to '%s'", bs, bd)
	}
	return nil
}

// CopyFile implements core.ManageFS.
func (b *FS) CopyFile(src, dest string) error {
	bs, err := resolve(src)
	if err != nil {
		return err
	}
	bd, err := resolve(dest)
	if err != nil {
		return err
	}
	if bs == bd {
		return nil
	}

	in, err := b.openReadable(bs)
	if err != nil {
		return err
	}

	out, err := b.openWritable(bd, true, false)
	if err != nil {
		b.closeQuietly(in, bs)
		return err
	}
	if _, err := core.CopyStream(out, in, b.cfg.copyChunkSize); err != nil {
		b.closeQuietly(out, bd)
		b.closeQuietly(in, bs)
		if errors.As(err, new(errors.PlatformError)) {
			return err
		}
		return native.IOError2(err, "cp", bs, bd, "Failed copying '%s' to '%s'", bs, bd)
	}
	if err := out.Close(); err != nil {
		b.closeQuietly(in, bs)
		return err
	}
	return in.Close()
}

// closeQuietly closes c when an earlier failure is already being reported.
func (b *FS) closeQuietly(c io.Closer, p string) {
	if err := c.Close(); err != nil {
		b.cfg.logger.Debug("close failed", zap.String("path", p), zap.Error(err))
	}
}
