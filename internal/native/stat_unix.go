//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package native

import (
	stderrors "errors"

	"golang.org/x/sys/unix"

	"github.com/jmgilman/localfs/fs/core"
)

// Stat queries the native metadata of path with stat(2), following symlinks.
//
// ENOENT, ENOTDIR and ELOOP yield a FileTypeNonExistent record and no
// error. Any other failure is errors.CodeIO.
func Stat(path string) (core.FileStats, error) {
	var st unix.Stat_t
	err := unix.Stat(path, &st)
	for err == unix.EINTR {
		err = unix.Stat(path, &st)
	}
	if err != nil {
		if isNonExistentErrno(err) {
			return core.NonExistentStats(ToPortable(path)), nil
		}
		return core.FileStats{}, IOError(err, "stat", path, "Failed stat()ing path '%s'", path)
	}
	return fromStatT(ToPortable(path), &st), nil
}

func isNonExistentErrno(err error) bool {
	return stderrors.Is(err, unix.ENOENT) ||
		stderrors.Is(err, unix.ENOTDIR) ||
		stderrors.Is(err, unix.ELOOP)
}

func fromStatT(portable string, st *unix.Stat_t) core.FileStats {
	mtime := TimespecToTime(int64(st.Mtim.Sec), int64(st.Mtim.Nsec))
	switch uint32(st.Mode) & unix.S_IFMT {
	case unix.S_IFREG:
		return core.NewFileStats(portable, core.FileTypeFile, int64(st.Size), mtime)
	case unix.S_IFDIR:
		return core.NewFileStats(portable, core.FileTypeDirectory, core.NoSize, mtime)
	default:
		return core.NewFileStats(portable, core.FileTypeUnknown, core.NoSize, mtime)
	}
}
