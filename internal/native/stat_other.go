//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package native

import (
	"os"

	"github.com/jmgilman/localfs/fs/core"
)

// Stat queries path through os.Stat on platforms without a dedicated
// adapter. Modification times come from the coarse FileInfo clock.
func Stat(path string) (core.FileStats, error) {
	fi, err := os.Stat(path)
	if err != nil {
		if IsNonExistent(err) {
			return core.NonExistentStats(ToPortable(path)), nil
		}
		return core.FileStats{}, IOError(err, "stat", path, "Failed stat()ing path '%s'", path)
	}
	return FromFileInfo(ToPortable(path), fi), nil
}
