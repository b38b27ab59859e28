package native

import (
	"io/fs"

	"github.com/jmgilman/localfs/fs/core"
)

// FromFileInfo converts a generic fs.FileInfo into a FileStats. It is the
// coarse path used where no native stat structure is available.
func FromFileInfo(portable string, fi fs.FileInfo) core.FileStats {
	mode := fi.Mode()
	switch {
	case mode.IsRegular():
		return core.NewFileStats(portable, core.FileTypeFile, fi.Size(), fi.ModTime())
	case mode.IsDir():
		return core.NewFileStats(portable, core.FileTypeDirectory, core.NoSize, fi.ModTime())
	default:
		return core.NewFileStats(portable, core.FileTypeUnknown, core.NoSize, fi.ModTime())
	}
}
