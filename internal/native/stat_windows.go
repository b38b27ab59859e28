//go:build windows

package native

import (
	stderrors "errors"

	"golang.org/x/sys/windows"

	"github.com/jmgilman/localfs/fs/core"
)

// Stat queries the native metadata of path through a FILE_READ_ATTRIBUTES
// handle, following reparse points.
//
// ERROR_FILE_NOT_FOUND and ERROR_PATH_NOT_FOUND yield a
// FileTypeNonExistent record and no error. Any other failure is
// errors.CodeIO.
func Stat(path string) (core.FileStats, error) {
	p16, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return core.FileStats{}, IOError(err, "stat", path, "Failed querying information for path '%s'", path)
	}

	// FILE_FLAG_BACKUP_SEMANTICS is required to open a directory.
	h, err := windows.CreateFile(p16, windows.FILE_READ_ATTRIBUTES, 0, nil, windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL|windows.FILE_FLAG_BACKUP_SEMANTICS, 0)
	if err != nil {
		if stderrors.Is(err, windows.ERROR_FILE_NOT_FOUND) || stderrors.Is(err, windows.ERROR_PATH_NOT_FOUND) {
			return core.NonExistentStats(ToPortable(path)), nil
		}
		return core.FileStats{}, IOError(err, "stat", path, "Failed querying information for path '%s'", path)
	}
	defer func() { _ = windows.CloseHandle(h) }()

	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h, &info); err != nil {
		return core.FileStats{}, IOError(err, "stat", path, "Failed querying information for path '%s'", path)
	}
	return fromHandleInfo(ToPortable(path), &info), nil
}

func fromHandleInfo(portable string, info *windows.ByHandleFileInformation) core.FileStats {
	mtime := FiletimeToTime(FiletimeFromParts(info.LastWriteTime.HighDateTime, info.LastWriteTime.LowDateTime))
	if info.FileAttributes&windows.FILE_ATTRIBUTE_DIRECTORY != 0 {
		return core.NewFileStats(portable, core.FileTypeDirectory, core.NoSize, mtime)
	}
	size := FiletimeFromParts(info.FileSizeHigh, info.FileSizeLow)
	return core.NewFileStats(portable, core.FileTypeFile, size, mtime)
}
