package core

import (
	"fmt"
	"path"
	"time"
)

// FSType represents the underlying type of filesystem implementation.
type FSType int

const (
	// FSTypeUnknown indicates the filesystem type is unknown or unspecified.
	FSTypeUnknown FSType = iota
	// FSTypeLocal indicates the native, disk-backed filesystem.
	FSTypeLocal
	// FSTypeMemory indicates an in-memory filesystem.
	FSTypeMemory
)

// String returns a string representation of the FSType.
func (t FSType) String() string {
	switch t {
	case FSTypeLocal:
		return "local"
	case FSTypeMemory:
		return "memory"
	default:
		return "unknown"
	}
}

// FileType classifies the entity a path refers to.
//
// FileTypeNonExistent is a first-class value: a stat of a missing path
// succeeds and reports it, it is never raised as an error.
type FileType int

const (
	// FileTypeUnknown covers entities that are neither regular files nor
	// directories (sockets, devices, FIFOs, ...).
	FileTypeUnknown FileType = iota
	// FileTypeNonExistent indicates nothing exists at the path.
	FileTypeNonExistent
	// FileTypeFile indicates a regular file.
	FileTypeFile
	// FileTypeDirectory indicates a directory.
	FileTypeDirectory
)

// String returns a string representation of the FileType.
func (t FileType) String() string {
	switch t {
	case FileTypeNonExistent:
		return "non-existent"
	case FileTypeFile:
		return "file"
	case FileTypeDirectory:
		return "directory"
	default:
		return "unknown"
	}
}

// NoSize is the size reported for anything that is not a regular file.
const NoSize int64 = -1

// NoTime is the modification time reported for non-existent entities.
var NoTime = time.Time{}

// FileStats is the portable attribute record for one filesystem entity.
//
// A FileStats is immutable once constructed. Size is meaningful only for
// FileTypeFile and ModTime only for FileTypeFile and FileTypeDirectory;
// otherwise they hold NoSize and NoTime respectively. Unknown entities keep
// their modification time when the platform reports one.
type FileStats struct {
	path  string
	ftype FileType
	size  int64
	mtime time.Time
}

// NewFileStats builds a record, normalizing size to NoSize for every type but
// FileTypeFile and mtime to NoTime for FileTypeNonExistent.
func NewFileStats(p string, ftype FileType, size int64, mtime time.Time) FileStats {
	if ftype != FileTypeFile {
		size = NoSize
	}
	if ftype == FileTypeNonExistent {
		mtime = NoTime
	}
	return FileStats{path: p, ftype: ftype, size: size, mtime: mtime}
}

// NonExistentStats returns the record reported for a missing path.
func NonExistentStats(p string) FileStats {
	return NewFileStats(p, FileTypeNonExistent, NoSize, NoTime)
}

// Path returns the portable (slash separated) path of the entity.
func (s FileStats) Path() string { return s.path }

// BaseName returns the last element of Path.
func (s FileStats) BaseName() string { return path.Base(s.path) }

// Type returns the entity type.
func (s FileStats) Type() FileType { return s.ftype }

// Size returns the byte length of a regular file, or NoSize.
func (s FileStats) Size() int64 { return s.size }

// ModTime returns the last modification time, or NoTime.
func (s FileStats) ModTime() time.Time { return s.mtime }

// IsFile reports whether the entity is a regular file.
func (s FileStats) IsFile() bool { return s.ftype == FileTypeFile }

// IsDir reports whether the entity is a directory.
func (s FileStats) IsDir() bool { return s.ftype == FileTypeDirectory }

// Exists reports whether anything exists at the path.
func (s FileStats) Exists() bool { return s.ftype != FileTypeNonExistent }

// HasSize reports whether Size carries a real value.
func (s FileStats) HasSize() bool { return s.size != NoSize }

// HasModTime reports whether ModTime carries a real value.
func (s FileStats) HasModTime() bool { return !s.mtime.Equal(NoTime) }

// String implements fmt.Stringer.
func (s FileStats) String() string {
	out := fmt.Sprintf("FileStats(%s, %q", s.ftype, s.path)
	if s.HasSize() {
		out += fmt.Sprintf(", size=%d", s.size)
	}
	if s.HasModTime() {
		out += ", mtime=" + s.mtime.Format(time.RFC3339Nano)
	}
	return out + ")"
}
