package core

import (
	"io"
)

// FileSystem is the facade every provider implements.
//
// Every operation first resolves its portable path arguments to the
// provider's native form; a path that cannot be resolved fails immediately
// with errors.CodeInvalidPath. Operations are synchronous and providers keep
// no per-call state, so one instance may be shared by concurrent callers.
type FileSystem interface {
	StatFS
	SelectorFS
	DirFS
	ManageFS
	StreamFS

	// Type returns the underlying filesystem type.
	Type() FSType
}

// StatFS queries metadata for a single path.
type StatFS interface {
	// Stat returns the attributes of the entity at path.
	//
	// A missing path is not an error: Stat succeeds and returns a record of
	// type FileTypeNonExistent. Missing intermediate components and excessive
	// symlink indirection count as missing. Any other native failure is
	// reported as errors.CodeIO carrying the path and the native error text.
	Stat(path string) (FileStats, error)
}

// SelectorFS enumerates directory trees.
type SelectorFS interface {
	// StatSelector returns the attributes of every entity below sel.BaseDir,
	// in depth-first pre-order following the native listing order at each
	// level. Entities that vanish between listing and stat are omitted.
	//
	// A missing BaseDir yields an empty result when sel.AllowNonExistent is
	// set and an errors.CodeIO failure otherwise.
	StatSelector(sel Selector) ([]FileStats, error)
}

// DirFS creates and deletes directories.
type DirFS interface {
	// CreateDir creates the directory at path. With recursive set every
	// missing ancestor is created too, and an existing chain is a no-op.
	// Without it the parent must already exist.
	CreateDir(path string, recursive bool) error

	// DeleteDir removes the directory at path and everything below it.
	// A missing directory fails with errors.CodeNotFound
	// ("Directory does not exist").
	DeleteDir(path string) error

	// DeleteDirContents removes everything inside the directory at path but
	// keeps the directory. A missing directory fails with errors.CodeNotFound.
	DeleteDirContents(path string) error
}

// ManageFS deletes, moves and copies files.
type ManageFS interface {
	// DeleteFile removes a single file. A missing file fails with
	// errors.CodeNotFound ("File does not exist").
	DeleteFile(path string) error

	// Move renames src to dest, replacing dest if it exists. Local providers
	// use the native atomic rename.
	Move(src, dest string) error

	// CopyFile copies src to dest byte for byte, replacing dest. Copying a
	// path onto itself is a no-op.
	CopyFile(src, dest string) error
}

// StreamFS opens files as streams.
type StreamFS interface {
	// OpenInputStream opens path for sequential reading.
	OpenInputStream(path string) (InputStream, error)

	// OpenInputFile opens path for random-access reading.
	OpenInputFile(path string) (RandomAccessFile, error)

	// OpenOutputStream opens path for writing, creating it if absent and
	// truncating it if present.
	OpenOutputStream(path string) (OutputStream, error)

	// OpenAppendStream opens path for writing at end of file, creating it if
	// absent and preserving existing content.
	OpenAppendStream(path string) (OutputStream, error)
}

// InputStream is a sequential reader.
//
// Close is idempotent. Reads after Close fail with ErrClosed.
type InputStream interface {
	io.Reader
	io.Closer
}

// RandomAccessFile is a readable file supporting positioned reads and seeks.
//
// ReadAt is safe for concurrent use; Read and Seek share one cursor and are not.
type RandomAccessFile interface {
	InputStream
	io.ReaderAt
	io.Seeker

	// Size returns the file length in bytes.
	Size() (int64, error)
}

// OutputStream is a sequential writer.
//
// Close flushes buffered data before releasing the file and reports the first
// failure of either step. Close is idempotent.
type OutputStream interface {
	io.Writer
	io.Closer

	// Flush writes any buffered data to the underlying file.
	Flush() error

	// Tell returns the current write position in bytes from the start of the file.
	Tell() (int64, error)
}
