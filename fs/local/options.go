package local

import (
	"io/fs"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

const (
	// DefaultDirPerm is the mode new directories are created with, before umask.
	DefaultDirPerm fs.FileMode = 0o777

	// DefaultFilePerm is the mode new files are created with, before umask.
	DefaultFilePerm fs.FileMode = 0o666

	// DefaultWriteBufferSize is the output stream buffer size in bytes.
	DefaultWriteBufferSize = 64 * 1024
)

// Options is the immutable configuration of a LocalFS.
type Options struct {
	// UseMmap selects memory-mapped input streams instead of plain reads.
	UseMmap bool

	// DirPerm is the permission used when creating directories.
	DirPerm fs.FileMode

	// FilePerm is the permission used when creating files.
	FilePerm fs.FileMode

	// CopyChunkSize is the buffer size used by CopyFile.
	CopyChunkSize int

	// WriteBufferSize is the buffer size of output streams.
	WriteBufferSize int
}

// DefaultOptions returns the options used by New when none are given.
func DefaultOptions() Options {
	return Options{
		UseMmap:         false,
		DirPerm:         DefaultDirPerm,
		FilePerm:        DefaultFilePerm,
		CopyChunkSize:   core.DefaultCopyChunkSize,
		WriteBufferSize: DefaultWriteBufferSize,
	}
}

// Option configures filesystem creation.
type Option func(*Options)

// WithMmap selects memory-mapped (true) or plain (false) input streams.
func WithMmap(enabled bool) Option {
	return func(o *Options) {
		o.UseMmap = enabled
	}
}

// WithDirPerm sets the permission bits for created directories.
func WithDirPerm(perm fs.FileMode) Option {
	return func(o *Options) {
		o.DirPerm = perm
	}
}

// WithFilePerm sets the permission bits for created files.
func WithFilePerm(perm fs.FileMode) Option {
	return func(o *Options) {
		o.FilePerm = perm
	}
}

// WithCopyChunkSize sets the CopyFile buffer size in bytes.
func WithCopyChunkSize(n int) Option {
	return func(o *Options) {
		o.CopyChunkSize = n
	}
}

// WithWriteBufferSize sets the output stream buffer size in bytes.
func WithWriteBufferSize(n int) Option {
	return func(o *Options) {
		o.WriteBufferSize = n
	}
}

// Validate checks that every option is usable.
func (o Options) Validate() error {
	switch {
	case o.DirPerm&^fs.ModePerm != 0:
		return invalidConfig("dir_perm", "directory permission %#o has non-permission bits", uint32(o.DirPerm))
	case o.FilePerm&^fs.ModePerm != 0:
		return invalidConfig("file_perm", "file permission %#o has non-permission bits", uint32(o.FilePerm))
	case o.CopyChunkSize <= 0:
		return invalidConfig("copy_chunk_size", "copy chunk size must be positive, got %d", o.CopyChunkSize)
	case o.WriteBufferSize <= 0:
		return invalidConfig("write_buffer_size", "write buffer size must be positive, got %d", o.WriteBufferSize)
	}
	return nil
}

func invalidConfig(field, format string, args ...interface{}) error {
	return errors.WithContext(errors.Newf(errors.CodeInvalidConfig, format, args...), "field", field)
}
