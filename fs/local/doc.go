// Package local implements core.FileSystem on top of the host operating
// system's native filesystem.
//
// Paths are portable, slash separated strings. Each operation resolves its
// path arguments to native form, performs one or a few native calls, and
// converts the outcome into core values and structured errors. A LocalFS
// holds nothing but its immutable Options, so one instance can be shared
// freely across goroutines. Nothing is cached: every call observes the
// filesystem as it is at that moment.
//
// # Stat semantics
//
// Stat never fails merely because a path is missing. A missing entry, a
// missing or non-directory intermediate component, or a symlink loop all
// produce a core.FileStats of type core.FileTypeNonExistent:
//
//	st, err := fsys.Stat("/tmp/maybe")
//	if err != nil {
//	    return err // permission denied, I/O failure, invalid path
//	}
//	if !st.Exists() {
//	    // handle absence
//	}
//
// Deletion is the opposite: DeleteDir, DeleteDirContents and DeleteFile
// fail with errors.CodeNotFound when there is nothing to delete.
//
// # Directory enumeration
//
// StatSelector walks a directory tree depth first, following the order the
// operating system lists entries in:
//
//	sel := core.NewSelector("/data", core.WithMaxRecursion(1))
//	entries, err := fsys.StatSelector(sel)
//
// Entries that disappear while the walk is running are skipped rather than
// reported as failures.
//
// # Streams
//
// Input streams are either plain file reads or read-only memory mappings,
// selected by WithMmap. Output streams are buffered; Close flushes and
// reports any failure from either step.
package local
