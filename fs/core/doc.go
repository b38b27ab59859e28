// Package core provides the data model and the facade contract shared by
// every filesystem provider in this module.
//
// Providers normalize platform-native metadata into FileStats records,
// enumerate directory trees described by a Selector, and expose create,
// delete, move, copy and stream operations with consistent error semantics.
//
// # Design Philosophy
//
//   - No third-party dependencies
//   - Interface composition: small focused interfaces compose into FileSystem
//   - Absence is data: Stat of a missing path succeeds with FileTypeNonExistent
//   - Sentinels instead of zero values: NoSize and NoTime mark "not applicable"
//
// # Interface Hierarchy
//
// FileSystem is composed of five sub-interfaces:
//
//   - StatFS: single-path metadata (Stat)
//   - SelectorFS: tree enumeration (StatSelector)
//   - DirFS: directory creation and deletion (CreateDir, DeleteDir, DeleteDirContents)
//   - ManageFS: file management (DeleteFile, Move, CopyFile)
//   - StreamFS: streams (OpenInputStream, OpenInputFile, OpenOutputStream, OpenAppendStream)
//
// # Usage Example
//
//	import (
//	    "github.com/jmgilman/localfs/fs/core"
//	    "github.com/jmgilman/localfs/fs/local"
//	)
//
//	func ListTree(filesystem core.FileSystem, dir string) error {
//	    stats, err := filesystem.StatSelector(core.NewSelector(dir, core.Recursive()))
//	    if err != nil {
//	        return err
//	    }
//	    for _, st := range stats {
//	        fmt.Println(st.Type(), st.Path(), st.Size())
//	    }
//	    return nil
//	}
//
//	err := ListTree(local.New(), "/var/data")
//
// # Error Semantics
//
// Failures are errors.PlatformError values from
// github.com/jmgilman/localfs/errors. Use IsInvalidPath, IsIOError and
// IsNotFound to classify them. Only delete operations treat absence as a
// failure; Stat and StatSelector (with AllowNonExistent) report it as data.
//
// # Provider Implementations
//
//   - github.com/jmgilman/localfs/fs/local - native OS filesystem
//   - github.com/jmgilman/localfs/fs/billy - any go-billy filesystem (memfs, osfs)
package core
