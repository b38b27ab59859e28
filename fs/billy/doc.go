// Package billy provides a go-billy-backed implementation of the
// core.FileSystem facade.
//
// Any billy.Filesystem can sit underneath: go-billy's osfs for a directory
// on the host, memfs for an in-memory tree, or a caller's own wrapper. The
// provider shares the directory selector with the native local provider,
// so StatSelector, delete and stream semantics are identical; only the
// storage differs.
//
// Usage:
//
//	// In-memory filesystem, handy for tests
//	fsys := billy.NewMemory()
//	err := fsys.CreateDir("/data/raw", true)
//
//	// A host directory seen through osfs
//	fsys := billy.NewLocal("/srv/files")
//
//	// Unwrap to hand the same storage to other billy consumers
//	bfs := fsys.Unwrap()
//
// # Differences from the local provider
//
// Entries are enumerated in the order the billy backend returns them, which
// for memfs and osfs is sorted by name. Modification times come from the
// backend's FileInfo; memfs reports the current time. Copying a file onto
// itself is detected by path, since billy exposes no file identity.
//
// # Thread Safety
//
// FS instances are safe for concurrent use by multiple goroutines:
// metadata operations are serialized around the backend, which for memfs is
// not itself safe for concurrent mutation. Streams are not safe for
// concurrent use except for ReadAt.
package billy
