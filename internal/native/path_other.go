//go:build !windows

package native

// platformPathProblem reports why p is not a valid native path. POSIX paths
// are arbitrary byte strings without NUL, which Resolve already checks.
func platformPathProblem(string) string {
	return ""
}
