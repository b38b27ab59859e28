// Package native is the boundary to the operating system: it resolves
// portable paths to native ones, normalizes native stat results into
// core.FileStats, and wraps the raw listing, create, delete, rename and open
// primitives with consistent errors.
package native

import (
	"path/filepath"
	"strings"

	"github.com/jmgilman/localfs/errors"
)

// Resolve converts a portable, slash separated path into the native form
// used by the primitives in this package. Repeated separators, "." elements
// and trailing separators are dropped. ".." elements are kept for the
// operating system to interpret, so symlinks before them are honored. The
// result is not made absolute.
//
// Empty paths, paths with an embedded NUL byte and paths the platform cannot
// represent fail with errors.CodeInvalidPath.
func Resolve(portable string) (string, error) {
	if portable == "" {
		return "", invalidPath(portable, "Empty path")
	}
	if strings.IndexByte(portable, 0) >= 0 {
		return "", invalidPath(portable, "Embedded NUL char in path")
	}
	if reason := platformPathProblem(portable); reason != "" {
		return "", invalidPath(portable, reason)
	}
	return normalize(filepath.FromSlash(portable)), nil
}

func normalize(p string) string {
	sep := string(filepath.Separator)
	vol := filepath.VolumeName(p)
	rest := p[len(vol):]

	elems := make([]string, 0, strings.Count(rest, sep)+1)
	for _, e := range strings.Split(rest, sep) {
		if e != "" && e != "." {
			elems = append(elems, e)
		}
	}

	out := strings.Join(elems, sep)
	switch {
	case strings.HasPrefix(rest, sep):
		out = sep + out
	case out == "":
		out = "."
	}
	return vol + out
}

// EndsInDotElement reports whether the last element of p is "." or "..".
// Such paths name a directory only relative to another one, and rmdir(2)
// refuses them.
func EndsInDotElement(p string) bool {
	p = strings.TrimRight(filepath.ToSlash(p), "/")
	base := p[strings.LastIndexByte(p, '/')+1:]
	return base == "." || base == ".."
}

// ToPortable converts a native path back into its portable form.
func ToPortable(native string) string {
	return filepath.ToSlash(native)
}

// Join joins a native directory path with a child name.
func Join(dir, name string) string {
	return filepath.Join(dir, name)
}

func invalidPath(portable, reason string) error {
	return errors.WithContext(
		errors.Newf(errors.CodeInvalidPath, "%s: '%s'", reason, portable),
		"path", portable,
	)
}
