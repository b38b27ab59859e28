//go:build windows

package native

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// platformPathProblem reports why p cannot be converted to a UTF-16 Win32
// path, or "" if it can.
func platformPathProblem(p string) string {
	if !utf8.ValidString(p) {
		return "Path is not valid UTF-8"
	}
	rest := p[len(filepath.VolumeName(p)):]
	if strings.ContainsAny(rest, `<>"|?*:`) {
		return "Path contains reserved characters"
	}
	return ""
}
