//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package native

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

func TestStat_SymlinkLoop(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	b := filepath.Join(dir, "b")
	require.NoError(t, os.Symlink(b, a))
	require.NoError(t, os.Symlink(a, b))

	st, err := Stat(a)
	require.NoError(t, err)
	require.Equal(t, core.FileTypeNonExistent, st.Type())
}

func TestStat_DanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(filepath.Join(dir, "gone"), link))

	st, err := Stat(link)
	require.NoError(t, err)
	require.Equal(t, core.FileTypeNonExistent, st.Type())
}

func TestStat_FIFOIsUnknown(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "fifo")
	if err := unix.Mkfifo(p, 0o644); err != nil {
		t.Skipf("mkfifo unsupported: %v", err)
	}

	st, err := Stat(p)
	require.NoError(t, err)
	require.Equal(t, core.FileTypeUnknown, st.Type())
	require.Equal(t, core.NoSize, st.Size())
}

func TestStat_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
	dir := t.TempDir()
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Mkdir(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "f"), nil, 0o644))
	require.NoError(t, os.Chmod(locked, 0))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	_, err := Stat(filepath.Join(locked, "f"))
	require.Error(t, err)
	require.True(t, errors.HasCode(err, errors.CodeIO))
	require.Contains(t, err.Error(), "Failed stat()ing path")
}

func TestStat_DotDotAfterSymlinkFollowsTarget(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "other", "dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "other", "x"), []byte("12345"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(root, "other", "dir"), filepath.Join(root, "link")))

	np, err := Resolve(filepath.ToSlash(root) + "/link/../x")
	require.NoError(t, err)

	st, err := Stat(np)
	require.NoError(t, err)
	require.Equal(t, core.FileTypeFile, st.Type())
	require.Equal(t, int64(5), st.Size())
}

func TestDeleteDirTree_RefusesDotDot(t *testing.T) {
	root := t.TempDir()
	keep := filepath.Join(root, "keep")
	require.NoError(t, os.MkdirAll(filepath.Join(keep, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(keep, "f"), []byte("x"), 0o644))

	existed, err := DeleteDirTree(filepath.Join(keep, "sub") + string(filepath.Separator) + "..")
	require.True(t, existed)
	require.True(t, errors.HasCode(err, errors.CodeIO))
	require.ErrorIs(t, err, unix.EINVAL)
	require.DirExists(t, filepath.Join(keep, "sub"))
	require.FileExists(t, filepath.Join(keep, "f"))
}
