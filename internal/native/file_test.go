package native

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/localfs/errors"
)

func TestDeleteFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	existed, err := DeleteFile(file)
	require.NoError(t, err)
	require.True(t, existed)
	require.NoFileExists(t, file)

	existed, err = DeleteFile(file)
	require.NoError(t, err)
	require.False(t, existed)
}

func TestDeleteFile_Directory(t *testing.T) {
	dir := t.TempDir()

	_, err := DeleteFile(dir)
	require.True(t, errors.HasCode(err, errors.CodeIO))
	require.DirExists(t, dir)
}

func TestRename(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src")
	dst := filepath.Join(dir, "dst")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	require.NoError(t, Rename(src, dst))
	require.NoFileExists(t, src)
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "new", string(data))

	err = Rename(src, dst)
	require.True(t, errors.HasCode(err, errors.CodeIO))
	require.Contains(t, err.Error(), "Failed renaming")
}

func TestSameFile(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a")
	require.NoError(t, os.WriteFile(a, nil, 0o644))

	require.True(t, SameFile(a, filepath.Join(dir, ".", "a")))
	require.False(t, SameFile(a, filepath.Join(dir, "b")))
	require.False(t, SameFile(a, dir))
}

func TestOpenWritable(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "f")

	f, err := OpenWritable(p, true, false, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("hello")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = OpenWritable(p, false, true, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(" world")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	f, err = OpenReadable(p)
	require.NoError(t, err)
	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	require.Equal(t, "hello world", string(data))

	f, err = OpenWritable(p, true, false, 0o644)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	data, err = os.ReadFile(p)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestOpenReadable_Missing(t *testing.T) {
	_, err := OpenReadable(filepath.Join(t.TempDir(), "missing"))
	require.True(t, errors.HasCode(err, errors.CodeIO))
	require.True(t, IsNonExistent(err))
	require.Contains(t, err.Error(), "Failed to open local file")
}
