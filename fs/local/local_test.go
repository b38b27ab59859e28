package local

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/fs/fstest"
)

func newFS(t *testing.T, opts ...Option) (*LocalFS, string) {
	t.Helper()
	fsys, err := New(opts...)
	require.NoError(t, err)
	return fsys, filepath.ToSlash(t.TempDir())
}

func TestConformance(t *testing.T) {
	t.Run("Buffered", func(t *testing.T) {
		fstest.TestSuite(t, func(t *testing.T) (core.FileSystem, string) {
			return newFS(t)
		})
	})
	t.Run("Mmap", func(t *testing.T) {
		fstest.TestSuite(t, func(t *testing.T) (core.FileSystem, string) {
			return newFS(t, WithMmap(true))
		})
	})
	t.Run("SmallBuffers", func(t *testing.T) {
		fstest.TestSuite(t, func(t *testing.T) (core.FileSystem, string) {
			return newFS(t, WithCopyChunkSize(7), WithWriteBufferSize(3))
		})
	})
}

func TestNew_Defaults(t *testing.T) {
	fsys, err := New()
	require.NoError(t, err)
	require.Equal(t, DefaultOptions(), fsys.Options())
	require.False(t, fsys.Options().UseMmap)
	require.Equal(t, core.FSTypeLocal, fsys.Type())
}

func TestNew_Options(t *testing.T) {
	fsys, err := New(WithMmap(true), WithDirPerm(0o700), WithFilePerm(0o600),
		WithCopyChunkSize(4096), WithWriteBufferSize(512))
	require.NoError(t, err)

	opts := fsys.Options()
	require.True(t, opts.UseMmap)
	require.Equal(t, os.FileMode(0o700), opts.DirPerm)
	require.Equal(t, os.FileMode(0o600), opts.FilePerm)
	require.Equal(t, 4096, opts.CopyChunkSize)
	require.Equal(t, 512, opts.WriteBufferSize)
}

func TestNewWithOptions_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
		field  string
	}{
		{"dir perm", func(o *Options) { o.DirPerm = os.ModeDir | 0o755 }, "dir_perm"},
		{"file perm", func(o *Options) { o.FilePerm = os.ModeSetuid | 0o644 }, "file_perm"},
		{"copy chunk", func(o *Options) { o.CopyChunkSize = 0 }, "copy_chunk_size"},
		{"write buffer", func(o *Options) { o.WriteBufferSize = -1 }, "write_buffer_size"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			o := DefaultOptions()
			tt.mutate(&o)
			_, err := NewWithOptions(o)
			require.True(t, errors.HasCode(err, errors.CodeInvalidConfig))

			var perr errors.PlatformError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tt.field, perr.Context()["field"])
		})
	}
}

func TestStat_ModTime(t *testing.T) {
	fsys, root := newFS(t)
	p := filepath.Join(filepath.FromSlash(root), "f")
	require.NoError(t, os.WriteFile(p, []byte("abc"), 0o644))
	mtime := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chtimes(p, mtime, mtime))

	st, err := fsys.Stat(root + "/f")
	require.NoError(t, err)
	require.True(t, st.ModTime().Equal(mtime))
	require.Equal(t, root+"/f", st.Path())
}

func TestStat_NormalizesSeparatorsAndDots(t *testing.T) {
	fsys, root := newFS(t)
	require.NoError(t, os.Mkdir(filepath.Join(filepath.FromSlash(root), "d"), 0o755))

	st, err := fsys.Stat(root + "//./d/")
	require.NoError(t, err)
	require.Equal(t, core.FileTypeDirectory, st.Type())
	require.Equal(t, root+"/d", st.Path())
}

func TestStat_DotDotResolvedByOS(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	fsys, root := newFS(t)
	native := filepath.FromSlash(root)
	require.NoError(t, os.MkdirAll(filepath.Join(native, "other", "dir"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(native, "other", "x"), []byte("abc"), 0o644))
	require.NoError(t, os.Symlink(filepath.Join(native, "other", "dir"), filepath.Join(native, "link")))

	st, err := fsys.Stat(root + "/link/../x")
	require.NoError(t, err)
	require.Equal(t, core.FileTypeFile, st.Type())
	require.Equal(t, int64(3), st.Size())
}

func TestDeleteDir_DotDotRefused(t *testing.T) {
	fsys, root := newFS(t)
	native := filepath.FromSlash(root)
	require.NoError(t, os.MkdirAll(filepath.Join(native, "keep", "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(native, "keep", "f"), []byte("x"), 0o644))

	err := fsys.DeleteDir(root + "/keep/sub/..")
	require.True(t, core.IsIOError(err))
	require.DirExists(t, filepath.Join(native, "keep", "sub"))
	require.FileExists(t, filepath.Join(native, "keep", "f"))
}

// Scenario: base contains file a (10 bytes) and directory b holding file c
// (5 bytes).
func TestStatSelector_Scenario(t *testing.T) {
	fsys, root := newFS(t)
	native := filepath.FromSlash(root)
	require.NoError(t, os.WriteFile(filepath.Join(native, "a"), []byte("0123456789"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(native, "b"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(native, "b", "c"), []byte("01234"), 0o644))

	stats, err := fsys.StatSelector(core.NewSelector(root, core.WithMaxRecursion(1)))
	require.NoError(t, err)
	require.Len(t, stats, 3)

	byPath := map[string]core.FileStats{}
	for _, st := range stats {
		byPath[st.Path()] = st
	}
	require.Equal(t, int64(10), byPath[root+"/a"].Size())
	require.True(t, byPath[root+"/b"].IsDir())
	require.Equal(t, int64(5), byPath[root+"/b/c"].Size())

	stats, err = fsys.StatSelector(core.NewSelector(root, core.WithMaxRecursion(0)))
	require.NoError(t, err)
	require.Len(t, stats, 2)
}

func TestStatSelector_LogsWalk(t *testing.T) {
	obs, logs := observer.New(zapcore.DebugLevel)
	prev := Logger()
	SetLogger(zap.New(obs))
	t.Cleanup(func() { SetLogger(prev) })

	fsys, root := newFS(t)
	_, err := fsys.StatSelector(core.NewSelector(root))
	require.NoError(t, err)

	entries := logs.FilterMessage("selector walk complete").All()
	require.Len(t, entries, 1)
	require.Equal(t, root, entries[0].ContextMap()["base_dir"])
}

func TestCreateDir_RoundTrip(t *testing.T) {
	fsys, root := newFS(t)
	p := root + "/x/y"

	require.NoError(t, fsys.CreateDir(p, true))
	st, err := fsys.Stat(p)
	require.NoError(t, err)
	require.Equal(t, core.FileTypeDirectory, st.Type())

	require.NoError(t, fsys.DeleteDir(p))
	st, err = fsys.Stat(p)
	require.NoError(t, err)
	require.Equal(t, core.FileTypeNonExistent, st.Type())
}

func TestDeleteDir_NotFoundMessage(t *testing.T) {
	fsys, root := newFS(t)
	p := root + "/nope"

	err := fsys.DeleteDir(p)
	require.True(t, core.IsNotFound(err))
	require.ErrorIs(t, err, os.ErrNotExist)
	require.Contains(t, err.Error(), "Directory does not exist: '"+p+"'")
}

func TestMove_NamesBothPaths(t *testing.T) {
	fsys, root := newFS(t)

	err := fsys.Move(root+"/src", root+"/dst")
	require.True(t, core.IsIOError(err))
	require.Contains(t, err.Error(), "src")
	require.Contains(t, err.Error(), "dst")
	require.Contains(t, err.Error(), "Failed renaming")
}

func TestCopyFile_SameFileDifferentSpelling(t *testing.T) {
	fsys, root := newFS(t)
	native := filepath.FromSlash(root)
	require.NoError(t, os.Mkdir(filepath.Join(native, "d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(native, "d", "f"), []byte("keep"), 0o644))

	require.NoError(t, fsys.CopyFile(root+"/d/f", root+"/d/../d/f"))

	data, err := os.ReadFile(filepath.Join(native, "d", "f"))
	require.NoError(t, err)
	require.Equal(t, "keep", string(data))
}

func TestCopyFile_Directory(t *testing.T) {
	fsys, root := newFS(t)
	require.NoError(t, fsys.CreateDir(root+"/d", false))

	err := fsys.CopyFile(root+"/d", root+"/copy")
	require.True(t, core.IsIOError(err))
	require.Contains(t, err.Error(), "path is a directory")
}

func TestCopyFile_ChunkBoundaries(t *testing.T) {
	fsys, root := newFS(t, WithCopyChunkSize(3))
	content := strings.Repeat("xyz", 100) + "!"
	src := filepath.Join(filepath.FromSlash(root), "src")
	require.NoError(t, os.WriteFile(src, []byte(content), 0o644))

	require.NoError(t, fsys.CopyFile(root+"/src", root+"/dst"))

	data, err := os.ReadFile(filepath.Join(filepath.FromSlash(root), "dst"))
	require.NoError(t, err)
	require.Equal(t, content, string(data))
}

func TestOpenInput_MmapAndBufferedAgree(t *testing.T) {
	plain, root := newFS(t)
	mapped, err := New(WithMmap(true))
	require.NoError(t, err)

	content := strings.Repeat("mmap vs read ", 10000)
	require.NoError(t, os.WriteFile(filepath.Join(filepath.FromSlash(root), "f"), []byte(content), 0o644))

	for _, fsys := range []*LocalFS{plain, mapped} {
		in, err := fsys.OpenInputStream(root + "/f")
		require.NoError(t, err)
		data, err := io.ReadAll(in)
		require.NoError(t, err)
		require.NoError(t, in.Close())
		require.Equal(t, content, string(data))

		f, err := fsys.OpenInputFile(root + "/f")
		require.NoError(t, err)
		size, err := f.Size()
		require.NoError(t, err)
		require.Equal(t, int64(len(content)), size)
		require.NoError(t, f.Close())
	}
}

func TestOpenOutputStream_FilePerm(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on Windows")
	}
	fsys, root := newFS(t, WithFilePerm(0o600))

	out, err := fsys.OpenOutputStream(root + "/secret")
	require.NoError(t, err)
	require.NoError(t, out.Close())

	fi, err := os.Stat(filepath.Join(filepath.FromSlash(root), "secret"))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
}

func TestInvalidPaths(t *testing.T) {
	fsys, root := newFS(t)

	checks := map[string]error{
		"CreateDir":         fsys.CreateDir("", true),
		"DeleteDir":         fsys.DeleteDir(""),
		"DeleteDirContents": fsys.DeleteDirContents("a\x00"),
		"DeleteFile":        fsys.DeleteFile(""),
		"Move src":          fsys.Move("", root+"/x"),
		"Move dest":         fsys.Move(root+"/x", ""),
		"CopyFile":          fsys.CopyFile(root+"/x", "\x00"),
	}
	for name, err := range checks {
		require.True(t, core.IsInvalidPath(err), "%s: %v", name, err)
	}

	_, err := fsys.OpenInputStream("")
	require.True(t, core.IsInvalidPath(err))
	_, err = fsys.OpenOutputStream("")
	require.True(t, core.IsInvalidPath(err))
	_, err = fsys.OpenAppendStream("")
	require.True(t, core.IsInvalidPath(err))
}
