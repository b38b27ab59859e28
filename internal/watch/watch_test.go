package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
	"github.com/jmgilman/localfs/fs/local"
)

func newLocal(t *testing.T) core.FileSystem {
	t.Helper()
	fsys, err := local.New()
	require.NoError(t, err)
	return fsys
}

func mkTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "a", "b", "c"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "d"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", "f.txt"), []byte("x"), 0o644))
	return root
}

func TestNew_WatchedDirectoriesFollowSelector(t *testing.T) {
	root := mkTree(t)
	fsys := newLocal(t)

	tests := []struct {
		name string
		sel  core.Selector
		want int
	}{
		{"non-recursive", core.NewSelector(root), 1},
		{"depth 0", core.NewSelector(root, core.WithMaxRecursion(0)), 1},
		{"depth 1", core.NewSelector(root, core.WithMaxRecursion(1)), 3},
		{"depth 2", core.NewSelector(root, core.WithMaxRecursion(2)), 4},
		{"unbounded", core.NewSelector(root, core.Recursive()), 5},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			w, err := New(fsys, tt.sel)
			require.NoError(t, err)
			defer w.Close()
			assert.Equal(t, tt.want, w.Watched())
		})
	}
}

func TestNew_MissingBase(t *testing.T) {
	_, err := New(newLocal(t), core.NewSelector(filepath.Join(t.TempDir(), "absent")))
	require.Error(t, err)
	assert.Equal(t, errors.CodeIO, errors.GetCode(err))
}

func TestNew_InvalidSelector(t *testing.T) {
	sel := core.Selector{BaseDir: t.TempDir(), Recursive: true, MaxRecursion: -1}
	_, err := New(newLocal(t), sel)
	require.Error(t, err)
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) handle(batch []Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, batch...)
}

func (r *recorder) has(op Op, p string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.events {
		if e.Op == op && e.Path == p {
			return true
		}
	}
	return false
}

func TestRun_ReportsChanges(t *testing.T) {
	root := t.TempDir()
	w, err := New(newLocal(t), core.NewSelector(root, core.Recursive()), WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{}
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, rec.handle) }()

	file := filepath.Join(root, "new.txt")
	require.NoError(t, os.WriteFile(file, []byte("hello"), 0o644))
	require.Eventually(t, func() bool {
		return rec.has(OpCreate, filepath.ToSlash(file))
	}, 5*time.Second, 10*time.Millisecond)

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.Eventually(t, func() bool { return w.Watched() == 2 }, 5*time.Second, 10*time.Millisecond)

	nested := filepath.Join(sub, "inner.txt")
	require.NoError(t, os.WriteFile(nested, []byte("x"), 0o644))
	require.Eventually(t, func() bool {
		return rec.has(OpCreate, filepath.ToSlash(nested))
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, os.RemoveAll(sub))
	require.Eventually(t, func() bool { return w.Watched() == 1 }, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_NonRecursiveIgnoresNewSubdirectories(t *testing.T) {
	root := t.TempDir()
	w, err := New(newLocal(t), core.NewSelector(root), WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{}
	go func() { _ = w.Run(ctx, rec.handle) }()

	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.Eventually(t, func() bool {
		return rec.has(OpCreate, filepath.ToSlash(sub))
	}, 5*time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, w.Watched())
}

func TestDepthBelow(t *testing.T) {
	assert.Equal(t, 0, depthBelow("/a", "/a/b"))
	assert.Equal(t, 1, depthBelow("/a", "/a/b/c"))
	assert.Equal(t, 0, depthBelow("/", "/b"))
	assert.Equal(t, 2, depthBelow("/", "/b/c/d"))
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "create", OpCreate.String())
	assert.Equal(t, "write", OpWrite.String())
	assert.Equal(t, "remove", OpRemove.String())
	assert.Equal(t, "rename", OpRename.String())
	assert.Equal(t, "chmod", OpChmod.String())
}
