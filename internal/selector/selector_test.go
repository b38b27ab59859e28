package selector

import (
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

// fakeTree is an in-memory tree that keeps insertion order per directory
// and can simulate entries vanishing mid-walk.
type fakeTree struct {
	dirs  map[string][]string
	files map[string]int64

	// vanishOnList removes the directory right before it is listed.
	vanishOnList map[string]bool
	// vanishOnStat removes the entry right before it is stat'ed.
	vanishOnStat map[string]bool
	// failStat makes Stat of the path fail.
	failStat map[string]bool

	statCalls int
}

func newFakeTree() *fakeTree {
	return &fakeTree{
		dirs:         map[string][]string{"/": nil},
		files:        map[string]int64{},
		vanishOnList: map[string]bool{},
		vanishOnStat: map[string]bool{},
		failStat:     map[string]bool{},
	}
}

func (f *fakeTree) addDir(p string) {
	f.dirs[p] = nil
	parent := path.Dir(p)
	f.dirs[parent] = append(f.dirs[parent], path.Base(p))
}

func (f *fakeTree) addFile(p string, size int64) {
	f.files[p] = size
	parent := path.Dir(p)
	f.dirs[parent] = append(f.dirs[parent], path.Base(p))
}

func (f *fakeTree) Stat(p string) (core.FileStats, error) {
	f.statCalls++
	if f.failStat[p] {
		return core.FileStats{}, errors.Newf(errors.CodeIO, "Failed stat()ing path '%s'", p)
	}
	if f.vanishOnStat[p] {
		delete(f.dirs, p)
		delete(f.files, p)
	}
	mtime := time.Unix(1700000000, 0)
	if _, ok := f.dirs[p]; ok {
		return core.NewFileStats(p, core.FileTypeDirectory, core.NoSize, mtime), nil
	}
	if size, ok := f.files[p]; ok {
		return core.NewFileStats(p, core.FileTypeFile, size, mtime), nil
	}
	return core.NonExistentStats(p), nil
}

func (f *fakeTree) ListDir(dir string) ([]string, error) {
	if f.vanishOnList[dir] {
		delete(f.dirs, dir)
	}
	names, ok := f.dirs[dir]
	if !ok {
		return nil, errors.Newf(errors.CodeIO, "Cannot list directory '%s'", dir)
	}
	return append([]string(nil), names...), nil
}

func (f *fakeTree) Join(dir, name string) string {
	return path.Join(dir, name)
}

// scenarioTree builds /t with file a (10 bytes) and directory b holding
// file c (5 bytes) and directory d holding file e.
func scenarioTree() *fakeTree {
	tree := newFakeTree()
	tree.addDir("/t")
	tree.addFile("/t/a", 10)
	tree.addDir("/t/b")
	tree.addFile("/t/b/c", 5)
	tree.addDir("/t/b/d")
	tree.addFile("/t/b/d/e", 1)
	return tree
}

func paths(stats []core.FileStats) []string {
	out := make([]string, 0, len(stats))
	for _, st := range stats {
		out = append(out, st.Path())
	}
	return out
}

func TestWalk_NonRecursive(t *testing.T) {
	w := New(scenarioTree(), nil)

	got, err := w.Walk("/t", core.NewSelector("/t"))
	require.NoError(t, err)
	require.Equal(t, []string{"/t/a", "/t/b"}, paths(got))
	require.Equal(t, int64(10), got[0].Size())
	require.True(t, got[1].IsDir())
}

func TestWalk_PreOrder(t *testing.T) {
	w := New(scenarioTree(), nil)

	got, err := w.Walk("/t", core.NewSelector("/t", core.Recursive()))
	require.NoError(t, err)
	require.Equal(t, []string{"/t/a", "/t/b", "/t/b/c", "/t/b/d", "/t/b/d/e"}, paths(got))
}

func TestWalk_MaxRecursion(t *testing.T) {
	tests := []struct {
		depth int
		want  []string
	}{
		{0, []string{"/t/a", "/t/b"}},
		{1, []string{"/t/a", "/t/b", "/t/b/c", "/t/b/d"}},
		{2, []string{"/t/a", "/t/b", "/t/b/c", "/t/b/d", "/t/b/d/e"}},
	}
	for _, tt := range tests {
		w := New(scenarioTree(), nil)
		got, err := w.Walk("/t", core.NewSelector("/t", core.WithMaxRecursion(tt.depth)))
		require.NoError(t, err)
		require.Equal(t, tt.want, paths(got), "max recursion %d", tt.depth)
	}
}

func TestWalk_ListingOrderPreserved(t *testing.T) {
	tree := newFakeTree()
	tree.addDir("/t")
	tree.addFile("/t/z", 1)
	tree.addFile("/t/a", 1)
	tree.addFile("/t/m", 1)

	got, err := New(tree, nil).Walk("/t", core.NewSelector("/t"))
	require.NoError(t, err)
	require.Equal(t, []string{"/t/z", "/t/a", "/t/m"}, paths(got))
}

func TestWalk_MissingBase(t *testing.T) {
	tree := newFakeTree()

	_, err := New(tree, nil).Walk("/missing", core.NewSelector("/missing"))
	require.Error(t, err)
	require.True(t, errors.HasCode(err, errors.CodeIO))

	got, err := New(tree, nil).Walk("/missing", core.NewSelector("/missing", core.AllowNonExistent()))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestWalk_BaseIsFile(t *testing.T) {
	tree := newFakeTree()
	tree.addFile("/f", 1)

	_, err := New(tree, nil).Walk("/f", core.NewSelector("/f", core.AllowNonExistent()))
	require.Error(t, err)
	require.True(t, errors.HasCode(err, errors.CodeIO))
}

func TestWalk_SubdirectoryVanishesBeforeListing(t *testing.T) {
	tree := scenarioTree()
	tree.vanishOnList["/t/b"] = true

	obs, logs := observer.New(zapcore.DebugLevel)
	w := New(tree, zap.New(obs))

	got, err := w.Walk("/t", newRecursiveAllowing("/t"))
	require.NoError(t, err)
	require.Equal(t, []string{"/t/a", "/t/b"}, paths(got))
	require.Equal(t, 1, logs.FilterMessage("directory vanished before listing").Len())
}

func TestWalk_SubdirectoryVanishesWithoutAllow(t *testing.T) {
	tree := scenarioTree()
	tree.vanishOnList["/t/b"] = true

	_, err := New(tree, nil).Walk("/t", newRecursive("/t"))
	require.Error(t, err)
	require.True(t, errors.HasCode(err, errors.CodeIO))
}

func TestWalk_EntryVanishesBeforeStat(t *testing.T) {
	tree := scenarioTree()
	tree.vanishOnStat["/t/a"] = true

	obs, logs := observer.New(zapcore.DebugLevel)
	w := New(tree, zap.New(obs))

	got, err := w.Walk("/t", newRecursive("/t"))
	require.NoError(t, err)
	require.Equal(t, []string{"/t/b", "/t/b/c", "/t/b/d", "/t/b/d/e"}, paths(got))
	require.Equal(t, 1, logs.FilterMessage("entry vanished before stat").Len())
}

func TestWalk_StatFailurePropagates(t *testing.T) {
	tree := scenarioTree()
	tree.failStat["/t/b/c"] = true

	_, err := New(tree, nil).Walk("/t", newRecursive("/t"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "/t/b/c")
}

func TestWalk_InvalidSelector(t *testing.T) {
	tree := scenarioTree()
	sel := core.NewSelector("/t", core.Recursive())
	sel.MaxRecursion = -1

	_, err := New(tree, nil).Walk("/t", sel)
	require.True(t, errors.HasCode(err, errors.CodeInvalidInput))
	require.Zero(t, tree.statCalls)
}

func newRecursive(base string) core.Selector {
	return core.NewSelector(base, core.Recursive())
}

func newRecursiveAllowing(base string) core.Selector {
	return core.NewSelector(base, core.Recursive(), core.AllowNonExistent())
}
