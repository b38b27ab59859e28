package fstest

import (
	"path"
	"sort"
	"testing"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

// TestSelectorFS tests directory tree enumeration.
// Uses LocalTestConfig() by default.
func TestSelectorFS(t *testing.T, filesystem core.FileSystem, root string) {
	TestSelectorFSWithConfig(t, filesystem, root, LocalTestConfig())
}

// TestSelectorFSWithConfig tests directory tree enumeration with behavior configuration.
func TestSelectorFSWithConfig(t *testing.T, filesystem core.FileSystem, root string, config FSTestConfig) {
	run(t, config, "SelectorFS", "NonRecursive", func(t *testing.T) {
		testSelectorNonRecursive(t, filesystem, join(root, "nonrec"))
	})
	run(t, config, "SelectorFS", "MaxRecursion", func(t *testing.T) {
		testSelectorMaxRecursion(t, filesystem, join(root, "maxrec"))
	})
	run(t, config, "SelectorFS", "Unbounded", func(t *testing.T) {
		testSelectorUnbounded(t, filesystem, join(root, "unbounded"))
	})
	run(t, config, "SelectorFS", "EmptyDirectory", func(t *testing.T) {
		testSelectorEmpty(t, filesystem, join(root, "empty"))
	})
	run(t, config, "SelectorFS", "MissingBase", func(t *testing.T) {
		testSelectorMissingBase(t, filesystem, root)
	})
	run(t, config, "SelectorFS", "BaseIsFile", func(t *testing.T) {
		testSelectorBaseIsFile(t, filesystem, root)
	})
	run(t, config, "SelectorFS", "InvalidSelector", func(t *testing.T) {
		testSelectorInvalid(t, filesystem, root)
	})
}

// buildScenario creates base with file a (10 bytes) and directory b holding
// file c (5 bytes).
func buildScenario(t *testing.T, filesystem core.FileSystem, base string) {
	t.Helper()
	mkdirs(t, filesystem, base, "b")
	writeFile(t, filesystem, join(base, "a"), "0123456789")
	writeFile(t, filesystem, join(base, "b", "c"), "01234")
}

// byRel indexes results by their path relative to base.
func byRel(t *testing.T, base string, stats []core.FileStats) map[string]core.FileStats {
	t.Helper()
	out := make(map[string]core.FileStats, len(stats))
	for _, st := range stats {
		rel, ok := relTo(base, st.Path())
		if !ok {
			t.Fatalf("entry %s is not below %s", st.Path(), base)
		}
		if _, dup := out[rel]; dup {
			t.Fatalf("entry %s reported twice", st.Path())
		}
		out[rel] = st
	}
	return out
}

func relTo(base, p string) (string, bool) {
	base = path.Clean(base)
	p = path.Clean(p)
	prefix := base + "/"
	if base == "/" {
		prefix = "/"
	}
	if len(p) <= len(prefix) || p[:len(prefix)] != prefix {
		return "", false
	}
	return p[len(prefix):], true
}

func keys(m map[string]core.FileStats) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// checkPreOrder verifies that every entry appears after its parent
// directory and that a directory's descendants are contiguous.
func checkPreOrder(t *testing.T, base string, stats []core.FileStats) {
	t.Helper()
	seen := map[string]int{}
	for i, st := range stats {
		rel, _ := relTo(base, st.Path())
		seen[rel] = i
		parent := path.Dir(rel)
		if parent == "." {
			continue
		}
		pi, ok := seen[parent]
		if !ok {
			t.Fatalf("entry %s appears before its parent", rel)
		}
		for j := pi + 1; j < i; j++ {
			other, _ := relTo(base, stats[j].Path())
			if !isBelow(other, parent) {
				t.Fatalf("entry %s separated from parent %s by %s", rel, parent, other)
			}
		}
	}
}

func isBelow(p, dir string) bool {
	return len(p) > len(dir) && p[:len(dir)] == dir && p[len(dir)] == '/'
}

func testSelectorNonRecursive(t *testing.T, filesystem core.FileSystem, base string) {
	buildScenario(t, filesystem, base)

	stats, err := filesystem.StatSelector(core.NewSelector(base))
	if err != nil {
		t.Fatalf("StatSelector(%s): got error %v, want nil", base, err)
	}
	got := byRel(t, base, stats)
	if want := []string{"a", "b"}; !equalStrings(keys(got), want) {
		t.Fatalf("StatSelector(%s) = %v, want %v", base, keys(got), want)
	}
	if got["a"].Type() != core.FileTypeFile || got["a"].Size() != 10 {
		t.Errorf("entry a = %s, want file of 10 bytes", got["a"])
	}
	if got["b"].Type() != core.FileTypeDirectory {
		t.Errorf("entry b = %s, want directory", got["b"])
	}
}

func testSelectorMaxRecursion(t *testing.T, filesystem core.FileSystem, base string) {
	buildScenario(t, filesystem, base)

	tests := []struct {
		depth int
		want  []string
	}{
		{0, []string{"a", "b"}},
		{1, []string{"a", "b", "b/c"}},
	}
	for _, tt := range tests {
		sel := core.NewSelector(base, core.WithMaxRecursion(tt.depth))
		stats, err := filesystem.StatSelector(sel)
		if err != nil {
			t.Fatalf("StatSelector(max=%d): got error %v, want nil", tt.depth, err)
		}
		got := byRel(t, base, stats)
		if !equalStrings(keys(got), tt.want) {
			t.Errorf("StatSelector(max=%d) = %v, want %v", tt.depth, keys(got), tt.want)
			continue
		}
		if c, ok := got["b/c"]; ok && (c.Type() != core.FileTypeFile || c.Size() != 5) {
			t.Errorf("entry b/c = %s, want file of 5 bytes", c)
		}
		checkPreOrder(t, base, stats)
	}
}

func testSelectorUnbounded(t *testing.T, filesystem core.FileSystem, base string) {
	mkdirs(t, filesystem, base, "x/y/z", "w")
	writeFile(t, filesystem, join(base, "x", "y", "z", "deep"), "d")
	writeFile(t, filesystem, join(base, "x", "f"), "f")

	stats, err := filesystem.StatSelector(core.NewSelector(base, core.Recursive()))
	if err != nil {
		t.Fatalf("StatSelector(%s): got error %v, want nil", base, err)
	}
	want := []string{"w", "x", "x/f", "x/y", "x/y/z", "x/y/z/deep"}
	if got := keys(byRel(t, base, stats)); !equalStrings(got, want) {
		t.Fatalf("StatSelector(%s) = %v, want %v", base, got, want)
	}
	checkPreOrder(t, base, stats)
}

func testSelectorEmpty(t *testing.T, filesystem core.FileSystem, base string) {
	mkdirs(t, filesystem, base, ".")

	stats, err := filesystem.StatSelector(core.NewSelector(base, core.Recursive()))
	if err != nil {
		t.Fatalf("StatSelector(%s): got error %v, want nil", base, err)
	}
	if len(stats) != 0 {
		t.Errorf("StatSelector(%s) returned %d entries, want 0", base, len(stats))
	}
}

func testSelectorMissingBase(t *testing.T, filesystem core.FileSystem, root string) {
	base := join(root, "does-not-exist")

	_, err := filesystem.StatSelector(core.NewSelector(base))
	expectCode(t, "StatSelector(missing)", err, errors.CodeIO)

	stats, err := filesystem.StatSelector(core.NewSelector(base, core.AllowNonExistent()))
	if err != nil {
		t.Fatalf("StatSelector(missing, allow): got error %v, want nil", err)
	}
	if len(stats) != 0 {
		t.Errorf("StatSelector(missing, allow) returned %d entries, want 0", len(stats))
	}
}

func testSelectorBaseIsFile(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "not-a-dir")
	writeFile(t, filesystem, p, "x")

	_, err := filesystem.StatSelector(core.NewSelector(p, core.AllowNonExistent()))
	expectCode(t, "StatSelector(file)", err, errors.CodeIO)
}

func testSelectorInvalid(t *testing.T, filesystem core.FileSystem, root string) {
	sel := core.NewSelector(root, core.Recursive())
	sel.MaxRecursion = -1
	_, err := filesystem.StatSelector(sel)
	expectCode(t, "StatSelector(max=-1)", err, errors.CodeInvalidInput)

	_, err = filesystem.StatSelector(core.NewSelector(""))
	expectCode(t, "StatSelector(\"\")", err, errors.CodeInvalidPath)
}
