package fstest

import (
	"testing"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

// TestStatFS tests single-path metadata queries.
// Uses LocalTestConfig() by default.
func TestStatFS(t *testing.T, filesystem core.FileSystem, root string) {
	TestStatFSWithConfig(t, filesystem, root, LocalTestConfig())
}

// TestStatFSWithConfig tests single-path metadata queries with behavior configuration.
func TestStatFSWithConfig(t *testing.T, filesystem core.FileSystem, root string, config FSTestConfig) {
	run(t, config, "StatFS", "File", func(t *testing.T) {
		testStatFile(t, filesystem, root)
	})
	run(t, config, "StatFS", "Directory", func(t *testing.T) {
		testStatDirectory(t, filesystem, root)
	})
	run(t, config, "StatFS", "NonExistent", func(t *testing.T) {
		testStatNonExistent(t, filesystem, root)
	})
	run(t, config, "StatFS", "ThroughFile", func(t *testing.T) {
		testStatThroughFile(t, filesystem, root)
	})
	run(t, config, "StatFS", "InvalidPath", func(t *testing.T) {
		testStatInvalidPath(t, filesystem)
	})
}

func testStatFile(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "file.txt")
	writeFile(t, filesystem, p, "0123456789")

	st, err := filesystem.Stat(p)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", p, err)
	}
	if st.Type() != core.FileTypeFile {
		t.Errorf("Stat(%s).Type() = %s, want file", p, st.Type())
	}
	if st.Size() != 10 {
		t.Errorf("Stat(%s).Size() = %d, want 10", p, st.Size())
	}
	if !st.HasModTime() {
		t.Errorf("Stat(%s).HasModTime() = false, want true", p)
	}
	if st.BaseName() != "file.txt" {
		t.Errorf("Stat(%s).BaseName() = %q, want file.txt", p, st.BaseName())
	}
}

func testStatDirectory(t *testing.T, filesystem core.FileSystem, root string) {
	mkdirs(t, filesystem, root, "dir")
	p := join(root, "dir")

	st, err := filesystem.Stat(p)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", p, err)
	}
	if st.Type() != core.FileTypeDirectory {
		t.Errorf("Stat(%s).Type() = %s, want directory", p, st.Type())
	}
	if st.Size() != core.NoSize {
		t.Errorf("Stat(%s).Size() = %d, want NoSize", p, st.Size())
	}
}

func testStatNonExistent(t *testing.T, filesystem core.FileSystem, root string) {
	for _, p := range []string{join(root, "missing"), join(root, "missing", "deeper")} {
		st, err := filesystem.Stat(p)
		if err != nil {
			t.Fatalf("Stat(%s): got error %v, want nil", p, err)
		}
		if st.Type() != core.FileTypeNonExistent {
			t.Errorf("Stat(%s).Type() = %s, want non-existent", p, st.Type())
		}
		if st.Size() != core.NoSize || st.HasModTime() {
			t.Errorf("Stat(%s): size/mtime should be sentinels, got %d/%s", p, st.Size(), st.ModTime())
		}
	}
}

func testStatThroughFile(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "plain")
	writeFile(t, filesystem, p, "x")

	if got := statType(t, filesystem, join(p, "child")); got != core.FileTypeNonExistent {
		t.Errorf("Stat(plain/child).Type() = %s, want non-existent", got)
	}
}

func testStatInvalidPath(t *testing.T, filesystem core.FileSystem) {
	_, err := filesystem.Stat("")
	expectCode(t, "Stat(\"\")", err, errors.CodeInvalidPath)

	_, err = filesystem.Stat("a\x00b")
	expectCode(t, "Stat(NUL)", err, errors.CodeInvalidPath)
}
