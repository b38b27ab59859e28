package fstest

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

// TestDirFS tests directory creation and deletion.
// Uses LocalTestConfig() by default.
func TestDirFS(t *testing.T, filesystem core.FileSystem, root string) {
	TestDirFSWithConfig(t, filesystem, root, LocalTestConfig())
}

// TestDirFSWithConfig tests directory creation and deletion with behavior configuration.
func TestDirFSWithConfig(t *testing.T, filesystem core.FileSystem, root string, config FSTestConfig) {
	run(t, config, "DirFS", "CreateRecursive", func(t *testing.T) {
		testCreateDirRecursive(t, filesystem, root)
	})
	run(t, config, "DirFS", "CreateNonRecursive", func(t *testing.T) {
		testCreateDirNonRecursive(t, filesystem, root)
	})
	run(t, config, "DirFS", "CreateOverFile", func(t *testing.T) {
		testCreateDirOverFile(t, filesystem, root)
	})
	run(t, config, "DirFS", "DeleteDir", func(t *testing.T) {
		testDeleteDir(t, filesystem, root)
	})
	run(t, config, "DirFS", "DeleteDirMissing", func(t *testing.T) {
		testDeleteDirMissing(t, filesystem, root)
	})
	run(t, config, "DirFS", "DeleteDirDotDot", func(t *testing.T) {
		testDeleteDirDotDot(t, filesystem, root)
	})
	run(t, config, "DirFS", "DeleteDirOnFile", func(t *testing.T) {
		testDeleteDirOnFile(t, filesystem, root)
	})
	run(t, config, "DirFS", "DeleteDirContents", func(t *testing.T) {
		testDeleteDirContents(t, filesystem, root)
	})
}

func testCreateDirRecursive(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "r1", "r2", "r3")

	if err := filesystem.CreateDir(p, true); err != nil {
		t.Fatalf("CreateDir(%s, true): got error %v, want nil", p, err)
	}
	for _, d := range []string{join(root, "r1"), join(root, "r1", "r2"), p} {
		if got := statType(t, filesystem, d); got != core.FileTypeDirectory {
			t.Errorf("Stat(%s).Type() = %s, want directory", d, got)
		}
	}

	// An existing chain is a no-op.
	if err := filesystem.CreateDir(p, true); err != nil {
		t.Errorf("CreateDir(%s, true) again: got error %v, want nil", p, err)
	}
}

func testCreateDirNonRecursive(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "missing-parent", "child")
	err := filesystem.CreateDir(p, false)
	expectCode(t, "CreateDir(missing parent, false)", err, errors.CodeIO)
	if got := statType(t, filesystem, join(root, "missing-parent")); got != core.FileTypeNonExistent {
		t.Errorf("non-recursive CreateDir created the parent (type %s)", got)
	}

	single := join(root, "single")
	if err := filesystem.CreateDir(single, false); err != nil {
		t.Fatalf("CreateDir(%s, false): got error %v, want nil", single, err)
	}
	if got := statType(t, filesystem, single); got != core.FileTypeDirectory {
		t.Errorf("Stat(%s).Type() = %s, want directory", single, got)
	}
	if err := filesystem.CreateDir(single, false); err != nil {
		t.Errorf("CreateDir(%s, false) on existing directory: got error %v, want nil", single, err)
	}
}

func testCreateDirOverFile(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "occupied")
	writeFile(t, filesystem, p, "x")

	expectCode(t, "CreateDir(file, false)", filesystem.CreateDir(p, false), errors.CodeIO)
	expectCode(t, "CreateDir(file, true)", filesystem.CreateDir(p, true), errors.CodeIO)
	expectCode(t, "CreateDir(file/sub, true)", filesystem.CreateDir(join(p, "sub"), true), errors.CodeIO)
}

func testDeleteDir(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "tree")
	mkdirs(t, filesystem, root, "tree/a/b", "tree/c")
	writeFile(t, filesystem, join(p, "a", "f"), "data")

	if got := statType(t, filesystem, p); got != core.FileTypeDirectory {
		t.Fatalf("Stat(%s).Type() = %s, want directory", p, got)
	}
	if err := filesystem.DeleteDir(p); err != nil {
		t.Fatalf("DeleteDir(%s): got error %v, want nil", p, err)
	}
	if got := statType(t, filesystem, p); got != core.FileTypeNonExistent {
		t.Errorf("Stat(%s).Type() after DeleteDir = %s, want non-existent", p, got)
	}
}

func testDeleteDirMissing(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "never-created")
	err := filesystem.DeleteDir(p)
	expectCode(t, "DeleteDir(missing)", err, errors.CodeNotFound)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Errorf("DeleteDir(missing): error %v does not wrap fs.ErrNotExist", err)
	}

	if !strings.Contains(err.Error(), "Directory does not exist") {
		t.Errorf("DeleteDir(missing): message %q lacks %q", err.Error(), "Directory does not exist")
	}

	err = filesystem.DeleteDirContents(p)
	expectCode(t, "DeleteDirContents(missing)", err, errors.CodeNotFound)
	if !strings.Contains(err.Error(), "Directory does not exist") {
		t.Errorf("DeleteDirContents(missing): message %q lacks %q", err.Error(), "Directory does not exist")
	}
}

func testDeleteDirDotDot(t *testing.T, filesystem core.FileSystem, root string) {
	mkdirs(t, filesystem, root, "dd/sub")
	writeFile(t, filesystem, join(root, "dd", "f"), "x")
	p := join(root, "dd", "sub") + "/.."

	expectCode(t, "DeleteDir(sub/..)", filesystem.DeleteDir(p), errors.CodeIO)
	if got := statType(t, filesystem, join(root, "dd", "sub")); got != core.FileTypeDirectory {
		t.Errorf("Stat(dd/sub).Type() after refused DeleteDir = %s, want directory", got)
	}
	if got := statType(t, filesystem, join(root, "dd", "f")); got != core.FileTypeFile {
		t.Errorf("Stat(dd/f).Type() after refused DeleteDir = %s, want file", got)
	}
}

func testDeleteDirOnFile(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "a-file")
	writeFile(t, filesystem, p, "x")

	expectCode(t, "DeleteDir(file)", filesystem.DeleteDir(p), errors.CodeIO)
	if got := statType(t, filesystem, p); got != core.FileTypeFile {
		t.Errorf("Stat(%s).Type() after failed DeleteDir = %s, want file", p, got)
	}
}

func testDeleteDirContents(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "box")
	mkdirs(t, filesystem, root, "box/inner/deeper")
	writeFile(t, filesystem, join(p, "f1"), "1")
	writeFile(t, filesystem, join(p, "inner", "f2"), "2")

	if err := filesystem.DeleteDirContents(p); err != nil {
		t.Fatalf("DeleteDirContents(%s): got error %v, want nil", p, err)
	}
	if got := statType(t, filesystem, p); got != core.FileTypeDirectory {
		t.Errorf("Stat(%s).Type() after DeleteDirContents = %s, want directory", p, got)
	}
	stats, err := filesystem.StatSelector(core.NewSelector(p, core.Recursive()))
	if err != nil {
		t.Fatalf("StatSelector(%s): got error %v, want nil", p, err)
	}
	if len(stats) != 0 {
		t.Errorf("StatSelector(%s) after DeleteDirContents returned %d entries, want 0", p, len(stats))
	}
}
