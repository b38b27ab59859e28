package fstest

import (
	stderrors "errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

// TestManageFS tests file management: DeleteFile, Move, CopyFile.
// Uses LocalTestConfig() by default.
func TestManageFS(t *testing.T, filesystem core.FileSystem, root string) {
	TestManageFSWithConfig(t, filesystem, root, LocalTestConfig())
}

// TestManageFSWithConfig tests file management with behavior configuration.
func TestManageFSWithConfig(t *testing.T, filesystem core.FileSystem, root string, config FSTestConfig) {
	run(t, config, "ManageFS", "DeleteFile", func(t *testing.T) {
		testDeleteFile(t, filesystem, root)
	})
	run(t, config, "ManageFS", "DeleteFileMissing", func(t *testing.T) {
		testDeleteFileMissing(t, filesystem, root)
	})
	run(t, config, "ManageFS", "DeleteFileOnDirectory", func(t *testing.T) {
		testDeleteFileOnDir(t, filesystem, root)
	})
	run(t, config, "ManageFS", "MoveReplaces", func(t *testing.T) {
		testMoveReplaces(t, filesystem, root)
	})
	run(t, config, "ManageFS", "MoveDirectory", func(t *testing.T) {
		testMoveDirectory(t, filesystem, root)
	})
	run(t, config, "ManageFS", "MoveMissing", func(t *testing.T) {
		testMoveMissing(t, filesystem, root)
	})
	run(t, config, "ManageFS", "CopyFile", func(t *testing.T) {
		testCopyFile(t, filesystem, root)
	})
	run(t, config, "ManageFS", "CopyFileOntoItself", func(t *testing.T) {
		testCopyFileSelf(t, filesystem, root)
	})
	run(t, config, "ManageFS", "CopyFileOntoItselfMissing", func(t *testing.T) {
		testCopyFileSelfMissing(t, filesystem, root)
	})
	run(t, config, "ManageFS", "CopyFileMissing", func(t *testing.T) {
		testCopyFileMissing(t, filesystem, root)
	})
}

func testDeleteFile(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "doomed.txt")
	writeFile(t, filesystem, p, "bye")

	if err := filesystem.DeleteFile(p); err != nil {
		t.Fatalf("DeleteFile(%s): got error %v, want nil", p, err)
	}
	if got := statType(t, filesystem, p); got != core.FileTypeNonExistent {
		t.Errorf("Stat(%s).Type() after DeleteFile = %s, want non-existent", p, got)
	}
}

func testDeleteFileMissing(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "ghost.txt")
	err := filesystem.DeleteFile(p)
	expectCode(t, "DeleteFile(missing)", err, errors.CodeNotFound)
	if !stderrors.Is(err, fs.ErrNotExist) {
		t.Errorf("DeleteFile(missing): error %v does not wrap fs.ErrNotExist", err)
	}
	if !strings.Contains(err.Error(), "File does not exist") {
		t.Errorf("DeleteFile(missing): message %q lacks %q", err.Error(), "File does not exist")
	}
}

func testDeleteFileOnDir(t *testing.T, filesystem core.FileSystem, root string) {
	mkdirs(t, filesystem, root, "keepme")
	p := join(root, "keepme")

	expectCode(t, "DeleteFile(dir)", filesystem.DeleteFile(p), errors.CodeIO)
	if got := statType(t, filesystem, p); got != core.FileTypeDirectory {
		t.Errorf("Stat(%s).Type() after failed DeleteFile = %s, want directory", p, got)
	}
}

func testMoveReplaces(t *testing.T, filesystem core.FileSystem, root string) {
	src := join(root, "x")
	dst := join(root, "y")
	writeFile(t, filesystem, src, "from x")
	writeFile(t, filesystem, dst, "old y content")

	if err := filesystem.Move(src, dst); err != nil {
		t.Fatalf("Move(%s, %s): got error %v, want nil", src, dst, err)
	}
	if got := statType(t, filesystem, src); got != core.FileTypeNonExistent {
		t.Errorf("Stat(%s).Type() after Move = %s, want non-existent", src, got)
	}
	if got := readFile(t, filesystem, dst); got != "from x" {
		t.Errorf("content of %s after Move = %q, want %q", dst, got, "from x")
	}
}

func testMoveDirectory(t *testing.T, filesystem core.FileSystem, root string) {
	mkdirs(t, filesystem, root, "olddir/sub")
	writeFile(t, filesystem, join(root, "olddir", "sub", "f"), "payload")

	src := join(root, "olddir")
	dst := join(root, "newdir")
	if err := filesystem.Move(src, dst); err != nil {
		t.Fatalf("Move(%s, %s): got error %v, want nil", src, dst, err)
	}
	if got := statType(t, filesystem, src); got != core.FileTypeNonExistent {
		t.Errorf("Stat(%s).Type() after Move = %s, want non-existent", src, got)
	}
	if got := readFile(t, filesystem, join(dst, "sub", "f")); got != "payload" {
		t.Errorf("content after directory Move = %q, want %q", got, "payload")
	}
}

func testMoveMissing(t *testing.T, filesystem core.FileSystem, root string) {
	src := join(root, "nothing-here")
	dst := join(root, "target")

	err := filesystem.Move(src, dst)
	expectCode(t, "Move(missing)", err, errors.CodeIO)
	for _, name := range []string{"nothing-here", "target"} {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("Move(missing): message %q does not name %s", err.Error(), name)
		}
	}
}

func testCopyFile(t *testing.T, filesystem core.FileSystem, root string) {
	src := join(root, "orig")
	dst := join(root, "copy")
	content := strings.Repeat("0123456789abcdef", 4096)
	writeFile(t, filesystem, src, content)
	writeFile(t, filesystem, dst, "to be replaced, and longer than nothing")

	if err := filesystem.CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile(%s, %s): got error %v, want nil", src, dst, err)
	}
	if got := readFile(t, filesystem, dst); got != content {
		t.Errorf("content of %s after CopyFile has %d bytes, want %d", dst, len(got), len(content))
	}
	if got := readFile(t, filesystem, src); got != content {
		t.Errorf("CopyFile modified its source")
	}
}

func testCopyFileSelf(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "self")
	writeFile(t, filesystem, p, "unchanged")

	if err := filesystem.CopyFile(p, p); err != nil {
		t.Fatalf("CopyFile(%s, %s): got error %v, want nil", p, p, err)
	}
	if got := readFile(t, filesystem, p); got != "unchanged" {
		t.Errorf("content after self copy = %q, want %q", got, "unchanged")
	}
}

func testCopyFileSelfMissing(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "self-missing")

	if err := filesystem.CopyFile(p, p); err != nil {
		t.Fatalf("CopyFile(%s, %s): got error %v, want nil", p, p, err)
	}
	if got := statType(t, filesystem, p); got != core.FileTypeNonExistent {
		t.Errorf("Stat(%s).Type() after self copy = %s, want non-existent", p, got)
	}
}

func testCopyFileMissing(t *testing.T, filesystem core.FileSystem, root string) {
	src := join(root, "no-source")
	dst := join(root, "no-dest")

	expectCode(t, "CopyFile(missing)", filesystem.CopyFile(src, dst), errors.CodeIO)
	if got := statType(t, filesystem, dst); got != core.FileTypeNonExistent {
		t.Errorf("CopyFile(missing) created %s (type %s)", dst, got)
	}
}
