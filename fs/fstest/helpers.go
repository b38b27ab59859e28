package fstest

import (
	"io"
	"path"
	"testing"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

// join builds a portable path below root.
func join(root string, elem ...string) string {
	return path.Join(append([]string{root}, elem...)...)
}

// writeFile creates p with data through the facade.
func writeFile(t *testing.T, filesystem core.FileSystem, p string, data string) {
	t.Helper()
	out, err := filesystem.OpenOutputStream(p)
	if err != nil {
		t.Fatalf("OpenOutputStream(%s): setup failed: %v", p, err)
	}
	if _, err := io.WriteString(out, data); err != nil {
		t.Fatalf("Write(%s): setup failed: %v", p, err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close(%s): setup failed: %v", p, err)
	}
}

// readFile returns the content of p read through the facade.
func readFile(t *testing.T, filesystem core.FileSystem, p string) string {
	t.Helper()
	in, err := filesystem.OpenInputStream(p)
	if err != nil {
		t.Fatalf("OpenInputStream(%s): got error %v, want nil", p, err)
	}
	defer func() { _ = in.Close() }()
	data, err := io.ReadAll(in)
	if err != nil {
		t.Fatalf("ReadAll(%s): got error %v, want nil", p, err)
	}
	return string(data)
}

// mkdirs creates each directory (recursively) below root.
func mkdirs(t *testing.T, filesystem core.FileSystem, root string, dirs ...string) {
	t.Helper()
	for _, d := range dirs {
		if err := filesystem.CreateDir(join(root, d), true); err != nil {
			t.Fatalf("CreateDir(%s): setup failed: %v", d, err)
		}
	}
}

// statType returns the type of p, failing the test on error.
func statType(t *testing.T, filesystem core.FileSystem, p string) core.FileType {
	t.Helper()
	st, err := filesystem.Stat(p)
	if err != nil {
		t.Fatalf("Stat(%s): got error %v, want nil", p, err)
	}
	return st.Type()
}

// expectCode fails the test unless err carries code.
func expectCode(t *testing.T, op string, err error, code errors.ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatalf("%s: got nil error, want %s", op, code)
	}
	if got := errors.GetCode(err); got != code {
		t.Fatalf("%s: got code %s (%v), want %s", op, got, err, code)
	}
}
