package fstest

import (
	stderrors "errors"
	"io"
	"io/fs"
	"testing"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

// TestStreamFS tests input and output streams.
// Uses LocalTestConfig() by default.
func TestStreamFS(t *testing.T, filesystem core.FileSystem, root string) {
	TestStreamFSWithConfig(t, filesystem, root, LocalTestConfig())
}

// TestStreamFSWithConfig tests input and output streams with behavior configuration.
func TestStreamFSWithConfig(t *testing.T, filesystem core.FileSystem, root string, config FSTestConfig) {
	run(t, config, "StreamFS", "OutputTruncates", func(t *testing.T) {
		testOutputTruncates(t, filesystem, root)
	})
	run(t, config, "StreamFS", "AppendPreserves", func(t *testing.T) {
		testAppendPreserves(t, filesystem, root)
	})
	run(t, config, "StreamFS", "AppendCreates", func(t *testing.T) {
		testAppendCreates(t, filesystem, root)
	})
	run(t, config, "StreamFS", "RandomAccess", func(t *testing.T) {
		testRandomAccess(t, filesystem, root)
	})
	run(t, config, "StreamFS", "InputMatchesFile", func(t *testing.T) {
		testInputMatchesFile(t, filesystem, root)
	})
	run(t, config, "StreamFS", "OpenDirectory", func(t *testing.T) {
		testOpenDirectory(t, filesystem, root)
	})
	run(t, config, "StreamFS", "OpenMissing", func(t *testing.T) {
		testOpenMissing(t, filesystem, root)
	})
	run(t, config, "StreamFS", "OutputInMissingDir", func(t *testing.T) {
		testOutputInMissingDir(t, filesystem, root)
	})
	run(t, config, "StreamFS", "Closed", func(t *testing.T) {
		testClosedStreams(t, filesystem, root)
	})
}

func testOutputTruncates(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "trunc")
	writeFile(t, filesystem, p, "a much longer original content")
	writeFile(t, filesystem, p, "short")

	if got := readFile(t, filesystem, p); got != "short" {
		t.Errorf("content after OpenOutputStream = %q, want %q", got, "short")
	}
}

func testAppendPreserves(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "log")
	writeFile(t, filesystem, p, "first;")

	out, err := filesystem.OpenAppendStream(p)
	if err != nil {
		t.Fatalf("OpenAppendStream(%s): got error %v, want nil", p, err)
	}
	pos, err := out.Tell()
	if err != nil {
		t.Fatalf("Tell(): got error %v, want nil", err)
	}
	if pos != 6 {
		t.Errorf("Tell() after OpenAppendStream = %d, want 6", pos)
	}
	if _, err := io.WriteString(out, "second;"); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if pos, _ := out.Tell(); pos != 13 {
		t.Errorf("Tell() after write = %d, want 13", pos)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}

	if got := readFile(t, filesystem, p); got != "first;second;" {
		t.Errorf("content after append = %q, want %q", got, "first;second;")
	}
}

func testAppendCreates(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "fresh-append")

	out, err := filesystem.OpenAppendStream(p)
	if err != nil {
		t.Fatalf("OpenAppendStream(%s): got error %v, want nil", p, err)
	}
	if _, err := io.WriteString(out, "new"); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := out.Flush(); err != nil {
		t.Fatalf("Flush(): got error %v, want nil", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
	if got := readFile(t, filesystem, p); got != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}
}

func testRandomAccess(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "ra")
	writeFile(t, filesystem, p, "0123456789")

	f, err := filesystem.OpenInputFile(p)
	if err != nil {
		t.Fatalf("OpenInputFile(%s): got error %v, want nil", p, err)
	}
	defer func() { _ = f.Close() }()

	size, err := f.Size()
	if err != nil || size != 10 {
		t.Errorf("Size() = %d, %v, want 10, nil", size, err)
	}

	buf := make([]byte, 4)
	if n, err := f.ReadAt(buf, 3); err != nil || string(buf[:n]) != "3456" {
		t.Errorf("ReadAt(3) = %q, %v, want %q, nil", buf[:n], err, "3456")
	}
	if pos, err := f.Seek(7, io.SeekStart); err != nil || pos != 7 {
		t.Errorf("Seek(7) = %d, %v, want 7, nil", pos, err)
	}
	rest, err := io.ReadAll(f)
	if err != nil || string(rest) != "789" {
		t.Errorf("ReadAll after Seek = %q, %v, want %q, nil", rest, err, "789")
	}
}

func testInputMatchesFile(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "same-bytes")
	content := string(make([]byte, 70000)) + "tail"
	writeFile(t, filesystem, p, content)

	viaStream := readFile(t, filesystem, p)

	f, err := filesystem.OpenInputFile(p)
	if err != nil {
		t.Fatalf("OpenInputFile(%s): got error %v, want nil", p, err)
	}
	defer func() { _ = f.Close() }()
	viaFile, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll(OpenInputFile): got error %v, want nil", err)
	}

	if viaStream != content || string(viaFile) != content {
		t.Errorf("stream read %d bytes and file read %d bytes, want %d", len(viaStream), len(viaFile), len(content))
	}
}

func testOpenDirectory(t *testing.T, filesystem core.FileSystem, root string) {
	mkdirs(t, filesystem, root, "adir")
	p := join(root, "adir")

	_, err := filesystem.OpenInputStream(p)
	expectCode(t, "OpenInputStream(dir)", err, errors.CodeIO)

	_, err = filesystem.OpenInputFile(p)
	expectCode(t, "OpenInputFile(dir)", err, errors.CodeIO)

	_, err = filesystem.OpenOutputStream(p)
	expectCode(t, "OpenOutputStream(dir)", err, errors.CodeIO)
}

func testOpenMissing(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "absent")

	_, err := filesystem.OpenInputStream(p)
	expectCode(t, "OpenInputStream(missing)", err, errors.CodeIO)

	_, err = filesystem.OpenInputFile(p)
	expectCode(t, "OpenInputFile(missing)", err, errors.CodeIO)
}

func testOutputInMissingDir(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "no-such-dir", "file")

	_, err := filesystem.OpenOutputStream(p)
	expectCode(t, "OpenOutputStream(missing dir)", err, errors.CodeIO)

	_, err = filesystem.OpenAppendStream(p)
	expectCode(t, "OpenAppendStream(missing dir)", err, errors.CodeIO)
}

func testClosedStreams(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "closing")

	out, err := filesystem.OpenOutputStream(p)
	if err != nil {
		t.Fatalf("OpenOutputStream(%s): got error %v, want nil", p, err)
	}
	if _, err := io.WriteString(out, "data"); err != nil {
		t.Fatalf("Write(): got error %v, want nil", err)
	}
	if err := out.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
	if err := out.Close(); err != nil {
		t.Errorf("second Close(): got error %v, want nil", err)
	}
	if _, err := io.WriteString(out, "more"); !stderrors.Is(err, fs.ErrClosed) {
		t.Errorf("Write after Close: got %v, want fs.ErrClosed", err)
	}

	in, err := filesystem.OpenInputStream(p)
	if err != nil {
		t.Fatalf("OpenInputStream(%s): got error %v, want nil", p, err)
	}
	if err := in.Close(); err != nil {
		t.Fatalf("Close(): got error %v, want nil", err)
	}
	if err := in.Close(); err != nil {
		t.Errorf("second Close(): got error %v, want nil", err)
	}
	if _, err := in.Read(make([]byte, 1)); !stderrors.Is(err, fs.ErrClosed) {
		t.Errorf("Read after Close: got %v, want fs.ErrClosed", err)
	}
}
