package fstest

import (
	"fmt"
	"testing"

	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/localfs/fs/core"
)

const concurrentWorkers = 8

// TestConcurrency tests that one filesystem instance can be shared across
// goroutines without synchronization by the caller.
// Uses LocalTestConfig() by default.
func TestConcurrency(t *testing.T, filesystem core.FileSystem, root string) {
	TestConcurrencyWithConfig(t, filesystem, root, LocalTestConfig())
}

// TestConcurrencyWithConfig tests shared use with behavior configuration.
func TestConcurrencyWithConfig(t *testing.T, filesystem core.FileSystem, root string, config FSTestConfig) {
	run(t, config, "Concurrency", "IndependentTrees", func(t *testing.T) {
		testConcurrentTrees(t, filesystem, root)
	})
	run(t, config, "Concurrency", "SharedReaders", func(t *testing.T) {
		testConcurrentReaders(t, filesystem, root)
	})
}

func testConcurrentTrees(t *testing.T, filesystem core.FileSystem, root string) {
	var g errgroup.Group
	for i := 0; i < concurrentWorkers; i++ {
		base := join(root, fmt.Sprintf("worker-%d", i))
		g.Go(func() error {
			if err := filesystem.CreateDir(join(base, "sub"), true); err != nil {
				return err
			}
			out, err := filesystem.OpenOutputStream(join(base, "sub", "f"))
			if err != nil {
				return err
			}
			if _, err := out.Write([]byte(base)); err != nil {
				_ = out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
			stats, err := filesystem.StatSelector(core.NewSelector(base, core.Recursive()))
			if err != nil {
				return err
			}
			if len(stats) != 2 {
				return fmt.Errorf("StatSelector(%s) returned %d entries, want 2", base, len(stats))
			}
			return filesystem.DeleteDir(base)
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent workers: %v", err)
	}

	stats, err := filesystem.StatSelector(core.NewSelector(root))
	if err != nil {
		t.Fatalf("StatSelector(%s): got error %v, want nil", root, err)
	}
	if len(stats) != 0 {
		t.Errorf("StatSelector(%s) after workers returned %d entries, want 0", root, len(stats))
	}
}

func testConcurrentReaders(t *testing.T, filesystem core.FileSystem, root string) {
	p := join(root, "shared")
	writeFile(t, filesystem, p, "shared content")

	var g errgroup.Group
	g.SetLimit(concurrentWorkers / 2)
	for i := 0; i < concurrentWorkers*2; i++ {
		g.Go(func() error {
			st, err := filesystem.Stat(p)
			if err != nil {
				return err
			}
			if st.Size() != int64(len("shared content")) {
				return fmt.Errorf("Stat(%s).Size() = %d", p, st.Size())
			}
			f, err := filesystem.OpenInputFile(p)
			if err != nil {
				return err
			}
			defer func() { _ = f.Close() }()
			buf := make([]byte, 6)
			if _, err := f.ReadAt(buf, 0); err != nil {
				return err
			}
			if string(buf) != "shared" {
				return fmt.Errorf("ReadAt(0) = %q", buf)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent readers: %v", err)
	}
}
