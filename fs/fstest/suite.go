// Package fstest provides a conformance test suite for validating filesystem
// provider implementations against the core.FileSystem contracts.
//
// This package contains test functions that can be imported and executed by
// provider packages to verify they honor the facade semantics: stat never
// fails on absence, deletes do, selectors walk depth first and tolerate
// entries that vanish mid-walk, and streams behave identically across read
// strategies.
//
// Example usage:
//
//	func TestMyProvider(t *testing.T) {
//	    fstest.TestSuite(t, func(t *testing.T) (core.FileSystem, string) {
//	        return myprovider.New(), filepath.ToSlash(t.TempDir())
//	    })
//	}
package fstest

import (
	"testing"

	"github.com/jmgilman/localfs/fs/core"
)

// NewFunc returns a filesystem and a portable root directory that exists,
// is empty, and belongs to the calling test.
type NewFunc func(t *testing.T) (core.FileSystem, string)

// FSTestConfig configures the test suite to match provider characteristics.
type FSTestConfig struct {
	// Type is the FSType the provider must report.
	Type core.FSType

	// SkipTests lists specific test names to skip (for edge cases).
	// Format: "TestGroup/SubTest" (e.g., "StreamFS/OpenDirectory").
	SkipTests []string
}

// LocalTestConfig returns configuration for providers backed by the host filesystem.
func LocalTestConfig() FSTestConfig {
	return FSTestConfig{Type: core.FSTypeLocal}
}

// MemoryTestConfig returns configuration for in-memory providers.
func MemoryTestConfig() FSTestConfig {
	return FSTestConfig{Type: core.FSTypeMemory}
}

// TestSuite runs all conformance tests against a local provider.
// Uses LocalTestConfig() by default.
func TestSuite(t *testing.T, newFS NewFunc) {
	TestSuiteWithConfig(t, newFS, LocalTestConfig())
}

// TestSuiteWithConfig runs conformance tests with behavior configuration.
// Each group receives a fresh filesystem and root.
func TestSuiteWithConfig(t *testing.T, newFS NewFunc, config FSTestConfig) {
	groups := []struct {
		name string
		run  func(*testing.T, core.FileSystem, string, FSTestConfig)
	}{
		{"StatFS", TestStatFSWithConfig},
		{"SelectorFS", TestSelectorFSWithConfig},
		{"DirFS", TestDirFSWithConfig},
		{"ManageFS", TestManageFSWithConfig},
		{"StreamFS", TestStreamFSWithConfig},
		{"Concurrency", TestConcurrencyWithConfig},
	}

	t.Run("Type", func(t *testing.T) {
		filesystem, _ := newFS(t)
		if got := filesystem.Type(); got != config.Type {
			t.Errorf("Type() = %s, want %s", got, config.Type)
		}
	})

	for _, g := range groups {
		g := g
		t.Run(g.name, func(t *testing.T) {
			if config.shouldSkip(g.name) {
				t.Skip("Skipped by provider configuration")
				return
			}
			filesystem, root := newFS(t)
			g.run(t, filesystem, root, config)
		})
	}
}

func (c FSTestConfig) shouldSkip(name string) bool {
	for _, skip := range c.SkipTests {
		if skip == name {
			return true
		}
	}
	return false
}

// run executes a named subtest unless configuration skips it.
func run(t *testing.T, config FSTestConfig, group, name string, fn func(t *testing.T)) {
	t.Run(name, func(t *testing.T) {
		if config.shouldSkip(group + "/" + name) {
			t.Skip("Skipped by provider configuration")
			return
		}
		fn(t)
	})
}
