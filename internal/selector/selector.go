// Package selector enumerates a directory tree described by a core.Selector.
//
// The walk is a pre-order, depth-first traversal that follows the order in
// which the underlying tree lists each directory. Two races are tolerated:
// a directory that disappears before it can be listed (only when the
// selector allows missing directories) and an entry that disappears
// between being listed and being stat'ed.
package selector

import (
	"go.uber.org/zap"

	"github.com/jmgilman/localfs/errors"
	"github.com/jmgilman/localfs/fs/core"
)

// Tree is the set of primitives a walk needs from a filesystem.
type Tree interface {
	// Stat returns the metadata of path. A missing path is reported as a
	// FileTypeNonExistent record, not an error.
	Stat(path string) (core.FileStats, error)

	// ListDir returns the child names of dir in native order.
	ListDir(dir string) ([]string, error)

	// Join joins a directory path and a child name.
	Join(dir, name string) string
}

// Walker runs selectors against a Tree.
type Walker struct {
	tree   Tree
	logger *zap.Logger
}

// New returns a Walker over tree. A nil logger disables logging.
func New(tree Tree, logger *zap.Logger) *Walker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Walker{tree: tree, logger: logger}
}

// Walk enumerates the entries below base according to sel. base is the
// tree's own form of sel.BaseDir; sel.BaseDir is used only for diagnostics.
// The base directory itself is never part of the result.
func (w *Walker) Walk(base string, sel core.Selector) ([]core.FileStats, error) {
	if err := sel.Validate(); err != nil {
		return nil, err
	}

	out, err := w.walk(base, sel, 0)
	if err != nil {
		return nil, err
	}

	w.logger.Debug("selector walk complete",
		zap.String("base_dir", sel.BaseDir),
		zap.Bool("recursive", sel.Recursive),
		zap.Int("entries", len(out)),
	)
	return out, nil
}

// walk returns the entries of one directory level followed, for each
// descended child, by that child's own entries.
func (w *Walker) walk(dir string, sel core.Selector, depth int) ([]core.FileStats, error) {
	names, err := w.tree.ListDir(dir)
	if err != nil {
		if sel.AllowNonExistent && errors.HasCode(err, errors.CodeIO) {
			st, serr := w.tree.Stat(dir)
			if serr == nil && !st.Exists() {
				w.logger.Debug("directory vanished before listing", zap.String("dir", dir))
				return nil, nil
			}
		}
		return nil, err
	}

	out := make([]core.FileStats, 0, len(names))
	for _, name := range names {
		child := w.tree.Join(dir, name)
		st, err := w.tree.Stat(child)
		if err != nil {
			return nil, err
		}
		if !st.Exists() {
			w.logger.Debug("entry vanished before stat", zap.String("path", child))
			continue
		}
		out = append(out, st)

		if st.IsDir() && sel.Descend(depth) {
			sub, err := w.walk(child, sel, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, sub...)
		}
	}
	return out, nil
}
