package core

import (
	"math"

	"github.com/jmgilman/localfs/errors"
)

// MaxRecursionUnbounded is the depth limit used when recursion is requested
// without an explicit bound.
const MaxRecursionUnbounded = math.MaxInt32

// Selector describes a directory tree enumeration.
//
// Depth 0 is the direct children of BaseDir. When Recursive is true a child
// directory at depth d is descended into only if d < MaxRecursion, so
// MaxRecursion 0 lists the direct children only. MaxRecursion is ignored when
// Recursive is false.
type Selector struct {
	// BaseDir is the portable path of the directory to enumerate.
	BaseDir string
	// Recursive enables descent into child directories.
	Recursive bool
	// MaxRecursion bounds descent depth. Must be non-negative.
	MaxRecursion int
	// AllowNonExistent turns a missing BaseDir into an empty result.
	AllowNonExistent bool
}

// SelectorOption configures a Selector built by NewSelector.
type SelectorOption func(*Selector)

// Recursive enables descent. Unless WithMaxRecursion is also given the depth
// is unbounded (MaxRecursionUnbounded).
func Recursive() SelectorOption {
	return func(s *Selector) {
		s.Recursive = true
	}
}

// WithMaxRecursion bounds descent depth and enables recursion.
func WithMaxRecursion(depth int) SelectorOption {
	return func(s *Selector) {
		s.Recursive = true
		s.MaxRecursion = depth
	}
}

// AllowNonExistent makes a missing base directory yield an empty result.
func AllowNonExistent() SelectorOption {
	return func(s *Selector) {
		s.AllowNonExistent = true
	}
}

// NewSelector returns a Selector for baseDir with the given options applied.
//
//	sel := core.NewSelector("/var/data", core.WithMaxRecursion(2), core.AllowNonExistent())
func NewSelector(baseDir string, opts ...SelectorOption) Selector {
	s := Selector{BaseDir: baseDir, MaxRecursion: MaxRecursionUnbounded}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Validate checks the selector's invariants.
func (s Selector) Validate() error {
	if s.MaxRecursion < 0 {
		return errors.WithContext(
			errors.Newf(errors.CodeInvalidInput, "max recursion must be non-negative, got %d", s.MaxRecursion),
			"base_dir", s.BaseDir,
		)
	}
	return nil
}

// Descend reports whether a directory found at depth should be enumerated.
func (s Selector) Descend(depth int) bool {
	return s.Recursive && depth < s.MaxRecursion
}
