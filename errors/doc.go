// Package errors provides the structured error type shared by every
// filesystem provider in this module.
//
// Errors carry a code identifying the failure kind, a retry classification,
// a human-readable message and optional context metadata (typically the
// operation name and the path or paths involved). They remain fully
// compatible with the standard library: errors.Is, errors.As and
// errors.Unwrap all see through to the wrapped native error.
//
// # Error Kinds
//
// Filesystem operations report three kinds of failure:
//
//   - CodeInvalidPath: a portable path could not be resolved to a native one
//   - CodeIO: a native call failed for a reason other than plain absence
//   - CodeNotFound: absence itself is the failure (deleting a missing target)
//
// Plain absence during a stat is not an error at all; it is reported through
// the returned record's type.
//
// # Quick Start
//
//	err := errors.Newf(errors.CodeInvalidPath, "invalid path %q: contains NUL byte", p)
//
//	if err := os.Rename(src, dst); err != nil {
//	    return errors.Wrapf(err, errors.CodeIO, "Failed renaming '%s' to '%s'", src, dst)
//	}
//
// Adding context:
//
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "op":   "rename",
//	    "src":  src,
//	    "dest": dst,
//	})
//
// Inspecting errors:
//
//	if errors.GetCode(err) == errors.CodeNotFound {
//	    // nothing to delete
//	}
//
// # Rendering
//
// Error() renders "[CODE] message" or "[CODE] message: cause", so the native
// error text always trails the message. ToJSON produces a flat representation
// for machine-readable output that omits the wrapped chain.
package errors
