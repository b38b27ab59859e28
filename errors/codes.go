package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Path errors.

	// CodeInvalidPath indicates a portable path could not be resolved to a
	// native path (empty, embedded NUL, invalid encoding, reserved characters).
	CodeInvalidPath ErrorCode = "INVALID_PATH"

	// I/O errors.

	// CodeIO indicates a native filesystem call failed for a reason other
	// than plain non-existence (permission, disk error, wrong entry type, ...).
	CodeIO ErrorCode = "IO_ERROR"

	// CodeNotFound indicates the target of an operation was absent and the
	// operation treats absence as a failure (delete of a missing path).
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeClosed indicates an operation on a stream that was already closed.
	CodeClosed ErrorCode = "CLOSED"

	// Validation errors.

	// CodeInvalidInput indicates an argument is invalid (e.g. a negative recursion depth).
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
