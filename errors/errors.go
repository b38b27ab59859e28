package errors

// PlatformError extends the standard error interface with structured information.
//
// PlatformError provides an error code for categorization, a classification
// for retry decisions, contextual metadata such as the paths involved, and
// compatibility with standard library error handling (errors.Is, errors.As,
// errors.Unwrap).
type PlatformError interface {
	error

	// Code returns the error code identifying the kind of failure.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message without the cause.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error, or nil.
	Unwrap() error
}
