package errors

import "fmt"

// New creates a new PlatformError with the given code and message.
// The classification is derived from the code.
//
// Example:
//
//	err := errors.New(errors.CodeInvalidPath, "empty path")
func New(code ErrorCode, message string) PlatformError {
	return &platformError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates a new PlatformError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeInvalidInput, "max recursion must be non-negative, got %d", depth)
func Newf(code ErrorCode, format string, args ...interface{}) PlatformError {
	return New(code, fmt.Sprintf(format, args...))
}
