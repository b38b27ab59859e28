package errors

import "fmt"

// Wrap wraps err with a code and message while preserving it as the cause.
// The wrapped error stays reachable through errors.Is and errors.As.
//
// If err is (or wraps) a PlatformError its classification is preserved,
// otherwise the default classification for code is used.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := os.Mkdir(p, perm); err != nil {
//	    return errors.Wrap(err, errors.CodeIO, "Cannot create directory '"+p+"'")
//	}
func Wrap(err error, code ErrorCode, message string) PlatformError {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var platformErr PlatformError
	if As(err, &platformErr) {
		classification = platformErr.Classification()
	}

	return &platformError{
		code:           code,
		classification: classification,
		message:        message,
		cause:          err,
	}
}

// Wrapf wraps an error with a formatted message.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.Wrapf(err, errors.CodeIO, "Failed stat()ing path '%s'", p)
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in one step.
// The context map is copied.
//
// Returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, code, message).(*platformError)
	wrapped.context = copyContext(ctx)
	return wrapped
}
