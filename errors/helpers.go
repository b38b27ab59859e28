package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, fs.ErrNotExist) {
//	    // delete target was missing
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost PlatformError in err's chain.
// Returns CodeUnknown if err is nil or carries no PlatformError.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeInvalidPath {
//	    // report a usage error
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	return CodeUnknown
}

// HasCode reports whether the outermost PlatformError in err's chain has code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if err is nil or carries no PlatformError.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}

	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
// Returns false if err is nil or carries no PlatformError.
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}
