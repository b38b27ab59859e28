package errors

// ErrorClassification indicates whether retrying the failed operation could succeed.
// The filesystem providers never retry internally; the classification is advice
// for callers that want to.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	// Examples: EBUSY, EAGAIN, ETIMEDOUT from the native layer.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	// Examples: invalid paths, permission denials, missing delete targets.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// No code is retryable by default: an I/O error only becomes retryable when
// the native layer recognises a transient cause and says so explicitly.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeInvalidPath:   ClassificationPermanent,
	CodeIO:            ClassificationPermanent,
	CodeNotFound:      ClassificationPermanent,
	CodeClosed:        ClassificationPermanent,
	CodeInvalidInput:  ClassificationPermanent,
	CodeInvalidConfig: ClassificationPermanent,
	CodeInternal:      ClassificationPermanent,
	CodeUnknown:       ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Returns ClassificationPermanent if the code is not in the map.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
