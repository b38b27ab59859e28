package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat, serializable representation of an error used for
// machine-readable output (for example `localfs --output json`).
//
// The wrapped error chain is excluded; the native error text is folded into
// Cause so the output stays diagnosable without exposing Go types.
type ErrorResponse struct {
	// Code is the error code identifying the kind of error.
	Code string `json:"code" yaml:"code"`

	// Message is the human-readable error message.
	Message string `json:"message" yaml:"message"`

	// Cause is the text of the wrapped error, if any.
	Cause string `json:"cause,omitempty" yaml:"cause,omitempty"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification" yaml:"classification"`

	// Context contains optional metadata such as the paths involved.
	Context map[string]interface{} `json:"context,omitempty" yaml:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse.
// Returns nil if err is nil.
//
// For PlatformError instances it extracts code, message, cause text,
// classification and context. For other errors it uses CodeUnknown,
// ClassificationPermanent and the error text.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	response := &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        err.Error(),
		Classification: string(GetClassification(err)),
	}

	var platformErr PlatformError
	if As(err, &platformErr) {
		response.Message = platformErr.Message()
		response.Context = platformErr.Context()
		if cause := platformErr.Unwrap(); cause != nil {
			response.Cause = cause.Error()
		}
	}

	return response
}

// MarshalJSON implements json.Marshaler for platformError.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ToJSON(e))
	if err != nil {
		return nil, &platformError{
			code:           CodeInternal,
			classification: ClassificationPermanent,
			message:        "failed to marshal error response",
			cause:          err,
		}
	}
	return data, nil
}
