package cli

import (
	"strings"

	"github.com/jmgilman/localfs/errors"
)

// Exit codes.
const (
	ExitSuccess = 0 // Command completed
	ExitFailure = 1 // Filesystem operation failed
	ExitUsage   = 2 // CLI usage error (missing args, invalid flags)
	ExitPanic   = 3 // Internal panic
)

type usageError struct {
	err error
}

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usageErrorf(format string, args ...interface{}) error {
	return usageError{errors.Newf(errors.CodeInvalidInput, format, args...)}
}

// Messages cobra produces for usage mistakes it reports without going
// through the flag error hook.
var usagePrefixes = []string{
	"unknown command",
	"unknown flag",
	"unknown shorthand flag",
	"accepts ",
	"requires at least",
	"invalid argument",
	"required flag",
}

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ue usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}

	msg := err.Error()
	for _, p := range usagePrefixes {
		if strings.HasPrefix(msg, p) {
			return ExitUsage
		}
	}
	return ExitFailure
}
