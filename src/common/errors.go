package common

import (
	"errors"
)

// Kinds of failure in an upload run. Test with errors.Is.
var (
	ErrInitialization = errors.New("firestore not initialized")
	ErrFileNotFound   = errors.New("spreadsheet not found")
	ErrParse          = errors.New("spreadsheet unreadable")
	ErrUpload         = errors.New("document not written")
)

// runError tags a step failure with its kind and keeps the cause reachable.
type runError struct {
	kind  error
	step  string
	cause error
}

var _ error = (*runError)(nil)

func newInitializationError(step string, cause error) error {
	return &runError{kind: ErrInitialization, step: step, cause: cause}
}

func newFileNotFoundError(step string, cause error) error {
	return &runError{kind: ErrFileNotFound, step: step, cause: cause}
}

func newParseError(step string, cause error) error {
	return &runError{kind: ErrParse, step: step, cause: cause}
}

func newUploadError(step string, cause error) error {
	return &runError{kind: ErrUpload, step: step, cause: cause}
}

// Error reads "<kind> (<step>)" followed by the cause, e.g.
// "document not written (create in poll_responses): googleapi: Error 503".
func (err *runError) Error() string {
	if err == nil {
		return "(*runError)(nil)"
	}
	message := err.kind.Error()
	if err.step != "" {
		message += " (" + err.step + ")"
	}
	if err.cause != nil {
		message += ": " + err.cause.Error()
	}
	return message
}

func (err *runError) Unwrap() []error {
	if err.cause == nil {
		return []error{err.kind}
	}
	return []error{err.kind, err.cause}
}
