package forwarding

import (
	"errors"
	"fmt"
)

// Error codes surfaced to callers.
const (
	CodeUnauthenticated = "unauthenticated"
	CodeInternal        = "internal"
)

const (
	MessageUnauthenticated = "You must be logged in to book an appointment."
	MessageForwardFailed   = "An error occurred while creating your booking."
)

// ForwardError is returned by Forward. Message is safe to show to the caller;
// Err carries the underlying store error for server-side diagnostics only.
type ForwardError struct {
	Code    string
	Message string
	Stage   Stage
	Err     error
}

func (e *ForwardError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (stage %s): %v", e.Code, e.Message, e.Stage, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ForwardError) Unwrap() error {
	return e.Err
}

func NewUnauthenticatedError() error {
	return &ForwardError{
		Code:    CodeUnauthenticated,
		Message: MessageUnauthenticated,
		Stage:   StageReceived,
	}
}

// NewForwardingFailedError wraps a store error raised after reaching stage.
func NewForwardingFailedError(stage Stage, err error) error {
	return &ForwardError{
		Code:    CodeInternal,
		Message: MessageForwardFailed,
		Stage:   stage,
		Err:     err,
	}
}

func hasCode(err error, code string) bool {
	var fe *ForwardError
	return errors.As(err, &fe) && fe.Code == code
}

func IsUnauthenticated(err error) bool {
	return hasCode(err, CodeUnauthenticated)
}

func IsForwardingFailed(err error) bool {
	return hasCode(err, CodeInternal)
}
