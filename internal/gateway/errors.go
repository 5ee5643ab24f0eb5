package gateway

import (
	"errors"
	"fmt"
)

// ErrMissingToken is returned by Lookup when called without a bearer token.
// No request is sent.
var ErrMissingToken = errors.New("gateway: bearer token required")

// Error is the single failure shape of the gateway. Status is the HTTP status
// of a non-2xx response, or 0 when no usable response was received (network
// failure, unreadable or malformed body).
type Error struct {
	Message string
	Status  int

	cause error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

// Unwrap exposes the underlying transport or decoding error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) HasStatus() bool {
	return e.Status != 0
}

// AsError extracts a *Error from err's chain.
func AsError(err error) (*Error, bool) {
	var ge *Error
	if errors.As(err, &ge) {
		return ge, true
	}
	return nil, false
}

func statusError(status int, message string) *Error {
	return &Error{Message: message, Status: status}
}

func transportError(err error) *Error {
	return &Error{Message: err.Error(), cause: err}
}
