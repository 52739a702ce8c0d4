package client

import "fmt"

// ErrorKind classifies a failed operation. Every error produced by this
// package is one of these three kinds; handlers match on the kind to
// produce the final user-facing string.
type ErrorKind int

const (
	// KindValidation means the request was rejected locally before any
	// network call (bad method, missing required field).
	KindValidation ErrorKind = iota
	// KindRemote means the API answered with a non-2xx status.
	KindRemote
	// KindTransport means the request never produced a usable response
	// (timeout, connection failure, malformed body).
	KindTransport
)

// Error is the single error type returned by the gateway and the typed
// client methods.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindRemote:
		return "API Error: " + e.Message
	case KindTransport:
		if e.Err != nil {
			return fmt.Sprintf("Request failed: %v", e.Err)
		}
		return "Request failed: " + e.Message
	default:
		return e.Message
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func validationError(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func remoteError(message string) *Error {
	return &Error{Kind: KindRemote, Message: message}
}

func transportError(err error) *Error {
	return &Error{Kind: KindTransport, Err: err}
}
