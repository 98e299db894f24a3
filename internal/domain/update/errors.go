package update

import (
	"errors"
	"fmt"
)

// Kind enumerates the only failure categories the update pipeline produces.
type Kind uint8

const (
	// KindAPIRequest covers release API failures: transport errors, bad
	// statuses, undecodable payloads and errors while streaming an asset.
	KindAPIRequest Kind = iota + 1
	// KindFileOperation covers failures creating or writing the local build.
	KindFileOperation
	// KindCommandExecution covers spawn failures and propagated child exits.
	KindCommandExecution
	// KindNoPreRelease means the release list contains no usable pre-release.
	KindNoPreRelease
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindAPIRequest:
		return "api request error"
	case KindFileOperation:
		return "file operation error"
	case KindCommandExecution:
		return "command execution error"
	case KindNoPreRelease:
		return "no pre-release found"
	default:
		return "unknown error"
	}
}

// Error is the closed error set of the update pipeline.
// Every failure escaping the pipeline is one of the four kinds,
// rendered once at the program entry point.
type Error struct {
	// Kind is the failure category.
	Kind Kind
	// Message is the human-readable detail. May be empty.
	Message string
	// Err is the wrapped cause. May be nil.
	Err error
}

// NewError builds a pipeline error of the given kind. The cause may be nil,
// and the format may be empty for kinds that need no detail.
func NewError(kind Kind, cause error, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	s := e.Kind.String()

	if e.Message != "" {
		s += ": " + e.Message
	}

	if e.Err != nil {
		s += ": " + e.Err.Error()
	}

	return s
}

// Unwrap exposes the cause for errors.Is and errors.As chains.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is a pipeline error of the given kind,
// searching the whole wrap chain.
func IsKind(err error, kind Kind) bool {
	var e *Error

	return errors.As(err, &e) && e.Kind == kind
}
