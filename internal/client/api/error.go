package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call. Tests and callers branch on the kind,
// never on message text.
type Kind string

const (
	// KindTransport: the request never produced a usable HTTP response
	// (connection refused, DNS failure, timeout, aborted body read).
	KindTransport Kind = "transport"

	// KindMalformed: an HTTP response arrived but its body was not the
	// expected JSON envelope.
	KindMalformed Kind = "malformed"

	// KindServer: a well-formed envelope with success=false. Message carries
	// the server-supplied text verbatim.
	KindServer Kind = "server"

	// KindUnauthenticated: the call requires a session token and none is
	// present. Raised before any network I/O.
	KindUnauthenticated Kind = "unauthenticated"
)

// Error is the normalized failure shape for every API call.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, set for transport and malformed kinds.
	Err error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %s: %s", e.Kind, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("api: %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("api: %s", e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

// ErrKind reports whether err is an *Error of the given kind.
func ErrKind(err error, kind Kind) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Kind == kind
}

// ServerMessage returns the server-supplied failure message when err is a
// server-reported failure, and "" otherwise.
func ServerMessage(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindServer {
		return apiErr.Message
	}
	return ""
}
