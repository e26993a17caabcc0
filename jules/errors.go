package jules

import (
	"errors"
	"fmt"
)

// Kind classifies a failed API call. The set is closed: every error the
// client returns carries exactly one of these kinds, so callers can branch
// on the remediation path (fix the credential, fix the input, retry later).
type Kind int

// Error kinds.
const (
	// KindTransport indicates the request never reached the server:
	// connection refused, timeout, TLS failure, cancelled context.
	KindTransport Kind = iota + 1

	// KindAuth indicates the server rejected the credential (401 or 403).
	KindAuth

	// KindNotFound indicates the named resource does not exist (404).
	KindNotFound

	// KindValidation indicates the server rejected the request as malformed
	// (any other 4xx).
	KindValidation

	// KindServer indicates a server-side failure (5xx).
	KindServer

	// KindDecode indicates a payload failure on the client side of the
	// exchange: the request body could not be encoded, or the server
	// responded with success but the body could not be decoded into the
	// expected type. No network attempt is made for an encode failure.
	KindDecode
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not found"
	case KindValidation:
		return "validation"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the error type returned by all client operations.
type Error struct {
	// Op is the operation that failed (e.g. "sessions.get").
	Op string

	// Kind classifies the failure.
	Kind Kind

	// Status is the HTTP status code, or 0 when the request never
	// produced a response.
	Status int

	// Message is the server-supplied error message, if any.
	Message string

	// Err is the underlying error (network error, JSON parse diagnostic).
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("jules: %s: %s (status %d): %s", e.Op, e.Kind, e.Status, e.Message)
	case e.Status != 0:
		return fmt.Sprintf("jules: %s: %s (status %d)", e.Op, e.Kind, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("jules: %s: %s: %v", e.Op, e.Kind, e.Err)
	default:
		return fmt.Sprintf("jules: %s: %s", e.Op, e.Kind)
	}
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Err
}

func kindOf(err error) Kind {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return 0
}

// IsTransport reports whether the request failed before reaching the server.
func IsTransport(err error) bool {
	return kindOf(err) == KindTransport
}

// IsAuth reports whether the server rejected the credential.
func IsAuth(err error) bool {
	return kindOf(err) == KindAuth
}

// IsNotFound reports whether the named resource does not exist.
func IsNotFound(err error) bool {
	return kindOf(err) == KindNotFound
}

// IsValidation reports whether the server rejected the request as invalid.
func IsValidation(err error) bool {
	return kindOf(err) == KindValidation
}

// IsServer reports whether the server failed to handle the request.
func IsServer(err error) bool {
	return kindOf(err) == KindServer
}

// IsDecode reports whether a payload failed to encode or decode.
func IsDecode(err error) bool {
	return kindOf(err) == KindDecode
}

// IsRetryable reports whether the error is likely transient and worth
// retrying. The client never retries on its own; this helps callers that do.
func IsRetryable(err error) bool {
	k := kindOf(err)
	return k == KindTransport || k == KindServer
}
