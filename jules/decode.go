package jules

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// validatable lets wire types reject structurally valid JSON that is
// missing required fields. Decode never returns a partially-populated value.
type validatable interface {
	Validate() error
}

// decode turns a raw status and body into a typed result or a classified
// error. It is a pure function of its inputs: deterministic, no side effects.
func decode[T any](op string, status int, raw []byte) (*T, error) {
	if status < 200 || status > 299 {
		return nil, classify(op, status, raw)
	}

	out := new(T)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return nil, &Error{Op: op, Kind: KindDecode, Status: status, Err: fmt.Errorf("decode response: %w", err)}
		}
	}

	// Resource types validate even on an empty body, so a bodyless success
	// on a Get is a decode failure, never a zero value. Delete-style acks
	// decode into empty, which has no Validate.
	if v, ok := any(out).(validatable); ok {
		if err := v.Validate(); err != nil {
			return nil, &Error{Op: op, Kind: KindDecode, Status: status, Err: err}
		}
	}
	return out, nil
}

// classify maps a non-success status to the error taxonomy, carrying the
// server-supplied message where one is present.
func classify(op string, status int, raw []byte) *Error {
	e := &Error{Op: op, Status: status, Message: errorMessage(raw)}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		e.Kind = KindAuth
	case status == http.StatusNotFound:
		e.Kind = KindNotFound
	case status >= 400 && status < 500:
		e.Kind = KindValidation
	case status >= 500:
		e.Kind = KindServer
	default:
		// Stray 1xx/3xx statuses (an unfollowed redirect, say) land in
		// the server bucket; the taxonomy has no kind for them.
		e.Kind = KindServer
	}
	return e
}

// errorEnvelope is the googleapis error response shape.
type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// errorMessage extracts the message from an error body: the googleapis
// envelope when present, otherwise the raw text.
func errorMessage(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Error.Message != "" {
		return env.Error.Message
	}
	if !utf8.Valid(raw) {
		return ""
	}
	return strings.TrimSpace(string(raw))
}
