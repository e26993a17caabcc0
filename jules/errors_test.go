package jules

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindTransport, "transport"},
		{KindAuth, "auth"},
		{KindNotFound, "not found"},
		{KindValidation, "validation"},
		{KindServer, "server"},
		{KindDecode, "decode"},
		{Kind(0), "unknown"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.kind.String())
	}
}

func TestError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "status with message",
			err:  &Error{Op: "sessions.get", Kind: KindNotFound, Status: 404, Message: "no such session"},
			want: "jules: sessions.get: not found (status 404): no such session",
		},
		{
			name: "status without message",
			err:  &Error{Op: "sessions.delete", Kind: KindServer, Status: 500},
			want: "jules: sessions.delete: server (status 500)",
		},
		{
			name: "wrapped transport error",
			err:  &Error{Op: "sessions.list", Kind: KindTransport, Err: errors.New("connection refused")},
			want: "jules: sessions.list: transport: connection refused",
		},
		{
			name: "bare",
			err:  &Error{Op: "sources.get", Kind: KindDecode},
			want: "jules: sources.get: decode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("connection reset")
	err := &Error{Op: "sessions.list", Kind: KindTransport, Err: underlying}

	assert.ErrorIs(t, err, underlying)

	// Predicates see through further wrapping.
	wrapped := fmt.Errorf("listing failed: %w", err)
	assert.True(t, IsTransport(wrapped))
	assert.True(t, IsRetryable(wrapped))
}

func TestPredicates_NonClientErrors(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsRetryable(errors.New("plain")))
	assert.False(t, IsAuth(Done))
}

func TestIsRetryable_Kinds(t *testing.T) {
	retryable := map[Kind]bool{
		KindTransport:  true,
		KindServer:     true,
		KindAuth:       false,
		KindNotFound:   false,
		KindValidation: false,
		KindDecode:     false,
	}
	for kind, want := range retryable {
		err := &Error{Op: "op", Kind: kind}
		assert.Equal(t, want, IsRetryable(err), "kind %v", kind)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	body := []byte(`{"error":{"code":400,"message":"bad field","status":"INVALID_ARGUMENT"}}`)
	first := classify("sessions.create", 400, body)
	second := classify("sessions.create", 400, body)
	assert.Equal(t, first, second)
	assert.Equal(t, KindValidation, first.Kind)
	assert.Equal(t, "bad field", first.Message)
}

func TestClassify_StrayStatuses(t *testing.T) {
	// Non-4xx, non-5xx statuses that reach classification (an unfollowed
	// redirect, an unexpected 1xx) land in the server bucket.
	for _, status := range []int{101, 304} {
		e := classify("sessions.get", status, nil)
		assert.Equal(t, KindServer, e.Kind, "status %d", status)
		assert.Equal(t, status, e.Status)
	}
	assert.Equal(t, KindServer, classify("sessions.get", 500, nil).Kind)
}

func TestEncodeRequestFailure_IsDecode(t *testing.T) {
	c := NewClient("key", WithBaseURL("http://127.0.0.1:0"))

	// A func value cannot be marshaled, so the call fails before any
	// network attempt.
	_, _, err := c.do(context.Background(), "sessions.create", http.MethodPost, "sessions", nil, func() {})
	require.Error(t, err)
	assert.True(t, IsDecode(err))
	assert.False(t, IsTransport(err))
}

func TestErrorMessage_RawBodyFallback(t *testing.T) {
	assert.Equal(t, "plain text failure", errorMessage([]byte("  plain text failure\n")))
	assert.Equal(t, "", errorMessage(nil))
	assert.Equal(t, "", errorMessage([]byte{0xff, 0xfe}))
}
