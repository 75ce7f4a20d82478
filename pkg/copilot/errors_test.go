package copilot

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{&ConnectionError{Endpoint: "http://x", Err: io.ErrUnexpectedEOF}, "ConnectionError"},
		{&BridgeError{Transport: "http", StatusCode: 500}, "BridgeError"},
		{&StreamError{Message: "boom"}, "StreamError"},
		{&ValidationError{Message: "empty"}, "ValidationError"},
		{&ParseError{Preview: "x"}, "ParseError"},
		{fmt.Errorf("chat failed: %w", &StreamError{Message: "boom"}), "StreamError"},
		{errors.New("plain"), "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorKind(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "HTTP 404: {\"error\":\"Not found\"}",
		(&BridgeError{Transport: "http", StatusCode: 404, Body: `{"error":"Not found"}`}).Error())
	assert.Equal(t, "gRPC error Internal: oops",
		(&BridgeError{Transport: "grpc", StatusCode: int(codes.Internal), Body: "oops"}).Error())
	assert.Contains(t, (&BridgeError{Transport: "http", Err: io.ErrUnexpectedEOF}).Error(), "malformed http reply")
	assert.Contains(t, (&ConnectionError{Endpoint: "http://127.0.0.1:3741", Err: io.EOF}).Error(), "http://127.0.0.1:3741")
	assert.Equal(t, "stream error: quota", (&StreamError{Message: "quota"}).Error())
}

func TestErrorsUnwrap(t *testing.T) {
	cause := io.ErrUnexpectedEOF
	assert.ErrorIs(t, &ConnectionError{Err: cause}, cause)
	assert.ErrorIs(t, &BridgeError{Err: cause}, cause)
	assert.ErrorIs(t, &ParseError{Err: cause}, cause)
}
