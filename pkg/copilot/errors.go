package copilot

import (
	"errors"
	"fmt"

	"google.golang.org/grpc/codes"
)

// ConnectionError is returned when the bridge cannot be reached at all
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to Copilot Bridge at %s (is VS Code running with the extension?): %v", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// BridgeError is returned when the bridge answered with a non-success status
// or a reply that could not be decoded. StatusCode holds the HTTP status for
// the http transport and the gRPC code for the grpc transport; it is zero
// when the reply was malformed.
type BridgeError struct {
	Transport  string
	StatusCode int
	Body       string
	Err        error
}

func (e *BridgeError) Error() string {
	switch {
	case e.StatusCode != 0 && e.Transport == "grpc":
		return fmt.Sprintf("gRPC error %s: %s", codes.Code(e.StatusCode), e.Body)
	case e.StatusCode != 0:
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Body)
	case e.Err != nil:
		return fmt.Sprintf("malformed %s reply from bridge: %v", e.Transport, e.Err)
	}
	return fmt.Sprintf("%s bridge error: %s", e.Transport, e.Body)
}

func (e *BridgeError) Unwrap() error { return e.Err }

// StreamError carries an error event reported by the bridge in the middle of a stream
type StreamError struct {
	Message string
}

func (e *StreamError) Error() string {
	return "stream error: " + e.Message
}

// ValidationError is returned before any network call when the input is invalid
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Message
}

// ParseError is returned by ExtractJSON when no JSON value could be recovered
type ParseError struct {
	Preview string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse JSON from response:\n%s", e.Preview)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ErrorKind names the class of err for reports, e.g. "ConnectionError".
// Errors outside the taxonomy are reported as "Error".
func ErrorKind(err error) string {
	var (
		connErr   *ConnectionError
		bridgeErr *BridgeError
		streamErr *StreamError
		validErr  *ValidationError
		parseErr  *ParseError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &validErr):
		return "ValidationError"
	case errors.As(err, &streamErr):
		return "StreamError"
	case errors.As(err, &parseErr):
		return "ParseError"
	case errors.As(err, &connErr):
		return "ConnectionError"
	case errors.As(err, &bridgeErr):
		return "BridgeError"
	}
	return "Error"
}
