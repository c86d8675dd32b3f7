package pushwoosh

import (
	"errors"
	"fmt"
)

// ErrMissingField is wrapped by a *ParseError when the response envelope
// lacks status_code or status_message.
var ErrMissingField = errors.New("missing field in response")

// TransportError reports a failure to reach the API or read its reply.
// No response envelope was received.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("pushwoosh: request to %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not a valid status envelope.
type ParseError struct {
	Body []byte
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pushwoosh: decode response: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ServiceError is returned when Pushwoosh answered with a status code other
// than the one the operation expects.
type ServiceError struct {
	Code    int
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("pushwoosh: status %d: %s", e.Code, e.Message)
}
