package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrEmptyData is returned when the server reports success but the promised payload is missing.
	ErrEmptyData = errors.New("found empty data after error check")

	// ErrMissingField is wrapped by a DecodeError when a required member is absent.
	ErrMissingField = errors.New("missing field")

	errUnexpectedStatus = errors.New("unexpected http status")
)

// TransportError is a network-level failure: DNS, refused connection, TLS, timeout
// or a non-2xx HTTP status.
type TransportError struct {
	URL    string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("transport: %s: %d %s: %v", e.URL, e.Status, http.StatusText(e.Status), e.Err)
	}
	return fmt.Sprintf("transport: %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError is returned when a response body is not valid JSON or does not match the expected shape.
type DecodeError struct {
	Size int
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: %d byte response: %v", e.Size, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// APIError is a failure reported by the server through the envelope's error flag.
// Code and Message are preserved exactly as sent; Description is looked up from the code table.
type APIError struct {
	Code        int
	Message     string
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("proxer error %d: %s (%s)", e.Code, e.Message, e.Description)
}

// IsAPIError reports whether err is an APIError with the given code.
func IsAPIError(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}
