package api

import "fmt"

// NotFoundError indicates the server has no entry with the given ID.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("entry %d not found", e.ID)
}

// StatusError is a non-2xx response that is not a not-found.
// Message carries the server's error body text when one was present.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.StatusCode)
}

// TransportError wraps a failure to complete the HTTP round trip
// (connection refused, timeout, malformed response body).
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// PlaybackError wraps a failure to hand translation audio to the
// system opener.
type PlaybackError struct {
	URL string
	Err error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("could not open %s: %v", e.URL, e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}

// ValidationError rejects input before it reaches the server.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}
