package apiclient

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Every *Error matches exactly one of them through
// errors.Is.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrValidation         = errors.New("validation error")
	ErrNetwork            = errors.New("network error")
	ErrServer             = errors.New("server error")
)

// Error is returned by every Client operation that fails.
type Error struct {
	Kind    error
	Status  int
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	switch {
	case e.Status != 0 && e.Message != "":
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// kindFor classifies a non-2xx response.
func kindFor(status int, login bool) error {
	switch {
	case status == 401 && login:
		return ErrInvalidCredentials
	case status == 401:
		return ErrUnauthorized
	case status >= 500:
		return ErrServer
	default:
		return ErrValidation
	}
}

// Message returns a human readable description of err suitable for a flash
// message.
func Message(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Kind == ErrNetwork:
			return "Could not reach the server. Please try again."
		case apiErr.Kind == ErrServer:
			return "The server failed to process the request."
		case apiErr.Message != "":
			return apiErr.Message
		}
		return apiErr.Kind.Error()
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
