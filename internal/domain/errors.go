package domain

import (
	"errors"
	"fmt"
)

// UnauthenticatedError is raised before any network call when an operation
// that requires a bearer token finds none in the session.
type UnauthenticatedError struct {
	Operation string
}

func (e UnauthenticatedError) Error() string {
	if e.Operation == "" {
		return "unauthenticated"
	}
	return fmt.Sprintf("unauthenticated: %s requires a logged-in session", e.Operation)
}

// ValidationError is a client-side check that failed before submission.
// Field names the first offending field so forms can surface it directly.
type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	switch {
	case e.Msg != "" && e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	case e.Msg != "":
		return e.Msg
	case e.Field != "":
		return fmt.Sprintf("invalid %s", e.Field)
	default:
		return "validation error"
	}
}

func (e ValidationError) Unwrap() error { return e.Err }

// APIError carries a non-2xx response from the hotel API. Message holds the
// human-readable body field when the server provided one.
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("hotel api returned status %d", e.Status)
}

func (e APIError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

func IsUnauthenticated(err error) bool {
	var target UnauthenticatedError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

// APIStatus reports the upstream HTTP status when err wraps an APIError.
func APIStatus(err error) (int, bool) {
	var target APIError
	if errors.As(err, &target) {
		return target.Status, true
	}
	return 0, false
}

// UserMessage renders err the way the UI shows failures: validation and API
// messages verbatim, anything else as a generic alert.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case IsValidation(err), IsUnauthenticated(err):
		return err.Error()
	default:
		var api APIError
		if errors.As(err, &api) {
			return api.Error()
		}
		return "Something went wrong, please retry"
	}
}
