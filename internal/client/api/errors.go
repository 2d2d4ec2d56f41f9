package api

import "errors"

var (
	// ErrUnavailable means the collaborator could not be reached at all.
	// Shown to the user as a generic message, never a raw transport error.
	ErrUnavailable = errors.New("server unavailable")

	// ErrUnauthorized maps any 401 response. Callers must clear the session
	// and flip the UI to logged-out; it is never surfaced as an error text.
	ErrUnauthorized = errors.New("unauthorized")
)

// APIError is a collaborator-reported failure: a non-success response whose
// detail message is shown to the user verbatim.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return e.Detail
}
