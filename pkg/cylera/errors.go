// pkg/cylera/errors.go

package cylera

import (
	"errors"
	"fmt"
)

// AuthError reports a credential rejection by the Partner API.
type AuthError struct {
	StatusCode int
	Detail     string
}

func (e *AuthError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("authentication failed (status %d): %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("authentication failed (status %d)", e.StatusCode)
}

// APIError reports a non-success response or transport failure during a
// data query. Detail carries whatever the service said, single line.
type APIError struct {
	StatusCode int
	Method     string
	Path       string
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s returned status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s returned status %d", e.Method, e.Path, e.StatusCode)
}

// IsAuthError reports whether err wraps an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// IsAPIError reports whether err wraps an APIError or AuthError; both are
// remote-service failures from the dispatcher's point of view.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) || IsAuthError(err)
}
