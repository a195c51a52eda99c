// pkg/cli/errors.go

package cli

import (
	"errors"
	"fmt"
)

// UserError marks an error as user-correctable. The dispatcher prints its
// message verbatim instead of prefixing it as an internal failure.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewUserError builds a user-correctable error from a format string.
func NewUserError(format string, args ...interface{}) error {
	return &UserError{cause: fmt.Errorf(format, args...)}
}

// NewExpectedError wraps an existing error as user-correctable.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsUserError checks whether err is marked as user-correctable.
func IsUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}
