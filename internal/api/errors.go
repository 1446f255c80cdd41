package api

import (
	"errors"
	"fmt"
)

// Error represents a failed backend request. Body holds the raw error
// payload for surfaces that show it verbatim (recruiter posting).
type Error struct {
	Path    string
	Status  int
	Message string
	Body    string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("api error for %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("api error for %s: %s", e.Path, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// IsStatus reports whether err is an *Error with the given HTTP status.
func IsStatus(err error, status int) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == status
}
