package chat

import (
	"errors"
	"fmt"
)

// Sentinel errors for no-op sends.
var (
	// ErrEmptyMessage is returned for blank or whitespace-only input;
	// nothing is appended and no request is made.
	ErrEmptyMessage = errors.New("chat: message is empty")
	// ErrNoSession is returned when sending before session creation
	// completed.
	ErrNoSession = errors.New("chat: no session")
)

// SessionError represents a session bootstrap failure. It is blocking:
// no message can be sent until a new controller is created.
type SessionError struct {
	Cause error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("chat: failed to create session: %v", e.Cause)
}

func (e *SessionError) Unwrap() error {
	return e.Cause
}
