package schema

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the authentication and persistence layers.
// Callers branch with errors.Is.
var (
	// ErrRequireMFA indicates the account has multi-factor authentication
	// enabled and login must be completed with a one-time code. It is the
	// only recoverable login failure.
	ErrRequireMFA = errors.New("multi-factor authentication required")

	// ErrInvalidMFACode indicates the submitted one-time code was rejected.
	ErrInvalidMFACode = errors.New("invalid multi-factor code")

	// ErrLoginFailed indicates the remote rejected the credentials.
	ErrLoginFailed = errors.New("login failed")

	// ErrLoginRequired indicates an operation was attempted without a session.
	ErrLoginRequired = errors.New("login required")

	// ErrSessionExpired indicates the remote rejected a previously valid token.
	ErrSessionExpired = errors.New("session expired")

	// ErrSessionNotFound indicates no persisted session exists at the store location.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCorrupt indicates the persisted session could not be decoded.
	ErrSessionCorrupt = errors.New("session corrupt")

	// ErrRefreshTimeout indicates an accounts refresh did not complete within
	// the polling bound.
	ErrRefreshTimeout = errors.New("accounts refresh timed out")
)

// TransportError wraps a network-level failure: the request never produced a
// well-formed HTTP response.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusError reports a non-success HTTP status. The gateway does not
// interpret the body; callers layer remote semantics on top of Code and Body.
type StatusError struct {
	Code int
	Body []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Code, e.Body)
}

// OperationError reports a well-formed remote failure for a specific
// operation, e.g. an invalid category id or a payload shape mismatch.
type OperationError struct {
	Operation string
	Message   string
	Code      string
}

func (e *OperationError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("operation %s failed: %s (%s)", e.Operation, e.Message, e.Code)
	}
	return fmt.Sprintf("operation %s failed: %s", e.Operation, e.Message)
}

// NewOperationError creates an operation error without a remote error code.
func NewOperationError(operation, message string) *OperationError {
	return &OperationError{Operation: operation, Message: message}
}
