package service

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailExists is returned when a signup targets an already registered
	// email, whether detected before the insert or by the unique constraint
	// during it.
	ErrEmailExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned for both an unknown email and a wrong
	// password, so a caller cannot probe which emails are registered.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports malformed caller input. The caller can recover by
// correcting the input and retrying.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// StoreError reports a failure in the underlying store unrelated to the
// caller's input. The wrapped cause is kept for internal logging only and
// must not be returned to external callers.
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure: %v", e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
