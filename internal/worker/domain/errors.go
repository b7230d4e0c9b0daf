package domain

import "errors"

var (
	// ErrJobPostNotFound is returned when the referenced job post does not exist
	ErrJobPostNotFound = errors.New("job post not found")

	// ErrInvalidPayload is returned when the refresh message JSON is malformed
	ErrInvalidPayload = errors.New("invalid refresh payload")
)

// RetryableError wraps transient errors that should trigger a requeue
type RetryableError struct {
	Err error
}

func (e *RetryableError) Error() string {
	return "retryable error: " + e.Err.Error()
}

func (e *RetryableError) Unwrap() error {
	return e.Err
}

// NewRetryableError creates a new retryable error
func NewRetryableError(err error) error {
	return &RetryableError{Err: err}
}
