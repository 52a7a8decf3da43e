package domain

import "fmt"

// errors.go defines domain-specific error types.
type domainErr struct {
	message string
}

// Error returns the error message.
func (e domainErr) Error() string {
	return e.message
}

// NotFoundErr represents an error when a requested entity is not found.
type NotFoundErr struct {
	domainErr
}

// NewNotFoundErr creates a new NotFoundErr with the given message.
func NewNotFoundErr(message string) *NotFoundErr {
	return &NotFoundErr{
		domainErr: domainErr{message: message},
	}
}

// ValidationErr represents an error when validation fails.
type ValidationErr struct {
	domainErr
}

// NewValidationErr creates a new ValidationErr with the given message.
func NewValidationErr(message string) *ValidationErr {
	return &ValidationErr{
		domainErr: domainErr{message: message},
	}
}

// UpstreamErr represents a failure in an external collaborator (embedding
// provider or gift catalog). It is never masked as an empty result.
type UpstreamErr struct {
	source string
	cause  error
}

// NewUpstreamErr creates a new UpstreamErr naming the failed collaborator.
func NewUpstreamErr(source string, cause error) *UpstreamErr {
	return &UpstreamErr{source: source, cause: cause}
}

// Error returns the error message.
func (e UpstreamErr) Error() string {
	return fmt.Sprintf("%s failed: %v", e.source, e.cause)
}

// Unwrap returns the underlying cause.
func (e UpstreamErr) Unwrap() error {
	return e.cause
}

// Source returns the name of the collaborator that failed.
func (e UpstreamErr) Source() string {
	return e.source
}
