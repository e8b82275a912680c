package services

import "net/http"

// ServiceError is a typed error with an HTTP status code. The controllers map
// StatusCode straight onto the response; Message is safe to show the caller.
type ServiceError struct {
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string { return e.Message }

// NewValidationError reports malformed or missing input (user-correctable).
func NewValidationError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusBadRequest, Message: msg}
}

// NewNotFoundError reports a referenced entity that does not exist.
func NewNotFoundError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusNotFound, Message: msg}
}

// NewStorageError reports an unreachable store or a failed write.
func NewStorageError(msg string) *ServiceError {
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: msg}
}
