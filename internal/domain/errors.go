// Package domain defines core types, interfaces, and errors for the orders API.
package domain

import "fmt"

// NotFoundError indicates a resource was not found.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// AccessDeniedError indicates the principal is authenticated but not entitled
// to the target resource.
type AccessDeniedError struct {
	Message string
}

func (e *AccessDeniedError) Error() string { return e.Message }

// ValidationError indicates invalid input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// UnauthenticatedError indicates a missing, expired, or invalid credential.
// Responses built from it carry a bearer challenge header.
type UnauthenticatedError struct {
	Message string
}

func (e *UnauthenticatedError) Error() string { return e.Message }

// InvalidCredentialsError indicates a well-formed grant whose secret did not
// verify or whose identity is unknown.
type InvalidCredentialsError struct {
	Message string
}

func (e *InvalidCredentialsError) Error() string { return e.Message }

// UnsupportedGrantError indicates a grant type the token endpoint does not support.
type UnsupportedGrantError struct {
	Message string
}

func (e *UnsupportedGrantError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...interface{}) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrAccessDenied creates an AccessDeniedError with a formatted message.
func ErrAccessDenied(format string, args ...interface{}) *AccessDeniedError {
	return &AccessDeniedError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// ErrUnauthenticated creates an UnauthenticatedError with a formatted message.
func ErrUnauthenticated(format string, args ...interface{}) *UnauthenticatedError {
	return &UnauthenticatedError{Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidCredentials creates an InvalidCredentialsError with a formatted message.
func ErrInvalidCredentials(format string, args ...interface{}) *InvalidCredentialsError {
	return &InvalidCredentialsError{Message: fmt.Sprintf(format, args...)}
}

// ErrUnsupportedGrant creates an UnsupportedGrantError with a formatted message.
func ErrUnsupportedGrant(format string, args ...interface{}) *UnsupportedGrantError {
	return &UnsupportedGrantError{Message: fmt.Sprintf(format, args...)}
}
