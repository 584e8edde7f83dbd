package api

import (
	"errors"
	"net/http"

	"orders-demo/internal/domain"
)

// httpStatusFromDomainError maps domain errors to HTTP status codes.
func httpStatusFromDomainError(err error) int {
	var notFound *domain.NotFoundError
	var accessDenied *domain.AccessDeniedError
	var validation *domain.ValidationError
	var unauthenticated *domain.UnauthenticatedError
	var invalidCredentials *domain.InvalidCredentialsError
	var unsupportedGrant *domain.UnsupportedGrantError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &accessDenied):
		return http.StatusForbidden
	case errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &unsupportedGrant):
		return http.StatusBadRequest
	case errors.As(err, &unauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &invalidCredentials):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// needsBearerChallenge reports whether the error's response must carry a
// WWW-Authenticate: Bearer header. Every 401 in this API does.
func needsBearerChallenge(err error) bool {
	var unauthenticated *domain.UnauthenticatedError
	var invalidCredentials *domain.InvalidCredentialsError
	return errors.As(err, &unauthenticated) || errors.As(err, &invalidCredentials)
}
