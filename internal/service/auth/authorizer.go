package auth

import (
	"errors"

	"orders-demo/internal/domain"
)

// RequestAuthorizer turns bearer tokens into verified principals for the
// per-request authentication boundary.
type RequestAuthorizer struct {
	codec *TokenCodec
}

// NewRequestAuthorizer creates a RequestAuthorizer over the given codec.
func NewRequestAuthorizer(codec *TokenCodec) *RequestAuthorizer {
	return &RequestAuthorizer{codec: codec}
}

// AuthenticateRequest verifies a bearer token and returns the principal it
// asserts. Every failure collapses to an UnauthenticatedError; the message
// distinguishes expiry from tampering so callers can surface different
// diagnostics, but both map to 401.
//
// A token that decodes structurally but lacks a subject or carries an
// unrecognized role is treated identically to an invalid token.
func (ra *RequestAuthorizer) AuthenticateRequest(token string) (domain.Principal, error) {
	claims, err := ra.codec.Verify(token)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return domain.Principal{}, domain.ErrUnauthenticated("Token has expired")
		}
		return domain.Principal{}, domain.ErrUnauthenticated("Invalid token")
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil || claims.Subject == "" {
		return domain.Principal{}, domain.ErrUnauthenticated("Invalid token payload")
	}

	return domain.Principal{ID: claims.Subject, Role: role}, nil
}
