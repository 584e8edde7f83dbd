// Package profiles provides user-profile operations with per-principal
// authorization.
package profiles

import (
	"context"

	"orders-demo/internal/domain"
)

// Service exposes profile reads and updates guarded by the ownership policy.
//
// Unlike orders, profiles check ownership before existence: the profile path
// embeds the owner identity, so denying first leaks nothing the caller did
// not already supply. The asymmetry with orders is carried over deliberately.
type Service struct {
	repo domain.ProfileRepository
}

// NewService creates a profile Service over the given repository.
func NewService(repo domain.ProfileRepository) *Service {
	return &Service{repo: repo}
}

// Get returns a user's profile if the principal owns it or is an admin.
func (s *Service) Get(ctx context.Context, principal domain.Principal, userID string) (*domain.Profile, error) {
	if !principal.OwnsOrAdmin(userID) {
		return nil, domain.ErrAccessDenied("Not authorized to access this profile")
	}
	return s.repo.GetByUserID(ctx, userID)
}

// Update applies a partial update to a profile the principal may act on.
func (s *Service) Update(ctx context.Context, principal domain.Principal, userID string, req domain.UpdateProfileRequest) (*domain.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if !principal.OwnsOrAdmin(userID) {
		return nil, domain.ErrAccessDenied("Not authorized to update this profile")
	}
	return s.repo.Update(ctx, userID, req)
}
