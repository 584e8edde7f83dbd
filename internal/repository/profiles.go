package repository

import (
	"context"
	"sync"

	"orders-demo/internal/domain"
)

// ProfileRepo is an in-memory keyed table of user profiles.
type ProfileRepo struct {
	mu       sync.RWMutex
	profiles map[string]domain.Profile
}

// NewProfileRepo creates a profile table seeded with the given profiles.
func NewProfileRepo(seed []domain.Profile) *ProfileRepo {
	r := &ProfileRepo{profiles: make(map[string]domain.Profile, len(seed))}
	for _, p := range seed {
		r.profiles[p.UserID] = p
	}
	return r
}

// GetByUserID returns the profile for a user.
func (r *ProfileRepo) GetByUserID(_ context.Context, userID string) (*domain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound("Profile not found")
	}
	return &p, nil
}

// Update applies a partial update to an existing profile.
func (r *ProfileRepo) Update(_ context.Context, userID string, req domain.UpdateProfileRequest) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, domain.ErrNotFound("Profile not found")
	}
	if req.Email != nil {
		p.Email = *req.Email
	}
	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Phone != nil {
		p.Phone = req.Phone
	}
	if req.Address != nil {
		p.Address = req.Address
	}
	r.profiles[userID] = p
	return &p, nil
}
