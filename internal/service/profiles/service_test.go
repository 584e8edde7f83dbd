package profiles

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orders-demo/internal/domain"
	"orders-demo/internal/repository"
)

var (
	userA     = domain.Principal{ID: "user_a", Role: domain.RoleUser}
	userB     = domain.Principal{ID: "user_b", Role: domain.RoleUser}
	adminUser = domain.Principal{ID: "admin", Role: domain.RoleAdmin}
)

func strPtr(s string) *string { return &s }

func newTestService() *Service {
	seed := []domain.Profile{
		{UserID: "user_a", Email: "user_a@example.com", FullName: "User A", Phone: strPtr("+1-555-0101")},
		{UserID: "user_b", Email: "user_b@example.com", FullName: "User B"},
	}
	return NewService(repository.NewProfileRepo(seed))
}

func TestService_Get(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	t.Run("owner may fetch", func(t *testing.T) {
		profile, err := svc.Get(context.Background(), userA, "user_a")
		require.NoError(t, err)
		assert.Equal(t, "user_a@example.com", profile.Email)
	})

	t.Run("admin may fetch any", func(t *testing.T) {
		profile, err := svc.Get(context.Background(), adminUser, "user_b")
		require.NoError(t, err)
		assert.Equal(t, "User B", profile.FullName)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		_, err := svc.Get(context.Background(), userB, "user_a")
		var denied *domain.AccessDeniedError
		require.True(t, errors.As(err, &denied), "want AccessDeniedError, got %T", err)
		assert.Equal(t, "Not authorized to access this profile", denied.Error())
	})

	t.Run("ownership is checked before existence", func(t *testing.T) {
		// A non-owner probing an unknown user gets 403, not 404 — the path
		// identity is denied before the table is consulted.
		_, err := svc.Get(context.Background(), userB, "ghost")
		var denied *domain.AccessDeniedError
		assert.True(t, errors.As(err, &denied), "want AccessDeniedError, got %T", err)
	})

	t.Run("admin fetching unknown user gets not found", func(t *testing.T) {
		_, err := svc.Get(context.Background(), adminUser, "ghost")
		var notFound *domain.NotFoundError
		assert.True(t, errors.As(err, &notFound), "want NotFoundError, got %T", err)
	})
}

func TestService_Update(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	t.Run("owner partial update preserves other fields", func(t *testing.T) {
		profile, err := svc.Update(context.Background(), userA, "user_a", domain.UpdateProfileRequest{
			FullName: strPtr("User A Prime"),
		})
		require.NoError(t, err)
		assert.Equal(t, "User A Prime", profile.FullName)
		assert.Equal(t, "user_a@example.com", profile.Email)
		require.NotNil(t, profile.Phone)
		assert.Equal(t, "+1-555-0101", *profile.Phone)
	})

	t.Run("non-owner is denied", func(t *testing.T) {
		_, err := svc.Update(context.Background(), userA, "user_b", domain.UpdateProfileRequest{
			Email: strPtr("hijack@example.com"),
		})
		var denied *domain.AccessDeniedError
		require.True(t, errors.As(err, &denied))
		assert.Equal(t, "Not authorized to update this profile", denied.Error())
	})

	t.Run("validation runs before authorization", func(t *testing.T) {
		_, err := svc.Update(context.Background(), userA, "user_b", domain.UpdateProfileRequest{
			Email: strPtr(""),
		})
		var validation *domain.ValidationError
		assert.True(t, errors.As(err, &validation), "want ValidationError, got %T", err)
	})

	t.Run("admin may update any", func(t *testing.T) {
		profile, err := svc.Update(context.Background(), adminUser, "user_b", domain.UpdateProfileRequest{
			Address: strPtr("42 Main St"),
		})
		require.NoError(t, err)
		require.NotNil(t, profile.Address)
		assert.Equal(t, "42 Main St", *profile.Address)
	})
}
