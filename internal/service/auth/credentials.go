// Package auth implements credential verification, signed-token issuance and
// validation, and the principals derived from both.
package auth

import (
	"crypto/subtle"
	"fmt"

	"orders-demo/internal/domain"
)

// Credential is a static principal record: an identity, its shared secret,
// and the role it authenticates into.
type Credential struct {
	ID     string
	Secret string
	Role   domain.Role
}

// CredentialStore holds the static credential tables, loaded once at startup.
// Interactive users and service accounts are separate namespaces: the two are
// authenticated independently and never cross-resolve.
type CredentialStore struct {
	users           map[string]Credential
	serviceAccounts map[string]Credential
}

// NewCredentialStore builds a store from the two credential tables. Duplicate
// identities within a namespace and unrecognized roles are configuration
// errors.
func NewCredentialStore(users, serviceAccounts []Credential) (*CredentialStore, error) {
	s := &CredentialStore{
		users:           make(map[string]Credential, len(users)),
		serviceAccounts: make(map[string]Credential, len(serviceAccounts)),
	}
	for _, c := range users {
		if err := validateCredential(c); err != nil {
			return nil, fmt.Errorf("user %q: %w", c.ID, err)
		}
		if _, exists := s.users[c.ID]; exists {
			return nil, fmt.Errorf("duplicate user %q", c.ID)
		}
		s.users[c.ID] = c
	}
	for _, c := range serviceAccounts {
		if err := validateCredential(c); err != nil {
			return nil, fmt.Errorf("service account %q: %w", c.ID, err)
		}
		if _, exists := s.serviceAccounts[c.ID]; exists {
			return nil, fmt.Errorf("duplicate service account %q", c.ID)
		}
		s.serviceAccounts[c.ID] = c
	}
	return s, nil
}

func validateCredential(c Credential) error {
	if c.ID == "" {
		return fmt.Errorf("identity is required")
	}
	if c.Secret == "" {
		return fmt.Errorf("secret is required")
	}
	if !c.Role.Valid() {
		return fmt.Errorf("role must be 'user' or 'admin', got %q", c.Role)
	}
	return nil
}

// LookupUser returns the interactive credential record for an identity.
func (s *CredentialStore) LookupUser(username string) (Credential, bool) {
	c, ok := s.users[username]
	return c, ok
}

// LookupServiceAccount returns the service-account record for a client ID.
func (s *CredentialStore) LookupServiceAccount(clientID string) (Credential, bool) {
	c, ok := s.serviceAccounts[clientID]
	return c, ok
}

// secretsEqual compares a presented secret against a stored one in constant
// time, so the comparison itself leaks no timing information.
func secretsEqual(stored, presented string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}
