package domain

import "fmt"

// Role is the authorization role carried by a principal. It is a closed
// enumeration: tokens or credential records carrying any other value are
// rejected rather than treated as a third role.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// ParseRole converts a raw role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser:
		return RoleUser, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// Principal is an authenticated identity plus its role, derived from a
// credential check or a verified token. Immutable once constructed.
type Principal struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// OwnsOrAdmin reports whether the principal may act on a resource owned by
// ownerID: admins may act on anything, other principals only on their own.
func (p Principal) OwnsOrAdmin(ownerID string) bool {
	return p.IsAdmin() || p.ID == ownerID
}
