package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"orders-demo/internal/domain"
)

// Token verification failure kinds. Expired means the signature checked out
// but the token's lifetime is over; Malformed covers signature mismatch,
// structural garbage, wrong signing scheme, and missing expiry. Both collapse
// to 401 at the API boundary, but callers can log them apart.
var (
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")
)

// Claims is the data a token asserts about its subject. Role is carried as a
// raw string: the codec validates the envelope, the caller validates the
// claim set.
type Claims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// TokenCodec signs and verifies self-contained HS256 tokens carrying subject,
// role, and an absolute expiry. It holds no state beyond the process-wide
// signing secret.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec creates a codec with the given signing secret and default
// token lifetime.
func NewTokenCodec(secret string, ttl time.Duration) (*TokenCodec, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token TTL must be positive")
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl}, nil
}

// TTL returns the default token lifetime.
func (c *TokenCodec) TTL() time.Duration {
	return c.ttl
}

// Issue mints a signed token for the subject with the codec's default lifetime.
func (c *TokenCodec) Issue(subject string, role domain.Role) (string, error) {
	return c.IssueWithTTL(subject, role, c.ttl)
}

// IssueWithTTL mints a signed token whose expiry is issue-time + ttl.
func (c *TokenCodec) IssueWithTTL(subject string, role domain.Role, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  subject,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns its claims.
// Failures are reported as ErrTokenExpired or ErrTokenMalformed.
func (c *TokenCodec) Verify(tokenString string) (*Claims, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method == nil || t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}

	raw, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("%w: unsupported claim type %T", ErrTokenMalformed, tok.Claims)
	}

	claims := &Claims{}
	if sub, ok := raw["sub"].(string); ok {
		claims.Subject = sub
	}
	if role, ok := raw["role"].(string); ok {
		claims.Role = role
	}
	if exp, err := raw.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}
	return claims, nil
}
