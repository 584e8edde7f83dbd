package auth

import (
	"orders-demo/internal/domain"
)

// Supported grant types.
const (
	GrantTypePassword          = "password"
	GrantTypeClientCredentials = "client_credentials"
)

// GrantRequest is a client request to exchange a credential for a token.
// Exactly one variant's fields must be populated, selected by GrantType.
type GrantRequest struct {
	GrantType    string `json:"grant_type"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
}

// TokenResponse is the token-issuance boundary's success payload.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Authenticator exchanges credential grants for verified principals and
// drives the token codec to mint access tokens.
type Authenticator struct {
	store *CredentialStore
	codec *TokenCodec
}

// NewAuthenticator creates an Authenticator over the given store and codec.
func NewAuthenticator(store *CredentialStore, codec *TokenCodec) *Authenticator {
	return &Authenticator{store: store, codec: codec}
}

// Authenticate verifies a credential grant and returns the principal it
// proves. Failures are typed: ValidationError for an incomplete grant,
// UnsupportedGrantError for an unknown grant type, InvalidCredentialsError
// for an unknown identity or wrong secret.
func (a *Authenticator) Authenticate(req GrantRequest) (domain.Principal, error) {
	switch req.GrantType {
	case GrantTypePassword:
		if req.Username == "" || req.Password == "" {
			return domain.Principal{}, domain.ErrValidation("username and password required for password grant")
		}
		cred, ok := a.store.LookupUser(req.Username)
		if !ok || !secretsEqual(cred.Secret, req.Password) {
			return domain.Principal{}, domain.ErrInvalidCredentials("invalid username or password")
		}
		return domain.Principal{ID: cred.ID, Role: cred.Role}, nil

	case GrantTypeClientCredentials:
		if req.ClientID == "" || req.ClientSecret == "" {
			return domain.Principal{}, domain.ErrValidation("client_id and client_secret required for client_credentials grant")
		}
		cred, ok := a.store.LookupServiceAccount(req.ClientID)
		if !ok || !secretsEqual(cred.Secret, req.ClientSecret) {
			return domain.Principal{}, domain.ErrInvalidCredentials("invalid client credentials")
		}
		return domain.Principal{ID: cred.ID, Role: cred.Role}, nil

	default:
		return domain.Principal{}, domain.ErrUnsupportedGrant("unsupported grant type %q", req.GrantType)
	}
}

// IssueToken authenticates the grant and mints an access token for the
// resulting principal, using the codec's default lifetime.
func (a *Authenticator) IssueToken(req GrantRequest) (*TokenResponse, error) {
	principal, err := a.Authenticate(req)
	if err != nil {
		return nil, err
	}
	token, err := a.codec.Issue(principal.ID, principal.Role)
	if err != nil {
		return nil, err
	}
	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(a.codec.TTL().Seconds()),
	}, nil
}
