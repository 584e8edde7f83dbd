//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"orders-demo/internal/app"
	"orders-demo/internal/config"
)

const testJWTSecret = "integration-test-secret"

// testEnv bundles the in-process test server.
type testEnv struct {
	Server *httptest.Server
}

// setupServer wires the full application the same way main() does and serves
// it over an in-process listener. Each call gets fresh in-memory fixtures.
func setupServer(t *testing.T, credentialsFile string) *testEnv {
	t.Helper()

	cfg := &config.Config{
		LogLevel:           "error",
		CredentialsFile:    credentialsFile,
		RateLimitRPS:       1000,
		RateLimitBurst:     1000,
		CORSAllowedOrigins: []string{"*"},
		Auth: config.AuthConfig{
			JWTSecret: testJWTSecret,
			TokenTTL:  30 * time.Minute,
		},
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := app.New(app.Deps{Cfg: cfg, Logger: logger})
	require.NoError(t, err)

	srv := httptest.NewServer(a.Handler)
	t.Cleanup(srv.Close)

	return &testEnv{Server: srv}
}

// doJSON issues a request with an optional bearer token and JSON body.
func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

// decodeBody parses a JSON response body into v and closes it.
func decodeBody(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

// detailOf extracts the "detail" field of an error response and closes it.
func detailOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body map[string]string
	decodeBody(t, resp, &body)
	return body["detail"]
}

// passwordGrant exchanges a username/password for a bearer token.
func passwordGrant(t *testing.T, env *testEnv, username, password string) string {
	t.Helper()
	resp := doJSON(t, "POST", env.Server.URL+"/auth/token", "", map[string]string{
		"grant_type": "password",
		"username":   username,
		"password":   password,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokenResp struct {
		AccessToken string `json:"access_token"`
	}
	decodeBody(t, resp, &tokenResp)
	require.NotEmpty(t, tokenResp.AccessToken)
	return tokenResp.AccessToken
}
