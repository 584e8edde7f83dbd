package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable LoadFromEnv reads so tests see a clean slate.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "LOG_LEVEL", "ENV", "JWT_SECRET", "TOKEN_TTL",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "CORS_ALLOWED_ORIGINS",
		"CREDENTIALS_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, float64(100), cfg.RateLimitRPS)
	assert.Equal(t, 200, cfg.RateLimitBurst)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.IsProduction())

	// Falling back to the baked-in secret must be loud.
	assert.Equal(t, insecureDefaultSecret, cfg.Auth.JWTSecret)
	assert.NotEmpty(t, cfg.Warnings)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("TOKEN_TTL", "15m")
	t.Setenv("RATE_LIMIT_RPS", "50")
	t.Setenv("RATE_LIMIT_BURST", "75")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("CREDENTIALS_FILE", "/etc/orders/credentials.yaml")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "super-secret", cfg.Auth.JWTSecret)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, float64(50), cfg.RateLimitRPS)
	assert.Equal(t, 75, cfg.RateLimitBurst)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "/etc/orders/credentials.yaml", cfg.CredentialsFile)
	assert.Empty(t, cfg.Warnings)
}

func TestLoadFromEnv_InvalidTokenTTL(t *testing.T) {
	tests := []struct {
		name string
		ttl  string
	}{
		{"unparseable", "banana"},
		{"zero", "0s"},
		{"negative", "-5m"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("TOKEN_TTL", tc.ttl)
			_, err := LoadFromEnv()
			assert.Error(t, err)
		})
	}
}

func TestLoadFromEnv_ProductionChecks(t *testing.T) {
	t.Run("default secret is fatal", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENV", "production")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")
		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})

	t.Run("CORS wildcard is fatal", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENV", "production")
		t.Setenv("JWT_SECRET", "real-secret")
		_, err := LoadFromEnv()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CORS")
	})

	t.Run("secure production config passes", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENV", "production")
		t.Setenv("JWT_SECRET", "real-secret")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com")
		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.IsProduction())
	})
}

func TestSlogLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}
	for _, tc := range tests {
		cfg := &Config{LogLevel: tc.level}
		assert.Equal(t, tc.want, cfg.SlogLevel(), "level %q", tc.level)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("LISTEN_ADDR", ":7070") // real env must win over the file

	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := `# comment line
LISTEN_ADDR=:9999
LOG_LEVEL="debug"
JWT_SECRET='quoted-secret'

NOT_A_PAIR
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	require.NoError(t, LoadDotEnv(path))

	assert.Equal(t, ":7070", os.Getenv("LISTEN_ADDR"))
	assert.Equal(t, "debug", os.Getenv("LOG_LEVEL"))
	assert.Equal(t, "quoted-secret", os.Getenv("JWT_SECRET"))
}

func TestLoadDotEnv_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "no-such.env")))
}

func TestStripQuotes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		want string
	}{
		{`"hello"`, "hello"},
		{`'hello'`, "hello"},
		{`"mismatched'`, `"mismatched'`},
		{`plain`, `plain`},
		{`"`, `"`},
		{``, ``},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, stripQuotes(tc.in), "input %q", tc.in)
	}
}
