// Package app provides application-level wiring for the orders API: it turns
// configuration into the credential store, token codec, repositories, and
// services the HTTP layer needs.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"orders-demo/internal/api"
	"orders-demo/internal/config"
	"orders-demo/internal/repository"
	"orders-demo/internal/service/auth"
	"orders-demo/internal/service/orders"
	"orders-demo/internal/service/profiles"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// App holds the fully-wired application.
type App struct {
	Handler    http.Handler
	Authorizer *auth.RequestAuthorizer
	Codec      *auth.TokenCodec
}

// New wires the credential store, token codec, repositories, services, and
// router from the provided deps. The credential tables come from the
// configured YAML file, falling back to the built-in demo fixture.
func New(deps Deps) (*App, error) {
	cfg := deps.Cfg
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// === Credential tables (static, loaded once) ===
	creds := defaultCredentials()
	if cfg.CredentialsFile != "" {
		loaded, err := config.LoadCredentialsFile(cfg.CredentialsFile)
		if err != nil {
			return nil, fmt.Errorf("load credentials: %w", err)
		}
		creds = loaded
		logger.Info("credential tables loaded",
			"path", cfg.CredentialsFile,
			"users", len(creds.Users),
			"service_accounts", len(creds.ServiceAccounts))
	} else {
		logger.Warn("CREDENTIALS_FILE not set — using built-in demo credentials")
	}

	users, serviceAccounts, err := credentialTables(creds)
	if err != nil {
		return nil, err
	}
	store, err := auth.NewCredentialStore(users, serviceAccounts)
	if err != nil {
		return nil, fmt.Errorf("credential store: %w", err)
	}

	// === Auth core ===
	codec, err := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return nil, fmt.Errorf("token codec: %w", err)
	}
	authn := auth.NewAuthenticator(store, codec)
	authorizer := auth.NewRequestAuthorizer(codec)

	// === Resource storage (in-memory, demo fixture) ===
	orderRepo := repository.NewOrderRepo(seedOrders(), seedNextOrderID)
	profileRepo := repository.NewProfileRepo(seedProfiles())

	// === Services ===
	orderSvc := orders.NewService(orderRepo)
	profileSvc := profiles.NewService(profileRepo)

	// === HTTP surface ===
	handler := api.NewHandler(authn, orderSvc, profileSvc, logger.With("component", "api"))
	router := api.NewRouter(handler, authorizer, cfg)

	return &App{
		Handler:    router,
		Authorizer: authorizer,
		Codec:      codec,
	}, nil
}
