package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"orders-demo/internal/config"
	"orders-demo/internal/middleware"
	"orders-demo/internal/service/auth"
)

// NewRouter assembles the HTTP routing table. The token endpoint and health
// checks are public; everything else sits behind the bearer middleware.
func NewRouter(h *Handler, authorizer *auth.RequestAuthorizer, cfg *config.Config) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))

	// Public endpoints
	r.Get("/", h.Health)
	r.Get("/health", h.Health)
	r.Post("/auth/token", h.Token)

	// Protected resources
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(authorizer))

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Post("/", h.CreateOrder)
			r.Get("/{orderID}", h.GetOrder)
			r.Put("/{orderID}", h.UpdateOrder)
			r.Delete("/{orderID}", h.DeleteOrder)
		})

		r.Route("/users/{userID}/profile", func(r chi.Router) {
			r.Get("/", h.GetProfile)
			r.Put("/", h.UpdateProfile)
		})
	})

	return r
}
